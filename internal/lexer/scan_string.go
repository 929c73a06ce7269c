package lexer

import (
	"locksmith/internal/token"
)

// scanString сканирует строковый литерал целиком, включая интерполяцию
// \( ... ): вложенные скобки и вложенные строки остаются частью токена.
// Экспандер переносит литерал в сгенерированный код дословно, поэтому
// содержимое не разбирается.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()

	// multiline """ ... """
	if lx.cursor.Peek() == '"' && lx.cursor.PeekAt(1) == '"' && lx.cursor.PeekAt(2) == '"' {
		lx.cursor.Off += 3
		for !lx.cursor.EOF() {
			if lx.cursor.Peek() == '\\' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				continue
			}
			if lx.cursor.Peek() == '"' && lx.cursor.PeekAt(1) == '"' && lx.cursor.PeekAt(2) == '"' {
				lx.cursor.Off += 3
				return lx.stringToken(start)
			}
			lx.bumpRune()
		}
		sp := lx.cursor.SpanFrom(start)
		lx.report(ReportUnterminatedString, sp, "unterminated multiline string literal")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	lx.cursor.Bump() // opening "
	if !lx.scanStringBody() {
		sp := lx.cursor.SpanFrom(start)
		lx.report(ReportUnterminatedString, sp, "unterminated string literal")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}
	return lx.stringToken(start)
}

// scanStringBody consumes up to and including the closing quote.
// Returns false on newline/EOF before the string terminates.
func (lx *Lexer) scanStringBody() bool {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == '"':
			lx.cursor.Bump()
			return true
		case b == '\n':
			return false
		case b == '\\':
			lx.cursor.Bump()
			// интерполяция: \( expr ) — скобки балансируем, строки рекурсивно
			if lx.cursor.Peek() == '(' {
				lx.cursor.Bump()
				if !lx.skipInterpolation() {
					return false
				}
				continue
			}
			lx.cursor.Bump() // обычный escape: съесть следующий байт
		default:
			lx.bumpRune()
		}
	}
	return false
}

func (lx *Lexer) skipInterpolation() bool {
	depth := 1
	for !lx.cursor.EOF() && depth > 0 {
		switch lx.cursor.Peek() {
		case '(':
			depth++
			lx.cursor.Bump()
		case ')':
			depth--
			lx.cursor.Bump()
		case '"':
			lx.cursor.Bump()
			if !lx.scanStringBody() {
				return false
			}
		case '\n':
			return false
		default:
			lx.bumpRune()
		}
	}
	return depth == 0
}

func (lx *Lexer) stringToken(start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.StringLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
