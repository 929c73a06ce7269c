package lexer

import (
	"golang.org/x/text/unicode/norm"

	"locksmith/internal/token"
)

// scanIdentOrKeyword сканирует идентификатор и проверяет через LookupKeyword.
// Token.Text — NFC-нормализованный текст (Swift сравнивает идентификаторы в
// NFC); Span указывает на исходный срез как есть.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	// `quoted` идентификатор: произвольное имя в обратных кавычках
	if lx.cursor.Peek() == '`' {
		return lx.scanBacktickIdent()
	}

	r, sz := lx.peekRune()
	if sz == 0 {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Invalid, Span: sp, Text: ""}
	}
	if r < utf8RuneSelf {
		if !isIdentStartByte(byte(r)) {
			return lx.scanOperatorOrPunct()
		}
		lx.cursor.Bump()
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		// хвост может быть Unicode-продолжением
		for {
			r2, sz2 := lx.peekRune()
			if sz2 <= 1 || !isIdentContinueRune(r2) {
				break
			}
			lx.bumpRune()
			for isIdentContinueByte(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		}
	} else {
		if !isIdentStartRune(r) {
			return lx.scanOperatorOrPunct()
		}
		lx.bumpRune()
		for {
			r2, sz2 := lx.peekRune()
			if sz2 == 0 || !isIdentContinueRune(r2) {
				break
			}
			lx.bumpRune()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	lex := lx.file.Content[sp.Start:sp.End]
	text := norm.NFC.String(string(lex))

	if len(lex) == 1 && lex[0] == '_' {
		return token.Token{Kind: token.Underscore, Span: sp, Text: text}
	}

	if kind := token.LookupKeyword(text); kind != token.Ident {
		return token.Token{Kind: kind, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

// scanBacktickIdent reads `name`; the backticks stay in Text so the
// synthesizer reproduces them verbatim.
func (lx *Lexer) scanBacktickIdent() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening `
	for !lx.cursor.EOF() && lx.cursor.Peek() != '`' && lx.cursor.Peek() != '\n' {
		lx.bumpRune()
	}
	if !lx.cursor.Eat('`') {
		sp := lx.cursor.SpanFrom(start)
		lx.report(ReportUnknownChar, sp, "unterminated backquoted identifier")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.Ident,
		Span: sp,
		Text: norm.NFC.String(string(lx.file.Content[sp.Start:sp.End])),
	}
}
