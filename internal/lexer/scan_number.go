package lexer

import (
	"locksmith/internal/token"
)

// scanNumber сканирует числовой литерал: десятичный/hex/octal/binary,
// с разделителями '_', дробной частью и экспонентой.
// Точный разбор значения экспандеру не нужен — инициализатор переносится
// в сгенерированный код как текст; важно лишь не порвать спан.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	if lx.cursor.Peek() == '0' {
		switch lx.cursor.PeekAt(1) {
		case 'x', 'X':
			lx.cursor.Bump()
			lx.cursor.Bump()
			if !lx.eatDigits(isHex) {
				return lx.badNumber(start, "hex literal requires at least one digit")
			}
			// hex float: 0x1.8p3
			if lx.cursor.Peek() == '.' && isHex(lx.cursor.PeekAt(1)) {
				kind = token.FloatLit
				lx.cursor.Bump()
				lx.eatDigits(isHex)
			}
			if b := lx.cursor.Peek(); b == 'p' || b == 'P' {
				kind = token.FloatLit
				lx.cursor.Bump()
				lx.eatSign()
				if !lx.eatDigits(isDec) {
					return lx.badNumber(start, "exponent requires at least one digit")
				}
			}
			return lx.numberToken(kind, start)
		case 'b', 'B':
			lx.cursor.Bump()
			lx.cursor.Bump()
			if !lx.eatDigits(func(b byte) bool { return b == '0' || b == '1' }) {
				return lx.badNumber(start, "binary literal requires at least one digit")
			}
			return lx.numberToken(kind, start)
		case 'o', 'O':
			lx.cursor.Bump()
			lx.cursor.Bump()
			if !lx.eatDigits(func(b byte) bool { return b >= '0' && b <= '7' }) {
				return lx.badNumber(start, "octal literal requires at least one digit")
			}
			return lx.numberToken(kind, start)
		}
	}

	lx.eatDigits(isDec)

	// дробная часть: '.' допускаем только перед цифрой, иначе это member access
	if lx.cursor.Peek() == '.' && isDec(lx.cursor.PeekAt(1)) {
		kind = token.FloatLit
		lx.cursor.Bump()
		lx.eatDigits(isDec)
	}

	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		next := lx.cursor.PeekAt(1)
		if isDec(next) || ((next == '+' || next == '-') && isDec(lx.cursor.PeekAt(2))) {
			kind = token.FloatLit
			lx.cursor.Bump()
			lx.eatSign()
			lx.eatDigits(isDec)
		}
	}

	return lx.numberToken(kind, start)
}

func (lx *Lexer) eatDigits(pred func(byte) bool) bool {
	seen := false
	for {
		b := lx.cursor.Peek()
		if pred(b) {
			seen = true
			lx.cursor.Bump()
			continue
		}
		if b == '_' && pred(lx.cursor.PeekAt(1)) {
			lx.cursor.Bump()
			continue
		}
		return seen
	}
}

func (lx *Lexer) eatSign() {
	if b := lx.cursor.Peek(); b == '+' || b == '-' {
		lx.cursor.Bump()
	}
}

func (lx *Lexer) numberToken(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

func (lx *Lexer) badNumber(start Mark, msg string) token.Token {
	sp := lx.cursor.SpanFrom(start)
	lx.report(ReportBadNumber, sp, msg)
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
