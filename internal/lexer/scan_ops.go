package lexer

import (
	"fmt"

	"locksmith/internal/token"
)

// scanOperatorOrPunct выдаёт структурные токены (@ : = ; , . скобки и т.д.).
// Всё прочее операторное коалесцируется в token.Operator максимальным
// откусыванием, как это делает сам Swift.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	b := lx.cursor.Bump()

	mk := func(kind token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	switch b {
	case '@':
		return mk(token.At)
	case ':':
		return mk(token.Colon)
	case ';':
		return mk(token.Semicolon)
	case ',':
		return mk(token.Comma)
	case '(':
		return mk(token.LParen)
	case ')':
		return mk(token.RParen)
	case '{':
		return mk(token.LBrace)
	case '}':
		return mk(token.RBrace)
	case '[':
		return mk(token.LBracket)
	case ']':
		return mk(token.RBracket)

	case '.':
		// "..." и "..<" — операторы диапазона; одиночная точка — member access
		if lx.cursor.Peek() == '.' {
			lx.cursor.Bump()
			lx.cursor.Eat('.')
			lx.cursor.Eat('<')
			return mk(token.Operator)
		}
		return mk(token.Dot)

	case '=':
		// одиночный '=' структурен (начало инициализатора); '==', '=>' и
		// прочие последовательности — обычные операторы
		if isOperatorByte(lx.cursor.Peek()) {
			lx.munchOperator()
			return mk(token.Operator)
		}
		return mk(token.Assign)

	case '-':
		if lx.cursor.Peek() == '>' {
			lx.cursor.Bump()
			return mk(token.Arrow)
		}
		lx.munchOperator()
		return mk(token.Operator)

	case '?':
		if isOperatorByte(lx.cursor.Peek()) {
			lx.munchOperator()
			return mk(token.Operator)
		}
		return mk(token.Question)

	case '!':
		if isOperatorByte(lx.cursor.Peek()) {
			lx.munchOperator()
			return mk(token.Operator)
		}
		return mk(token.Bang)

	case '&':
		if isOperatorByte(lx.cursor.Peek()) {
			lx.munchOperator()
			return mk(token.Operator)
		}
		return mk(token.Amp)

	case '<':
		return mk(token.Lt)
	case '>':
		return mk(token.Gt)

	case '+', '*', '/', '%', '^', '|', '~':
		lx.munchOperator()
		return mk(token.Operator)

	case '#', '$', '\\':
		// препроцессорные и спецсимволы вне нашей поверхности; не ошибка
		return mk(token.Operator)
	}

	sp := lx.cursor.SpanFrom(start)
	lx.report(ReportUnknownChar, sp, fmt.Sprintf("unknown character %q", rune(b)))
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// munchOperator доедает хвост операторной последовательности.
// '<' и '>' не включаем: они нужны парсеру для generic-срезов.
func (lx *Lexer) munchOperator() {
	for {
		b := lx.cursor.Peek()
		if b == '<' || b == '>' || !isOperatorByte(b) {
			return
		}
		lx.cursor.Bump()
	}
}
