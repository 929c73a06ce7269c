package parser

import (
	"fmt"

	"locksmith/internal/diag"
	"locksmith/internal/source"
	"locksmith/internal/token"
)

// Срезы типа и выражения. Парсер не интерпретирует их содержимое, а
// только находит границы: текст внутри границ уходит в сгенерированный
// код дословно.

// typeSlice вычисляет спан аннотации типа после ':'.
// ok=false, если под курсором нет ни одного токена типа.
func (p *Parser) typeSlice() (source.Span, bool) {
	start := p.tok.Span
	end := start
	seen := false

	var angle, bracket, paren int
	for {
		t := p.tok.Kind
		switch t {
		case token.Ident, token.Dot, token.Question, token.Bang,
			token.Amp, token.Arrow, token.Underscore, token.KwProtocol:
			// KwProtocol: композиция "any P & Q" старого синтаксиса

		case token.Lt:
			angle++
		case token.Gt:
			if angle == 0 {
				return p.sliceDone(start, end, seen)
			}
			angle--
		case token.LBracket:
			bracket++
		case token.RBracket:
			if bracket == 0 {
				return p.sliceDone(start, end, seen)
			}
			bracket--
		case token.LParen:
			paren++
		case token.RParen:
			if paren == 0 {
				return p.sliceDone(start, end, seen)
			}
			paren--

		case token.Colon, token.Comma:
			// допустимы только внутри [K: V] или (a: T, b: U)
			if angle+bracket+paren == 0 {
				return p.sliceDone(start, end, seen)
			}

		case token.IntLit:
			// фиксированные размеры в generic-аргументах
			if angle+bracket+paren == 0 {
				return p.sliceDone(start, end, seen)
			}

		default:
			return p.sliceDone(start, end, seen)
		}

		seen = true
		end = p.tok.Span
		p.next()
	}
}

// exprSlice вычисляет спан выражения после '='. Выражение заканчивается
// на ';', EOF, непарной '}' или на начале нового объявления с новой
// строки. Многострочные выражения (перенос после оператора или перед
// '.') продолжаются.
func (p *Parser) exprSlice() (source.Span, bool) {
	start := p.tok.Span
	end := start
	seen := false

	depth := 0
	prev := token.Invalid
	for {
		t := p.tok
		if t.Kind == token.EOF {
			return p.sliceDone(start, end, seen)
		}
		if depth == 0 {
			if t.Kind == token.Semicolon {
				return p.sliceDone(start, end, seen)
			}
			if t.Kind == token.RBrace {
				return p.sliceDone(start, end, seen)
			}
			if seen && hasNewline(t) && !continuesExpr(prev, t.Kind) {
				return p.sliceDone(start, end, seen)
			}
		}

		switch t.Kind {
		case token.LParen, token.LBracket, token.LBrace:
			depth++
		case token.RParen, token.RBracket, token.RBrace:
			depth--
		}

		seen = true
		end = t.Span
		prev = t.Kind
		p.next()
	}
}

// continuesExpr: токен на новой строке продолжает выражение, если
// предыдущий токен не завершает выражение или новый не может его начать.
func continuesExpr(prev, cur token.Kind) bool {
	switch prev {
	case token.Operator, token.Assign, token.Dot, token.Comma, token.Colon,
		token.Arrow, token.Amp, token.Lt, token.LParen, token.LBracket,
		token.LBrace:
		return true
	}
	switch cur {
	case token.Operator, token.Dot, token.Comma, token.Colon, token.Arrow,
		token.Question, token.RParen, token.RBracket:
		return true
	}
	return false
}

func (p *Parser) sliceDone(start, end source.Span, seen bool) (source.Span, bool) {
	if !seen {
		return source.Span{File: start.File, Start: start.Start, End: start.Start}, false
	}
	return start.Cover(end), true
}

// skipBalanced съедает open..close с учётом вложенности и возвращает
// спан всей группы, включая скобки.
func (p *Parser) skipBalanced(open, close token.Kind) source.Span {
	start := p.tok.Span
	end := start
	depth := 0
	for p.tok.Kind != token.EOF {
		switch p.tok.Kind {
		case open:
			depth++
		case close:
			depth--
		}
		end = p.tok.Span
		p.next()
		if depth == 0 {
			return start.Cover(end)
		}
	}
	p.report(diag.SynUnclosedDelimiter, start,
		fmt.Sprintf("missing '%s'", close))
	return start.Cover(end)
}

// skipStatement пропускает statement до конца строки (с балансировкой
// скобок) и возвращает спан последнего съеденного токена.
func (p *Parser) skipStatement() source.Span {
	end := p.tok.Span
	depth := 0
	first := true
	for p.tok.Kind != token.EOF {
		t := p.tok
		if depth == 0 && !first {
			if t.Kind == token.Semicolon {
				end = t.Span
				p.next()
				return end
			}
			if t.Kind == token.RBrace {
				return end
			}
			if hasNewline(t) {
				return end
			}
		}
		switch t.Kind {
		case token.LParen, token.LBracket, token.LBrace:
			depth++
		case token.RParen, token.RBracket, token.RBrace:
			if depth > 0 {
				depth--
			}
		}
		end = t.Span
		p.next()
		first = false
	}
	return end
}
