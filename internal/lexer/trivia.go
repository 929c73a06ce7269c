package lexer

import (
	"locksmith/internal/token"
)

// collectLeadingTrivia накапливает в lx.hold все пробелы, переводы строк и
// комментарии перед следующим значимым токеном. Тривия нужна синтезатору:
// сгенерированный фасад должен сохранять doc-комментарии и отступ объявления.
func (lx *Lexer) collectLeadingTrivia() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == ' ' || b == '\t':
			lx.holdTrivia(token.TriviaSpace, lx.eatWhile(func(b byte) bool {
				return b == ' ' || b == '\t'
			}))

		case b == '\n':
			lx.holdTrivia(token.TriviaNewline, lx.eatWhile(func(b byte) bool {
				return b == '\n'
			}))

		case b == '/' && lx.cursor.PeekAt(1) == '/':
			lx.scanLineComment()

		case b == '/' && lx.cursor.PeekAt(1) == '*':
			lx.scanBlockComment()

		default:
			return
		}
	}
}

func (lx *Lexer) eatWhile(pred func(byte) bool) Mark {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && pred(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return start
}

func (lx *Lexer) holdTrivia(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	})
}

// scanLineComment: "// ..." либо doc-строка "/// ..." до конца строки,
// перевод строки в тривию не входит.
func (lx *Lexer) scanLineComment() {
	start := lx.cursor.Mark()
	kind := token.TriviaLineComment
	lx.cursor.Bump()
	lx.cursor.Bump()
	if lx.cursor.Peek() == '/' {
		kind = token.TriviaDocLine
	}
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	lx.holdTrivia(kind, start)
}

// scanBlockComment: "/* ... */" с поддержкой вложенности, "/**" — doc-блок.
func (lx *Lexer) scanBlockComment() {
	start := lx.cursor.Mark()
	kind := token.TriviaBlockComment
	lx.cursor.Bump()
	lx.cursor.Bump()
	if lx.cursor.Peek() == '*' && lx.cursor.PeekAt(1) != '/' {
		kind = token.TriviaDocBlock
	}

	depth := 1
	for !lx.cursor.EOF() && depth > 0 {
		b0, b1, ok := lx.cursor.Peek2()
		if ok && b0 == '/' && b1 == '*' {
			depth++
			lx.cursor.Off += 2
			continue
		}
		if ok && b0 == '*' && b1 == '/' {
			depth--
			lx.cursor.Off += 2
			continue
		}
		lx.bumpRune()
	}

	if depth > 0 {
		sp := lx.cursor.SpanFrom(start)
		lx.report(ReportUnterminatedBlockCmt, sp, "unterminated block comment")
	}
	lx.holdTrivia(kind, start)
}
