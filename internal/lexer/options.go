package lexer

import (
	"locksmith/internal/source"
)

// Reporter — тонкий интерфейс, чтобы не тянуть diag сюда.
// Лексер **только вызывает** его с параметрами; форматирует diag внешний слой.
type Reporter interface {
	Report(kind string, span source.Span, msg string)
}

// Report kinds produced by the lexer.
const (
	ReportUnknownChar          = "unknown_char"
	ReportUnterminatedString   = "unterminated_string"
	ReportUnterminatedBlockCmt = "unterminated_block_comment"
	ReportBadNumber            = "bad_number"
)

type Options struct {
	Reporter Reporter // может быть nil — тогда ошибки игнорируем (но продолжаем лексить)
}

func (lx *Lexer) report(kind string, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(kind, sp, msg)
	}
}
