package lexer

import (
	"locksmith/internal/diag"
	"locksmith/internal/source"
)

// ReporterAdapter адаптирует diag.Reporter для использования в лексере
type ReporterAdapter struct {
	Bag *diag.Bag
}

// Reporter returns a lexer.Reporter that maps report kinds onto diag codes
// and forwards them to the adapter's bag.
func (r *ReporterAdapter) Reporter() Reporter {
	return bagAdapter{bag: r.Bag}
}

type bagAdapter struct {
	bag *diag.Bag
}

func (a bagAdapter) Report(kind string, span source.Span, msg string) {
	if a.bag == nil {
		return
	}
	code := diag.LexInfo
	switch kind {
	case ReportUnknownChar:
		code = diag.LexUnknownChar
	case ReportUnterminatedString:
		code = diag.LexUnterminatedString
	case ReportUnterminatedBlockCmt:
		code = diag.LexUnterminatedBlockComment
	case ReportBadNumber:
		code = diag.LexBadNumber
	}
	a.bag.Add(diag.NewError(code, span, msg))
}
