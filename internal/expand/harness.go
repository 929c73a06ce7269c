package expand

import (
	"fmt"

	"locksmith/internal/ast"
	"locksmith/internal/diag"
	"locksmith/internal/source"
)

// Context — capability-объект для диагностик. Узкий нарочно: экспансии
// больше ничего от хоста не нужно, и хранить его между вызовами нельзя.
type Context interface {
	AddDiagnostic(d diag.Diagnostic)
}

type reporterContext struct {
	r diag.Reporter
}

// NewReporterContext wraps a diag.Reporter as an expansion Context.
func NewReporterContext(r diag.Reporter) Context {
	return reporterContext{r: r}
}

func (c reporterContext) AddDiagnostic(d diag.Diagnostic) {
	if c.r == nil {
		return
	}
	c.r.Report(d.Code, d.Severity, d.Primary, d.Message, d.Notes)
}

// Expand прогоняет одно объявление через Inspect -> Validate ->
// Synthesize. Возвращает либо текст замены, либо false и ровно одну
// диагностику в ctx, всегда на спане маркерного атрибута.
//
// Биндинг без имени — нарушение контракта хоста, не пользовательская
// ошибка: паникуем, экспансия прерывается неаккуратно и сознательно.
func Expand(src *source.File, decl *ast.Decl, siblings []ast.Decl, marker ast.Attr, cfg Config, ctx Context) (string, bool) {
	ins := Inspect(decl)
	if decl.IsBinding() && ins.Name == "" {
		panic(fmt.Sprintf("expand: %s declaration at %s has no identifier pattern", decl.Kind, decl.Span))
	}

	binding, failure := Validate(ins)
	if failure != FailureNone {
		ctx.AddDiagnostic(diag.NewError(failure.Code(), marker.Span, failure.Message()))
		return "", false
	}

	storage := BackingName(binding.Name)
	if scopeCollides(siblings, decl, storage) {
		ctx.AddDiagnostic(diag.NewError(diag.ExpBackingNameCollision, marker.Span,
			fmt.Sprintf("backing storage name '%s' already exists in this scope", storage)))
		return "", false
	}

	return Synthesize(src, decl, binding, cfg), true
}
