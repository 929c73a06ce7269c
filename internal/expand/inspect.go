package expand

import (
	"locksmith/internal/ast"
	"locksmith/internal/source"
)

// Inspection — результат наблюдения за объявлением. Только чтение,
// никаких диагностик: решения принимает Validate.
type Inspection struct {
	IsVariable bool
	Name       string
	NameSpan   source.Span
	Type       string
	HasType    bool
	Init       string
	HasInit    bool
}

// Inspect extracts the structural shape of a declaration. Fields are
// filled best-effort even for ineligible declarations, so later
// diagnostics can still reference them.
func Inspect(decl *ast.Decl) Inspection {
	ins := Inspection{
		IsVariable: decl.Kind == ast.DeclVar,
		Name:       decl.Name.Text,
		NameSpan:   decl.Name.Span,
	}
	if decl.Type != nil {
		ins.Type = decl.Type.Text
		ins.HasType = true
	}
	if decl.Init != nil {
		ins.Init = decl.Init.Text
		ins.HasInit = true
	}
	return ins
}
