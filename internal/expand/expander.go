package expand

import (
	"locksmith/internal/ast"
	"locksmith/internal/diag"
	"locksmith/internal/source"
)

// FileResult — итог обхода одного файла.
type FileResult struct {
	Sites    int // сколько объявлений несли маркерный атрибут
	Expanded int // сколько из них удалось развернуть
	Edits    []diag.TextEdit
}

// Clean reports whether every annotated site expanded successfully.
func (r FileResult) Clean() bool {
	return r.Expanded == r.Sites
}

// ExpandFile находит в распарсенном файле все объявления с маркерным
// атрибутом и собирает текстовые правки. Сайты независимы: отказ
// одного не мешает остальным.
func ExpandFile(src *source.File, file *ast.File, cfg Config, reporter diag.Reporter) FileResult {
	var res FileResult
	ctx := NewReporterContext(reporter)

	var visit func(decls []ast.Decl)
	visit = func(decls []ast.Decl) {
		for i := range decls {
			d := &decls[i]
			if marker, ok := ast.FindAttr(d.Attrs, cfg.Attribute); ok {
				res.Sites++
				if text, ok := Expand(src, d, decls, marker, cfg, ctx); ok {
					res.Expanded++
					res.Edits = append(res.Edits, diag.TextEdit{
						Span:    d.Span,
						NewText: text,
						OldText: src.Snippet(d.Span),
					})
				}
			}
			if len(d.Body) > 0 {
				visit(d.Body)
			}
		}
	}
	visit(file.Decls)
	return res
}
