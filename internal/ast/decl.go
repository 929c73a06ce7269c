package ast

import (
	"locksmith/internal/source"
	"locksmith/internal/token"
)

// DeclKind различает объявления ровно настолько, насколько нужно
// экспандеру: var, let и "всё остальное".
type DeclKind uint8

const (
	DeclVar DeclKind = iota
	DeclLet
	DeclOther
)

func (k DeclKind) String() string {
	switch k {
	case DeclVar:
		return "var"
	case DeclLet:
		return "let"
	case DeclOther:
		return "other"
	default:
		return "unknown"
	}
}

// Ident is a spanned identifier.
type Ident struct {
	Text string
	Span source.Span
}

// Modifier is a declaration modifier such as `private` or `static`.
// Модификаторы остаются текстом: синтезатор переносит их на фасад как есть.
type Modifier struct {
	Text string
	Span source.Span
}

// TypeAnn is the type annotation after ':'. The type is not interpreted;
// Text is the exact source slice and flows into the generated code verbatim.
type TypeAnn struct {
	Text string
	Span source.Span
}

// Expr is an uninterpreted expression slice, e.g. an initializer.
type Expr struct {
	Text string
	Span source.Span
}

// Decl is one declaration. For DeclVar/DeclLet the binding fields are
// populated; for DeclOther only the introducer and body span are.
type Decl struct {
	Kind      DeclKind
	Attrs     []Attr
	Modifiers []Modifier
	Doc       []token.Trivia // doc-комментарии перед объявлением
	Indent    string         // отступ строки объявления (пробелы/табы)

	// var/let bindings
	Name Ident
	Type *TypeAnn // nil если аннотации нет
	Init *Expr    // nil если инициализатора нет

	// DeclOther: вводное ключевое слово (func, class, enum, ...)
	Introducer token.Kind
	Body       []Decl // вложенные объявления тела типа; пусто для функций

	// Span covers the declaration from the first attribute (or the
	// introducer when there are none) to the last token, initializer
	// included, the trailing brace of a body included.
	Span source.Span
}

// IsBinding reports whether the declaration introduces a var or let binding.
func (d *Decl) IsBinding() bool {
	return d.Kind == DeclVar || d.Kind == DeclLet
}

// HasModifier reports whether the declaration carries the given modifier.
func (d *Decl) HasModifier(text string) bool {
	for _, m := range d.Modifiers {
		if m.Text == text {
			return true
		}
	}
	return false
}

// File is a parsed source file.
type File struct {
	ID    source.FileID
	Decls []Decl
}

// Walk invokes fn for every declaration in the file, depth first.
// Возврат false прекращает спуск в тело текущего объявления.
func (f *File) Walk(fn func(decl *Decl, depth int) bool) {
	var walk func(decls []Decl, depth int)
	walk = func(decls []Decl, depth int) {
		for i := range decls {
			d := &decls[i]
			if fn(d, depth) && len(d.Body) > 0 {
				walk(d.Body, depth+1)
			}
		}
	}
	walk(f.Decls, 0)
}
