package ast

import (
	"locksmith/internal/source"
)

// Attr is a single `@Name` or `@Name(args)` attribute on a declaration.
type Attr struct {
	Name     string      // без '@'
	NameSpan source.Span // спан имени (без '@')
	ArgsSpan source.Span // спан "(...)" включая скобки; Empty() если нет
	Span     source.Span // весь атрибут от '@'
}

// HasArgs reports whether the attribute carries an argument list.
func (a Attr) HasArgs() bool {
	return !a.ArgsSpan.Empty()
}

// FindAttr returns the first attribute with the given name.
func FindAttr(attrs []Attr, name string) (Attr, bool) {
	for _, a := range attrs {
		if a.Name == name {
			return a, true
		}
	}
	return Attr{}, false
}
