package expand

import (
	"locksmith/internal/ast"
)

// BackingName derives the backing storage name: underscore prefix,
// nothing else. Инъективно и детерминированно.
func BackingName(name string) string {
	return "_" + name
}

// scopeCollides reports whether any sibling declaration already uses
// the backing name. Проверяются и биндинги, и именованные типы/функции.
func scopeCollides(siblings []ast.Decl, self *ast.Decl, backing string) bool {
	for i := range siblings {
		d := &siblings[i]
		if d == self {
			continue
		}
		if d.Name.Text == backing {
			return true
		}
	}
	return false
}
