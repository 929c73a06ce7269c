package expand

import (
	"fmt"
	"strings"

	"locksmith/internal/ast"
	"locksmith/internal/source"
)

// Synthesize генерирует замену для валидированного объявления: фасад
// (computed property с get и _modify) плюс peer-объявление backing-
// хранилища. Генерация чистая и детерминированная.
//
// Видимость, модификаторы и прочие атрибуты исходного объявления
// сохраняются на фасаде; маркерный атрибут удаляется. Хранилище всегда
// private, независимо от видимости оригинала: снаружи сгенерированных
// аксессоров на него ссылаться нельзя.
func Synthesize(src *source.File, decl *ast.Decl, binding Binding, cfg Config) string {
	storage := BackingName(binding.Name)
	w := newWriter(decl.Indent, cfg.Indent)

	var head []string
	for _, a := range decl.Attrs {
		if a.Name == cfg.Attribute {
			continue
		}
		head = append(head, src.Snippet(a.Span))
	}
	for _, m := range decl.Modifiers {
		head = append(head, m.Text)
	}
	head = append(head, fmt.Sprintf("var %s: %s {", binding.Name, binding.Type))
	w.line(0, strings.Join(head, " "))

	// get: захват, гарантированный defer-релиз, чтение под замком
	w.line(1, "get {")
	w.line(2, storage+".lock.lock()")
	w.line(2, "defer { "+storage+".lock.unlock() }")
	w.line(2, "return "+storage+".value")
	w.line(1, "}")

	// _modify: yield мутабельной ссылки внутри критической секции,
	// read-modify-write выполняется одним захватом замка
	w.line(1, "_modify {")
	w.line(2, storage+".lock.lock()")
	w.line(2, "defer { "+storage+".lock.unlock() }")
	w.line(2, "yield &"+storage+".value")
	w.line(1, "}")

	w.line(0, "}")
	w.line(0, fmt.Sprintf("private %s var %s: (value: %s, lock: %s) = (%s, %s())",
		cfg.Unchecked, storage, binding.Type, cfg.LockType, binding.Init, cfg.LockType))
	return w.String()
}
