package expand

import (
	"strings"
)

// writer собирает многострочный сгенерированный блок. Первая строка
// пишется без базового отступа: замена начинается там, где стояло
// исходное объявление, его отступ уже в файле.
type writer struct {
	b     strings.Builder
	base  string
	unit  string
	first bool
}

func newWriter(base, unit string) *writer {
	return &writer{base: base, unit: unit, first: true}
}

func (w *writer) line(depth int, text string) {
	if w.first {
		w.first = false
	} else {
		w.b.WriteByte('\n')
		w.b.WriteString(w.base)
	}
	for i := 0; i < depth; i++ {
		w.b.WriteString(w.unit)
	}
	w.b.WriteString(text)
}

func (w *writer) String() string {
	return w.b.String()
}
