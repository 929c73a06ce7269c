// Package driver гоняет конвейер lex -> parse -> expand по файлам и
// директориям: детерминированный порядок, параллельная обработка,
// дисковый кэш результатов.
package driver

import (
	"locksmith/internal/diag"
	"locksmith/internal/expand"
	"locksmith/internal/parser"
	"locksmith/internal/source"
)

// FileOutcome — результат конвейера для одного файла.
type FileOutcome struct {
	Path     string        // относительный путь
	FileID   source.FileID // ID в общем FileSet
	Sites    int           // объявлений с маркерным атрибутом
	Expanded int           // успешно развёрнутых
	Edits    []diag.TextEdit
	Bag      *diag.Bag
	Cached   bool // результат взят из дискового кэша
}

// Clean reports whether the file produced no error diagnostics.
func (o *FileOutcome) Clean() bool {
	return o.Bag == nil || !o.Bag.HasErrors()
}

// ExpandOne прогоняет конвейер по одному уже загруженному файлу.
// Инварианты ядра (ровно одна диагностика на неудачный сайт, никаких
// правок для него) обеспечиваются в expand; здесь только оркестрация.
func ExpandOne(fileSet *source.FileSet, fileID source.FileID, cfg expand.Config, maxDiagnostics int) *FileOutcome {
	file := fileSet.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)
	rep := diag.BagReporter{Bag: bag}

	parsed := parser.ParseFile(file, parser.Options{
		Reporter:  rep,
		MaxErrors: maxDiagnostics,
	})

	outcome := &FileOutcome{
		Path:   file.FormatPath("relative", fileSet.BaseDir()),
		FileID: fileID,
		Bag:    bag,
	}

	// файл с синтаксическими ошибками не расширяем: спаны объявлений
	// могли быть восстановлены неточно
	if bag.HasErrors() {
		return outcome
	}

	res := expand.ExpandFile(file, parsed, cfg, rep)
	outcome.Sites = res.Sites
	outcome.Expanded = res.Expanded
	outcome.Edits = res.Edits
	return outcome
}
