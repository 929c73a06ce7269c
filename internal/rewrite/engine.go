// Package rewrite применяет результаты экспансии к файлам как набор
// текстовых правок: проверка конфликтов, охранный OldText, стабильный
// порядок, запись на диск или dry-run.
package rewrite

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"locksmith/internal/diag"
	"locksmith/internal/source"
)

// ErrNoExpansions is returned when Apply receives no applicable edits.
var ErrNoExpansions = errors.New("no expansions to apply")

// Options configures an Apply run.
type Options struct {
	// DryRun — не трогать диск; новое содержимое возвращается в
	// FileChange.NewContent.
	DryRun bool
}

// SkippedEdit captures an edit that was not applied, with a reason.
type SkippedEdit struct {
	Path   string
	Reason string
}

// FileChange summarises modifications performed on one file.
type FileChange struct {
	Path       string
	EditCount  int
	NewContent []byte // заполнено только при DryRun
}

// Result aggregates applied changes and skipped edits.
type Result struct {
	Changes []FileChange
	Skipped []SkippedEdit
}

// Apply groups edits by file, verifies them, and rewrites each file in
// one pass. Правки одного файла применяются от конца к началу, так что
// смещения не плывут. Файл с конфликтующими или несошедшимися правками
// пропускается целиком: частичная перезапись хуже отсутствия правки.
func Apply(fs *source.FileSet, edits []diag.TextEdit, opts Options) (*Result, error) {
	result := &Result{
		Changes: make([]FileChange, 0),
		Skipped: make([]SkippedEdit, 0),
	}
	if fs == nil {
		return result, fmt.Errorf("rewrite: FileSet is nil")
	}
	if len(edits) == 0 {
		return result, ErrNoExpansions
	}

	baseDir := fs.BaseDir()
	buckets := groupEditsByFile(edits)

	ids := make([]source.FileID, 0, len(buckets))
	for id := range buckets {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, fileID := range ids {
		fileEdits := buckets[fileID]
		file := fs.Get(fileID)
		path := file.FormatPath("relative", baseDir)

		if !opts.DryRun && file.Flags&source.FileVirtual != 0 {
			result.Skipped = append(result.Skipped, SkippedEdit{
				Path:   path,
				Reason: "target file is virtual",
			})
			continue
		}

		if conflict := findConflict(fileEdits); conflict != "" {
			result.Skipped = append(result.Skipped, SkippedEdit{
				Path:   path,
				Reason: conflict,
			})
			continue
		}

		working, reason := applyToContent(file.Content, fileEdits)
		if reason != "" {
			result.Skipped = append(result.Skipped, SkippedEdit{
				Path:   path,
				Reason: reason,
			})
			continue
		}

		change := FileChange{Path: path, EditCount: len(fileEdits)}
		if opts.DryRun {
			change.NewContent = working
		} else {
			if err := writeFilePreservingMode(file.Path, working); err != nil {
				return result, err
			}
		}
		result.Changes = append(result.Changes, change)
	}

	sort.SliceStable(result.Changes, func(i, j int) bool {
		return result.Changes[i].Path < result.Changes[j].Path
	})

	if len(result.Changes) == 0 {
		return result, ErrNoExpansions
	}
	return result, nil
}

// applyToContent применяет правки к копии содержимого, от конца к началу.
// reason != "" — правки отвергнуты, содержимое не менялось.
func applyToContent(content []byte, edits []diag.TextEdit) ([]byte, string) {
	sorted := make([]diag.TextEdit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Span.Start == sorted[j].Span.Start {
			return sorted[i].Span.End > sorted[j].Span.End
		}
		return sorted[i].Span.Start > sorted[j].Span.Start
	})

	working := append([]byte(nil), content...)
	for _, edit := range sorted {
		start, end := int(edit.Span.Start), int(edit.Span.End)
		if start < 0 || end < start || end > len(working) {
			return nil, "edit span out of range"
		}
		if edit.OldText != "" && string(working[start:end]) != edit.OldText {
			return nil, "existing text does not match expected content"
		}
		suffix := append([]byte(nil), working[end:]...)
		working = append(append(working[:start], []byte(edit.NewText)...), suffix...)
	}
	return working, ""
}

// findConflict ищет перекрывающиеся спаны внутри одного файла.
func findConflict(edits []diag.TextEdit) string {
	for i := range edits {
		for j := i + 1; j < len(edits); j++ {
			if spansConflict(edits[i], edits[j]) {
				return fmt.Sprintf("edits at %d..%d and %d..%d overlap",
					edits[i].Span.Start, edits[i].Span.End,
					edits[j].Span.Start, edits[j].Span.End)
			}
		}
	}
	return ""
}

// spansConflict reports whether two edits' spans overlap. Spans are
// half-open [Start, End). Два пустых спана не конфликтуют; пустой
// конфликтует с непустым, если попадает внутрь него.
func spansConflict(a, b diag.TextEdit) bool {
	aStart, aEnd := a.Span.Start, a.Span.End
	bStart, bEnd := b.Span.Start, b.Span.End

	if aStart == aEnd && bStart == bEnd {
		return false
	}
	if aStart == aEnd {
		return bStart <= aStart && aStart < bEnd
	}
	if bStart == bEnd {
		return aStart <= bStart && bStart < aEnd
	}
	return aStart < bEnd && bStart < aEnd
}

func groupEditsByFile(edits []diag.TextEdit) map[source.FileID][]diag.TextEdit {
	buckets := make(map[source.FileID][]diag.TextEdit)
	for _, edit := range edits {
		buckets[edit.Span.File] = append(buckets[edit.Span.File], edit)
	}
	return buckets
}

func writeFilePreservingMode(path string, content []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(path, content, mode); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
