package diag

import (
	"strings"
	"testing"

	"locksmith/internal/source"
)

func TestFormatShortDiagnostics(t *testing.T) {
	fs := source.NewFileSetWithBase(".")
	id := fs.AddVirtual("cell.swift", []byte("@ThreadSafe let result = 0\n"))

	bag := NewBag(10)
	bag.Add(NewError(ExpNotAVariable, source.Span{File: id, Start: 0, End: 11},
		"@ThreadSafe can only be used with variables."))

	out := FormatShortDiagnostics(bag.Items(), fs, false)
	want := "error EXP3001 cell.swift:1:1 @ThreadSafe can only be used with variables."
	if out != want {
		t.Errorf("FormatShortDiagnostics() = %q, want %q", out, want)
	}
}

func TestFormatShortDiagnostics_Notes(t *testing.T) {
	fs := source.NewFileSetWithBase(".")
	id := fs.AddVirtual("cell.swift", []byte("var a = 1\nvar _a = 2\n"))

	d := NewError(ExpBackingNameCollision, source.Span{File: id, Start: 0, End: 3}, "collision").
		WithNote(source.Span{File: id, Start: 10, End: 13}, "existing declaration here")
	bag := NewBag(10)
	bag.Add(d)

	withNotes := FormatShortDiagnostics(bag.Items(), fs, true)
	if !strings.Contains(withNotes, "note EXP3004 cell.swift:2:1 existing declaration here") {
		t.Errorf("notes missing from output: %q", withNotes)
	}

	withoutNotes := FormatShortDiagnostics(bag.Items(), fs, false)
	if strings.Contains(withoutNotes, "note") {
		t.Errorf("notes must be omitted: %q", withoutNotes)
	}
}

func TestFormatShortDiagnostics_Empty(t *testing.T) {
	fs := source.NewFileSet()
	if out := FormatShortDiagnostics(nil, fs, false); out != "" {
		t.Errorf("empty input must render empty string, got %q", out)
	}
}
