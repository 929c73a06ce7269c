package source

import (
	"testing"
)

func TestFileSet_AddVirtual(t *testing.T) {
	fs := NewFileSetWithBase("/tmp/project")

	id := fs.AddVirtual("test.swift", []byte("var x: Int = 0\n"))
	file := fs.Get(id)

	if file.Path != "test.swift" {
		t.Errorf("Path = %q", file.Path)
	}
	if file.Flags&FileVirtual == 0 {
		t.Error("virtual file must carry FileVirtual flag")
	}
	if len(file.LineIdx) != 1 {
		t.Errorf("LineIdx = %v, want one newline", file.LineIdx)
	}

	var zero [32]byte
	if file.Hash == zero {
		t.Error("content hash must be computed")
	}
}

func TestFileSet_GetByPath(t *testing.T) {
	fs := NewFileSet()
	fs.AddVirtual("a.swift", []byte("let a = 1"))
	fs.AddVirtual("b.swift", []byte("let b = 2"))

	file, ok := fs.GetByPath("b.swift")
	if !ok || string(file.Content) != "let b = 2" {
		t.Errorf("GetByPath(b.swift) = %v, %v", file, ok)
	}

	if _, ok := fs.GetByPath("missing.swift"); ok {
		t.Error("GetByPath must miss on unknown path")
	}
}

func TestFileSet_Resolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("r.swift", []byte("line one\nline two\n"))

	start, end := fs.Resolve(Span{File: id, Start: 9, End: 13})
	if start != (LineCol{Line: 2, Col: 1}) {
		t.Errorf("start = %+v", start)
	}
	if end != (LineCol{Line: 2, Col: 5}) {
		t.Errorf("end = %+v", end)
	}
}

func TestFile_GetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("l.swift", []byte("first\nsecond\nthird"))
	file := fs.Get(id)

	tests := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
	}
	for _, tt := range tests {
		if got := file.GetLine(tt.line); got != tt.want {
			t.Errorf("GetLine(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestFile_Snippet(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("s.swift", []byte("@ThreadSafe var counter: Int = 0"))
	file := fs.Get(id)

	if got := file.Snippet(Span{File: id, Start: 0, End: 11}); got != "@ThreadSafe" {
		t.Errorf("Snippet = %q", got)
	}
	if got := file.Snippet(Span{File: id, Start: 100, End: 200}); got != "" {
		t.Errorf("out-of-range Snippet = %q", got)
	}
}
