package driver

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"

	"locksmith/internal/expand"
	"locksmith/internal/project"
	"locksmith/internal/source"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestExpandOne(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("cache.swift", []byte("@ThreadSafe var counter: Int = 0"))

	outcome := ExpandOne(fs, id, expand.DefaultConfig(), 64)
	if !outcome.Clean() {
		t.Fatalf("diagnostics: %+v", outcome.Bag.Items())
	}
	if outcome.Sites != 1 || outcome.Expanded != 1 || len(outcome.Edits) != 1 {
		t.Fatalf("outcome = %+v", outcome)
	}
}

func TestExpandOneSkipsOnSyntaxErrors(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("broken.swift", []byte("class Broken {\n@ThreadSafe var x: Int = 0\n"))

	outcome := ExpandOne(fs, id, expand.DefaultConfig(), 64)
	if outcome.Clean() {
		t.Fatal("expected syntax diagnostics")
	}
	if outcome.Sites != 0 || len(outcome.Edits) != 0 {
		t.Fatalf("broken file must not expand: %+v", outcome)
	}
}

func TestExpandDir(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.swift":         "@ThreadSafe var x: Int = 0\n",
		"sub/b.swift":     "@ThreadSafe var y = 1\n",
		"sub/ignored.txt": "not a source file",
	})

	fileSet, outcomes, err := ExpandDir(context.Background(), dir, expand.DefaultConfig(), DirOptions{
		MaxDiagnostics: 64,
	})
	if err != nil {
		t.Fatalf("ExpandDir: %v", err)
	}
	if fileSet.Len() != 2 {
		t.Fatalf("loaded %d files, want 2", fileSet.Len())
	}
	if len(outcomes) != 2 {
		t.Fatalf("outcomes = %d", len(outcomes))
	}

	// порядок детерминирован: по отсортированным путям
	if !strings.HasSuffix(outcomes[0].Path, "a.swift") {
		t.Errorf("outcomes[0] = %q", outcomes[0].Path)
	}
	if outcomes[0].Expanded != 1 {
		t.Errorf("a.swift should expand: %+v", outcomes[0])
	}
	if outcomes[1].Clean() {
		t.Errorf("b.swift must report MissingTypeAnnotation")
	}
}

func TestExpandDirExcludes(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.swift":                 "var x: Int = 0\n",
		"gen/Models.g.swift":      "var y: Int = 0\n",
		".build/generated.swift":  "var z: Int = 0\n",
		"vendored/skip.swift":     "var w: Int = 0\n",
		"vendored/sub/deep.swift": "var v: Int = 0\n",
	})
	manifest := project.Manifest{
		Files: project.FilesSection{
			Exclude: []string{"*.g.swift", "vendored"},
		},
	}

	fileSet, _, err := ExpandDir(context.Background(), dir, expand.DefaultConfig(), DirOptions{
		MaxDiagnostics: 64,
		Manifest:       manifest,
	})
	if err != nil {
		t.Fatalf("ExpandDir: %v", err)
	}
	// остаётся только a.swift: dot-каталоги, glob и vendored отрезаны
	if fileSet.Len() != 1 {
		t.Fatalf("loaded %d files, want 1", fileSet.Len())
	}
}

func TestExpandDirProgress(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.swift": "var x: Int = 0\n",
		"b.swift": "var y: Int = 0\n",
		"c.swift": "var z: Int = 0\n",
	})

	var mu sync.Mutex
	var seen []int
	_, _, err := ExpandDir(context.Background(), dir, expand.DefaultConfig(), DirOptions{
		MaxDiagnostics: 64,
		Jobs:           2,
		Progress: func(done, total int, outcome *FileOutcome) {
			mu.Lock()
			defer mu.Unlock()
			if total != 3 {
				t.Errorf("total = %d", total)
			}
			seen = append(seen, done)
		},
	})
	if err != nil {
		t.Fatalf("ExpandDir: %v", err)
	}
	sort.Ints(seen)
	if len(seen) != 3 || seen[0] != 1 || seen[2] != 3 {
		t.Fatalf("progress callbacks = %v", seen)
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}

	key := Digest{1, 2, 3}
	payload := &DiskPayload{
		Schema:   diskCacheSchemaVersion,
		Sites:    2,
		Expanded: 1,
		Edits:    []PayloadEdit{{Start: 0, End: 5, NewText: "new", OldText: "old"}},
		Diags:    []PayloadDiag{{Code: 3002, Severity: 2, Message: "msg"}},
	}
	if err := cache.Put(key, payload); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var got DiskPayload
	ok, err := cache.Get(key, &got)
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if got.Sites != 2 || got.Expanded != 1 || len(got.Edits) != 1 || len(got.Diags) != 1 {
		t.Fatalf("payload = %+v", got)
	}
	if got.Edits[0].NewText != "new" {
		t.Errorf("edit = %+v", got.Edits[0])
	}

	var miss DiskPayload
	if ok, _ := cache.Get(Digest{9, 9}, &miss); ok {
		t.Fatal("unexpected cache hit")
	}
}

func TestExpandDirUsesCache(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.swift": "@ThreadSafe var x: Int = 0\n",
	})
	cache, err := OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}
	opts := DirOptions{MaxDiagnostics: 64, Cache: cache}

	_, first, err := ExpandDir(context.Background(), dir, expand.DefaultConfig(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if first[0].Cached {
		t.Fatal("first run must be a cache miss")
	}

	_, second, err := ExpandDir(context.Background(), dir, expand.DefaultConfig(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second[0].Cached {
		t.Fatal("second run must hit the cache")
	}
	if second[0].Expanded != first[0].Expanded || len(second[0].Edits) != len(first[0].Edits) {
		t.Fatalf("cached outcome differs: %+v vs %+v", second[0], first[0])
	}
	if second[0].Edits[0].NewText != first[0].Edits[0].NewText {
		t.Fatal("cached edit text differs")
	}

	// смена конфигурации инвалидирует запись
	cfg := expand.DefaultConfig()
	cfg.LockType = "NSRecursiveLock"
	_, third, err := ExpandDir(context.Background(), dir, cfg, opts)
	if err != nil {
		t.Fatal(err)
	}
	if third[0].Cached {
		t.Fatal("config change must invalidate the cache")
	}
}
