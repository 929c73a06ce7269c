package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[expand]
attribute = "Guarded"
lock_type = "NSRecursiveLock"

[files]
extensions = [".swift", ".swiftinterface"]
exclude = ["*.generated.swift"]
`)
	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	cfg := m.Config()
	if cfg.Attribute != "Guarded" {
		t.Errorf("attribute = %q", cfg.Attribute)
	}
	if cfg.LockType != "NSRecursiveLock" {
		t.Errorf("lock type = %q", cfg.LockType)
	}
	// незаполненные поля падают на дефолты
	if cfg.Unchecked != "nonisolated(unsafe)" {
		t.Errorf("unchecked = %q", cfg.Unchecked)
	}
	if cfg.Indent != "    " {
		t.Errorf("indent = %q", cfg.Indent)
	}

	exts := m.SourceExtensions()
	if len(exts) != 2 || exts[0] != ".swift" {
		t.Errorf("extensions = %v", exts)
	}
	if !m.Excluded("Models.generated.swift") {
		t.Error("generated file should be excluded")
	}
	if m.Excluded("Models.swift") {
		t.Error("plain file should not be excluded")
	}
}

func TestLoadManifestBadTOML(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[expand\nbroken")
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestManifestDefaults(t *testing.T) {
	var m Manifest
	cfg := m.Config()
	if cfg.Attribute != "ThreadSafe" || cfg.LockType != "NSLock" {
		t.Errorf("defaults = %+v", cfg)
	}
	exts := m.SourceExtensions()
	if len(exts) != 1 || exts[0] != ".swift" {
		t.Errorf("extensions = %v", exts)
	}
}

func TestFindLocksmithTomlWalkUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "")
	nested := filepath.Join(root, "Sources", "App")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := FindLocksmithToml(nested)
	if err != nil || !ok {
		t.Fatalf("find: %v, ok=%v", err, ok)
	}
	if filepath.Dir(path) != root {
		t.Errorf("manifest dir = %q, want %q", filepath.Dir(path), root)
	}

	gotRoot, ok, err := FindProjectRoot(nested)
	if err != nil || !ok || gotRoot != root {
		t.Errorf("project root = %q, ok=%v, err=%v", gotRoot, ok, err)
	}
}

func TestFindLocksmithTomlMissing(t *testing.T) {
	dir := t.TempDir()
	_, ok, err := FindLocksmithToml(dir)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if ok {
		t.Fatal("no manifest expected")
	}
}

func TestLoadFromDirMissingIsNotError(t *testing.T) {
	m, err := LoadFromDir(t.TempDir())
	if err != nil {
		t.Fatalf("LoadFromDir: %v", err)
	}
	if m.Config().Attribute != "ThreadSafe" {
		t.Errorf("config = %+v", m.Config())
	}
}

func TestWriteStarter(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteStarter(dir)
	if err != nil {
		t.Fatalf("WriteStarter: %v", err)
	}
	m, err := Load(path)
	if err != nil {
		t.Fatalf("starter manifest does not parse: %v", err)
	}
	if m.Config().Attribute != "ThreadSafe" {
		t.Errorf("starter should keep defaults, got %+v", m.Config())
	}

	if _, err := WriteStarter(dir); err == nil {
		t.Fatal("second WriteStarter must refuse to overwrite")
	}
}
