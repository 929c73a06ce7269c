// Package project загружает манифест locksmith.toml: настройки
// генерации и фильтры файлов для обхода директорий.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"locksmith/internal/expand"
)

// Manifest — разобранный locksmith.toml.
type Manifest struct {
	Expand ExpandSection `toml:"expand"`
	Files  FilesSection  `toml:"files"`
}

// ExpandSection настраивает генерацию; пустые поля получают дефолты
// из expand.DefaultConfig.
type ExpandSection struct {
	Attribute string `toml:"attribute"`
	LockType  string `toml:"lock_type"`
	Unchecked string `toml:"unchecked"`
	Indent    string `toml:"indent"`
}

// FilesSection настраивает обход директорий.
type FilesSection struct {
	// Extensions — какие файлы считать исходниками; по умолчанию [".swift"].
	Extensions []string `toml:"extensions"`
	// Exclude — glob-шаблоны (path.Match по basename либо по
	// относительному пути), исключаемые из обхода.
	Exclude []string `toml:"exclude"`
}

// Load parses a locksmith.toml at the given path.
func Load(path string) (Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return m, nil
}

// LoadFromDir ищет манифест вверх от dir; отсутствие манифеста — не
// ошибка, возвращается нулевой Manifest.
func LoadFromDir(dir string) (Manifest, error) {
	path, ok, err := FindLocksmithToml(dir)
	if err != nil {
		return Manifest{}, err
	}
	if !ok {
		return Manifest{}, nil
	}
	return Load(path)
}

// Config merges the manifest over the stock expansion defaults.
func (m Manifest) Config() expand.Config {
	cfg := expand.DefaultConfig()
	if m.Expand.Attribute != "" {
		cfg.Attribute = m.Expand.Attribute
	}
	if m.Expand.LockType != "" {
		cfg.LockType = m.Expand.LockType
	}
	if m.Expand.Unchecked != "" {
		cfg.Unchecked = m.Expand.Unchecked
	}
	if m.Expand.Indent != "" {
		cfg.Indent = m.Expand.Indent
	}
	return cfg
}

// SourceExtensions returns the configured extensions or the default set.
func (m Manifest) SourceExtensions() []string {
	if len(m.Files.Extensions) > 0 {
		return m.Files.Extensions
	}
	return []string{".swift"}
}

// Excluded reports whether relPath matches one of the exclude globs.
func (m Manifest) Excluded(relPath string) bool {
	base := filepath.Base(relPath)
	for _, pattern := range m.Files.Exclude {
		if ok, err := filepath.Match(pattern, relPath); err == nil && ok {
			return true
		}
		if ok, err := filepath.Match(pattern, base); err == nil && ok {
			return true
		}
	}
	return false
}

// StarterManifest — шаблон для `locksmith init`.
const StarterManifest = `# locksmith configuration

[expand]
# attribute = "ThreadSafe"
# lock_type = "NSLock"
# unchecked = "nonisolated(unsafe)"
# indent = "    "

[files]
# extensions = [".swift"]
# exclude = ["*.generated.swift", ".build"]
`

// WriteStarter writes a starter manifest, refusing to overwrite.
func WriteStarter(dir string) (string, error) {
	path := filepath.Join(dir, ManifestName)
	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("%s already exists", path)
	}
	if err := os.WriteFile(path, []byte(StarterManifest), 0o644); err != nil {
		return path, fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
