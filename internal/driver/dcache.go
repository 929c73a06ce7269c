package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"locksmith/internal/diag"
	"locksmith/internal/expand"
	"locksmith/internal/source"
)

// Поднимать при изменении формата DiskPayload.
const diskCacheSchemaVersion uint16 = 1

// Digest — SHA-256 ключ кэша.
type Digest [sha256.Size]byte

// DiskCache хранит результаты экспансии по хэшу содержимого и
// конфигурации. Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload stores one file's expansion outcome.
type DiskPayload struct {
	Schema   uint16
	Sites    int
	Expanded int
	Edits    []PayloadEdit
	Diags    []PayloadDiag
}

// PayloadEdit — правка без FileID: при чтении спаны перепривязываются
// к файлу текущего FileSet.
type PayloadEdit struct {
	Start   uint32
	End     uint32
	NewText string
	OldText string
}

// PayloadDiag — диагностика в сериализуемом виде.
type PayloadDiag struct {
	Code     uint16
	Severity uint8
	Start    uint32
	End      uint32
	Message  string
}

// OpenDiskCache initializes and returns a disk cache at the standard
// XDG location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt returns a disk cache rooted at an explicit directory.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// подкаталог files — для удобства ручной очистки
	return filepath.Join(c.dir, "files", hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key Digest, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(f.Name())
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache.
func (c *DiskCache) Get(key Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(key)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "cache: close %s: %v\n", p, closeErr)
		}
	}()

	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(out); err != nil {
		return false, err
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}

// cacheKey смешивает хэш содержимого файла и конфигурацию генерации:
// смена любого параметра инвалидирует запись.
func cacheKey(contentHash [sha256.Size]byte, cfg expand.Config) Digest {
	h := sha256.New()
	h.Write(contentHash[:])
	var schema [2]byte
	binary.LittleEndian.PutUint16(schema[:], diskCacheSchemaVersion)
	h.Write(schema[:])
	for _, field := range []string{cfg.Attribute, cfg.LockType, cfg.Unchecked, cfg.Indent} {
		h.Write([]byte(field))
		h.Write([]byte{0})
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// fromCache восстанавливает FileOutcome из кэша, перепривязывая спаны
// к файлу из текущего FileSet.
func fromCache(cache *DiskCache, key Digest, fileSet *source.FileSet, fileID source.FileID, maxDiagnostics int) (*FileOutcome, bool) {
	if cache == nil {
		return nil, false
	}
	var payload DiskPayload
	ok, err := cache.Get(key, &payload)
	if err != nil || !ok {
		return nil, false
	}

	bag := diag.NewBag(maxDiagnostics)
	for _, d := range payload.Diags {
		bag.Add(diag.New(
			diag.Severity(d.Severity),
			diag.Code(d.Code),
			source.Span{File: fileID, Start: d.Start, End: d.End},
			d.Message,
		))
	}

	edits := make([]diag.TextEdit, len(payload.Edits))
	for i, e := range payload.Edits {
		edits[i] = diag.TextEdit{
			Span:    source.Span{File: fileID, Start: e.Start, End: e.End},
			NewText: e.NewText,
			OldText: e.OldText,
		}
	}

	return &FileOutcome{
		Path:     fileSet.Get(fileID).FormatPath("relative", fileSet.BaseDir()),
		FileID:   fileID,
		Sites:    payload.Sites,
		Expanded: payload.Expanded,
		Edits:    edits,
		Bag:      bag,
		Cached:   true,
	}, true
}

func putCache(cache *DiskCache, key Digest, outcome *FileOutcome) {
	if cache == nil || outcome == nil {
		return
	}
	payload := DiskPayload{
		Schema:   diskCacheSchemaVersion,
		Sites:    outcome.Sites,
		Expanded: outcome.Expanded,
	}
	for _, e := range outcome.Edits {
		payload.Edits = append(payload.Edits, PayloadEdit{
			Start:   e.Span.Start,
			End:     e.Span.End,
			NewText: e.NewText,
			OldText: e.OldText,
		})
	}
	if outcome.Bag != nil {
		for _, d := range outcome.Bag.Items() {
			payload.Diags = append(payload.Diags, PayloadDiag{
				Code:     uint16(d.Code),
				Severity: uint8(d.Severity),
				Start:    d.Primary.Start,
				End:      d.Primary.End,
				Message:  d.Message,
			})
		}
	}
	// ошибка записи кэша не фатальна, результат уже посчитан
	_ = cache.Put(key, &payload)
}
