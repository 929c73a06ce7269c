package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"locksmith/internal/diag"
	"locksmith/internal/expand"
	"locksmith/internal/project"
	"locksmith/internal/source"
)

// DirOptions настраивает обход директории.
type DirOptions struct {
	Jobs           int // <=0 — GOMAXPROCS
	MaxDiagnostics int
	Manifest       project.Manifest
	Cache          *DiskCache // nil — без кэша
	// Progress вызывается после каждого файла; done монотонно растёт.
	// Колбэк обязан быть потокобезопасным.
	Progress func(done, total int, outcome *FileOutcome)
}

// ListSourceFiles возвращает отсортированный список исходников в
// директории с учётом расширений и exclude-шаблонов манифеста.
func ListSourceFiles(dir string, manifest project.Manifest) ([]string, error) {
	exts := manifest.SourceExtensions()
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			rel = path
		}
		if d.IsDir() {
			if path != dir && (strings.HasPrefix(d.Name(), ".") || manifest.Excluded(rel)) {
				return filepath.SkipDir
			}
			return nil
		}
		if manifest.Excluded(rel) {
			return nil
		}
		for _, ext := range exts {
			if strings.HasSuffix(path, ext) {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// ExpandDir прогоняет конвейер по всем исходникам директории
// параллельно. Файлы независимы и не делят изменяемого состояния;
// результат i-й горутины живёт в своём слоте среза.
func ExpandDir(ctx context.Context, dir string, cfg expand.Config, opts DirOptions) (*source.FileSet, []*FileOutcome, error) {
	files, err := ListSourceFiles(dir, opts.Manifest)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// предзагружаем файлы последовательно: FileSet.Add не потокобезопасен
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	results := make([]*FileOutcome, len(files))
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			results[i] = expandPath(fileSet, path, fileIDs, loadErrors, cfg, opts)

			if opts.Progress != nil {
				opts.Progress(int(done.Add(1)), len(files), results[i])
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

func expandPath(fileSet *source.FileSet, path string, fileIDs map[string]source.FileID, loadErrors map[string]error, cfg expand.Config, opts DirOptions) *FileOutcome {
	if loadErr, bad := loadErrors[path]; bad {
		bag := diag.NewBag(opts.MaxDiagnostics)
		bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{},
			"failed to load file: "+loadErr.Error()))
		// путь приводим к относительному, как у успешных файлов
		rel := path
		if r, err := filepath.Rel(fileSet.BaseDir(), path); err == nil {
			rel = r
		}
		return &FileOutcome{Path: rel, Bag: bag}
	}

	fileID := fileIDs[path]
	file := fileSet.Get(fileID)

	key := cacheKey(file.Hash, cfg)
	if outcome, ok := fromCache(opts.Cache, key, fileSet, fileID, opts.MaxDiagnostics); ok {
		return outcome
	}

	outcome := ExpandOne(fileSet, fileID, cfg, opts.MaxDiagnostics)
	putCache(opts.Cache, key, outcome)
	return outcome
}
