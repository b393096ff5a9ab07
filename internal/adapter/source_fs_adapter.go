// Package adapter contains the storage and filesystem adapters of the metasip CLI.
package adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	m "github.com/mouse-blink/metasip/internal/model"
)

// SourceFSAdapter abstracts the filesystem operations the domain layer relies
// on when scanning header directories and reading parser output. It hides
// direct `os` access so the workflow logic can be tested without touching the
// disk.
type SourceFSAdapter interface {
	// Walk traverses the provided root path. When recursive is false the
	// implementation should limit itself to the root directory (no sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// HashFiles reads every path and fingerprints its contents with hash.
	// A file that cannot be read is reported through FileHash.Err rather
	// than failing the whole batch.
	HashFiles(ctx context.Context, paths []m.Path, hash HashFunc) ([]FileHash, error)

	// FileInfo returns metadata for a path so the domain can check existence or
	// distinguish between files and directories when necessary.
	FileInfo(path m.Path) (os.FileInfo, error)

	// NormalizePath expands a leading "~" and makes the path absolute.
	NormalizePath(path string) (m.Path, error)

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// HashFunc fingerprints the contents of a file.
type HashFunc func(src []byte) string

// FileHash is the result of hashing one file.
type FileHash struct {
	Path m.Path
	Hash string
	Err  error
}

// LocalSourceFSAdapter implements SourceFSAdapter on the local filesystem.
type LocalSourceFSAdapter struct {
	// Workers bounds the number of files read concurrently by HashFiles.
	// Zero means one per CPU.
	Workers int
}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// HashFiles hashes the files in parallel. The results are in the order of
// paths.
func (a *LocalSourceFSAdapter) HashFiles(ctx context.Context, paths []m.Path, hash HashFunc) ([]FileHash, error) {
	results := make([]FileHash, len(paths))

	workers := a.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var mu sync.Mutex

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res := FileHash{Path: path}

			src, err := a.ReadFile(path)
			if err != nil {
				res.Err = err
			} else {
				res.Hash = hash(src)
			}

			mu.Lock()
			results[i] = res
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to hash files: %w", err)
	}

	return results, nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// NormalizePath expands a leading "~" and makes the path absolute.
func (a *LocalSourceFSAdapter) NormalizePath(path string) (m.Path, error) {
	abs, err := normalizeRootPath(path)
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

func normalizeRootPath(root string) (string, error) {
	rootStr := root

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	return filepath.Abs(rootStr)
}
