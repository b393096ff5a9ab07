package domain

import (
	"context"
	"crypto/md5" // #nosec G501 - the project format stores MD5 fingerprints
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/mouse-blink/metasip/internal/adapter"
	m "github.com/mouse-blink/metasip/internal/model"
)

// Reporter receives progress messages.
type Reporter interface {
	Progress(format string, args ...any)
}

// Scanner reconciles a header directory of a project with the files on disk.
type Scanner struct {
	fs       adapter.SourceFSAdapter
	reporter Reporter
}

// NewScanner creates a Scanner reading files through fs.
func NewScanner(fs adapter.SourceFSAdapter, reporter Reporter) *Scanner {
	return &Scanner{fs: fs, reporter: reporter}
}

type scannedFile struct {
	path m.Path
	name string
}

// Scan walks sourceDir and updates the header files of hd. Files whose
// fingerprint changed are marked as needing parsing, new files are added with
// an unknown status, and current files that have gone are retired, or
// forgotten if they were never reviewed.
func (s *Scanner) Scan(ctx context.Context, p *m.Project, hd *m.HeaderDirectory, sourceDir m.Path) error {
	gen := p.Generation()
	if gen == 0 {
		return m.ErrNoGenerations
	}

	s.reporter.Progress("Scanning header directory %s", sourceDir)

	files, err := s.collect(hd, sourceDir)
	if err != nil {
		return err
	}

	paths := make([]m.Path, len(files))
	for i, f := range files {
		paths[i] = f.path
	}

	hashes, err := s.fs.HashFiles(ctx, paths, HeaderHash)
	if err != nil {
		return err
	}

	seen := make(map[*m.HeaderFile]bool)

	for i, res := range hashes {
		name := files[i].name

		if res.Err != nil {
			s.reporter.Progress("Skipping unreadable header file %s", name)
			continue
		}

		hf := currentHeaderFile(hd, name)
		if hf == nil {
			hf = p.NewHeaderFile(hd, name, res.Hash)
		} else if hf.MD5 != res.Hash {
			hf.MD5 = res.Hash
			hf.ParseNeeded = true
		}

		seen[hf] = true

		s.reporter.Progress("Scanned %s", name)
	}

	s.retireMissing(p, hd, seen, gen)

	p.MarkDirty()

	return nil
}

func (s *Scanner) collect(hd *m.HeaderDirectory, sourceDir m.Path) ([]scannedFile, error) {
	var files []scannedFile

	err := s.fs.Walk(sourceDir, true, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		rel, err := s.fs.RelPath(sourceDir, m.Path(path))
		if err != nil {
			return err
		}

		name := filepath.ToSlash(string(rel))
		if !matchFileFilter(hd.FileFilter, name) {
			return nil
		}

		files = append(files, scannedFile{path: m.Path(path), name: name})

		return nil
	})
	if err != nil {
		return nil, m.NewStorageError(string(sourceDir), fmt.Errorf("failed to scan header directory: %w", err))
	}

	return files, nil
}

func (s *Scanner) retireMissing(p *m.Project, hd *m.HeaderDirectory, seen map[*m.HeaderFile]bool, gen int) {
	var dropped []*m.HeaderFile

	for _, hf := range hd.HeaderFiles {
		if seen[hf] || !hf.IsCurrent() {
			continue
		}

		s.reporter.Progress("%s is no longer in the header directory", hf.Name)

		if hf.Status == m.StatusUnknown {
			dropped = append(dropped, hf)
		} else {
			hf.EGen = gen
		}
	}

	if len(dropped) == 0 {
		return
	}

	isDropped := func(hf *m.HeaderFile) bool {
		return slices.Contains(dropped, hf)
	}

	hd.HeaderFiles = slices.DeleteFunc(hd.HeaderFiles, isDropped)

	for _, mod := range p.Modules {
		mod.HeaderFiles = slices.DeleteFunc(mod.HeaderFiles, isDropped)
	}
}

// currentHeaderFile returns the current header file called name. Retired
// files of the same name are history and never match.
func currentHeaderFile(hd *m.HeaderDirectory, name string) *m.HeaderFile {
	for _, hf := range hd.HeaderFiles {
		if hf.Name == name && hf.IsCurrent() {
			return hf
		}
	}

	return nil
}

// matchFileFilter matches the relative name of a header, or just its base
// name, against the glob of a header directory. An empty filter matches
// everything.
func matchFileFilter(filter, name string) bool {
	if filter == "" {
		return true
	}

	if ok, _ := filepath.Match(filter, name); ok {
		return true
	}

	ok, _ := filepath.Match(filter, filepath.Base(name))

	return ok
}

// HeaderHash returns the hex MD5 fingerprint of a header with its C and C++
// comments removed, so that comment-only edits do not trigger a new parse.
// Each byte is hashed when the following one is seen, so the final byte
// (normally a newline) never contributes.
func HeaderHash(src []byte) string {
	const (
		stateCopy = iota
		stateCComment
		stateCppComment
	)

	h := md5.New() // #nosec G401
	state := stateCopy

	for idx, ch := range src {
		var prev byte

		hasPrev := idx > 0
		if hasPrev {
			prev = src[idx-1]
		}

		switch state {
		case stateCComment:
			if ch == '/' && prev == '*' {
				state = stateCopy
			}

			continue
		case stateCppComment:
			if ch == '\n' {
				state = stateCopy
			}

			continue
		}

		if ch == '*' && prev == '/' {
			state = stateCComment
			continue
		}

		if ch == '/' && prev == '/' {
			state = stateCppComment
			continue
		}

		if hasPrev {
			h.Write([]byte{prev})
		}
	}

	return hex.EncodeToString(h.Sum(nil))
}
