package adapter

import (
	"errors"
	"fmt"
	"io"
	"os"

	m "github.com/mouse-blink/metasip/internal/model"
)

// ProjectStore reads and replaces project files.
type ProjectStore interface {
	// Open returns a reader over the stored project.
	Open(location string) (io.ReadCloser, error)
	// Replace stores the bytes produced by write. The previous contents stay
	// in place if write fails.
	Replace(location string, write func(w io.Writer) error) error
}

// LocalProjectStore keeps projects in local files. While a file is being
// replaced the previous contents are kept next to it with a "~" suffix.
type LocalProjectStore struct{}

// NewProjectStore constructs a ProjectStore implementation.
func NewProjectStore() ProjectStore {
	return &LocalProjectStore{}
}

// Open opens the project file at location.
func (ps *LocalProjectStore) Open(location string) (io.ReadCloser, error) {
	f, err := os.Open(location)
	if err != nil {
		return nil, m.NewStorageError(location, fmt.Errorf("failed to open project: %w", err))
	}

	return f, nil
}

// Replace writes to location+".new" and only renames it over location once
// it is complete. The backup of the previous contents is removed when the
// rename succeeds.
func (ps *LocalProjectStore) Replace(location string, write func(w io.Writer) error) error {
	tmp := location + ".new"

	f, err := os.Create(tmp)
	if err != nil {
		return m.NewStorageError(tmp, fmt.Errorf("failed to create file: %w", err))
	}

	if err := write(f); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)

		return m.NewStorageError(tmp, err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)

		return m.NewStorageError(tmp, fmt.Errorf("failed to close file: %w", err))
	}

	var backup string

	if _, err := os.Stat(location); err == nil {
		backup = location + "~"

		if err := os.Remove(backup); err != nil && !errors.Is(err, os.ErrNotExist) {
			return m.NewStorageError(backup, fmt.Errorf("failed to remove old backup: %w", err))
		}

		if err := os.Rename(location, backup); err != nil {
			return m.NewStorageError(location, fmt.Errorf("failed to keep backup: %w", err))
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return m.NewStorageError(location, err)
	}

	if err := os.Rename(tmp, location); err != nil {
		return m.NewStorageError(location, fmt.Errorf("failed to replace project: %w", err))
	}

	if backup != "" {
		if err := os.Remove(backup); err != nil {
			return m.NewStorageError(backup, fmt.Errorf("failed to remove backup: %w", err))
		}
	}

	return nil
}
