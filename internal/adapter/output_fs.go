package adapter

import (
	"io"
	"os"
)

// OutputFS creates the generated SIP files.
type OutputFS interface {
	MkdirAll(dir string) error
	Create(path string) (io.WriteCloser, error)
}

// LocalOutputFS writes generated files to the local filesystem.
type LocalOutputFS struct{}

// NewLocalOutputFS constructs a LocalOutputFS.
func NewLocalOutputFS() *LocalOutputFS {
	return &LocalOutputFS{}
}

// MkdirAll creates dir and any missing parents.
func (o *LocalOutputFS) MkdirAll(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// Create truncates or creates the file at path.
func (o *LocalOutputFS) Create(path string) (io.WriteCloser, error) {
	// #nosec G304 - path is built from the project's output directory
	return os.Create(path)
}
