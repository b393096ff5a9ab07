// Package sipgen writes the SIP specification files of a module.
package sipgen

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/mouse-blink/metasip/internal/indent"
	"github.com/mouse-blink/metasip/internal/model"
)

// FileCreator creates the generated files.
type FileCreator interface {
	MkdirAll(dir string) error
	Create(path string) (io.WriteCloser, error)
}

// Options control the generated text.
type Options struct {
	// LatestSyntax selects the keyword argument form of %Module and braced
	// variable code blocks.
	LatestSyntax bool
	// History includes retired declarations, each wrapped in the version
	// range it existed in. By default only current declarations are written.
	History bool
	// Timestamp returns the time written in each file's header. It defaults
	// to time.Now.
	Timestamp func() time.Time
	// OnFile is called with the path of each file before it is written.
	OnFile func(path string)
}

// Generator writes modules through a FileCreator.
type Generator struct {
	fs   FileCreator
	opts Options
}

// New returns a Generator.
func New(fs FileCreator, opts Options) *Generator {
	if opts.Timestamp == nil {
		opts.Timestamp = time.Now
	}

	return &Generator{fs: fs, opts: opts}
}

// ModuleDir returns the directory the files of mod are written to.
func ModuleDir(outputDir string, mod *model.Module) string {
	if mod.OutputDirSuffix == "" {
		return outputDir
	}

	return filepath.Join(outputDir, mod.OutputDirSuffix)
}

// HeaderFileName returns the name of the .sip file generated for hf.
func HeaderFileName(hf *model.HeaderFile) string {
	base := filepath.Base(hf.Name)

	return strings.TrimSuffix(base, filepath.Ext(base)) + ".sip"
}

// ModuleFileName returns the name of the root .sip file of mod.
func ModuleFileName(mod *model.Module) string {
	return mod.Name + "mod.sip"
}

// Generated reports whether a .sip file is written for hf.
func (g *Generator) Generated(hf *model.HeaderFile) bool {
	if hf.Suppressed() {
		return false
	}

	return g.opts.History || hf.IsCurrent()
}

// GenerateModule writes one .sip file per generated header file of mod and
// the module's root file, and returns the paths written. A failure leaves
// the files already written in place.
func (g *Generator) GenerateModule(p *model.Project, mod *model.Module, outputDir string) ([]string, error) {
	dir := ModuleDir(outputDir, mod)

	if err := g.fs.MkdirAll(dir); err != nil {
		return nil, model.NewStorageError(dir, fmt.Errorf("failed to create output directory: %w", err))
	}

	var (
		written  []string
		includes []string
	)

	for _, hf := range mod.HeaderFiles {
		if !g.Generated(hf) {
			continue
		}

		name := HeaderFileName(hf)
		path := filepath.Join(dir, name)

		err := g.writeFile(path, func(w io.Writer) error {
			return g.RenderHeaderFile(w, p, mod, hf)
		})
		if err != nil {
			return written, err
		}

		written = append(written, path)
		includes = append(includes, name)
	}

	path := filepath.Join(dir, ModuleFileName(mod))

	err := g.writeFile(path, func(w io.Writer) error {
		return g.RenderModuleRoot(w, p, mod, includes)
	})
	if err != nil {
		return written, err
	}

	return append(written, path), nil
}

func (g *Generator) writeFile(path string, render func(w io.Writer) error) error {
	if g.opts.OnFile != nil {
		g.opts.OnFile(path)
	}

	f, err := g.fs.Create(path)
	if err != nil {
		return model.NewStorageError(path, fmt.Errorf("failed to create file: %w", err))
	}

	if err := render(f); err != nil {
		_ = f.Close()

		return model.NewStorageError(path, err)
	}

	if err := f.Close(); err != nil {
		return model.NewStorageError(path, fmt.Errorf("failed to close file: %w", err))
	}

	return nil
}

// RenderHeaderFile writes the .sip file of a header file.
func (g *Generator) RenderHeaderFile(w io.Writer, p *model.Project, mod *model.Module, hf *model.HeaderFile) error {
	r := g.renderer(w, p, hf)
	r.boilerplate(HeaderFileName(hf), mod)
	r.headerFile()

	if err := r.out.Err(); err != nil {
		return fmt.Errorf("failed to write %s: %w", HeaderFileName(hf), err)
	}

	return nil
}

// RenderModuleRoot writes the root .sip file of a module. includes are the
// names of the header .sip files of the module.
func (g *Generator) RenderModuleRoot(w io.Writer, p *model.Project, mod *model.Module, includes []string) error {
	r := g.renderer(w, p, nil)
	r.boilerplate(ModuleFileName(mod), mod)
	r.moduleRoot(mod, includes)

	if err := r.out.Err(); err != nil {
		return fmt.Errorf("failed to write %s: %w", ModuleFileName(mod), err)
	}

	return nil
}

func (g *Generator) renderer(w io.Writer, p *model.Project, hf *model.HeaderFile) *renderer {
	return &renderer{
		out:     indent.New(w, indent.DefaultStep),
		project: p,
		hf:      hf,
		opts:    g.opts,
	}
}
