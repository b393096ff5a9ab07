package domain

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"strings"

	m "github.com/mouse-blink/metasip/internal/model"
	"github.com/mouse-blink/metasip/internal/sipgen"
)

// Generate writes the SIP files of the selected modules.
func (w *workflow) Generate(args GenerateArgs) error {
	p, err := w.Load(args.Project)
	if err != nil {
		return err
	}

	outputDir, err := w.outputDir(p, args.OutputDir)
	if err != nil {
		return err
	}

	mods, err := selectModules(p, args.Modules, args.Ignore)
	if err != nil {
		return err
	}

	gen := sipgen.New(w.output, w.sipOptions(args.OutputArgs))

	var written []string

	for _, mod := range mods {
		paths, err := gen.GenerateModule(p, mod, outputDir)
		written = append(written, paths...)

		if err != nil {
			return err
		}
	}

	w.ui.DisplayGenerated(written)

	if args.SaveOutputDir && p.OutputDir != outputDir {
		p.OutputDir = outputDir
		p.MarkDirty()
	}

	return w.Save(p)
}

// Check regenerates the selected modules in memory and shows how the files
// on disk differ. The timestamp line of each file is ignored.
func (w *workflow) Check(args CheckArgs) (bool, error) {
	p, err := w.Load(args.Project)
	if err != nil {
		return false, err
	}

	outputDir, err := w.outputDir(p, args.OutputDir)
	if err != nil {
		return false, err
	}

	mods, err := selectModules(p, args.Modules, args.Ignore)
	if err != nil {
		return false, err
	}

	mem := newMemoryOutput()
	gen := sipgen.New(mem, w.sipOptions(args.OutputArgs))
	upToDate := true

	for _, mod := range mods {
		paths, err := gen.GenerateModule(p, mod, outputDir)
		if err != nil {
			return false, err
		}

		for _, path := range paths {
			current, err := w.fsAdapter.ReadFile(m.Path(path))
			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return false, m.NewStorageError(path, err)
			}

			name, err := w.fsAdapter.RelPath(m.Path(outputDir), m.Path(path))
			if err != nil {
				return false, err
			}

			diff, err := w.differ.Unified(string(name), withoutTimestamp(string(current)), withoutTimestamp(mem.text(path)))
			if err != nil {
				return false, err
			}

			if diff != "" {
				upToDate = false

				w.ui.DisplayDiff(diff)
			}
		}
	}

	return upToDate, nil
}

func (w *workflow) sipOptions(args OutputArgs) sipgen.Options {
	return sipgen.Options{
		LatestSyntax: args.LatestSyntax,
		History:      args.History,
		OnFile: func(path string) {
			w.ui.Progress("Generating %s", path)
		},
	}
}

func (w *workflow) outputDir(p *m.Project, override string) (string, error) {
	dir := override
	if dir == "" {
		dir = p.OutputDir
	}

	if dir == "" {
		return "", m.NewUserError("no output directory given", nil)
	}

	abs, err := w.fsAdapter.NormalizePath(dir)
	if err != nil {
		return "", m.NewUserError("invalid output directory "+dir, err)
	}

	return string(abs), nil
}

// withoutTimestamp drops the line of a generated file that records when it
// was written.
func withoutTimestamp(text string) string {
	first, rest, found := strings.Cut(text, "\n")
	if found && strings.Contains(first, " generated by MetaSIP on ") {
		return rest
	}

	return text
}

// memoryOutput collects generated files in memory.
type memoryOutput struct {
	files map[string]*bytes.Buffer
}

func newMemoryOutput() *memoryOutput {
	return &memoryOutput{files: make(map[string]*bytes.Buffer)}
}

func (mo *memoryOutput) MkdirAll(string) error {
	return nil
}

func (mo *memoryOutput) Create(path string) (io.WriteCloser, error) {
	b := &bytes.Buffer{}
	mo.files[path] = b

	return nopWriteCloser{b}, nil
}

func (mo *memoryOutput) text(path string) string {
	if b, ok := mo.files[path]; ok {
		return b.String()
	}

	return ""
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}
