package domain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/mouse-blink/metasip/internal/codec"
	m "github.com/mouse-blink/metasip/internal/model"
)

// Scan updates the header files of the selected header directories from the
// project's input directory.
func (w *workflow) Scan(ctx context.Context, args ScanArgs) error {
	p, err := w.Load(args.Project)
	if err != nil {
		return err
	}

	if args.InputDir != "" {
		dir, err := w.fsAdapter.NormalizePath(args.InputDir)
		if err != nil {
			return m.NewUserError("invalid input directory "+args.InputDir, err)
		}

		if p.InputDir != string(dir) {
			p.InputDir = string(dir)
			p.MarkDirty()
		}
	}

	if p.InputDir == "" {
		return m.NewUserError("no input directory given", nil)
	}

	dirs, err := selectHeaderDirectories(p, args.HeaderDirectories)
	if err != nil {
		return err
	}

	for _, hd := range dirs {
		sourceDir := w.fsAdapter.JoinPath(p.InputDir, hd.InputDirSuffix)

		if err := w.scanner.Scan(ctx, p, hd, sourceDir); err != nil {
			if errors.Is(err, m.ErrNoGenerations) {
				return m.NewUserError("add a version before scanning", err)
			}

			return err
		}
	}

	return w.Save(p)
}

// Merge merges the parser's description of a header file into the project.
func (w *workflow) Merge(args MergeArgs) error {
	p, err := w.Load(args.Project)
	if err != nil {
		return err
	}

	hf, err := findHeaderFile(p, args.HeaderDirectory, args.HeaderFile, true)
	if err != nil {
		return err
	}

	src, err := w.fsAdapter.ReadFile(args.Parsed)
	if err != nil {
		return m.NewStorageError(string(args.Parsed), fmt.Errorf("failed to read parsed header: %w", err))
	}

	parsed, err := codec.DecodeHeaderFragment(bytes.NewReader(src), string(args.Parsed))
	if err != nil {
		return err
	}

	changed, err := w.merger.MergeHeaderFile(p, hf, parsed)
	if err != nil {
		if errors.Is(err, m.ErrNoGenerations) {
			return m.NewUserError("add a version before merging", err)
		}

		return err
	}

	if changed {
		w.ui.Progress("Merged %s", hf.Name)
	} else {
		w.ui.Progress("%s is unchanged", hf.Name)
	}

	return w.Save(p)
}

// Add adds a version, tag, module or header directory to the project, or a
// header file to a module.
func (w *workflow) Add(args AddArgs) error {
	p, err := w.Load(args.Project)
	if err != nil {
		return err
	}

	if err := w.add(p, args); err != nil {
		var ue *m.UserError
		if errors.As(err, &ue) {
			return err
		}

		return m.NewUserError(fmt.Sprintf("cannot add %s", args.Kind), err)
	}

	return w.Save(p)
}

func (w *workflow) add(p *m.Project, args AddArgs) error {
	switch args.Kind {
	case AddVersion:
		return p.AddVersion(args.Value)
	case AddPlatform:
		return p.AddPlatform(args.Value)
	case AddFeature:
		return p.AddFeature(args.Value)
	case AddExternalModule:
		return p.AddExternalModule(args.Value)
	case AddExternalFeature:
		return p.AddExternalFeature(args.Value)
	case AddIgnoredNamespace:
		return p.AddIgnoredNamespace(args.Value)
	case AddModule:
		_, err := p.NewModule(args.Value, args.OutputDirSuffix, args.ModuleVersion, args.Imports)
		return err
	case AddHeaderDirectory:
		_, err := p.NewHeaderDirectory(args.Value, args.ParserArgs, args.InputDirSuffix, args.FileFilter)
		return err
	case AddModuleHeaderFile:
		return addModuleHeaderFile(p, args)
	default:
		return m.NewUserError(fmt.Sprintf("unknown kind %q", args.Kind), nil)
	}
}

func addModuleHeaderFile(p *m.Project, args AddArgs) error {
	mod := p.FindModule(args.Module)
	if mod == nil {
		return fmt.Errorf("module %q: %w", args.Module, m.ErrNotFound)
	}

	hf, err := findHeaderFile(p, args.HeaderDirectory, args.Value, true)
	if err != nil {
		return err
	}

	if slices.Contains(mod.HeaderFiles, hf) {
		return fmt.Errorf("header file %q in module %q: %w", hf.Name, mod.Name, m.ErrDuplicate)
	}

	mod.HeaderFiles = append(mod.HeaderFiles, hf)
	p.MarkDirty()

	return nil
}

// SetPresence changes whether a header file or declaration is present in a
// version.
func (w *workflow) SetPresence(args PresenceArgs) error {
	p, err := w.Load(args.Project)
	if err != nil {
		return err
	}

	gen, err := p.GenerationOf(args.Version)
	if err != nil {
		return m.NewUserError(fmt.Sprintf("unknown version %q", args.Version), err)
	}

	hf, err := findHeaderFile(p, args.HeaderDirectory, args.HeaderFile, false)
	if err != nil {
		return err
	}

	var target m.Versioned = hf

	if len(args.Declaration) > 0 {
		c, err := findDeclaration(hf, args.Declaration, args.Signature)
		if err != nil {
			return err
		}

		target = c
	}

	if err := SetPresence(p, target, gen, args.Present); err != nil {
		switch {
		case errors.Is(err, m.ErrDisjointRange):
			return m.NewUserError("the versions would not be contiguous", err)
		case errors.Is(err, m.ErrEmptyRange):
			return m.NewUserError("the declaration would not be in any version", err)
		}

		return err
	}

	return w.Save(p)
}
