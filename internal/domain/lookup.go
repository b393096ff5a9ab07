package domain

import (
	"fmt"
	"slices"
	"strings"

	m "github.com/mouse-blink/metasip/internal/model"
)

// selectModules returns the named modules, or every module, less the ignored
// ones.
func selectModules(p *m.Project, names, ignore []string) ([]*m.Module, error) {
	mods := p.Modules

	if len(names) > 0 {
		mods = make([]*m.Module, 0, len(names))

		for _, name := range names {
			mod := p.FindModule(name)
			if mod == nil {
				return nil, m.NewUserError(fmt.Sprintf("unknown module %q", name), m.ErrNotFound)
			}

			mods = append(mods, mod)
		}
	}

	return slices.DeleteFunc(slices.Clone(mods), func(mod *m.Module) bool {
		return slices.Contains(ignore, mod.Name)
	}), nil
}

// selectHeaderDirectories returns the named header directories, or all of them.
func selectHeaderDirectories(p *m.Project, names []string) ([]*m.HeaderDirectory, error) {
	if len(names) == 0 {
		return p.HeaderDirectories, nil
	}

	dirs := make([]*m.HeaderDirectory, 0, len(names))

	for _, name := range names {
		hd := p.FindHeaderDirectoryByName(name)
		if hd == nil {
			return nil, m.NewUserError(fmt.Sprintf("unknown header directory %q", name), m.ErrNotFound)
		}

		dirs = append(dirs, hd)
	}

	return dirs, nil
}

// findHeaderFile returns the header file called name. The current file is
// preferred. Otherwise, unless currentOnly is set, the most recently retired
// one is returned.
func findHeaderFile(p *m.Project, dir, name string, currentOnly bool) (*m.HeaderFile, error) {
	var dirs []*m.HeaderDirectory

	if dir == "" {
		dirs = p.HeaderDirectories
	} else {
		hd := p.FindHeaderDirectoryByName(dir)
		if hd == nil {
			return nil, m.NewUserError(fmt.Sprintf("unknown header directory %q", dir), m.ErrNotFound)
		}

		dirs = []*m.HeaderDirectory{hd}
	}

	var current, retired []*m.HeaderFile

	for _, hd := range dirs {
		for _, hf := range hd.HeaderFiles {
			if hf.Name != name {
				continue
			}

			if hf.IsCurrent() {
				current = append(current, hf)
			} else {
				retired = append(retired, hf)
			}
		}
	}

	switch {
	case len(current) == 1:
		return current[0], nil
	case len(current) > 1:
		return nil, m.NewUserError(fmt.Sprintf("header file %q is in more than one header directory", name), nil)
	case len(retired) == 0:
		return nil, m.NewUserError(fmt.Sprintf("unknown header file %q", name), m.ErrNotFound)
	case currentOnly:
		return nil, m.NewUserError(fmt.Sprintf("header file %q is not in the latest version", name), nil)
	}

	latest := retired[0]
	for _, hf := range retired[1:] {
		if hf.EGen > latest.EGen {
			latest = hf
		}
	}

	return latest, nil
}

// findDeclaration follows a path of names from a container to a declaration.
// Manual code is named by its precis. When the last name is overloaded
// signature picks the declaration. Where a name matches a current and a
// retired declaration the current one is taken.
func findDeclaration(container m.Container, path []string, signature string) (*m.Code, error) {
	items := container.Declarations()

	for i, name := range path {
		last := i == len(path)-1

		var matches []*m.Code

		for _, c := range items {
			if declarationName(c) != name {
				continue
			}

			if !last && !c.Kind.IsContainer() {
				continue
			}

			if last && signature != "" && m.Signature(c) != signature {
				continue
			}

			matches = append(matches, c)
		}

		// A declaration that reappeared has a retired entry of the same name.
		if len(matches) > 1 {
			current := slices.DeleteFunc(slices.Clone(matches), func(c *m.Code) bool {
				return !c.IsCurrent()
			})
			if len(current) == 1 {
				matches = current
			}
		}

		qualified := strings.Join(path[:i+1], "::")

		switch len(matches) {
		case 0:
			return nil, m.NewUserError(fmt.Sprintf("unknown declaration %q", qualified), m.ErrNotFound)
		case 1:
		default:
			sigs := make([]string, 0, len(matches))
			for _, c := range matches {
				sigs = append(sigs, m.Signature(c))
			}

			return nil, m.NewUserError(
				fmt.Sprintf("declaration %q is ambiguous, use one of the signatures: %s", qualified, strings.Join(sigs, "; ")), nil)
		}

		if last {
			return matches[0], nil
		}

		items = matches[0].Content
	}

	return nil, m.NewUserError("no declaration given", nil)
}

func declarationName(c *m.Code) string {
	if c.Kind == m.KindManualCode {
		return c.Precis
	}

	return c.Name
}
