package domain

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/metasip/internal/model"
)

// Argument types whose names are fixed by convention. Each is matched as a
// suffix of the type with spaces removed.
var conventionalSuffixes = []string{"Index", "Device", "NamePool", "Handler", "Binding", "Mode"}

// Acronyms that are written with only the first letter in upper case when
// they appear in an argument name.
var nameAcronyms = []string{"XML", "URI", "URL"}

// callable is a function, constructor or method together with the names of
// the classes and namespaces that contain it.
type callable struct {
	code  *m.Code
	scope []string
}

func (c callable) fullName() string {
	return strings.Join(append(c.scope[:len(c.scope):len(c.scope)], c.code.Name), "::")
}

func (c callable) containerName() string {
	return strings.Join(c.scope, "::")
}

// NameArguments applies the argument naming conventions to, or accepts the
// names of, the callables that still have unofficial argument names.
func (w *workflow) NameArguments(args NameArgumentsArgs) error {
	if args.Accept && args.DryRun {
		return m.NewUserError("accepting names cannot be combined with a dry run", nil)
	}

	p, err := w.Load(args.Project)
	if err != nil {
		return err
	}

	files, err := namingScope(p, args)
	if err != nil {
		return err
	}

	var callables []callable
	for _, hf := range files {
		callables = append(callables, unnamedCallables(hf)...)
	}

	if args.Accept {
		accepted := acceptArgumentNames(callables)
		w.ui.Progress("Accepted %d argument names", len(accepted))

		if len(accepted) != 0 {
			p.MarkDirty()
		}

		return w.Save(p)
	}

	invalid, named := nameArgumentsFromConventions(callables, !args.DryRun)
	w.ui.DisplayIssues(invalid)

	if len(named) != 0 {
		w.ui.Progress("Named %d arguments", len(named))
		p.MarkDirty()
	}

	if args.DryRun && len(invalid) != 0 {
		return m.NewUserError(fmt.Sprintf("%d argument names break the naming conventions", len(invalid)), nil)
	}

	return w.Save(p)
}

// namingScope returns the current header files named by args, or those of
// the selected module, or those of every module.
func namingScope(p *m.Project, args NameArgumentsArgs) ([]*m.HeaderFile, error) {
	if len(args.HeaderFiles) != 0 {
		files := make([]*m.HeaderFile, 0, len(args.HeaderFiles))

		for _, name := range args.HeaderFiles {
			hf, err := findHeaderFile(p, args.HeaderDirectory, name, true)
			if err != nil {
				return nil, err
			}

			files = append(files, hf)
		}

		return files, nil
	}

	var names []string
	if args.Module != "" {
		names = []string{args.Module}
	}

	mods, err := selectModules(p, names, nil)
	if err != nil {
		return nil, err
	}

	var files []*m.HeaderFile

	for _, mod := range mods {
		for _, hf := range mod.HeaderFiles {
			if hf.IsCurrent() {
				files = append(files, hf)
			}
		}
	}

	return files, nil
}

// unnamedCallables returns the callables of hf that have at least one
// argument with an unofficial name. Declarations with a status, and private
// constructors and methods, are skipped.
func unnamedCallables(hf *m.HeaderFile) []callable {
	var found []callable

	var walk func(items []*m.Code, scope []string)
	walk = func(items []*m.Code, scope []string) {
		for _, c := range items {
			if c.Status != "" {
				continue
			}

			switch c.Kind {
			case m.KindFunction:
				if hasUnnamedArgument(c) {
					found = append(found, callable{code: c, scope: scope})
				}
			case m.KindConstructor, m.KindMethod:
				if m.SignatureAccess(c.Access) != "private" && hasUnnamedArgument(c) {
					found = append(found, callable{code: c, scope: scope})
				}
			case m.KindClass, m.KindNamespace:
				walk(c.Content, append(scope[:len(scope):len(scope)], c.Name))
			}
		}
	}

	walk(hf.Content, nil)

	return found
}

func hasUnnamedArgument(c *m.Code) bool {
	for _, arg := range c.Args {
		if arg.Unnamed {
			return true
		}
	}

	return false
}

// acceptArgumentNames makes every unofficial argument name official.
func acceptArgumentNames(callables []callable) []*m.Argument {
	var accepted []*m.Argument

	for _, c := range callables {
		for _, arg := range c.code.Args {
			if arg.Unnamed {
				arg.Unnamed = false
				accepted = append(accepted, arg)
			}
		}
	}

	return accepted
}

// nameArgumentsFromConventions checks the unofficial argument names of the
// callables against the naming conventions. When update is set the names the
// conventions decide are changed and made official. It returns a description
// of each name that breaks the conventions and the arguments it changed.
func nameArgumentsFromConventions(callables []callable, update bool) ([]string, []*m.Argument) {
	var invalid []string
	var updated []*m.Argument

	for _, c := range callables {
		i, u := applyConventions(c, update)
		invalid = append(invalid, i...)
		updated = append(updated, u...)
	}

	return invalid, updated
}

func applyConventions(c callable, update bool) ([]string, []*m.Argument) {
	var invalid []string
	var updated []*m.Argument

	accept := func(arg *m.Argument) {
		if update && arg.Unnamed {
			arg.Unnamed = false
			updated = append(updated, arg)
		}
	}

	// rename gives arg a conventional name, or reports that it lacks one.
	rename := func(arg *m.Argument, name, problem string) {
		if update {
			accept(arg)
			arg.Name = name
		} else {
			invalid = append(invalid, problem)
		}
	}

	decl := c.code

	// Copy constructors and single argument event handlers have an unnamed
	// argument.
	if len(decl.Args) == 1 {
		arg := decl.Args[0]

		var problem string

		switch {
		case decl.Kind == m.KindConstructor && argumentType(arg) == "const"+decl.Name+"&":
			problem = fmt.Sprintf("%s copy constructor has a named argument", c.containerName())
		case (decl.Kind == m.KindFunction || decl.Kind == m.KindMethod) && isEventHandler(decl.Name):
			problem = fmt.Sprintf("%s() event handler has a named argument", c.fullName())
		}

		if problem != "" {
			accept(arg)

			if update {
				arg.Name = ""
			} else if arg.Name != "" {
				invalid = append(invalid, problem)
			}

			return invalid, updated
		}
	}

	for _, arg := range decl.Args {
		if !arg.Unnamed {
			continue
		}

		atype := argumentType(arg)

		switch {
		case strings.HasSuffix(atype, "Event*"):
			accept(arg)

			if arg.Name != "event" {
				rename(arg, "event", fmt.Sprintf("%s() event argument name '%s' is not 'event'", c.fullName(), arg.Name))
			}

			continue
		case atype == "QObject*":
			accept(arg)

			if arg.Name != "object" && arg.Name != "parent" {
				rename(arg, "object", fmt.Sprintf("%s() QObject argument name '%s' is not 'object' or 'parent'", c.fullName(), arg.Name))
			}

			continue
		case atype == "QWidget*":
			accept(arg)

			if arg.Name != "widget" && arg.Name != "parent" {
				rename(arg, "widget", fmt.Sprintf("%s() QWidget argument name '%s' is not 'widget' or 'parent'", c.fullName(), arg.Name))
			}

			continue
		}

		for _, suffix := range conventionalSuffixes {
			if !strings.HasSuffix(atype, suffix) {
				continue
			}

			want := strings.ToLower(suffix[:1]) + suffix[1:]
			if arg.Name == want {
				accept(arg)
			} else {
				rename(arg, want, fmt.Sprintf("%s() '%s' argument name '%s' is not '%s'", c.fullName(), suffix, arg.Name, want))
			}
		}

		for _, acronym := range nameAcronyms {
			if !strings.Contains(arg.Name, acronym) {
				continue
			}

			want := strings.ReplaceAll(arg.Name, acronym, acronym[:1]+strings.ToLower(acronym[1:]))
			rename(arg, want, fmt.Sprintf("%s() argument name '%s' should be '%s'", c.fullName(), arg.Name, want))
		}

		if len(arg.Name) <= 2 {
			invalid = append(invalid, fmt.Sprintf("%s() argument name '%s' is too short", c.fullName(), arg.Name))
		}
	}

	return invalid, updated
}

func isEventHandler(name string) bool {
	return name == "event" || strings.HasSuffix(name, "Event")
}

// argumentType returns the type of arg with spaces removed.
func argumentType(arg *m.Argument) string {
	return strings.ReplaceAll(arg.Type, " ", "")
}
