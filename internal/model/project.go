package model

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// FormatVersion is the version of the project file format written.
const FormatVersion = 7

// ProjectExt is the standard project file extension.
const ProjectExt = ".msp"

// Project is the curated model of an API and the modules generated from it.
type Project struct {
	// Name is the storage location of the project file.
	Name          string
	FormatVersion int
	RootModule    string

	// Versions is the append-only list of generation labels. Generation g
	// (1-based) is labelled Versions[g-1].
	Versions          []string
	Platforms         []string
	Features          []string
	ExternalModules   []string
	ExternalFeatures  []string
	IgnoredNamespaces []string

	InputDir  string
	WebXMLDir string
	OutputDir string

	Modules           []*Module
	HeaderDirectories []*HeaderDirectory
	Literals          Literals

	dirty     bool
	observers []func()
}

// NewProject returns an empty project stored at name.
func NewProject(name string) *Project {
	return &Project{Name: name, FormatVersion: FormatVersion}
}

// OnDirty registers fn to be called whenever the project is modified.
func (p *Project) OnDirty(fn func()) {
	p.observers = append(p.observers, fn)
}

// MarkDirty records that the project has unsaved changes.
func (p *Project) MarkDirty() {
	p.dirty = true

	for _, fn := range p.observers {
		fn()
	}
}

// IsDirty reports whether the project has unsaved changes.
func (p *Project) IsDirty() bool {
	return p.dirty
}

// ClearDirty records that the project has been saved.
func (p *Project) ClearDirty() {
	p.dirty = false
}

// Generation returns the current generation, ie. the number of versions.
func (p *Project) Generation() int {
	return len(p.Versions)
}

// GenerationOf returns the generation labelled label.
func (p *Project) GenerationOf(label string) (int, error) {
	idx := slices.Index(p.Versions, label)
	if idx < 0 {
		return 0, fmt.Errorf("version %q: %w", label, ErrNotFound)
	}

	return idx + 1, nil
}

// SetLiteral stores a text block, rejecting kinds a project does not own.
func (p *Project) SetLiteral(k LiteralKind, text string) error {
	return setLiteral(KindProject, &p.Literals, k, text)
}

// SIPComments returns the comment text added to every generated file.
func (p *Project) SIPComments() string {
	return p.Literals.Get(LiteralSIPComments)
}

// AddVersion appends a new generation.
func (p *Project) AddVersion(version string) error {
	return p.appendUnique(&p.Versions, "version", version)
}

// AddPlatform appends a platform tag.
func (p *Project) AddPlatform(platform string) error {
	return p.appendUnique(&p.Platforms, "platform", platform)
}

// AddFeature appends a feature tag.
func (p *Project) AddFeature(feature string) error {
	return p.appendUnique(&p.Features, "feature", feature)
}

// AddExternalModule appends a module defined outside the project.
func (p *Project) AddExternalModule(module string) error {
	return p.appendUnique(&p.ExternalModules, "external module", module)
}

// AddExternalFeature appends a feature defined outside the project.
func (p *Project) AddExternalFeature(feature string) error {
	return p.appendUnique(&p.ExternalFeatures, "external feature", feature)
}

// AddIgnoredNamespace appends a namespace stripped from generated types.
func (p *Project) AddIgnoredNamespace(namespace string) error {
	return p.appendUnique(&p.IgnoredNamespaces, "ignored namespace", namespace)
}

// Values are space separated when stored so they may not contain blanks.
func (p *Project) appendUnique(list *[]string, what, value string) error {
	if value == "" || strings.ContainsAny(value, " \t\n") {
		return fmt.Errorf("%s %q: %w", what, value, ErrEmptyName)
	}

	if slices.Contains(*list, value) {
		return fmt.Errorf("%s %q: %w", what, value, ErrDuplicate)
	}

	*list = append(*list, value)
	p.MarkDirty()

	return nil
}

// NewModule adds a module to the project and returns it.
func (p *Project) NewModule(name, outputDirSuffix, version string, imports []string) (*Module, error) {
	if name == "" {
		return nil, fmt.Errorf("module: %w", ErrEmptyName)
	}

	if p.FindModule(name) != nil {
		return nil, fmt.Errorf("module %q: %w", name, ErrDuplicate)
	}

	mod := &Module{Name: name, OutputDirSuffix: outputDirSuffix, Version: version, Imports: imports}
	p.Modules = append(p.Modules, mod)
	p.MarkDirty()

	return mod, nil
}

// NewHeaderDirectory adds a header directory to the project and returns it.
func (p *Project) NewHeaderDirectory(name, parserArgs, inputDirSuffix, fileFilter string) (*HeaderDirectory, error) {
	if name == "" {
		return nil, fmt.Errorf("header directory: %w", ErrEmptyName)
	}

	if p.FindHeaderDirectoryByName(name) != nil {
		return nil, fmt.Errorf("header directory %q: %w", name, ErrDuplicate)
	}

	hd := &HeaderDirectory{
		Name:           name,
		ParserArgs:     parserArgs,
		InputDirSuffix: inputDirSuffix,
		FileFilter:     fileFilter,
	}
	p.HeaderDirectories = append(p.HeaderDirectories, hd)
	p.MarkDirty()

	return hd, nil
}

// NewHeaderFile adds a newly scanned header file to a header directory.
func (p *Project) NewHeaderFile(hd *HeaderDirectory, name, md5 string) *HeaderFile {
	hf := &HeaderFile{
		Element:     Element{Status: StatusUnknown, SGen: p.Generation()},
		Name:        name,
		MD5:         md5,
		ParseNeeded: true,
	}
	hd.HeaderFiles = append(hd.HeaderFiles, hf)
	p.MarkDirty()

	return hf
}

// FindModule returns the module called name.
func (p *Project) FindModule(name string) *Module {
	for _, mod := range p.Modules {
		if mod.Name == name {
			return mod
		}
	}

	return nil
}

// FindHeaderDirectoryByName returns the header directory called name.
func (p *Project) FindHeaderDirectoryByName(name string) *HeaderDirectory {
	for _, hd := range p.HeaderDirectories {
		if hd.Name == name {
			return hd
		}
	}

	return nil
}

// FindHeaderDirectory returns the header directory that owns hf.
func (p *Project) FindHeaderDirectory(hf *HeaderFile) *HeaderDirectory {
	for _, hd := range p.HeaderDirectories {
		for _, candidate := range hd.HeaderFiles {
			if candidate == hf {
				return hd
			}
		}
	}

	return nil
}

// DescriptiveName returns the name of the project shown to the user.
func (p *Project) DescriptiveName() string {
	if p.Name == "" {
		return "Untitled"
	}

	root := p.Name
	if filepath.Ext(root) == ProjectExt {
		root = strings.TrimSuffix(root, ProjectExt)
	}

	return filepath.Base(root)
}

// IsIgnoredNamespace reports whether name is stripped from generated types.
func (p *Project) IsIgnoredNamespace(name string) bool {
	return slices.Contains(p.IgnoredNamespaces, name)
}

// IsTopLevel reports whether mod imports nothing but external modules. Only
// top level modules carry the timeline, platforms and features.
func (p *Project) IsTopLevel(mod *Module) bool {
	for _, imp := range mod.Imports {
		if !slices.Contains(p.ExternalModules, imp) {
			return false
		}
	}

	return true
}
