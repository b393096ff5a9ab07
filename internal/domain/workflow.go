// Package domain implements the operations on a metasip project: merging
// parsed headers into the version history, scanning header directories,
// editing version ranges and generating SIP files.
package domain

import (
	"context"
	"fmt"
	"io"

	"github.com/mouse-blink/metasip/internal/adapter"
	"github.com/mouse-blink/metasip/internal/codec"
	"github.com/mouse-blink/metasip/internal/controller"
	m "github.com/mouse-blink/metasip/internal/model"
)

// ProjectArgs names the project file an operation works on.
type ProjectArgs struct {
	Project string
}

// InitArgs contains the arguments for creating a project.
type InitArgs struct {
	ProjectArgs
	RootModule string
	InputDir   string
	OutputDir  string
}

// ListArgs contains the arguments for listing a project.
type ListArgs struct {
	ProjectArgs
	// Headers lists header files instead of modules.
	Headers bool
}

// ShowArgs contains the arguments for showing the declarations of a header file.
type ShowArgs struct {
	ProjectArgs
	// HeaderDirectory is only needed when the header file name is ambiguous.
	HeaderDirectory string
	HeaderFile      string
	History         bool
}

// OutputArgs select what is generated and how.
type OutputArgs struct {
	// Modules to generate. All modules are generated when empty.
	Modules []string
	// Ignore lists modules that are never generated.
	Ignore []string
	// OutputDir overrides the output directory of the project.
	OutputDir    string
	LatestSyntax bool
	History      bool
}

// GenerateArgs contains the arguments for writing SIP files.
type GenerateArgs struct {
	ProjectArgs
	OutputArgs
	// SaveOutputDir stores an overriding output directory in the project.
	SaveOutputDir bool
}

// CheckArgs contains the arguments for comparing SIP files with the project.
type CheckArgs struct {
	ProjectArgs
	OutputArgs
}

// ScanArgs contains the arguments for scanning header directories.
type ScanArgs struct {
	ProjectArgs
	// HeaderDirectories to scan. All are scanned when empty.
	HeaderDirectories []string
	// InputDir replaces the input directory stored in the project.
	InputDir string
}

// MergeArgs contains the arguments for merging a parsed header file.
type MergeArgs struct {
	ProjectArgs
	HeaderDirectory string
	HeaderFile      string
	// Parsed is the parser's description of the header's declarations.
	Parsed m.Path
}

// AddKind identifies what an add operation creates.
type AddKind string

// Available AddKind values.
const (
	AddVersion          AddKind = "version"
	AddPlatform         AddKind = "platform"
	AddFeature          AddKind = "feature"
	AddExternalModule   AddKind = "external-module"
	AddExternalFeature  AddKind = "external-feature"
	AddIgnoredNamespace AddKind = "ignored-namespace"
	AddModule           AddKind = "module"
	AddHeaderDirectory  AddKind = "header-directory"
	AddModuleHeaderFile AddKind = "module-header"
)

// AddKinds lists every AddKind.
var AddKinds = []AddKind{
	AddVersion, AddPlatform, AddFeature, AddExternalModule, AddExternalFeature,
	AddIgnoredNamespace, AddModule, AddHeaderDirectory, AddModuleHeaderFile,
}

// AddArgs contains the arguments for adding to a project.
type AddArgs struct {
	ProjectArgs
	Kind  AddKind
	Value string

	// Module options.
	OutputDirSuffix string
	ModuleVersion   string
	Imports         []string

	// Header directory options.
	ParserArgs     string
	InputDirSuffix string
	FileFilter     string

	// Module header file options. Value is the name of the header file.
	Module          string
	HeaderDirectory string
}

// PresenceArgs contains the arguments for changing the versions a header
// file or declaration is present in.
type PresenceArgs struct {
	ProjectArgs
	HeaderDirectory string
	HeaderFile      string
	// Declaration is the path of names from the header file to the
	// declaration, eg. ["QObject", "parent"]. The header file itself is
	// changed when it is empty.
	Declaration []string
	// Signature picks one of several overloads.
	Signature string
	Version   string
	Present   bool
}

// NameArgumentsArgs contains the arguments for naming the arguments of
// callables whose argument names are not yet official.
type NameArgumentsArgs struct {
	ProjectArgs
	// Module limits the pass to the header files of one module.
	Module string
	// HeaderFiles limits the pass to the named header files.
	HeaderFiles     []string
	HeaderDirectory string
	// Accept makes the current names official instead of applying the
	// naming conventions.
	Accept bool
	// DryRun reports the names that break the conventions without changing
	// the project.
	DryRun bool
}

// Workflow defines the operations on a project.
type Workflow interface {
	Load(location string) (*m.Project, error)
	Save(p *m.Project) error
	SaveAs(p *m.Project, target string) error
	Init(args InitArgs) error
	List(args ListArgs) error
	Show(args ShowArgs) error
	Generate(args GenerateArgs) error
	// Check reports whether the files on disk match what would be generated.
	Check(args CheckArgs) (bool, error)
	Scan(ctx context.Context, args ScanArgs) error
	Merge(args MergeArgs) error
	Add(args AddArgs) error
	SetPresence(args PresenceArgs) error
	NameArguments(args NameArgumentsArgs) error
}

type workflow struct {
	store     adapter.ProjectStore
	fsAdapter adapter.SourceFSAdapter
	output    adapter.OutputFS
	differ    adapter.Differ
	ui        controller.UI
	merger    *Merger
	scanner   *Scanner
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	store adapter.ProjectStore,
	fsAdapter adapter.SourceFSAdapter,
	output adapter.OutputFS,
	differ adapter.Differ,
	ui controller.UI,
) Workflow {
	return &workflow{
		store:     store,
		fsAdapter: fsAdapter,
		output:    output,
		differ:    differ,
		ui:        ui,
		merger:    NewMerger(),
		scanner:   NewScanner(fsAdapter, ui),
	}
}

// Load reads the project stored at location.
func (w *workflow) Load(location string) (*m.Project, error) {
	if location == "" {
		return nil, m.NewUserError("no project file given", nil)
	}

	r, err := w.store.Open(location)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = r.Close()
	}()

	return codec.Decode(r, location)
}

// Save writes the project back to where it was loaded from if it has
// unsaved changes.
func (w *workflow) Save(p *m.Project) error {
	if !p.IsDirty() {
		return nil
	}

	return w.SaveAs(p, p.Name)
}

// SaveAs writes the project to target, which becomes the project's location.
// The project is written even when it has no unsaved changes.
func (w *workflow) SaveAs(p *m.Project, target string) error {
	if target == "" {
		return m.NewUserError("no project file given", nil)
	}

	err := w.store.Replace(target, func(out io.Writer) error {
		return codec.Encode(out, p)
	})
	if err != nil {
		return err
	}

	p.Name = target
	p.ClearDirty()
	w.ui.Progress("Saved %s", target)

	return nil
}

// Init creates a new, empty project.
func (w *workflow) Init(args InitArgs) error {
	if args.Project == "" {
		return m.NewUserError("no project file given", nil)
	}

	if _, err := w.fsAdapter.FileInfo(m.Path(args.Project)); err == nil {
		return m.NewUserError(fmt.Sprintf("%s already exists", args.Project), m.ErrDuplicate)
	}

	p := m.NewProject(args.Project)
	p.RootModule = args.RootModule

	if args.InputDir != "" {
		dir, err := w.fsAdapter.NormalizePath(args.InputDir)
		if err != nil {
			return fmt.Errorf("failed to resolve input directory: %w", err)
		}

		p.InputDir = string(dir)
	}

	if args.OutputDir != "" {
		dir, err := w.fsAdapter.NormalizePath(args.OutputDir)
		if err != nil {
			return fmt.Errorf("failed to resolve output directory: %w", err)
		}

		p.OutputDir = string(dir)
	}

	p.MarkDirty()

	return w.Save(p)
}

// List shows the modules or header files of a project.
func (w *workflow) List(args ListArgs) error {
	p, err := w.Load(args.Project)
	if err != nil {
		return err
	}

	if args.Headers {
		return w.ui.DisplayHeaderFiles(p)
	}

	return w.ui.DisplayModules(p)
}

// Show shows the declarations of a header file.
func (w *workflow) Show(args ShowArgs) error {
	p, err := w.Load(args.Project)
	if err != nil {
		return err
	}

	hf, err := findHeaderFile(p, args.HeaderDirectory, args.HeaderFile, false)
	if err != nil {
		return err
	}

	return w.ui.DisplayDeclarations(p, hf, args.History)
}
