package model

// Code is a single declaration. Kind selects which of the optional fields are
// meaningful; see the Kind helpers for the capabilities of each variant.
type Code struct {
	Element

	Kind Kind

	// Access is the class access specifier, e.g. "protected" or
	// "public slots". Empty means public.
	Access    string
	Platforms []string
	Features  []string

	Name string

	// Class.
	Bases   string
	PyBases string
	Struct  bool

	// Callables. RType is empty for constructors and operator casts.
	RType  string
	PyType string
	PyArgs string
	Args   []*Argument

	Virtual  bool
	Const    bool
	Static   bool
	Abstract bool
	Explicit bool

	// Variable and Typedef.
	Type string

	// ManualCode. Precis is a one line summary, or the code itself when it
	// fits on one line.
	Precis string

	// Class and Namespace.
	Content []*Code
	// Enum. EnumClass is set for a scoped enum.
	Values    []*EnumValue
	EnumClass bool

	Literals Literals
}

// New returns a declaration of the given kind as produced by a parser: present
// and without any generation range.
func New(kind Kind, name string) *Code {
	c := &Code{Kind: kind, Name: name}
	if kind == KindManualCode {
		c.Name = ""
		c.Precis = name
	}

	return c
}

// SetLiteral stores a text block, rejecting kinds the declaration does not own.
func (c *Code) SetLiteral(k LiteralKind, text string) error {
	return setLiteral(c.Kind, &c.Literals, k, text)
}

// Literal returns the text of a block, or "" when it is not set.
func (c *Code) Literal(k LiteralKind) string {
	return c.Literals.Get(k)
}

// Declarations implements Container.
func (c *Code) Declarations() []*Code {
	return c.Content
}

// AppendDeclarations implements Container.
func (c *Code) AppendDeclarations(items ...*Code) {
	c.Content = append(c.Content, items...)
}

// HasPyArgs reports whether any argument has a Python type override that is
// not just a synonym for its C++ type.
func (c *Code) HasPyArgs() bool {
	for _, a := range c.Args {
		if a.PyType == "" {
			continue
		}

		if (a.PyType != "SIP_SIGNAL" && a.PyType != "SIP_SLOT") || a.Type != "const char *" {
			return true
		}
	}

	return false
}

// Container is anything holding an ordered list of declarations.
type Container interface {
	Declarations() []*Code
	AppendDeclarations(items ...*Code)
}

// WalkFunc is called for each declaration of a tree. Returning false skips the
// declaration's children.
type WalkFunc func(c *Code, depth int) bool

// Walk visits the declarations of a container depth first, in order.
func Walk(container Container, fn WalkFunc) {
	walk(container.Declarations(), 0, fn)
}

func walk(items []*Code, depth int, fn WalkFunc) {
	for _, c := range items {
		if fn(c, depth) {
			walk(c.Content, depth+1, fn)
		}
	}
}

// HeaderFile is a scanned header and the declarations parsed from it.
type HeaderFile struct {
	Element

	// ID only links modules to header files while a project file is read or
	// written. It is undefined at all other times.
	ID int
	// Name is the path of the header relative to its header directory.
	Name string
	// MD5 is the hash of the header's text with comments removed.
	MD5         string
	ParseNeeded bool

	Content  []*Code
	Literals Literals
}

// SetLiteral stores a text block, rejecting kinds a header file does not own.
func (hf *HeaderFile) SetLiteral(k LiteralKind, text string) error {
	return setLiteral(KindHeaderFile, &hf.Literals, k, text)
}

// Literal returns the text of a block, or "" when it is not set.
func (hf *HeaderFile) Literal(k LiteralKind) string {
	return hf.Literals.Get(k)
}

// Declarations implements Container.
func (hf *HeaderFile) Declarations() []*Code {
	return hf.Content
}

// AppendDeclarations implements Container.
func (hf *HeaderFile) AppendDeclarations(items ...*Code) {
	hf.Content = append(hf.Content, items...)
}

// HeaderDirectory is a directory of headers scanned as a unit.
type HeaderDirectory struct {
	// Name is the descriptive name of the directory.
	Name       string
	ParserArgs string
	// InputDirSuffix, joined to the project's input directory, gives the
	// directory to scan.
	InputDirSuffix string
	// FileFilter is an optional glob selecting the headers of interest.
	FileFilter  string
	HeaderFiles []*HeaderFile
}

// FindHeaderFile returns the header file with the given relative name.
func (hd *HeaderDirectory) FindHeaderFile(name string) *HeaderFile {
	for _, hf := range hd.HeaderFiles {
		if hf.Name == name {
			return hf
		}
	}

	return nil
}

// Module is a generated extension module.
type Module struct {
	Name            string
	OutputDirSuffix string
	Version         string
	Imports         []string
	// HeaderFiles are references into the project's header directories.
	HeaderFiles []*HeaderFile
	Literals    Literals
}

// SetLiteral stores a text block, rejecting kinds a module does not own.
func (mod *Module) SetLiteral(k LiteralKind, text string) error {
	return setLiteral(KindModule, &mod.Literals, k, text)
}

// Directives returns the literal directive text of the module.
func (mod *Module) Directives() string {
	return mod.Literals.Get(LiteralDirectives)
}
