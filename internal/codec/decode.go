package codec

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mouse-blink/metasip/internal/model"
)

var (
	errUnexpectedElement = errors.New("unexpected element")
	errUnexpectedText    = errors.New("unexpected text")
	errNewerFormat       = errors.New("project file was written by a newer version")
)

// Decode reads a project file. location names the storage the bytes came from
// and is used for the project name and in errors.
func Decode(r io.Reader, location string) (*model.Project, error) {
	d := newDecoder(r)

	root, err := d.root()
	if err != nil {
		return nil, model.NewStorageError(location, err)
	}

	if root.Name.Local != "Project" {
		return nil, model.NewStorageError(location, fmt.Errorf("%w <%s>, expected <Project>", errUnexpectedElement, root.Name.Local))
	}

	p, err := d.project(root)
	if err != nil {
		return nil, model.NewStorageError(location, err)
	}

	p.Name = location

	return p, nil
}

// DecodeHeaderFragment reads the declarations of a single <HeaderFile> as
// produced by the header parser. Attributes missing from the fragment take
// their defaults so the declarations are present and have no history.
func DecodeHeaderFragment(r io.Reader, location string) ([]*model.Code, error) {
	d := newDecoder(r)

	root, err := d.root()
	if err != nil {
		return nil, model.NewStorageError(location, err)
	}

	if root.Name.Local != "HeaderFile" {
		return nil, model.NewStorageError(location, fmt.Errorf("%w <%s>, expected <HeaderFile>", errUnexpectedElement, root.Name.Local))
	}

	hf, err := d.headerFile(root)
	if err != nil {
		return nil, model.NewStorageError(location, err)
	}

	return hf.Content, nil
}

type decoder struct {
	dec         *xml.Decoder
	headerFiles map[int]*model.HeaderFile
}

func newDecoder(r io.Reader) *decoder {
	return &decoder{dec: xml.NewDecoder(r), headerFiles: map[int]*model.HeaderFile{}}
}

// root returns the first start element of the document.
func (d *decoder) root() (xml.StartElement, error) {
	for {
		tok, err := d.dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return xml.StartElement{}, fmt.Errorf("failed to parse XML: %w", io.ErrUnexpectedEOF)
			}

			return xml.StartElement{}, fmt.Errorf("failed to parse XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			return t, nil
		case xml.CharData:
			if len(bytes.TrimSpace(t)) != 0 {
				return xml.StartElement{}, errUnexpectedText
			}
		}
	}
}

// children calls fn for each child element until the end of the current
// element. fn must consume the child, including its end tag.
func (d *decoder) children(fn func(se xml.StartElement) error) error {
	for {
		tok, err := d.dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}

			return fmt.Errorf("failed to parse XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if err := fn(t); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		case xml.CharData:
			if len(bytes.TrimSpace(t)) != 0 {
				return fmt.Errorf("%w %q", errUnexpectedText, strings.TrimSpace(string(t)))
			}
		}
	}
}

// leaf consumes an element that must not have children.
func (d *decoder) leaf() error {
	return d.children(unexpected)
}

func unexpected(se xml.StartElement) error {
	return fmt.Errorf("%w <%s>", errUnexpectedElement, se.Name.Local)
}

// literal reads the text of a <Literal> element. The single newlines written
// around the text are removed.
func (d *decoder) literal() (string, error) {
	var b strings.Builder

	for {
		tok, err := d.dec.Token()
		if err != nil {
			return "", fmt.Errorf("failed to parse literal: %w", err)
		}

		switch t := tok.(type) {
		case xml.CharData:
			b.Write(t)
		case xml.StartElement:
			return "", unexpected(t)
		case xml.EndElement:
			text := strings.TrimPrefix(b.String(), "\n")

			return strings.TrimSuffix(text, "\n"), nil
		}
	}
}

type literalSetter func(k model.LiteralKind, text string) error

func (d *decoder) readLiteral(se xml.StartElement, set literalSetter) error {
	a := attrsOf(se)

	text, err := d.literal()
	if err != nil {
		return err
	}

	if err := set(model.LiteralKind(a.str("type")), text); err != nil {
		return fmt.Errorf("failed to read literal: %w", err)
	}

	return nil
}

type attrMap map[string]string

func attrsOf(se xml.StartElement) attrMap {
	a := make(attrMap, len(se.Attr))
	for _, at := range se.Attr {
		a[at.Name.Local] = at.Value
	}

	return a
}

func (a attrMap) str(name string) string {
	return a[name]
}

func (a attrMap) flag(name string) bool {
	return a[name] == "1"
}

func (a attrMap) list(name string) []string {
	return strings.Fields(a[name])
}

func (a attrMap) int(name string) (int, error) {
	v, ok := a[name]
	if !ok || v == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s attribute %q: %w", name, v, err)
	}

	return n, nil
}

func (a attrMap) element() (model.Element, error) {
	sgen, err := a.int("sgen")
	if err != nil {
		return model.Element{}, err
	}

	egen, err := a.int("egen")
	if err != nil {
		return model.Element{}, err
	}

	return model.Element{Annos: a.str("annos"), Status: a.str("status"), SGen: sgen, EGen: egen}, nil
}

func (d *decoder) project(se xml.StartElement) (*model.Project, error) {
	a := attrsOf(se)

	version, err := a.int("version")
	if err != nil {
		return nil, err
	}

	if version > model.FormatVersion {
		return nil, fmt.Errorf("%w (format %d, supported %d)", errNewerFormat, version, model.FormatVersion)
	}

	p := &model.Project{
		FormatVersion:     model.FormatVersion,
		RootModule:        a.str("rootmodule"),
		Versions:          a.list("versions"),
		Platforms:         a.list("platforms"),
		Features:          a.list("features"),
		ExternalModules:   a.list("externalmodules"),
		ExternalFeatures:  a.list("externalfeatures"),
		IgnoredNamespaces: a.list("ignorednamespaces"),
		InputDir:          a.str("inputdir"),
		WebXMLDir:         a.str("webxmldir"),
		OutputDir:         a.str("outputdir"),
	}

	err = d.children(func(child xml.StartElement) error {
		switch child.Name.Local {
		case "Literal":
			return d.readLiteral(child, p.SetLiteral)
		case "HeaderDirectory":
			hd, err := d.headerDirectory(child)
			if err != nil {
				return err
			}

			p.HeaderDirectories = append(p.HeaderDirectories, hd)
		case "Module":
			mod, err := d.module(child)
			if err != nil {
				return err
			}

			p.Modules = append(p.Modules, mod)
		default:
			return unexpected(child)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (d *decoder) headerDirectory(se xml.StartElement) (*model.HeaderDirectory, error) {
	a := attrsOf(se)

	hd := &model.HeaderDirectory{
		Name:           a.str("name"),
		ParserArgs:     a.str("parserargs"),
		InputDirSuffix: a.str("inputdirsuffix"),
		FileFilter:     a.str("filefilter"),
	}

	err := d.children(func(child xml.StartElement) error {
		if child.Name.Local != "HeaderFile" {
			return unexpected(child)
		}

		hf, err := d.headerFile(child)
		if err != nil {
			return err
		}

		if _, dup := d.headerFiles[hf.ID]; dup {
			return fmt.Errorf("header file %s: duplicate id %d", hf.Name, hf.ID)
		}

		d.headerFiles[hf.ID] = hf
		hd.HeaderFiles = append(hd.HeaderFiles, hf)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("header directory %s: %w", hd.Name, err)
	}

	return hd, nil
}

func (d *decoder) headerFile(se xml.StartElement) (*model.HeaderFile, error) {
	a := attrsOf(se)

	el, err := a.element()
	if err != nil {
		return nil, err
	}

	id, err := a.int("id")
	if err != nil {
		return nil, err
	}

	hf := &model.HeaderFile{
		Element:     el,
		ID:          id,
		Name:        a.str("name"),
		MD5:         a.str("md5"),
		ParseNeeded: a.str("parse") != "",
	}

	err = d.children(func(child xml.StartElement) error {
		if child.Name.Local == "Literal" {
			return d.readLiteral(child, hf.SetLiteral)
		}

		c, err := d.code(child)
		if err != nil {
			return err
		}

		hf.Content = append(hf.Content, c)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("header file %s: %w", hf.Name, err)
	}

	return hf, nil
}

func (d *decoder) module(se xml.StartElement) (*model.Module, error) {
	a := attrsOf(se)

	mod := &model.Module{
		Name:            a.str("name"),
		OutputDirSuffix: a.str("outputdirsuffix"),
		Version:         a.str("version"),
		Imports:         a.list("imports"),
	}

	err := d.children(func(child xml.StartElement) error {
		switch child.Name.Local {
		case "Literal":
			return d.readLiteral(child, mod.SetLiteral)
		case "ModuleHeaderFile":
			id, err := attrsOf(child).int("id")
			if err != nil {
				return err
			}

			hf, ok := d.headerFiles[id]
			if !ok {
				return fmt.Errorf("header file id %d: %w", id, model.ErrNotFound)
			}

			mod.HeaderFiles = append(mod.HeaderFiles, hf)

			return d.leaf()
		default:
			return unexpected(child)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("module %s: %w", mod.Name, err)
	}

	return mod, nil
}

// code reads a declaration and everything nested in it.
func (d *decoder) code(se xml.StartElement) (*model.Code, error) {
	kind := model.Kind(se.Name.Local)
	if !kind.IsDeclaration() {
		return nil, unexpected(se)
	}

	a := attrsOf(se)

	el, err := a.element()
	if err != nil {
		return nil, err
	}

	c := &model.Code{
		Element:   el,
		Kind:      kind,
		Access:    a.str("access"),
		Platforms: a.list("platforms"),
		Features:  a.list("features"),
		Name:      a.str("name"),
		Bases:     a.str("bases"),
		PyBases:   a.str("pybases"),
		Struct:    a.flag("struct"),
		RType:     a.str("rtype"),
		PyType:    a.str("pytype"),
		PyArgs:    a.str("pyargs"),
		Virtual:   a.flag("virtual"),
		Const:     a.flag("const"),
		Static:    a.flag("static"),
		Abstract:  a.flag("abstract"),
		Explicit:  a.flag("explicit"),
		Type:      a.str("type"),
		Precis:    a.str("precis"),
		EnumClass: a.flag("enumclass"),
	}

	err = d.children(func(child xml.StartElement) error {
		switch name := child.Name.Local; {
		case name == "Literal":
			return d.readLiteral(child, c.SetLiteral)
		case name == "Argument" && kind.IsCallable():
			arg, err := d.argument(child)
			if err != nil {
				return err
			}

			c.Args = append(c.Args, arg)
		case name == "EnumValue" && kind == model.KindEnum:
			v, err := d.enumValue(child)
			if err != nil {
				return err
			}

			c.Values = append(c.Values, v)
		case kind.IsContainer():
			nested, err := d.code(child)
			if err != nil {
				return err
			}

			c.Content = append(c.Content, nested)
		default:
			return unexpected(child)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", kind, c.Name, err)
	}

	return c, nil
}

func (d *decoder) argument(se xml.StartElement) (*model.Argument, error) {
	a := attrsOf(se)

	arg := &model.Argument{
		Type:    a.str("type"),
		Name:    a.str("name"),
		Unnamed: a.flag("unnamed"),
		Default: a.str("default"),
		PyType:  a.str("pytype"),
		Annos:   a.str("annos"),
	}

	return arg, d.leaf()
}

func (d *decoder) enumValue(se xml.StartElement) (*model.EnumValue, error) {
	el, err := attrsOf(se).element()
	if err != nil {
		return nil, err
	}

	v := &model.EnumValue{Element: el, Name: attrsOf(se).str("name")}

	return v, d.leaf()
}
