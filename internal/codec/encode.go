// Package codec reads and writes the XML project file.
package codec

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mouse-blink/metasip/internal/indent"
	"github.com/mouse-blink/metasip/internal/model"
)

const indentStep = 2

// attrEscaper escapes attribute values. Whitespace other than a space is
// written as a character reference as a parser normalises it otherwise.
var attrEscaper = strings.NewReplacer(
	"&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;",
	"\n", "&#10;", "\r", "&#13;", "\t", "&#9;",
)

// textEscaper escapes literal text. Newlines are kept so the text stays
// readable but a carriage return would be lost to line end normalisation.
var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "\r", "&#13;")

// Encode writes p as a project file. Header files are numbered afresh so that
// modules can refer to them.
func Encode(w io.Writer, p *model.Project) error {
	e := &encoder{out: indent.New(w, indentStep)}
	e.project(p)

	if err := e.out.Err(); err != nil {
		return fmt.Errorf("failed to write project: %w", err)
	}

	return nil
}

// EncodeHeaderFile writes a single header file in the format produced by the
// header parser.
func EncodeHeaderFile(w io.Writer, hf *model.HeaderFile) error {
	e := &encoder{out: indent.New(w, indentStep)}
	e.out.Write("<?xml version=\"1.0\"?>\n")
	e.headerFile(hf)

	if err := e.out.Err(); err != nil {
		return fmt.Errorf("failed to write header file: %w", err)
	}

	return nil
}

type encoder struct {
	out *indent.Writer
}

// attrs accumulates the attributes of a start tag in order.
type attrs struct {
	b strings.Builder
}

func (a *attrs) add(name, value string) {
	fmt.Fprintf(&a.b, ` %s="%s"`, name, attrEscaper.Replace(value))
}

func (a *attrs) opt(name, value string) {
	if value != "" {
		a.add(name, value)
	}
}

func (a *attrs) flag(name string, set bool) {
	if set {
		a.add(name, "1")
	}
}

func (a *attrs) gen(name string, g int) {
	if g != 0 {
		a.add(name, strconv.Itoa(g))
	}
}

func (a *attrs) list(name string, values []string) {
	a.opt(name, strings.Join(values, " "))
}

func (a *attrs) element(el *model.Element) {
	a.opt("annos", el.Annos)
	a.opt("status", el.Status)
	a.gen("sgen", el.SGen)
	a.gen("egen", el.EGen)
}

func (a *attrs) String() string {
	return a.b.String()
}

func (e *encoder) project(p *model.Project) {
	var a attrs

	a.add("version", strconv.Itoa(model.FormatVersion))
	a.add("rootmodule", p.RootModule)
	a.list("versions", p.Versions)
	a.list("platforms", p.Platforms)
	a.list("features", p.Features)
	a.list("externalmodules", p.ExternalModules)
	a.list("externalfeatures", p.ExternalFeatures)
	a.list("ignorednamespaces", p.IgnoredNamespaces)
	a.add("inputdir", p.InputDir)
	a.add("webxmldir", p.WebXMLDir)
	a.add("outputdir", p.OutputDir)

	e.out.Write("<?xml version=\"1.0\"?>\n")
	e.out.Writef("<Project%s>\n", &a)
	e.literals(model.KindProject, p.Literals)

	leave := e.out.Enter()

	id := 0

	for _, hd := range p.HeaderDirectories {
		var da attrs

		da.add("name", hd.Name)
		da.add("parserargs", hd.ParserArgs)
		da.add("inputdirsuffix", hd.InputDirSuffix)
		da.add("filefilter", hd.FileFilter)
		e.out.Writef("<HeaderDirectory%s>\n", &da)

		leaveDir := e.out.Enter()

		for _, hf := range hd.HeaderFiles {
			hf.ID = id
			id++

			e.headerFile(hf)
		}

		leaveDir()
		e.out.Write("</HeaderDirectory>\n")
	}

	for _, mod := range p.Modules {
		var ma attrs

		ma.add("name", mod.Name)
		ma.opt("outputdirsuffix", mod.OutputDirSuffix)
		ma.opt("version", mod.Version)
		ma.list("imports", mod.Imports)
		e.out.Writef("<Module%s>\n", &ma)

		leaveMod := e.out.Enter()
		e.literals(model.KindModule, mod.Literals)

		for _, hf := range mod.HeaderFiles {
			e.out.Writef("<ModuleHeaderFile id=\"%d\"/>\n", hf.ID)
		}

		leaveMod()
		e.out.Write("</Module>\n")
	}

	leave()
	e.out.Write("</Project>\n")
}

func (e *encoder) headerFile(hf *model.HeaderFile) {
	var a attrs

	a.element(&hf.Element)
	a.add("id", strconv.Itoa(hf.ID))
	a.add("name", hf.Name)
	a.add("md5", hf.MD5)

	if hf.ParseNeeded {
		a.add("parse", "needed")
	}

	e.out.Writef("<HeaderFile%s>\n", &a)

	leave := e.out.Enter()
	e.declarations(hf.Content)
	leave()

	e.literals(model.KindHeaderFile, hf.Literals)
	e.out.Write("</HeaderFile>\n")
}

func (e *encoder) declarations(items []*model.Code) {
	for _, c := range items {
		e.code(c)
	}
}

func (e *encoder) code(c *model.Code) {
	var a attrs

	a.element(&c.Element)
	a.list("platforms", c.Platforms)
	a.list("features", c.Features)

	tag := string(c.Kind)

	switch c.Kind {
	case model.KindClass:
		a.opt("access", c.Access)
		a.add("name", c.Name)
		a.opt("bases", c.Bases)
		a.opt("pybases", c.PyBases)
		a.flag("struct", c.Struct)

		e.out.Writef("<%s%s>\n", tag, &a)
		e.literals(c.Kind, c.Literals)
		e.nested(c.Content)
	case model.KindNamespace:
		a.add("name", c.Name)

		e.out.Writef("<%s%s>\n", tag, &a)
		e.literals(c.Kind, c.Literals)
		e.nested(c.Content)
	case model.KindEnum:
		a.opt("access", c.Access)
		a.flag("enumclass", c.EnumClass)
		a.add("name", c.Name)

		e.out.Writef("<%s%s>\n", tag, &a)
		leave := e.out.Enter()

		for _, v := range c.Values {
			var va attrs

			va.element(&v.Element)
			va.add("name", v.Name)
			e.out.Writef("<EnumValue%s/>\n", &va)
		}

		leave()
	case model.KindConstructor, model.KindMethod, model.KindOperatorMethod, model.KindOperatorCast,
		model.KindFunction, model.KindOperatorFunction:
		e.callableAttrs(&a, c)

		e.out.Writef("<%s%s>\n", tag, &a)
		leave := e.out.Enter()

		for _, arg := range c.Args {
			e.argument(arg)
		}

		leave()
		e.literals(c.Kind, c.Literals)
	case model.KindDestructor:
		a.opt("access", c.Access)
		a.add("name", c.Name)
		a.flag("virtual", c.Virtual)

		e.out.Writef("<%s%s>\n", tag, &a)
		e.literals(c.Kind, c.Literals)
	case model.KindVariable:
		a.opt("access", c.Access)
		a.add("name", c.Name)
		a.add("type", c.Type)
		a.flag("static", c.Static)

		if len(c.Literals) == 0 {
			e.out.Writef("<%s%s/>\n", tag, &a)

			return
		}

		e.out.Writef("<%s%s>\n", tag, &a)
		e.literals(c.Kind, c.Literals)
	case model.KindTypedef:
		a.add("name", c.Name)
		a.add("type", c.Type)
		e.out.Writef("<%s%s/>\n", tag, &a)

		return
	case model.KindOpaqueClass:
		a.opt("access", c.Access)
		a.add("name", c.Name)
		e.out.Writef("<%s%s/>\n", tag, &a)

		return
	case model.KindManualCode:
		a.opt("access", c.Access)
		a.add("precis", c.Precis)

		e.out.Writef("<%s%s>\n", tag, &a)
		e.literals(c.Kind, c.Literals)
	}

	e.out.Writef("</%s>\n", tag)
}

func (e *encoder) callableAttrs(a *attrs, c *model.Code) {
	a.add("name", c.Name)
	a.opt("rtype", c.RType)
	a.opt("pytype", c.PyType)
	a.opt("pyargs", c.PyArgs)

	if c.Kind.HasAccess() {
		a.opt("access", c.Access)
	}

	switch c.Kind {
	case model.KindConstructor:
		a.flag("explicit", c.Explicit)
	case model.KindMethod:
		a.flag("virtual", c.Virtual)
		a.flag("const", c.Const)
		a.flag("static", c.Static)
		a.flag("abstract", c.Abstract)
	case model.KindOperatorMethod:
		a.flag("virtual", c.Virtual)
		a.flag("const", c.Const)
		a.flag("abstract", c.Abstract)
	case model.KindOperatorCast:
		a.flag("const", c.Const)
	}
}

func (e *encoder) argument(arg *model.Argument) {
	var a attrs

	a.opt("annos", arg.Annos)
	a.add("type", arg.Type)
	a.flag("unnamed", arg.Unnamed)
	a.opt("name", arg.Name)
	a.opt("default", arg.Default)
	a.opt("pytype", arg.PyType)

	e.out.Writef("<Argument%s/>\n", &a)
}

func (e *encoder) nested(items []*model.Code) {
	leave := e.out.Enter()
	e.declarations(items)
	leave()
}

// literals writes the text blocks of an element in their canonical order.
// Literal text is never indented so that it reads back unchanged.
func (e *encoder) literals(kind model.Kind, lits model.Literals) {
	for _, k := range kind.Literals() {
		text := lits.Get(k)
		if text == "" {
			continue
		}

		e.out.WriteRaw(fmt.Sprintf("<Literal type=\"%s\">\n%s\n</Literal>\n", k, textEscaper.Replace(text)))
	}
}
