package sipgen

import (
	"fmt"
	"strings"

	"github.com/mouse-blink/metasip/internal/indent"
	"github.com/mouse-blink/metasip/internal/model"
)

// asctime is the layout of the timestamp in generated file headers.
const asctime = "Mon Jan _2 15:04:05 2006"

type renderer struct {
	out     *indent.Writer
	project *model.Project
	hf      *model.HeaderFile
	opts    Options
}

// classCode maps the class literals that are not handled specially to their
// directives, in output order. Type code and conversion code start in the
// first column.
var classCode = []struct {
	kind      model.LiteralKind
	directive string
	indented  bool
}{
	{model.LiteralTypeCode, "%TypeCode", false},
	{model.LiteralConvToTypeCode, "%ConvertToTypeCode", false},
	{model.LiteralSubClassCode, "%ConvertToSubClassCode", true},
	{model.LiteralGCTraverseCode, "%GCTraverseCode", true},
	{model.LiteralGCClearCode, "%GCClearCode", true},
	{model.LiteralBIGetBufCode, "%BIGetBufferCode", true},
	{model.LiteralBIRelBufCode, "%BIReleaseBufferCode", true},
	{model.LiteralBIReadBufCode, "%BIGetReadBufferCode", true},
	{model.LiteralBIWriteBufCode, "%BIGetWriteBufferCode", true},
	{model.LiteralBISegCountCode, "%BIGetSegCountCode", true},
	{model.LiteralBICharBufCode, "%BIGetCharBufferCode", true},
	{model.LiteralPickleCode, "%PickleCode", true},
}

var headerFileCode = []struct {
	kind      model.LiteralKind
	directive string
}{
	{model.LiteralExportedHeaderCode, "%ExportedHeaderCode"},
	{model.LiteralModuleHeaderCode, "%ModuleHeaderCode"},
	{model.LiteralModuleCode, "%ModuleCode"},
	{model.LiteralPreInitCode, "%PreInitialisationCode"},
	{model.LiteralInitCode, "%InitialisationCode"},
	{model.LiteralPostInitCode, "%PostInitialisationCode"},
}

func (r *renderer) ignored() []string {
	return r.project.IgnoredNamespaces
}

// skip reports whether an element is left out of the output.
func (r *renderer) skip(el *model.Element) bool {
	if el.Suppressed() {
		return true
	}

	return !r.opts.History && !el.IsCurrent()
}

func (r *renderer) boilerplate(fname string, mod *model.Module) {
	r.out.Writef("// %s generated by MetaSIP on %s\n//\n// This file is part of the %s Python extension module.\n",
		fname, r.opts.Timestamp().Format(asctime), mod.Name)

	if comments := r.project.SIPComments(); comments != "" {
		r.out.Writef("//\n%s\n", comments)
	}

	r.out.Write("\n")
	r.out.Blank()
}

func (r *renderer) moduleRoot(mod *model.Module, includes []string) {
	p := r.project

	name := mod.Name
	if p.RootModule != "" {
		name = p.RootModule + "." + name
	}

	if r.opts.LatestSyntax {
		version := ""
		if mod.Version != "" {
			version = ", version=" + mod.Version
		}

		r.out.Writef("%%Module(name=%s, keyword_arguments=\"Optional\"%s)\n\n", name, version)
	} else {
		r.out.Writef("%%Module %s 0\n\n", name)
	}

	if len(mod.Imports) != 0 {
		for _, imp := range mod.Imports {
			r.out.Writef("%%Import %s/%smod.sip\n", imp, imp)
		}

		r.out.Write("\n")
	}

	if p.IsTopLevel(mod) {
		if len(p.Versions) != 0 {
			r.out.Writef("%%Timeline {%s}\n\n", strings.Join(p.Versions, " "))
		}

		if len(p.Platforms) != 0 {
			r.out.Writef("%%Platforms {%s}\n\n", strings.Join(p.Platforms, " "))
		}

		if len(p.Features) != 0 {
			for _, feat := range p.Features {
				r.out.Writef("%%Feature %s\n", feat)
			}

			r.out.Write("\n")
		}
	}

	if directives := mod.Directives(); directives != "" {
		r.out.Write(directives)
		r.out.Write("\n\n")
	}

	for _, inc := range includes {
		r.out.Writef("%%Include %s\n", inc)
	}
}

func (r *renderer) headerFile() {
	hf := r.hf

	// Module level declarations need the header in the module code.
	for _, c := range hf.Content {
		if r.skip(&c.Element) || !c.Kind.IsModuleLevel() {
			continue
		}

		vrange := r.project.VersionRange(hf.GenerationRange())
		if vrange != "" {
			r.out.WriteRaw(fmt.Sprintf("%%If (%s)\n", vrange))
		}

		r.out.Writef("%%ModuleCode\n#include <%s>\n%%End\n", hf.Name)

		if vrange != "" {
			r.out.WriteRaw("%End\n")
		}

		r.out.Blank()

		break
	}

	r.declarations(hf.Content)
	r.out.Blank()

	for _, lit := range headerFileCode {
		if text := hf.Literal(lit.kind); text != "" {
			r.code(lit.directive, text, false)
		}
	}
}

// declarations writes each declaration wrapped in its conditionals.
func (r *renderer) declarations(items []*model.Code) {
	for _, c := range items {
		if r.skip(&c.Element) {
			continue
		}

		r.conditional(c)
	}
}

// conditional wraps a declaration in the generation range, platform and
// feature conditions that apply to it, outermost first. Empty conditions are
// omitted.
func (r *renderer) conditional(c *model.Code) {
	var conds []string

	if vrange := r.project.VersionRange(c.GenerationRange()); vrange != "" {
		conds = append(conds, vrange)
	}

	if len(c.Platforms) != 0 {
		conds = append(conds, strings.Join(c.Platforms, " || "))
	}

	if len(c.Features) != 0 {
		conds = append(conds, strings.Join(c.Features, " || "))
	}

	for _, cond := range conds {
		r.out.WriteRaw(fmt.Sprintf("%%If (%s)\n", cond))
	}

	r.declaration(c)

	for range conds {
		r.out.WriteRaw("%End\n")
	}
}

func (r *renderer) declaration(c *model.Code) {
	switch c.Kind {
	case model.KindClass:
		r.class(c)
	case model.KindNamespace:
		r.namespace(c)
	case model.KindEnum:
		r.enum(c)
	case model.KindConstructor:
		r.constructor(c)
	case model.KindDestructor:
		r.destructor(c)
	case model.KindMethod, model.KindOperatorMethod:
		r.method(c)
	case model.KindOperatorCast:
		r.out.Write("operator " + r.callable(c, c.Name))

		if c.Const {
			r.out.Write(" const")
		}

		r.out.Write(";\n")
		r.methodCode(c)
	case model.KindFunction:
		r.out.Write(r.callable(c, c.Name) + ";\n")
		r.docstring(c)
		r.methodCode(c)
	case model.KindOperatorFunction:
		r.out.Write(r.callable(c, "operator"+c.Name) + ";\n")
		r.methodCode(c)
	case model.KindVariable:
		r.variable(c)
	case model.KindTypedef:
		r.out.Write("typedef " + model.ExpandType(c.Type, c.Name, r.ignored()) + model.AnnotationText(c.Annos) + ";\n")
	case model.KindOpaqueClass:
		r.out.Write("class " + c.Name + model.AnnotationText(c.Annos) + ";\n")
	case model.KindManualCode:
		r.manualCode(c)
	}
}

// code writes a literal block between a directive and %End.
func (r *renderer) code(directive, text string, indented bool) {
	r.out.WriteRaw(directive + "\n")

	leave := r.out.Enter()

	if indented {
		r.out.Write(text + "\n")
	} else {
		r.out.WriteRaw(text + "\n")
	}

	leave()
	r.out.WriteRaw("%End\n")
	r.out.Blank()
}

func (r *renderer) docstring(c *model.Code) {
	if text := c.Literal(model.LiteralDocstring); text != "" {
		r.code("%Docstring", text, false)
	}
}

func (r *renderer) methodCode(c *model.Code) {
	if text := c.Literal(model.LiteralMethCode); text != "" {
		r.code("%MethodCode", text, true)
	}
}

func (r *renderer) virtualCode(c *model.Code) {
	if text := c.Literal(model.LiteralVirtCode); text != "" {
		r.code("%VirtualCatcherCode", text, true)
	}
}

// typeHeaderCode writes the code that makes a type's declaration available,
// defaulting to including its header file.
func (r *renderer) typeHeaderCode(c *model.Code) {
	r.out.WriteRaw("%TypeHeaderCode\n")

	if text := c.Literal(model.LiteralTypeHeaderCode); text != "" {
		r.out.WriteRaw(text + "\n")
	} else {
		r.out.WriteRaw(fmt.Sprintf("#include <%s>\n", r.hf.Name))
	}

	r.out.WriteRaw("%End\n")
	r.out.Blank()
}

func (r *renderer) class(c *model.Code) {
	r.out.Blank()

	keyword := "class "
	if c.Struct {
		keyword = "struct "
	}

	r.out.Write(keyword + c.Name + r.bases(c) + model.AnnotationText(c.Annos) + "\n{\n")

	r.docstring(c)
	r.typeHeaderCode(c)

	for _, lit := range classCode {
		if text := c.Literal(lit.kind); text != "" {
			r.code(lit.directive, text, lit.indented)
		}
	}

	leave := r.out.Enter()

	access := "private"
	if c.Struct {
		access = ""
	}

	for _, child := range c.Content {
		if r.skip(&child.Element) {
			continue
		}

		if child.Kind.HasAccess() && child.Access != access {
			leave()

			access = child.Access

			label := access
			if label == "" {
				label = "public"
			}

			r.out.Blank()
			r.out.Write(label + ":\n")

			leave = r.out.Enter()
		}

		r.conditional(child)
	}

	leave()
	r.out.Write("};\n")
	r.out.Blank()
}

// bases returns the super-class list of a class. Python bases replace the C++
// ones, "None" meaning there are none.
func (r *renderer) bases(c *model.Code) string {
	if c.PyBases != "" {
		if c.PyBases == "None" {
			return ""
		}

		return " : " + strings.Join(strings.Fields(c.PyBases), ", ")
	}

	if c.Bases == "" {
		return ""
	}

	var classes []string

	for _, base := range strings.Split(c.Bases, ",") {
		fields := strings.Fields(base)
		if len(fields) == 0 {
			continue
		}

		access, cls := "public", fields[len(fields)-1]
		if len(fields) > 1 {
			access = fields[0]
		}

		cls = model.StripIgnoredNamespaces(cls, r.ignored())

		// Public is left out for compatibility with old versions of SIP.
		if access == "public" {
			classes = append(classes, cls)
		} else {
			classes = append(classes, access+" "+cls)
		}
	}

	return " : " + strings.Join(classes, ", ")
}

func (r *renderer) namespace(c *model.Code) {
	if r.project.IsIgnoredNamespace(c.Name) {
		r.declarations(c.Content)

		return
	}

	r.out.Blank()
	r.out.Write("namespace " + c.Name + "\n{\n")
	r.typeHeaderCode(c)

	leave := r.out.Enter()
	r.declarations(c.Content)
	leave()

	r.out.Write("};\n")
	r.out.Blank()
}

func (r *renderer) enum(c *model.Code) {
	r.out.Blank()

	head := "enum"
	if c.EnumClass {
		head += " class"
	}

	if c.Name != "" {
		head += " " + c.Name
	}

	r.out.Write(head + model.AnnotationText(c.Annos) + "\n{\n")

	leave := r.out.Enter()

	for _, v := range c.Values {
		if r.skip(&v.Element) {
			continue
		}

		vrange := r.project.VersionRange(v.GenerationRange())
		if vrange != "" {
			r.out.WriteRaw(fmt.Sprintf("%%If (%s)\n", vrange))
		}

		r.out.Write(v.Name + model.AnnotationText(v.Annos) + ",\n")

		if vrange != "" {
			r.out.WriteRaw("%End\n")
		}
	}

	leave()
	r.out.Write("};\n")
	r.out.Blank()
}

// callable returns the common part of a callable's declaration.
func (r *renderer) callable(c *model.Code, name string) string {
	s := model.ReturnType(c, r.ignored()) + name

	if c.PyArgs != "" {
		s += c.PyArgs
	} else {
		s += model.ArgumentList(c, r.ignored())
	}

	return s + model.AnnotationText(c.Annos)
}

func (r *renderer) constructor(c *model.Code) {
	if c.Explicit {
		r.out.Write("explicit ")
	}

	r.out.Write(r.callable(c, c.Name))

	if c.PyArgs != "" || c.HasPyArgs() {
		r.out.Write(" [(" + model.CppArgumentList(c) + ")]")
	}

	r.out.Write(";\n")
	r.docstring(c)
	r.methodCode(c)
}

func (r *renderer) destructor(c *model.Code) {
	if c.Virtual {
		r.out.Write("virtual ")
	}

	r.out.Write("~" + c.Name + "()" + model.AnnotationText(c.Annos) + ";\n")
	r.methodCode(c)
	r.virtualCode(c)
}

func (r *renderer) method(c *model.Code) {
	var b strings.Builder

	if c.Virtual {
		b.WriteString("virtual ")
	}

	name := c.Name

	if c.Kind == model.KindOperatorMethod {
		name = "operator" + name
	} else if c.Static {
		b.WriteString("static ")
	}

	b.WriteString(model.ReturnType(c, r.ignored()) + name)

	if c.PyArgs != "" {
		b.WriteString(c.PyArgs)
	} else {
		b.WriteString(model.ArgumentList(c, r.ignored()))
	}

	if c.Const {
		b.WriteString(" const")
	}

	if c.Abstract {
		b.WriteString(" = 0")
	}

	b.WriteString(model.AnnotationText(c.Annos))

	// The C++ signature is needed whenever SIP may have to generate a call
	// to the C++ method itself.
	needsCpp := c.Virtual || strings.HasPrefix(c.Access, "protected") || c.Literal(model.LiteralMethCode) == ""
	if needsCpp && (c.PyType != "" || c.PyArgs != "" || c.HasPyArgs()) {
		fmt.Fprintf(&b, " [%s (%s)]", model.ExpandType(c.RType, "", r.ignored()), model.CppArgumentList(c))
	}

	r.out.Write(b.String() + ";\n")

	if c.Kind == model.KindMethod {
		r.docstring(c)
	}

	r.methodCode(c)
	r.virtualCode(c)
}

func (r *renderer) variable(c *model.Code) {
	s := model.ExpandType(c.Type, c.Name, r.ignored())
	if c.Static {
		s = "static " + s
	}

	r.out.Write(s + model.AnnotationText(c.Annos))

	needBrace := r.opts.LatestSyntax
	if !r.opts.LatestSyntax {
		r.out.WriteRaw(";\n")
	}

	for _, lit := range []struct {
		kind      model.LiteralKind
		directive string
	}{
		{model.LiteralAccessCode, "%AccessCode"},
		{model.LiteralGetCode, "%GetCode"},
		{model.LiteralSetCode, "%SetCode"},
	} {
		text := c.Literal(lit.kind)
		if text == "" {
			continue
		}

		if needBrace {
			r.out.WriteRaw(" {\n")
			needBrace = false
		}

		r.code(lit.directive, text, true)
	}

	if r.opts.LatestSyntax {
		if !needBrace {
			r.out.Write("}")
		}

		r.out.WriteRaw(";\n")
	}
}

func (r *renderer) manualCode(c *model.Code) {
	switch body := c.Literal(model.LiteralBody); {
	case body != "":
		r.out.WriteRaw("// " + c.Precis + "\n" + body + "\n")
	case strings.HasPrefix(c.Precis, "%"):
		r.out.WriteRaw(c.Precis + "\n")
	default:
		r.out.Write(c.Precis + ";\n")
	}

	r.docstring(c)
	r.methodCode(c)
}
