package model

import (
	"fmt"
	"strings"
)

// AnnotationText returns annotations as written after a declaration.
func AnnotationText(annos string) string {
	if annos == "" {
		return ""
	}

	return " /" + annos + "/"
}

// ArgumentText returns an argument as it appears in a SIP signature. Ignored
// namespaces are stripped when ignored is not nil.
func ArgumentText(a *Argument, ignored []string) string {
	s := a.PyType
	if s == "" {
		s = ExpandType(a.Type, "", ignored)
	}

	s = joinName(s, a.Name) + AnnotationText(a.Annos)

	if a.Default != "" {
		def := a.Default
		if ignored != nil {
			def = StripIgnoredNamespaces(def, ignored)
		}

		s += " = " + def
	}

	return s
}

// ArgumentCpp returns the C++ form of an argument.
func ArgumentCpp(a *Argument) string {
	s := ExpandType(a.Type, a.Name, nil)
	if a.Default != "" {
		s += " = " + a.Default
	}

	return s
}

// ArgumentList formats the arguments of a callable as a SIP argument list.
func ArgumentList(c *Code, ignored []string) string {
	args := make([]string, 0, len(c.Args))
	for _, a := range c.Args {
		args = append(args, ArgumentText(a, ignored))
	}

	return "(" + strings.Join(args, ", ") + ")"
}

// CppArgumentList formats the arguments of a callable as C++.
func CppArgumentList(c *Code) string {
	args := make([]string, 0, len(c.Args))
	for _, a := range c.Args {
		args = append(args, ArgumentCpp(a))
	}

	return strings.Join(args, ", ")
}

// ReturnType returns the return type of a callable followed by the separator
// needed before its name, or "" when it has none.
func ReturnType(c *Code, ignored []string) string {
	s := c.PyType
	if s == "" {
		s = ExpandType(c.RType, "", ignored)
	}

	if s == "" {
		return ""
	}

	if !strings.ContainsAny(s[len(s)-1:], "&*") {
		s += " "
	}

	return s
}

// Describe returns a user friendly, one line representation of a declaration.
// When the Python signature has been changed the C++ signature is appended so
// the change is always visible.
func Describe(c *Code) string {
	switch c.Kind {
	case KindClass:
		s := classKeyword(c)
		if c.Bases != "" {
			s += " : " + c.Bases
		}

		return s + AnnotationText(c.Annos)
	case KindOpaqueClass:
		return "class " + c.Name + AnnotationText(c.Annos)
	case KindNamespace:
		return "namespace " + c.Name
	case KindEnum:
		if c.Name == "" {
			return "enum"
		}

		return "enum " + c.Name
	case KindTypedef:
		return "typedef " + ExpandType(c.Type, c.Name, nil) + AnnotationText(c.Annos)
	case KindVariable:
		s := ExpandType(c.Type, c.Name, nil) + AnnotationText(c.Annos)
		if c.Static {
			s = "static " + s
		}

		return s
	case KindManualCode:
		return c.Precis
	case KindDestructor:
		s := "~" + c.Name + "()"
		if c.Virtual {
			s = "virtual " + s
		}

		return s
	default:
		return describeCallable(c)
	}
}

func describeCallable(c *Code) string {
	var b strings.Builder

	switch {
	case c.Kind == KindConstructor && c.Explicit:
		b.WriteString("explicit ")
	case c.Kind == KindOperatorCast:
		b.WriteString("operator ")
	}

	if c.Virtual {
		b.WriteString("virtual ")
	}

	if c.Static {
		b.WriteString("static ")
	}

	b.WriteString(ReturnType(c, nil))

	if c.Kind == KindOperatorMethod || c.Kind == KindOperatorFunction {
		b.WriteString("operator")
	}

	b.WriteString(c.Name)

	if c.PyArgs != "" {
		b.WriteString(c.PyArgs)
	} else {
		b.WriteString(ArgumentList(c, nil))
	}

	if c.Const {
		b.WriteString(" const")
	}

	if c.Abstract {
		b.WriteString(" = 0")
	}

	b.WriteString(AnnotationText(c.Annos))

	if c.PyType != "" || c.PyArgs != "" || c.HasPyArgs() {
		fmt.Fprintf(&b, " [%s (%s)]", ExpandType(c.RType, "", nil), CppArgumentList(c))
	}

	return b.String()
}
