package model

import "strings"

// Signature returns the key used to recognise a declaration across parses. It
// covers everything that changes the generated output (types, names where
// they matter, qualifiers and access) and ignores annotations, generations,
// platforms, features and literal text.
func Signature(c *Code) string {
	var s string

	switch c.Kind {
	case KindClass:
		s = classKeyword(c)
		if c.Bases != "" {
			s += " : " + strings.Join(strings.Fields(c.Bases), " ")
		}
	case KindOpaqueClass:
		s = "class " + c.Name
	case KindNamespace:
		s = "namespace " + c.Name
	case KindEnum:
		s = "enum"
		if c.EnumClass {
			s += " class"
		}

		if c.Name != "" {
			s += " " + c.Name
		}
	case KindTypedef:
		s = "typedef " + joinName(NormalizeType(c.Type), c.Name)
	case KindVariable:
		s = joinName(NormalizeType(c.Type), c.Name)
		if c.Static {
			s = "static " + s
		}
	case KindManualCode:
		s = c.Precis
	case KindDestructor:
		s = "~" + c.Name + "()"
		if c.Virtual {
			s = "virtual " + s
		}
	case KindConstructor:
		s = callableSignature(c, c.Name)
		if c.Explicit {
			s = "explicit " + s
		}
	case KindOperatorCast:
		s = "operator " + callableSignature(c, c.Name)
		if c.Const {
			s += " const"
		}
	case KindFunction:
		s = callableSignature(c, c.Name)
	case KindOperatorFunction:
		s = callableSignature(c, "operator"+c.Name)
	case KindMethod, KindOperatorMethod:
		s = methodSignature(c)
	}

	if c.Kind.HasAccess() {
		if acc := SignatureAccess(c.Access); acc != "" {
			s += " " + acc
		}
	}

	return s
}

// Equivalent reports whether two declarations are the same declaration for
// the purpose of merging.
func Equivalent(a, b *Code) bool {
	return a.Kind == b.Kind && Signature(a) == Signature(b)
}

// SignatureAccess returns the part of an access specifier that affects the
// signature. Any Qt specific part is dropped, signals are protected and public
// is the default.
func SignatureAccess(access string) string {
	fields := strings.Fields(access)
	if len(fields) == 0 {
		return ""
	}

	switch fields[0] {
	case "signals":
		return "protected"
	case "public":
		return ""
	default:
		return fields[0]
	}
}

// ArgumentSignature returns the comparison key of an argument. Argument names
// never take part.
func ArgumentSignature(a *Argument) string {
	s := NormalizeType(a.Type)
	if a.Default != "" {
		s += " = " + strings.Join(strings.Fields(a.Default), " ")
	}

	return s
}

func classKeyword(c *Code) string {
	s := "class"
	if c.Struct {
		s = "struct"
	}

	if c.Name != "" {
		s += " " + c.Name
	}

	return s
}

func callableSignature(c *Code, name string) string {
	args := make([]string, 0, len(c.Args))
	for _, a := range c.Args {
		args = append(args, ArgumentSignature(a))
	}

	return joinName(NormalizeType(c.RType), name) + "(" + strings.Join(args, ", ") + ")"
}

func methodSignature(c *Code) string {
	var b strings.Builder

	if c.Virtual {
		b.WriteString("virtual ")
	}

	if c.Static && c.Kind == KindMethod {
		b.WriteString("static ")
	}

	name := c.Name
	if c.Kind == KindOperatorMethod {
		name = "operator" + name
	}

	b.WriteString(callableSignature(c, name))

	if c.Const {
		b.WriteString(" const")
	}

	if c.Abstract {
		b.WriteString(" = 0")
	}

	return b.String()
}
