package model

import "strings"

// StripIgnoredNamespaces removes the first matching ignored namespace prefix
// from typ and from each of its template arguments. Nested template arguments
// are not handled.
func StripIgnoredNamespaces(typ string, ignored []string) string {
	for _, ns := range ignored {
		if prefix := ns + "::"; strings.HasPrefix(typ, prefix) {
			typ = typ[len(prefix):]

			break
		}
	}

	start := strings.Index(typ, "<")
	end := strings.LastIndex(typ, ">")

	if start > 0 && end > start {
		parts := strings.Split(typ[start+1:end], ",")
		for i, arg := range parts {
			parts[i] = StripIgnoredNamespaces(strings.TrimSpace(arg), ignored)
		}

		typ = typ[:start+1] + strings.Join(parts, ", ") + typ[end:]
	}

	return typ
}

// ExpandType returns the declaration of name with type typ. A type containing
// "%s" (eg. a function pointer) has the name substituted, otherwise the name
// is appended. When ignored is not nil the ignored namespaces are removed.
func ExpandType(typ, name string, ignored []string) string {
	if typ == "" {
		return ""
	}

	if ignored != nil {
		const constPrefix = "const "

		prefix := ""
		if strings.HasPrefix(typ, constPrefix) {
			prefix = constPrefix
			typ = typ[len(constPrefix):]
		}

		typ = prefix + StripIgnoredNamespaces(typ, ignored)
	}

	// SIP can't handle every C++ fundamental type.
	typ = strings.ReplaceAll(typ, "long int", "long")

	if strings.Contains(typ, "%s") {
		return strings.Replace(typ, "%s", name, 1)
	}

	return joinName(typ, name)
}

// joinName appends name to a type, separated by a space unless the type ends
// with a pointer or reference.
func joinName(typ, name string) string {
	if name == "" {
		return typ
	}

	if typ != "" && !strings.ContainsAny(typ[len(typ)-1:], "&*") {
		typ += " "
	}

	return typ + name
}

// NormalizeType returns a canonical spelling of a type that is stable under
// whitespace changes.
func NormalizeType(typ string) string {
	typ = strings.Join(strings.Fields(typ), " ")
	typ = strings.ReplaceAll(typ, "long int", "long")

	var b strings.Builder

	for i := 0; i < len(typ); i++ {
		ch := typ[i]
		if ch == ' ' && i+1 < len(typ) && strings.IndexByte("&*,<>)", typ[i+1]) >= 0 {
			continue
		}

		if ch == ' ' && i > 0 && strings.IndexByte("<(,", typ[i-1]) >= 0 {
			continue
		}

		b.WriteByte(ch)
	}

	return b.String()
}
