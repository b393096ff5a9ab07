package model

// Kind identifies the variant of an element. Declaration kinds are the values
// a Code can take; the remaining kinds only own literal text blocks.
type Kind string

const (
	KindClass            Kind = "Class"
	KindOpaqueClass      Kind = "OpaqueClass"
	KindConstructor      Kind = "Constructor"
	KindDestructor       Kind = "Destructor"
	KindMethod           Kind = "Method"
	KindOperatorMethod   Kind = "OperatorMethod"
	KindOperatorCast     Kind = "OperatorCast"
	KindFunction         Kind = "Function"
	KindOperatorFunction Kind = "OperatorFunction"
	KindEnum             Kind = "Enum"
	KindVariable         Kind = "Variable"
	KindTypedef          Kind = "Typedef"
	KindNamespace        Kind = "Namespace"
	KindManualCode       Kind = "ManualCode"

	KindHeaderFile Kind = "HeaderFile"
	KindModule     Kind = "Module"
	KindProject    Kind = "Project"
)

// DeclarationKinds lists every kind a Code may have.
var DeclarationKinds = []Kind{
	KindClass,
	KindOpaqueClass,
	KindConstructor,
	KindDestructor,
	KindMethod,
	KindOperatorMethod,
	KindOperatorCast,
	KindFunction,
	KindOperatorFunction,
	KindEnum,
	KindVariable,
	KindTypedef,
	KindNamespace,
	KindManualCode,
}

// IsDeclaration reports whether k is a Code kind.
func (k Kind) IsDeclaration() bool {
	for _, d := range DeclarationKinds {
		if d == k {
			return true
		}
	}

	return false
}

// IsContainer reports whether declarations of kind k hold nested declarations
// that take part in merging.
func (k Kind) IsContainer() bool {
	return k == KindClass || k == KindNamespace
}

// HasAccess reports whether declarations of kind k are subject to class
// access specifiers.
func (k Kind) HasAccess() bool {
	switch k {
	case KindClass, KindOpaqueClass, KindConstructor, KindDestructor, KindMethod,
		KindOperatorMethod, KindOperatorCast, KindEnum, KindVariable, KindManualCode:
		return true
	default:
		return false
	}
}

// IsCallable reports whether declarations of kind k carry an argument list.
func (k Kind) IsCallable() bool {
	switch k {
	case KindConstructor, KindMethod, KindOperatorMethod, KindOperatorCast,
		KindFunction, KindOperatorFunction:
		return true
	default:
		return false
	}
}

// IsModuleLevel reports whether declarations of kind k are implemented at the
// module level and so need the header included in the module code.
func (k Kind) IsModuleLevel() bool {
	switch k {
	case KindFunction, KindOperatorFunction, KindVariable, KindEnum:
		return true
	default:
		return false
	}
}
