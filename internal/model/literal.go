package model

import "fmt"

// LiteralKind names a multi-line text block attached to an element.
type LiteralKind string

const (
	LiteralDocstring          LiteralKind = "docstring"
	LiteralTypeHeaderCode     LiteralKind = "typeheadercode"
	LiteralTypeCode           LiteralKind = "typecode"
	LiteralConvToTypeCode     LiteralKind = "convtotypecode"
	LiteralSubClassCode       LiteralKind = "subclasscode"
	LiteralGCTraverseCode     LiteralKind = "gctraversecode"
	LiteralGCClearCode        LiteralKind = "gcclearcode"
	LiteralBIGetBufCode       LiteralKind = "bigetbufcode"
	LiteralBIRelBufCode       LiteralKind = "birelbufcode"
	LiteralBIReadBufCode      LiteralKind = "bireadbufcode"
	LiteralBIWriteBufCode     LiteralKind = "biwritebufcode"
	LiteralBISegCountCode     LiteralKind = "bisegcountcode"
	LiteralBICharBufCode      LiteralKind = "bicharbufcode"
	LiteralPickleCode         LiteralKind = "picklecode"
	LiteralMethCode           LiteralKind = "methcode"
	LiteralVirtCode           LiteralKind = "virtcode"
	LiteralAccessCode         LiteralKind = "accesscode"
	LiteralGetCode            LiteralKind = "getcode"
	LiteralSetCode            LiteralKind = "setcode"
	LiteralBody               LiteralKind = "body"
	LiteralExportedHeaderCode LiteralKind = "exportedheadercode"
	LiteralModuleHeaderCode   LiteralKind = "moduleheadercode"
	LiteralModuleCode         LiteralKind = "modulecode"
	LiteralPreInitCode        LiteralKind = "preinitcode"
	LiteralInitCode           LiteralKind = "initcode"
	LiteralPostInitCode       LiteralKind = "postinitcode"
	LiteralDirectives         LiteralKind = "directives"
	LiteralSIPComments        LiteralKind = "sipcomments"
)

// The order of each list is the order blocks are written in.
var allowedLiterals = map[Kind][]LiteralKind{
	KindClass: {
		LiteralDocstring, LiteralTypeHeaderCode, LiteralTypeCode, LiteralConvToTypeCode,
		LiteralSubClassCode, LiteralGCTraverseCode, LiteralGCClearCode, LiteralBIGetBufCode,
		LiteralBIRelBufCode, LiteralBIReadBufCode, LiteralBIWriteBufCode, LiteralBISegCountCode,
		LiteralBICharBufCode, LiteralPickleCode,
	},
	KindConstructor:      {LiteralDocstring, LiteralMethCode},
	KindFunction:         {LiteralDocstring, LiteralMethCode},
	KindOperatorCast:     {LiteralMethCode},
	KindOperatorFunction: {LiteralMethCode},
	KindMethod:           {LiteralDocstring, LiteralMethCode, LiteralVirtCode},
	KindOperatorMethod:   {LiteralMethCode, LiteralVirtCode},
	KindDestructor:       {LiteralMethCode, LiteralVirtCode},
	KindVariable:         {LiteralAccessCode, LiteralGetCode, LiteralSetCode},
	KindNamespace:        {LiteralTypeHeaderCode},
	KindManualCode:       {LiteralBody, LiteralDocstring, LiteralMethCode},
	KindHeaderFile: {
		LiteralExportedHeaderCode, LiteralModuleHeaderCode, LiteralModuleCode,
		LiteralPreInitCode, LiteralInitCode, LiteralPostInitCode,
	},
	KindModule:  {LiteralDirectives},
	KindProject: {LiteralSIPComments},
}

// Literals returns the text blocks an element of kind k may own, in output
// order.
func (k Kind) Literals() []LiteralKind {
	return allowedLiterals[k]
}

// Accepts reports whether an element of kind k may own a block of kind l.
func (k Kind) Accepts(l LiteralKind) bool {
	for _, a := range allowedLiterals[k] {
		if a == l {
			return true
		}
	}

	return false
}

// Literals maps a literal kind to its text. Empty text is never stored.
type Literals map[LiteralKind]string

// Get returns the text of a block, or "" when it is not set.
func (l Literals) Get(k LiteralKind) string {
	return l[k]
}

func setLiteral(owner Kind, lits *Literals, k LiteralKind, text string) error {
	if !owner.Accepts(k) {
		return fmt.Errorf("%w %q for %s", ErrUnsupportedLiteral, k, owner)
	}

	if text == "" {
		delete(*lits, k)

		return nil
	}

	if *lits == nil {
		*lits = Literals{}
	}

	(*lits)[k] = text

	return nil
}
