// Package model defines the versioned description of a C/C++ API that a
// project curates across software generations.
package model

// StatusUnknown marks an element that was discovered by a scan but has not
// been reviewed or merged yet.
const StatusUnknown = "unknown"

// GenerationRange is a pair of 1-based generation endpoints.
//
// SGen is the first generation in which an element appeared, 0 meaning the
// beginning of time. EGen is the first generation in which it was missing
// (not the last one in which it appeared), 0 meaning it is still present.
type GenerationRange struct {
	SGen int
	EGen int
}

// IsCurrent reports whether the range is still open.
func (r GenerationRange) IsCurrent() bool {
	return r.EGen == 0
}

// Valid reports whether the endpoints are ordered.
func (r GenerationRange) Valid() bool {
	if r.SGen < 0 || r.EGen < 0 {
		return false
	}

	return r.EGen == 0 || r.SGen == 0 || r.EGen >= r.SGen
}

// Versioned is implemented by everything that carries a generation range.
type Versioned interface {
	GenerationRange() GenerationRange
	SetGenerationRange(r GenerationRange)
}

// Element holds the state shared by all API elements.
type Element struct {
	// Annos is the annotation text echoed verbatim into generated output.
	Annos string
	// Status is empty for a present element. Any other value suppresses the
	// element from generated output while keeping it in the history.
	Status string
	SGen   int
	EGen   int
}

// IsCurrent reports whether the element is present in the latest generation.
func (e *Element) IsCurrent() bool {
	return e.EGen == 0
}

// Suppressed reports whether the element's status keeps it out of output.
func (e *Element) Suppressed() bool {
	return e.Status != ""
}

// GenerationRange returns the element's generation endpoints.
func (e *Element) GenerationRange() GenerationRange {
	return GenerationRange{SGen: e.SGen, EGen: e.EGen}
}

// SetGenerationRange replaces the element's generation endpoints.
func (e *Element) SetGenerationRange(r GenerationRange) {
	e.SGen = r.SGen
	e.EGen = r.EGen
}

// EnumValue is a single enumerator.
type EnumValue struct {
	Element
	Name string
}

// Argument is a callable argument.
type Argument struct {
	Type string
	Name string
	// Unnamed is set when Name is not the "official" name of the argument.
	Unnamed bool
	Default string
	PyType  string
	Annos   string
}
