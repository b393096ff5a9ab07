package model

import "fmt"

// VersionRange returns the human readable form of a generation range using the
// project's version labels, eg. "1.0 - 3.0". Generations outside the list
// are rendered as "?".
func (p *Project) VersionRange(r GenerationRange) string {
	if r.SGen == 0 {
		if r.EGen == 0 {
			return ""
		}

		return "- " + p.versionLabel(r.EGen)
	}

	if r.EGen == 0 {
		return p.versionLabel(r.SGen) + " -"
	}

	return p.versionLabel(r.SGen) + " - " + p.versionLabel(r.EGen)
}

func (p *Project) versionLabel(generation int) string {
	if generation < 1 || generation > len(p.Versions) {
		return "?"
	}

	return p.Versions[generation-1]
}

// VersionMap has one flag per generation, index 0 being generation 1. A flag
// is set when an element is present in that generation.
type VersionMap []bool

// NewVersionMap returns a map for n generations with every flag set to value.
func NewVersionMap(n int, value bool) VersionMap {
	vmap := make(VersionMap, n)
	for i := range vmap {
		vmap[i] = value
	}

	return vmap
}

// OrRange sets the flags of every generation the range covers.
func (vm VersionMap) OrRange(r GenerationRange) {
	first := 0
	if r.SGen > 0 {
		first = r.SGen - 1
	}

	last := len(vm)
	if r.EGen > 0 && r.EGen-1 < last {
		last = r.EGen - 1
	}

	for i := first; i < last; i++ {
		vm[i] = true
	}
}

// OrElement sets the flags of every generation el is present in.
func (vm VersionMap) OrElement(el Versioned) {
	vm.OrRange(el.GenerationRange())
}

// Ranges returns the minimal list of contiguous ranges covering exactly the
// set flags.
func (vm VersionMap) Ranges() []GenerationRange {
	var ranges []GenerationRange

	for i := 0; i < len(vm); i++ {
		if !vm[i] {
			continue
		}

		start := i
		for i < len(vm) && vm[i] {
			i++
		}

		ranges = append(ranges, vm.toRange(start, i))
	}

	return ranges
}

// SingleRange converts the map back to the start/end pair used by elements.
// It fails when the set flags are empty or not contiguous.
func (vm VersionMap) SingleRange() (GenerationRange, error) {
	ranges := vm.Ranges()

	switch len(ranges) {
	case 0:
		return GenerationRange{}, ErrEmptyRange
	case 1:
		return ranges[0], nil
	default:
		return GenerationRange{}, fmt.Errorf("%w: %d ranges", ErrDisjointRange, len(ranges))
	}
}

// toRange converts the half open index run [start, end) to endpoints.
func (vm VersionMap) toRange(start, end int) GenerationRange {
	var r GenerationRange

	if start > 0 {
		r.SGen = start + 1
	}

	if end < len(vm) {
		r.EGen = end + 1
	}

	return r
}
