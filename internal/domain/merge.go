package domain

import (
	"slices"

	m "github.com/mouse-blink/metasip/internal/model"
)

// Merger folds freshly parsed declarations into the versioned history of a
// project.
type Merger struct{}

// NewMerger creates a Merger.
func NewMerger() *Merger {
	return &Merger{}
}

// Merge reconciles the current declarations of dst with parsed, the
// declarations found in the latest generation of the header. Matching is by
// kind and signature in parse order. Declarations that are no longer found
// are retired at the current generation, new ones are appended starting at
// it. Manual code is never retired. It reports whether anything changed and
// marks the project dirty if so.
func (mg *Merger) Merge(p *m.Project, dst m.Container, parsed []*m.Code) (bool, error) {
	gen := p.Generation()
	if gen == 0 {
		return false, m.ErrNoGenerations
	}

	changed := mergeCode(dst, parsed, gen)
	if changed {
		p.MarkDirty()
	}

	return changed, nil
}

// MergeHeaderFile merges the parsed contents of a header file and records
// that it no longer needs parsing.
func (mg *Merger) MergeHeaderFile(p *m.Project, hf *m.HeaderFile, parsed []*m.Code) (bool, error) {
	changed, err := mg.Merge(p, hf, parsed)
	if err != nil {
		return false, err
	}

	settled := false

	if hf.ParseNeeded {
		hf.ParseNeeded = false
		settled = true
	}

	if hf.Status == m.StatusUnknown {
		hf.Status = ""
		settled = true
	}

	if settled {
		p.MarkDirty()
	}

	return changed || settled, nil
}

func mergeCode(dst m.Container, parsed []*m.Code, gen int) bool {
	remaining := slices.Clone(parsed)
	changed := false

	for _, c := range dst.Declarations() {
		if !c.IsCurrent() || c.Kind == m.KindManualCode {
			continue
		}

		idx := slices.IndexFunc(remaining, func(pc *m.Code) bool {
			return m.Equivalent(c, pc)
		})
		if idx < 0 {
			c.EGen = gen
			changed = true

			continue
		}

		match := remaining[idx]
		remaining = slices.Delete(remaining, idx, idx+1)

		if c.Kind.IsContainer() && mergeCode(c, match.Content, gen) {
			changed = true
		}
	}

	if len(remaining) == 0 {
		return changed
	}

	for _, pc := range remaining {
		pc.SGen = gen
		pc.EGen = 0
	}

	dst.AppendDeclarations(remaining...)

	return true
}
