package domain

import (
	"fmt"

	m "github.com/mouse-blink/metasip/internal/model"
)

// SetPresence adds generation to, or removes it from, the generations el is
// present in. The result must still be a single contiguous range, otherwise
// el is left untouched and the error wraps m.ErrDisjointRange (or
// m.ErrEmptyRange when no generation would be left).
func SetPresence(p *m.Project, el m.Versioned, generation int, present bool) error {
	n := p.Generation()
	if n == 0 {
		return m.ErrNoGenerations
	}

	if generation < 1 || generation > n {
		return fmt.Errorf("generation %d: %w", generation, m.ErrNotFound)
	}

	vmap := m.NewVersionMap(n, false)
	vmap.OrElement(el)

	if vmap[generation-1] == present {
		return nil
	}

	vmap[generation-1] = present

	r, err := vmap.SingleRange()
	if err != nil {
		return err
	}

	el.SetGenerationRange(r)
	p.MarkDirty()

	return nil
}
