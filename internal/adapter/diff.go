package adapter

import (
	"fmt"

	difflib "github.com/pmezard/go-difflib/difflib"
)

// DiffContext is the number of context lines around each hunk.
const DiffContext = 3

// Differ compares the text of a file on disk with regenerated text.
type Differ interface {
	// Unified returns a unified diff turning current into regenerated, or
	// "" when the two are the same.
	Unified(name, current, regenerated string) (string, error)
}

type unifiedDiffer struct{}

// NewDiffer constructs a Differ producing classic unified diffs.
func NewDiffer() Differ {
	return unifiedDiffer{}
}

func (unifiedDiffer) Unified(name, current, regenerated string) (string, error) {
	if current == regenerated {
		return "", nil
	}

	u := difflib.UnifiedDiff{
		A:        difflib.SplitLines(current),
		B:        difflib.SplitLines(regenerated),
		FromFile: "a/" + name,
		ToFile:   "b/" + name,
		Context:  DiffContext,
	}

	s, err := difflib.GetUnifiedDiffString(u)
	if err != nil {
		return "", fmt.Errorf("failed to diff %s: %w", name, err)
	}

	return s, nil
}
