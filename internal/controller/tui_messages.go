package controller

import "time"

type tickMsg time.Time

// List item types.
type declarationItem struct {
	row declarationRow
}

func (d declarationItem) FilterValue() string {
	return d.row.text
}
