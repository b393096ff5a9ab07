package controller

import (
	"strings"

	m "github.com/mouse-blink/metasip/internal/model"
)

// declarationRow is one line of a header file's declaration tree.
type declarationRow struct {
	depth    int
	text     string
	versions string
	status   string
	current  bool
}

func (r declarationRow) String() string {
	var b strings.Builder

	b.WriteString(strings.Repeat("    ", r.depth))
	b.WriteString(r.text)

	if r.versions != "" {
		b.WriteString("  [" + r.versions + "]")
	}

	if r.status != "" {
		b.WriteString("  (" + r.status + ")")
	}

	return b.String()
}

func declarationRows(p *m.Project, hf *m.HeaderFile, history bool) []declarationRow {
	var rows []declarationRow

	m.Walk(hf, func(c *m.Code, depth int) bool {
		if !history && !c.IsCurrent() {
			return false
		}

		text := m.Describe(c)
		if c.Access != "" && c.Kind.HasAccess() {
			text = c.Access + ": " + text
		}

		rows = append(rows, declarationRow{
			depth:    depth,
			text:     text,
			versions: p.VersionRange(c.GenerationRange()),
			status:   c.Status,
			current:  c.IsCurrent(),
		})

		for _, v := range c.Values {
			if !history && !v.IsCurrent() {
				continue
			}

			rows = append(rows, declarationRow{
				depth:    depth + 1,
				text:     v.Name,
				versions: p.VersionRange(v.GenerationRange()),
				status:   v.Status,
				current:  v.IsCurrent(),
			})
		}

		return true
	})

	return rows
}
