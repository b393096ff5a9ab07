// Package controller provides the output channels used to show projects,
// progress and generated file drift to the user.
package controller

import (
	m "github.com/mouse-blink/metasip/internal/model"
)

// UI defines the interface for reporting to the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// SetVerbose enables or disables progress messages.
	SetVerbose(verbose bool)
	Progress(format string, args ...any)
	DisplayModules(p *m.Project) error
	DisplayHeaderFiles(p *m.Project) error
	// DisplayDeclarations shows the declarations of a header file. Retired
	// declarations are only shown when history is set.
	DisplayDeclarations(p *m.Project, hf *m.HeaderFile, history bool) error
	DisplayGenerated(paths []string)
	DisplayDiff(diff string)
	// DisplayIssues shows problems found in the project, one per line.
	DisplayIssues(issues []string)
}
