package controller

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/metasip/internal/model"
)

// TUI implements UI using Bubble Tea for the interactive parts and plain
// text for everything else.
type TUI struct {
	*SimpleUI
	input  io.Reader
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{
		SimpleUI: NewSimpleUI(cmd),
		input:    cmd.InOrStdin(),
		output:   cmd.OutOrStdout(),
	}
}

// DisplayDeclarations opens a browser over the declarations of hf.
func (t *TUI) DisplayDeclarations(p *m.Project, hf *m.HeaderFile, history bool) error {
	program := tea.NewProgram(
		newBrowserModel(p, hf, history),
		tea.WithInput(t.input),
		tea.WithOutput(t.output),
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run declaration browser: %w", err)
	}

	return nil
}
