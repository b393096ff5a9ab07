package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/metasip/internal/model"
)

// SimpleUI implements UI using cobra Command's output streams.
type SimpleUI struct {
	cmd     *cobra.Command
	verbose bool
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// SetVerbose enables or disables progress messages.
func (s *SimpleUI) SetVerbose(verbose bool) {
	s.verbose = verbose
}

// Progress prints a progress message to stderr when verbose.
func (s *SimpleUI) Progress(format string, args ...any) {
	if !s.verbose {
		return
	}

	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format+"\n", args...)
}

// DisplayModules prints the project's versions and a table of its modules.
func (s *SimpleUI) DisplayModules(p *m.Project) error {
	s.printf("Project: %s\n", p.DescriptiveName())

	if len(p.Versions) > 0 {
		s.printf("Versions: %s\n", strings.Join(p.Versions, " "))
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Module", "Header Files", "Imports", "Version"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
	})

	files := 0

	for _, mod := range p.Modules {
		table.Append([]string{
			mod.Name,
			fmt.Sprintf("%d", len(mod.HeaderFiles)),
			strings.Join(mod.Imports, " "),
			mod.Version,
		})

		files += len(mod.HeaderFiles)
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Modules %d", len(p.Modules)),
		fmt.Sprintf("%d", files),
		"",
		"",
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayHeaderFiles prints a table of the header files of every header
// directory with their version ranges and review state.
func (s *SimpleUI) DisplayHeaderFiles(p *m.Project) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Directory", "Header File", "Versions", "Status", "Parse"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	files := 0

	for _, hd := range p.HeaderDirectories {
		for _, hf := range hd.HeaderFiles {
			parse := ""
			if hf.ParseNeeded {
				parse = "needed"
			}

			table.Append([]string{hd.Name, hf.Name, p.VersionRange(hf.GenerationRange()), hf.Status, parse})

			files++
		}
	}

	table.SetFooter([]string{fmt.Sprintf("Total Files %d", files), "", "", "", ""})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayDeclarations prints the declaration tree of a header file.
func (s *SimpleUI) DisplayDeclarations(p *m.Project, hf *m.HeaderFile, history bool) error {
	header := declarationRow{
		text:     hf.Name,
		versions: p.VersionRange(hf.GenerationRange()),
		status:   hf.Status,
	}
	s.printf("%s\n", header)

	for _, row := range declarationRows(p, hf, history) {
		row.depth++
		s.printf("%s\n", row)
	}

	return nil
}

// DisplayGenerated prints the files written by a generation run.
func (s *SimpleUI) DisplayGenerated(paths []string) {
	for _, path := range paths {
		s.printf("%s\n", path)
	}

	s.printf("Generated %d files\n", len(paths))
}

// DisplayDiff prints a unified diff.
func (s *SimpleUI) DisplayDiff(diff string) {
	s.printf("%s", diff)
}

// DisplayIssues prints each issue on a line of its own.
func (s *SimpleUI) DisplayIssues(issues []string) {
	for _, issue := range issues {
		s.printf("%s\n", issue)
	}
}

func (s *SimpleUI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
