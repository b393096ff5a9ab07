// Package cmd provides the root command and CLI setup for metasip.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/metasip/internal/adapter"
	"github.com/mouse-blink/metasip/internal/controller"
	"github.com/mouse-blink/metasip/internal/domain"
	m "github.com/mouse-blink/metasip/internal/model"
)

var workflow domain.Workflow
var ui controller.UI

// loadSettings is replaced in tests.
var loadSettings = adapter.LoadSettings
var settings *adapter.Settings

func init() {
	ui = controller.NewUI(rootCmd)
	workflow = domain.NewWorkflow(
		adapter.NewProjectStore(),
		adapter.NewLocalSourceFSAdapter(),
		adapter.NewLocalOutputFS(),
		adapter.NewDiffer(),
		ui,
	)
}

var projectFlag string
var verboseFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metasip",
		Short: "Maintain versioned SIP bindings of a C/C++ API",
		Long: `metasip maintains a project file describing a C/C++ API across the
versions of the library, and generates the SIP specification files of
its Python extension modules.

A typical update for a new library version:
  metasip add version 5.1
  metasip scan
  metasip merge qobject.h qobject.xml
  metasip generate`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: applySettings,
	}
	cmd.PersistentFlags().StringVarP(&projectFlag, "project", "p", "", "project file (defaults to the project in .metasip/settings.yaml)")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "report progress")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return m.NewUserError(err.Error(), nil)
	})

	return cmd
}

func applySettings(_ *cobra.Command, _ []string) error {
	s, err := loadSettings(".")
	if err != nil {
		return m.NewUserError("invalid settings", err)
	}

	settings = s

	if projectFlag == "" && s != nil {
		projectFlag = s.Project
	}

	ui.SetVerbose(verboseFlag || (s != nil && s.Verbose))

	return nil
}

func projectArgs() domain.ProjectArgs {
	return domain.ProjectArgs{Project: projectFlag}
}

// userArgs reports argument validation failures as user errors.
func userArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return m.NewUserError(err.Error(), nil)
		}

		return nil
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(reportError(rootCmd.ErrOrStderr(), err))
	}
}

// reportError prints err and returns the exit status for it. Failures the
// user can act on exit with 1, anything else with 2.
func reportError(w io.Writer, err error) int {
	var (
		ue *m.UserError
		se *m.StorageError
	)

	if errors.As(err, &ue) || errors.As(err, &se) {
		_, _ = fmt.Fprintf(w, "metasip: %v\n", err)
		return 1
	}

	_, _ = fmt.Fprintf(w, "metasip: An internal error occurred, please report it with the following detail:\n%v\n", err)

	return 2
}
