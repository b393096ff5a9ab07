package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/metasip/internal/domain"
)

var listHeadersFlag bool

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the modules or header files of a project",
		Args:  userArgs(cobra.NoArgs),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.List(domain.ListArgs{
				ProjectArgs: projectArgs(),
				Headers:     listHeadersFlag,
			})
		},
	}
	cmd.Flags().BoolVar(&listHeadersFlag, "headers", false, "list header files instead of modules")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
