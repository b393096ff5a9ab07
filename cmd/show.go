package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/metasip/internal/domain"
)

var showHeaderDirFlag string
var showHistoryFlag bool

// showCmd represents the show command.
var showCmd = newShowCmd()

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show HEADER",
		Short: "Show the declarations of a header file",
		Long: `Show the declarations of a header file with the versions each one is
present in. On a terminal the declarations are shown in a browser.`,
		Args: userArgs(cobra.ExactArgs(1)),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Show(domain.ShowArgs{
				ProjectArgs:     projectArgs(),
				HeaderDirectory: showHeaderDirFlag,
				HeaderFile:      args[0],
				History:         showHistoryFlag,
			})
		},
	}
	cmd.Flags().StringVarP(&showHeaderDirFlag, "header-dir", "d", "", "header directory containing the header file")
	cmd.Flags().BoolVar(&showHistoryFlag, "history", false, "include declarations no longer in the latest version")

	return cmd
}

func init() {
	rootCmd.AddCommand(showCmd)
}
