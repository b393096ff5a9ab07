package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/metasip/internal/domain"
)

var scanHeaderDirFlags []string
var scanInputDirFlag string

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan header directories for new, changed and removed headers",
		Long: `Scan the header directories of the project for the latest version.
New headers are added with an unknown status, changed headers are marked as
needing parsing and headers that have gone are retired.`,
		Args: userArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Scan(cmd.Context(), domain.ScanArgs{
				ProjectArgs:       projectArgs(),
				HeaderDirectories: scanHeaderDirFlags,
				InputDir:          scanInputDirFlag,
			})
		},
	}
	cmd.Flags().StringArrayVarP(&scanHeaderDirFlags, "header-dir", "d", nil, "header directory to scan (can be repeated, defaults to all)")
	cmd.Flags().StringVar(&scanInputDirFlag, "input-dir", "", "directory containing the header directories, stored in the project")

	return cmd
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
