package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/metasip/internal/domain"
	m "github.com/mouse-blink/metasip/internal/model"
)

var mergeHeaderDirFlag string

// mergeCmd represents the merge command.
var mergeCmd = newMergeCmd()

func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge HEADER PARSED",
		Short: "Merge a parsed header file into the project",
		Long: `Merge the parser's XML description of a header file into the project.
Declarations no longer in the header are retired in the latest version and
new ones are added.`,
		Args: userArgs(cobra.ExactArgs(2)),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Merge(domain.MergeArgs{
				ProjectArgs:     projectArgs(),
				HeaderDirectory: mergeHeaderDirFlag,
				HeaderFile:      args[0],
				Parsed:          m.Path(args[1]),
			})
		},
	}
	cmd.Flags().StringVarP(&mergeHeaderDirFlag, "header-dir", "d", "", "header directory containing the header file")

	return cmd
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}
