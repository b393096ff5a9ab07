package cmd

import (
	"github.com/spf13/cobra"
)

// saveAsCmd represents the save-as command.
var saveAsCmd = newSaveAsCmd()

func newSaveAsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save-as TARGET",
		Short: "Write the project to another file",
		Long: `Write the project to TARGET. An existing TARGET is replaced only once the
new contents are complete. The original project file is not changed.`,
		Args: userArgs(cobra.ExactArgs(1)),
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := workflow.Load(projectArgs().Project)
			if err != nil {
				return err
			}

			return workflow.SaveAs(p, args[0])
		},
	}
}

func init() {
	rootCmd.AddCommand(saveAsCmd)
}
