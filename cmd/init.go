package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/metasip/internal/domain"
)

var initRootModuleFlag string
var initInputDirFlag string
var initOutputDirFlag string

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an empty project",
		Long:  "Create an empty project file. The file given with --project must not exist.",
		Args:  userArgs(cobra.NoArgs),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Init(domain.InitArgs{
				ProjectArgs: projectArgs(),
				RootModule:  initRootModuleFlag,
				InputDir:    initInputDirFlag,
				OutputDir:   initOutputDirFlag,
			})
		},
	}
	cmd.Flags().StringVar(&initRootModuleFlag, "root-module", "", "name of the package containing the generated modules")
	cmd.Flags().StringVar(&initInputDirFlag, "input-dir", "", "directory containing the header directories")
	cmd.Flags().StringVarP(&initOutputDirFlag, "output-dir", "o", "", "directory the SIP files are generated in")

	return cmd
}

func init() {
	rootCmd.AddCommand(initCmd)
}
