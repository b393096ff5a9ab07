package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/metasip/internal/domain"
)

var nameArgsModuleFlag string
var nameArgsHeaderDirFlag string
var nameArgsAcceptFlag bool
var nameArgsDryRunFlag bool

// nameArgumentsCmd represents the name-arguments command.
var nameArgumentsCmd = newNameArgumentsCmd()

func newNameArgumentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "name-arguments [HEADER...]",
		Short: "Name the arguments of callables by convention",
		Long: `Name the unofficially named arguments of the functions, constructors and
methods of the given header files, or of a module, or of every module.

Arguments whose type decides their name (events, objects, widgets, indexes
and the like) are renamed and made official. Names that are too short or
that need a decision are reported. With --dry-run nothing is changed and
the command fails if any name breaks the conventions. With --accept the
current names are made official as they are.`,
		Args: userArgs(cobra.ArbitraryArgs),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.NameArguments(domain.NameArgumentsArgs{
				ProjectArgs:     projectArgs(),
				Module:          nameArgsModuleFlag,
				HeaderFiles:     args,
				HeaderDirectory: nameArgsHeaderDirFlag,
				Accept:          nameArgsAcceptFlag,
				DryRun:          nameArgsDryRunFlag,
			})
		},
	}
	cmd.Flags().StringVarP(&nameArgsModuleFlag, "module", "m", "", "module whose header files are named")
	cmd.Flags().StringVarP(&nameArgsHeaderDirFlag, "header-dir", "d", "", "header directory containing the header files")
	cmd.Flags().BoolVar(&nameArgsAcceptFlag, "accept", false, "make the current argument names official")
	cmd.Flags().BoolVar(&nameArgsDryRunFlag, "dry-run", false, "report names that break the conventions without changing them")

	return cmd
}

func init() {
	rootCmd.AddCommand(nameArgumentsCmd)
}
