package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/metasip/internal/domain"
	m "github.com/mouse-blink/metasip/internal/model"
)

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that the generated SIP files are up to date",
		Long: `Regenerate the SIP files in memory and show how the files in the output
directory differ. The command fails if any file is out of date.`,
		Args: userArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			upToDate, err := workflow.Check(domain.CheckArgs{
				ProjectArgs: projectArgs(),
				OutputArgs:  outputArgs(cmd),
			})
			if err != nil {
				return err
			}

			if !upToDate {
				return m.NewUserError("generated files are out of date", nil)
			}

			return nil
		},
	}
	addOutputFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
