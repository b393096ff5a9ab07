package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/metasip/internal/domain"
	m "github.com/mouse-blink/metasip/internal/model"
)

var presenceVersionFlag string
var presenceSignatureFlag string
var presenceHeaderDirFlag string

// retireCmd represents the retire command.
var retireCmd = newPresenceCmd("retire", false)

// restoreCmd represents the restore command.
var restoreCmd = newPresenceCmd("restore", true)

func newPresenceCmd(use string, present bool) *cobra.Command {
	short := "Remove a header file or declaration from a version"
	if present {
		short = "Add a header file or declaration to a version"
	}

	cmd := &cobra.Command{
		Use:   use + " HEADER [DECLARATION]",
		Short: short,
		Long: short + `. DECLARATION is a path of names separated by ::,
eg. QObject::parent. Use --signature to pick one of several overloads.
The versions a declaration is in must stay contiguous.`,
		Args: userArgs(cobra.RangeArgs(1, 2)),
		RunE: func(_ *cobra.Command, args []string) error {
			if presenceVersionFlag == "" {
				return m.NewUserError("--version is required", nil)
			}

			var decl []string
			if len(args) == 2 {
				decl = strings.Split(args[1], "::")
			}

			return workflow.SetPresence(domain.PresenceArgs{
				ProjectArgs:     projectArgs(),
				HeaderDirectory: presenceHeaderDirFlag,
				HeaderFile:      args[0],
				Declaration:     decl,
				Signature:       presenceSignatureFlag,
				Version:         presenceVersionFlag,
				Present:         present,
			})
		},
	}
	cmd.Flags().StringVar(&presenceVersionFlag, "version", "", "version to change")
	cmd.Flags().StringVar(&presenceSignatureFlag, "signature", "", "signature of the declaration")
	cmd.Flags().StringVarP(&presenceHeaderDirFlag, "header-dir", "d", "", "header directory containing the header file")

	return cmd
}

func init() {
	rootCmd.AddCommand(retireCmd, restoreCmd)
}
