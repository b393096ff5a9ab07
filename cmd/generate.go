package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/metasip/internal/domain"
)

var outputDirFlag string
var moduleFlags []string
var ignoreFlags []string
var legacySyntaxFlag bool
var historyFlag bool
var noSaveOutputDirFlag bool

// generateCmd represents the generate command.
var generateCmd = newGenerateCmd()

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the SIP files of the project's modules",
		Long: `Generate the SIP files of the project's modules. An output directory
given with --output-dir is stored in the project unless --no-save-output-dir
is given.`,
		Args: userArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Generate(domain.GenerateArgs{
				ProjectArgs:   projectArgs(),
				OutputArgs:    outputArgs(cmd),
				SaveOutputDir: cmd.Flags().Changed("output-dir") && !noSaveOutputDirFlag,
			})
		},
	}
	addOutputFlags(cmd)
	cmd.Flags().BoolVar(&noSaveOutputDirFlag, "no-save-output-dir", false, "do not store --output-dir in the project")

	return cmd
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outputDirFlag, "output-dir", "o", "", "directory the SIP files are generated in")
	cmd.Flags().StringArrayVarP(&moduleFlags, "module", "m", nil, "module to generate (can be repeated, defaults to all)")
	cmd.Flags().StringArrayVarP(&ignoreFlags, "ignore", "x", nil, "module to skip (can be repeated)")
	cmd.Flags().BoolVar(&legacySyntaxFlag, "legacy-syntax", false, "generate for SIP versions before 4.12")
	cmd.Flags().BoolVar(&historyFlag, "history", false, "include declarations no longer in the latest version")
}

// outputArgs combines the output flags with the settings file. Flags take
// precedence.
func outputArgs(cmd *cobra.Command) domain.OutputArgs {
	outputDir := outputDirFlag
	if outputDir == "" && settings != nil {
		outputDir = settings.OutputDir
	}

	var ignore []string
	if settings != nil {
		ignore = append(ignore, settings.IgnoreModules...)
	}

	for _, name := range ignoreFlags {
		if !settings.IsIgnoredModule(name) {
			ignore = append(ignore, name)
		}
	}

	latest := settings.UseLatestSyntax(true)
	if cmd.Flags().Changed("legacy-syntax") {
		latest = !legacySyntaxFlag
	}

	return domain.OutputArgs{
		Modules:      moduleFlags,
		Ignore:       ignore,
		OutputDir:    outputDir,
		LatestSyntax: latest,
		History:      historyFlag,
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
