package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/metasip/internal/domain"
)

var addOutputDirSuffixFlag string
var addModuleVersionFlag string
var addImportFlags []string
var addParserArgsFlag string
var addInputDirSuffixFlag string
var addFileFilterFlag string
var addModuleFlag string
var addHeaderDirFlag string

// addCmd represents the add command.
var addCmd = newAddCmd()

func newAddCmd() *cobra.Command {
	kinds := make([]string, 0, len(domain.AddKinds))
	for _, k := range domain.AddKinds {
		kinds = append(kinds, string(k))
	}

	cmd := &cobra.Command{
		Use:   "add KIND VALUE",
		Short: "Add a version, tag, module or header directory to the project",
		Long: fmt.Sprintf(`Add to the project. KIND is one of:
  %s

A module-header adds the header file VALUE to the module given with --module.`, strings.Join(kinds, ", ")),
		Args:      userArgs(cobra.ExactArgs(2)),
		ValidArgs: kinds,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Add(domain.AddArgs{
				ProjectArgs:     projectArgs(),
				Kind:            domain.AddKind(args[0]),
				Value:           args[1],
				OutputDirSuffix: addOutputDirSuffixFlag,
				ModuleVersion:   addModuleVersionFlag,
				Imports:         addImportFlags,
				ParserArgs:      addParserArgsFlag,
				InputDirSuffix:  addInputDirSuffixFlag,
				FileFilter:      addFileFilterFlag,
				Module:          addModuleFlag,
				HeaderDirectory: addHeaderDirFlag,
			})
		},
	}
	cmd.Flags().StringVar(&addOutputDirSuffixFlag, "output-dir-suffix", "", "module: sub-directory of the output directory")
	cmd.Flags().StringVar(&addModuleVersionFlag, "module-version", "", "module: version of the generated module")
	cmd.Flags().StringArrayVar(&addImportFlags, "import", nil, "module: imported module (can be repeated)")
	cmd.Flags().StringVar(&addParserArgsFlag, "parser-args", "", "header-directory: extra arguments passed to the header parser")
	cmd.Flags().StringVar(&addInputDirSuffixFlag, "input-dir-suffix", "", "header-directory: sub-directory of the input directory")
	cmd.Flags().StringVar(&addFileFilterFlag, "file-filter", "", "header-directory: glob selecting the header files")
	cmd.Flags().StringVarP(&addModuleFlag, "module", "m", "", "module-header: module the header file is added to")
	cmd.Flags().StringVarP(&addHeaderDirFlag, "header-dir", "d", "", "module-header: header directory containing the header file")

	return cmd
}

func init() {
	rootCmd.AddCommand(addCmd)
}
