package controller

import (
	"os"

	"github.com/spf13/cobra"
)

// NewUI returns the UI for the commands under cmd. The declaration browser
// takes over the terminal, so it is only used when both the input and the
// output of cmd are terminals.
func NewUI(cmd *cobra.Command) UI {
	if IsTTY(cmd.InOrStdin()) && IsTTY(cmd.OutOrStdout()) {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether stream is a character device. Pipes, regular files
// and in-memory buffers are not.
func IsTTY(stream any) bool {
	file, ok := stream.(*os.File)
	if !ok {
		return false
	}

	info, err := file.Stat()
	if err != nil {
		return false
	}

	return info.Mode()&os.ModeCharDevice != 0
}
