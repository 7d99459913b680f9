package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/xompass/archctl/cmd/require"
	"github.com/xompass/archctl/pkg/action"
)

const shellDesc = `
Enter an interactive shell over the instruction grammar. One login is
performed on entry and one logout on exit, whatever happens in
between. Leave with "q", "quit", "exit" or end-of-file.
`

func newShellCmd(cfg *action.Configuration, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "interactive instruction shell",
		Long:  shellDesc,
		Args:  require.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return action.NewShell(cfg).Run(os.Stdin, out)
		},
	}
}
