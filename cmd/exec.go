package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/xompass/archctl/cmd/require"
	"github.com/xompass/archctl/pkg/action"
)

const execDesc = `
Run a single colon-separated instruction:

    versionsList:{group}.{name}
    downloadInfos:{group}.{name}:{version}
    download:{group}.{name}:{version}
    i                                     (enter the interactive shell)

Examples:

    $ archctl exec "versionsList:com.xompass.edge.Printer" -H http://archiva.example.com:8080
`

func newExecCmd(cfg *action.Configuration, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "exec [instruction]",
		Short: "run a single instruction",
		Long:  execDesc,
		Args:  require.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return action.NewExec(cfg).Run(os.Stdin, out, args[0])
		},
	}
}
