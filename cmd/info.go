package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/xompass/archctl/cmd/require"
	"github.com/xompass/archctl/pkg/action"
)

const infoDesc = `
Show the download metadata of one artifact version.

Examples:

    $ archctl info com.xompass.edge.Printer 1.1 -H http://archiva.example.com:8080
`

func newInfoCmd(cfg *action.Configuration, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "info [group.name] [version]",
		Short: "show download metadata of an artifact version",
		Long:  infoDesc,
		Args:  require.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return action.NewInfos(cfg).Run(out, args[0], args[1])
		},
	}
}
