package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/xompass/archctl/cmd/require"
	"github.com/xompass/archctl/pkg/action"
)

const versionsDesc = `
List the available versions of an artifact. The coordinate splits on
its last dot: everything before is the group, the final segment is the
artifact name.

Examples:

    $ archctl versions com.xompass.edge.Printer -H http://archiva.example.com:8080
`

func newVersionsCmd(cfg *action.Configuration, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "versions [group.name]",
		Short: "list available versions of an artifact",
		Long:  versionsDesc,
		Args:  require.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return action.NewVersions(cfg).Run(out, args[0])
		},
	}
}
