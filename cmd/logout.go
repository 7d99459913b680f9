package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/xompass/archctl/cmd/require"
	"github.com/xompass/archctl/pkg/action"
)

const logoutDesc = `
Remove credentials stored for an Archiva instance.

Examples:

    $ archctl logout http://archiva.example.com:8080
`

func newLogoutCmd(cfg *action.Configuration, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "logout [host]",
		Short: "remove stored credentials for an Archiva instance",
		Long:  logoutDesc,
		Args:  require.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return action.NewLogout(cfg).Run(out, args[0])
		},
	}
}
