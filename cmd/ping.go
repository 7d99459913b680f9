package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/xompass/archctl/cmd/require"
	"github.com/xompass/archctl/pkg/action"
	"github.com/xompass/archctl/pkg/settings"
)

func newPingCmd(cfg *action.Configuration, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:     "ping",
		Short:   "check that the Archiva instance is reachable",
		Example: "archctl ping -H http://archiva.example.com:8080",
		Args:    require.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			host := settings.Host
			if host == "" && cfg.Session != nil {
				host = cfg.Session.Host()
			}
			return action.NewPing(cfg).Run(out, host)
		},
	}
}
