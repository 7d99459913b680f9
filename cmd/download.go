package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/xompass/archctl/cmd/require"
	"github.com/xompass/archctl/pkg/action"
	"github.com/xompass/archctl/pkg/settings"
)

const downloadDesc = `
Download the first artifact matching a coordinate and version. The
local file is named after the artifact id reported by the server.

Examples:

    $ archctl download com.xompass.edge.Printer 1.1 -H http://archiva.example.com:8080

    # into a directory
    $ archctl download com.xompass.edge.Printer 1.1 -o ./artifacts
`

func newDownloadCmd(cfg *action.Configuration, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "download [group.name] [version]",
		Short: "download an artifact file",
		Long:  downloadDesc,
		Args:  require.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return action.NewDownload(cfg).Run(out, args[0], args[1])
		},
	}

	f := cmd.Flags()
	f.StringVarP(&settings.Output, "output", "o", "", "directory the artifact is written to (default: working directory)")

	return cmd
}
