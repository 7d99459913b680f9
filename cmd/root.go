package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/xompass/archctl/pkg/action"
	"github.com/xompass/archctl/pkg/archiva"
	"github.com/xompass/archctl/pkg/config"
	"github.com/xompass/archctl/pkg/log"
	"github.com/xompass/archctl/pkg/settings"
)

const globalUsage = `The Apache Archiva artifact browser

Common actions for archctl:

- archctl login:      verify and store credentials for an Archiva instance
- archctl versions:   list available versions of an artifact
- archctl info:       show download metadata of an artifact version
- archctl download:   download an artifact file
- archctl exec:       run a single instruction, e.g. "versionsList:com.xompass.edge.Printer"

Without a subcommand archctl enters an interactive shell over the same
instruction grammar.
`

func newRootCmd(cfg *action.Configuration, out io.Writer) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:          "archctl",
		Short:        "The Apache Archiva artifact browser.",
		Long:          globalUsage,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			return setup(cfg)
		},
		RunE: func(c *cobra.Command, args []string) error {
			if settings.Execute != "" {
				return action.NewExec(cfg).Run(os.Stdin, out, settings.Execute)
			}
			return action.NewShell(cfg).Run(os.Stdin, out)
		},
	}

	cmd.CompletionOptions.DisableDefaultCmd = true

	pf := cmd.PersistentFlags()
	pf.StringVarP(&settings.VerboseLevel, "verbose-level", "V", "w", "log verbose level: e(rror)|w(arning)|i(nfo)|s(uppress)")
	pf.StringVarP(&settings.Host, "host", "H", "", "archiva host, protocol included (also taken from $ARCHIVA_HOST)")
	pf.BoolVarP(&settings.SetReferer, "set-referer", "R", false, `send "Referer: {host}" with every request`)
	pf.StringVarP(&settings.Username, "user", "u", "", "archiva user (default=guest), also taken from $ARCHIVA_USR")
	pf.StringVarP(&settings.Password, "password", "p", "", "archiva password, also taken from $ARCHIVA_PWD")

	f := cmd.Flags()
	f.StringVarP(&settings.Execute, "execute", "e", "", "execute a single instruction instead of entering the shell")

	cmd.AddCommand(
		newLoginCmd(cfg, out),
		newLogoutCmd(cfg, out),
		newVersionsCmd(cfg, out),
		newInfoCmd(cfg, out),
		newDownloadCmd(cfg, out),
		newExecCmd(cfg, out),
		newShellCmd(cfg, out),
		newPingCmd(cfg, out),
		newVersionCmd(),
	)

	return cmd, nil
}

// setup configures the logger and builds the session from flags, the
// environment and the credential store, in that order.
func setup(cfg *action.Configuration) error {
	log.SetLevelSelector(settings.VerboseLevel)

	if cfg.ConfigFile == "" {
		cfg.ConfigFile = config.DefaultConfigFilePath()
	}

	envCfg, err := config.ParseEnv()
	if err != nil {
		return err
	}

	host := settings.Host
	if host == "" {
		host = envCfg.Host
	}
	if host == "" {
		// commands that need a session will refuse on their own
		return nil
	}

	username := settings.Username
	if username == "" {
		username = envCfg.Username
	}
	password := settings.Password
	if password == "" {
		password = envCfg.Password
	}

	// stored credentials fill the remaining blanks
	if password == "" || username == "" || username == "guest" {
		configFile, err := config.Load(cfg.ConfigFile)
		if err != nil {
			return err
		}
		if ac, ok := configFile.GetAuthConfig(host); ok {
			if username == "" || username == "guest" {
				username = ac.Username
			}
			if password == "" {
				password = ac.Password
			}
		}
	}

	var options []archiva.SessionOption
	if settings.SetReferer {
		options = append(options, archiva.SessionOptReferer())
	}
	cfg.Session = archiva.NewSession(host, username, password, options...)
	return nil
}
