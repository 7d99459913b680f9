package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/moby/term" // nolint
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/xompass/archctl/cmd/require"
	"github.com/xompass/archctl/pkg/action"
	"github.com/xompass/archctl/pkg/settings"
)

const loginDesc = `
Verify credentials against an Archiva instance and store them for
later commands.

Examples:

    $ archctl login http://archiva.example.com:8080 -u USERNAME -p PASSWORD

    # login by stdin
    $ echo PASSWORD | archctl login http://archiva.example.com:8080 -u USERNAME --password-stdin
`

func newLoginCmd(cfg *action.Configuration, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login [host]",
		Short: "verify and store credentials for an Archiva instance",
		Long:  loginDesc,
		Args:  require.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			host := args[0]
			username, password, err := getUsernamePassword(settings.Username, settings.Password, settings.PasswordFromStdin)
			if err != nil {
				return err
			}

			return action.NewLogin(cfg).Run(out, host, username, password, settings.SetReferer)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&settings.PasswordFromStdin, "password-stdin", "", false, "read password from stdin")

	return cmd
}

// Adapted from https://github.com/oras-project/oras
func getUsernamePassword(usernameOpt string, passwordOpt string, passwordFromStdinOpt bool) (string, string, error) {
	var err error
	username := usernameOpt
	password := passwordOpt

	if passwordFromStdinOpt {
		passwordFromStdin, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", err
		}
		password = strings.TrimSuffix(string(passwordFromStdin), "\n")
		password = strings.TrimSuffix(password, "\r")
	} else {
		if password != "" {
			warning("Using --password via the CLI is insecure. Use --password-stdin.")
		}

		if username == "" {
			username, err = readLine("Username: ", false)
			if err != nil {
				return "", "", err
			}
			username = strings.TrimSpace(username)
		}

		if password == "" {
			password, err = readLine("Password: ", true)
			if err != nil {
				return "", "", err
			} else if password == "" {
				return "", "", errors.New("password required")
			}
		}
	}

	return username, password, nil
}

// Copied/adapted from https://github.com/oras-project/oras
func readLine(prompt string, silent bool) (string, error) {
	fmt.Print(prompt)
	if silent {
		fd := os.Stdin.Fd()
		state, err := term.SaveState(fd)
		if err != nil {
			return "", err
		}
		term.DisableEcho(fd, state)
		defer term.RestoreTerminal(fd, state)
	}

	reader := bufio.NewReader(os.Stdin)
	line, _, err := reader.ReadLine()
	if err != nil {
		return "", err
	}
	if silent {
		fmt.Println()
	}

	return string(line), nil
}
