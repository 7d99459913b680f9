package action

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/xompass/archctl/pkg/archiva"
	"github.com/xompass/archctl/pkg/config"
)

// Login verifies credentials against the remote instance and stores
// them in the credential file.
type Login struct {
	cfg *Configuration
}

func NewLogin(cfg *Configuration) *Login {
	return &Login{cfg: cfg}
}

func (a *Login) Run(out io.Writer, host, username, password string, setReferer bool) error {
	var options []archiva.SessionOption
	if setReferer {
		options = append(options, archiva.SessionOptReferer())
	}
	s := archiva.NewSession(host, username, password, options...)

	// a real login/logout round trip, not just a syntax check
	if err := s.With(context.Background(), func(*archiva.Session) error { return nil }); err != nil {
		return errors.Wrap(err, "login verification failed")
	}

	configFile, err := config.Load(a.cfg.ConfigFile)
	if err != nil {
		return err
	}
	if err := configFile.StoreAuth(config.AuthConfig{
		Username:      username,
		Password:      password,
		ServerAddress: s.Host(),
	}); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(out, "Login Succeeded")
	return nil
}
