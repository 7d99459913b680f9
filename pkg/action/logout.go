package action

import (
	"fmt"
	"io"

	"github.com/xompass/archctl/pkg/config"
)

// Logout removes stored credentials for a host.
type Logout struct {
	cfg *Configuration
}

func NewLogout(cfg *Configuration) *Logout {
	return &Logout{cfg: cfg}
}

func (a *Logout) Run(out io.Writer, host string) error {
	configFile, err := config.Load(a.cfg.ConfigFile)
	if err != nil {
		return err
	}
	if err := configFile.RemoveAuthConfig(host); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "Removing login credentials for %s\n", host)
	return nil
}
