package action

import (
	"github.com/pkg/errors"

	"github.com/xompass/archctl/pkg/archiva"
)

// Configuration injects the shared dependencies into actions.
type Configuration struct {
	// Session talks to the remote Archiva instance. Nil when no host
	// could be resolved from flags, environment or the config file.
	Session *archiva.Session

	// ConfigFile is the path to the credential store,
	// e.g. $HOME/.archctl/config.json
	ConfigFile string
}

func (cfg *Configuration) session() (*archiva.Session, error) {
	if cfg.Session == nil {
		return nil, errors.New("archiva host is required (set --host, ARCHIVA_HOST, or log in first)")
	}
	return cfg.Session, nil
}
