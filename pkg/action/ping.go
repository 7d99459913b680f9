package action

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/xompass/archctl/pkg/archiva"
)

// Ping probes the remote instance without authenticating.
type Ping struct {
	cfg *Configuration
}

func NewPing(cfg *Configuration) *Ping {
	return &Ping{cfg: cfg}
}

func (a *Ping) Run(out io.Writer, host string) error {
	if host == "" {
		return errors.New("archiva host is required (set --host or ARCHIVA_HOST)")
	}
	if err := archiva.Ping(context.Background(), host); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "%s is up\n", host)
	return nil
}
