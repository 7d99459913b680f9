package action

import (
	"context"
	"io"

	"github.com/xompass/archctl/pkg/archiva"
	"github.com/xompass/archctl/pkg/instruction"
)

// Exec runs a single instruction line; the literal "i" hands over to
// the interactive shell.
type Exec struct {
	cfg *Configuration
}

func NewExec(cfg *Configuration) *Exec {
	return &Exec{cfg: cfg}
}

func (a *Exec) Run(in io.Reader, out io.Writer, line string) error {
	ins, err := instruction.Parse(line)
	if err != nil {
		return err
	}
	if ins.Kind == instruction.KindInteractive {
		return NewShell(a.cfg).Run(in, out)
	}

	s, err := a.cfg.session()
	if err != nil {
		return err
	}

	ctx := context.Background()
	return s.With(ctx, func(s *archiva.Session) error {
		return Dispatch(ctx, s, ins)
	})
}
