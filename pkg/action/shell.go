package action

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/xompass/archctl/pkg/archiva"
	"github.com/xompass/archctl/pkg/instruction"
	"github.com/xompass/archctl/pkg/log"
	"github.com/xompass/archctl/pkg/settings"
	"github.com/xompass/archctl/pkg/util/jsonutil"
)

// Shell runs the interactive read-eval loop over the instruction
// grammar inside a single login/logout pair.
type Shell struct {
	cfg *Configuration
}

func NewShell(cfg *Configuration) *Shell {
	return &Shell{cfg: cfg}
}

func (a *Shell) Run(in io.Reader, out io.Writer) error {
	s, err := a.cfg.session()
	if err != nil {
		return err
	}

	ctx := context.Background()
	return s.With(ctx, func(s *archiva.Session) error {
		scanner := bufio.NewScanner(in)
		for {
			_, _ = fmt.Fprint(out, "> ")
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if line == "q" || line == "quit" || line == "exit" {
				break
			}

			ins, err := instruction.Parse(line)
			if err != nil {
				// unrecognized input keeps the shell alive
				log.Error(err.Error())
				continue
			}
			if ins.Kind == instruction.KindInteractive {
				continue
			}
			if err := Dispatch(ctx, s, ins); err != nil {
				return err
			}
		}
		return scanner.Err()
	})
}

// Dispatch runs one parsed instruction against an authenticated
// session, writing results through the threshold-independent log
// channel.
func Dispatch(ctx context.Context, s *archiva.Session, ins *instruction.Instruction) error {
	switch ins.Kind {
	case instruction.KindVersionsList:
		list, err := s.VersionsList(ctx, ins.Group, ins.Name)
		if err != nil {
			return err
		}
		return printJSON(list)

	case instruction.KindDownloadInfos:
		infos, err := s.DownloadInfos(ctx, ins.Group, ins.Name, ins.Version)
		if err != nil {
			return err
		}
		return printJSON(infos)

	case instruction.KindDownload:
		filename, found, err := s.Download(ctx, ins.Group, ins.Name, ins.Version, settings.Output)
		if err != nil {
			return err
		}
		if !found {
			log.Warn("no artifacts match " + ins.Group + ":" + ins.Name + ":" + ins.Version)
			return nil
		}
		log.Print(filename)
		return nil
	}
	return nil
}

func printJSON(v interface{}) error {
	text, err := jsonutil.MarshalToString(v)
	if err != nil {
		return err
	}
	log.Print(text)
	return nil
}
