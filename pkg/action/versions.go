package action

import (
	"context"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/xompass/archctl/pkg/archiva"
	"github.com/xompass/archctl/pkg/instruction"
)

// Versions lists the available versions of one artifact coordinate.
type Versions struct {
	cfg *Configuration
}

func NewVersions(cfg *Configuration) *Versions {
	return &Versions{cfg: cfg}
}

func (a *Versions) Run(out io.Writer, coordinate string) error {
	group, name, err := instruction.SplitCoordinate(coordinate)
	if err != nil {
		return err
	}

	s, err := a.cfg.session()
	if err != nil {
		return err
	}

	ctx := context.Background()
	return s.With(ctx, func(s *archiva.Session) error {
		list, err := s.VersionsList(ctx, group, name)
		if err != nil {
			return err
		}
		renderVersions(out, group, name, list)
		return nil
	})
}

func renderVersions(w io.Writer, group, name string, list *archiva.VersionsList) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Group ID", "Artifact ID", "Version"})
	table.SetFooter([]string{"", "Versions", strconv.Itoa(len(list.Versions))})
	table.SetAutoMergeCells(true)
	table.SetRowLine(true)
	for _, v := range list.Versions {
		table.Append([]string{group, name, v})
	}
	table.Render()
}
