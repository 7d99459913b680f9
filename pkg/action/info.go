package action

import (
	"context"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/xompass/archctl/pkg/archiva"
	"github.com/xompass/archctl/pkg/instruction"
	"github.com/xompass/archctl/pkg/log"
)

// Infos shows the download records behind one artifact version.
type Infos struct {
	cfg *Configuration
}

func NewInfos(cfg *Configuration) *Infos {
	return &Infos{cfg: cfg}
}

func (a *Infos) Run(out io.Writer, coordinate, version string) error {
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
		infos, err := s.DownloadInfos(ctx, group, name, version)
		if err != nil {
			return err
		}
		if len(infos) == 0 {
			log.Warn("no artifacts match " + group + ":" + name + ":" + version)
			return nil
		}
		renderInfos(out, infos)
		return nil
	})
}

func renderInfos(w io.Writer, infos []archiva.DownloadInfo) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Version", "Type", "Size", "Repository", "Path"})
	table.SetFooter([]string{"", "", "", "", "Artifacts", strconv.Itoa(len(infos))})
	table.SetRowLine(true)
	for _, info := range infos {
		table.Append([]string{info.Id, info.Version, info.FileExtension, info.Size, info.RepositoryId, info.Path})
	}
	table.Render()
}
