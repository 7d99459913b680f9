package action

import (
	"context"
	"io"
	"path/filepath"
	"strconv"
	"time"

	"github.com/vbauerster/mpb/v7"
	"github.com/vbauerster/mpb/v7/decor"

	"github.com/xompass/archctl/pkg/archiva"
	"github.com/xompass/archctl/pkg/instruction"
	"github.com/xompass/archctl/pkg/log"
	"github.com/xompass/archctl/pkg/log/logfields"
	"github.com/xompass/archctl/pkg/settings"
	"github.com/xompass/archctl/pkg/util/fileutil"
	"github.com/xompass/archctl/pkg/util/ioutils"
)

// Download fetches the first artifact matching a coordinate and
// version to a local file named after the artifact id.
type Download struct {
	cfg *Configuration
}

func NewDownload(cfg *Configuration) *Download {
	return &Download{cfg: cfg}
}

func (a *Download) Run(out io.Writer, coordinate, version string) error {
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
		info := infos[0]

		body, size, err := s.Fetch(ctx, &info)
		if err != nil {
			return err
		}
		defer ioutils.QuiteClose(body)

		if size <= 0 {
			size, _ = strconv.ParseInt(info.Size, 10, 64)
		}

		start := time.Now()
		dst := filepath.Join(settings.Output, info.Id)
		if err := writeWithProgress(out, dst, info.Id, body, size); err != nil {
			return err
		}

		log.Info("Saved artifact",
			logfields.String("file", dst),
			logfields.Duration("duration", time.Since(start)))
		return nil
	})
}

func writeWithProgress(out io.Writer, dst, name string, body io.Reader, size int64) error {
	if size <= 0 {
		// unknown length, plain copy
		return fileutil.WriteFile(dst, body)
	}

	p := mpb.New(mpb.WithWidth(80), mpb.WithOutput(out))
	bar := p.Add(
		size,
		mpb.NewBarFiller(mpb.BarStyle()),
		mpb.PrependDecorators(
			decor.Name(name+" ", decor.WC{W: len(name) + 1, C: decor.DidentRight}),
			decor.OnComplete(
				decor.AverageETA(decor.ET_STYLE_GO, decor.WC{W: 4}), "Done!",
			),
		),
		mpb.AppendDecorators(
			decor.CountersKibiByte("% .1f / % .1f  "),
			decor.Percentage(),
		),
	)

	reader := bar.ProxyReader(body)
	defer ioutils.QuiteClose(reader)

	if err := fileutil.WriteFile(dst, reader); err != nil {
		bar.Abort(false)
		p.Wait()
		return err
	}
	p.Wait()
	return nil
}
