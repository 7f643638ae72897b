package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/lidocrawler/internal/crawler/archive"
	"github.com/dmitrijs2005/lidocrawler/internal/crawler/config"
	"github.com/dmitrijs2005/lidocrawler/internal/crawler/disguise"
	"github.com/dmitrijs2005/lidocrawler/internal/crawler/navdata"
	"github.com/dmitrijs2005/lidocrawler/internal/crawler/report"
	"github.com/dmitrijs2005/lidocrawler/internal/crawler/services"
	"github.com/dmitrijs2005/lidocrawler/internal/crawler/storage"
	"github.com/dmitrijs2005/lidocrawler/internal/logging"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	store    *storage.Store
	crawl    *services.CrawlService
	progress *termProgress
	out      io.Writer
}

// NewApp opens the store and wires the crawl. User dialogue happens on in
// and out; logs go to errOut.
func NewApp(ctx context.Context, c *config.Config, in io.Reader, out, errOut io.Writer) (*App, error) {
	logger := logging.NewTextLogger(errOut, c.Debug)

	store, err := storage.InitDatabase(ctx, c.DBDriver, c.DBDSN)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}
	logger.Debug(ctx, "store ready", "driver", store.Dialect, "dsn", c.DBDSN)

	progress := newTermProgress(out)
	opts := []services.CrawlOption{services.WithProgress(progress)}
	if !c.AssumeYes {
		opts = append(opts, services.WithConfirmer(newPromptConfirmer(in, out)))
	}
	if c.Disguise {
		opts = append(opts, services.WithPauser(disguise.NewPauser(c.DisguiseMin, c.DisguiseMax)))
	}

	ac := archive.Config{
		Bucket:    c.S3Bucket,
		Region:    c.S3Region,
		Endpoint:  c.S3Endpoint,
		Prefix:    c.S3Prefix,
		AccessKey: c.S3AccessKey,
		SecretKey: c.S3SecretKey,
	}
	if ac.Enabled() {
		arch, err := archive.NewS3Archiver(ctx, ac)
		if err != nil {
			_ = store.Close()
			return nil, err
		}
		opts = append(opts, services.WithArchiver(arch))
	}

	api := navdata.NewHTTPClient(c.APIBaseURL, c.UserAgent, c.HTTPTimeout)
	snapshots := services.NewSnapshotService(store.DB, store.Repos, c.AdvanceLatest)

	return &App{
		config:   c,
		logger:   logger,
		store:    store,
		crawl:    services.NewCrawlService(api, snapshots, logger, opts...),
		progress: progress,
		out:      out,
	}, nil
}

// Run performs the crawl and closes the store. Termination signals cancel it;
// whatever was committed before stays.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	a.initSignalHandler(ctx, cancel)

	defer func() {
		if err := a.store.Close(); err != nil {
			a.logger.Warn(ctx, "close store", "error", err)
		}
	}()

	summary, err := a.crawl.Run(ctx, services.CrawlOptions{
		Session:   a.config.Session,
		Countries: a.config.Countries,
		Update:    a.config.Update,
		Disguise:  a.config.Disguise,
	})
	a.progress.Done()

	if a.config.ReportPath != "" && summary.Aborted == "" && len(summary.Outcomes) > 0 {
		if rerr := report.WriteFile(a.config.ReportPath, summary.Outcomes); rerr != nil {
			a.logger.Error(ctx, "write report", "path", a.config.ReportPath, "error", rerr)
			if err == nil {
				err = rerr
			}
		}
	}

	if err != nil {
		a.logger.Error(ctx, "crawl failed", "run_id", summary.RunID, "error", err)
		return err
	}

	a.printSummary(summary)
	return nil
}

func (a *App) printSummary(s *services.Summary) {
	if s.Aborted != "" {
		return
	}
	fmt.Fprintf(a.out, "Captured %d airports (%d charts, %s), skipped %d.\n",
		s.Captured, s.Charts, formatBytes(s.Bytes), s.Skipped)
}

func (a *App) initSignalHandler(ctx context.Context, cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			a.logger.Warn(ctx, "interrupted, stopping crawl")
			cancel()
		case <-ctx.Done():
		}
	}()
}
