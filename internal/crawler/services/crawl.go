package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/lidocrawler/internal/crawler/models"
	"github.com/dmitrijs2005/lidocrawler/internal/crawler/navdata"
	"github.com/dmitrijs2005/lidocrawler/internal/logging"
	"github.com/google/uuid"
)

// Progress receives crawl events for display. Implementations must not block.
type Progress interface {
	TargetsResolved(total int, countries []string)
	AirportSkipped(index, total int, icao string)
	PauseTick(index, total int, remaining int)
	AirportStarted(index, total int, icao string)
	ChartDownloaded(index, total int, icao string, chart, charts int, rec models.ChartRecord)
	AirportPersisted(index, total int, icao string, res *models.PersistResult)
}

// Confirmer asks whether to go ahead with the resolved targets.
type Confirmer interface {
	Confirm(ctx context.Context, targets *models.AirportSet, countries []string) (bool, error)
}

// Pauser is satisfied by *disguise.Pauser.
type Pauser interface {
	Pause(ctx context.Context, onTick func(remaining int)) (int, error)
}

// Archiver mirrors committed chart documents somewhere outside the store.
type Archiver interface {
	Archive(ctx context.Context, doc models.ChartDocument) (string, error)
}

type CrawlOptions struct {
	Session   string
	Countries []string
	Update    bool
	Disguise  bool
}

type AbortReason string

const (
	AbortNoTargets AbortReason = "no airports found"
	AbortDeclined  AbortReason = "declined"
)

type Summary struct {
	RunID      string
	StartedAt  time.Time
	FinishedAt time.Time
	Targets    int
	Captured   int
	Skipped    int
	Charts     int
	Bytes      int64
	Outcomes   []models.AirportOutcome
	// Aborted is set when the run ended before iterating airports.
	Aborted AbortReason
}

type CrawlService struct {
	client    navdata.Client
	store     SnapshotStore
	logger    logging.Logger
	confirmer Confirmer
	progress  Progress
	pauser    Pauser
	archiver  Archiver
	newRunID  func() string
	now       func() time.Time
}

type CrawlOption func(*CrawlService)

func WithConfirmer(c Confirmer) CrawlOption { return func(s *CrawlService) { s.confirmer = c } }
func WithProgress(p Progress) CrawlOption {
	return func(s *CrawlService) {
		if p != nil {
			s.progress = p
		}
	}
}
func WithPauser(p Pauser) CrawlOption { return func(s *CrawlService) { s.pauser = p } }
func WithArchiver(a Archiver) CrawlOption { return func(s *CrawlService) { s.archiver = a } }

// NewCrawlService wires a crawl. Without a Confirmer every target set is
// accepted; without a Pauser the disguise option has no effect.
func NewCrawlService(client navdata.Client, store SnapshotStore, logger logging.Logger, opts ...CrawlOption) *CrawlService {
	s := &CrawlService{
		client:   client,
		store:    store,
		logger:   logger,
		progress: nopProgress{},
		newRunID: uuid.NewString,
		now:      time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Run performs one crawl. The returned Summary is never nil, also on error,
// so callers can report partial progress. Commits made before a failure stay.
func (s *CrawlService) Run(ctx context.Context, opts CrawlOptions) (*Summary, error) {
	summary := &Summary{RunID: s.newRunID(), StartedAt: s.now()}
	defer func() { summary.FinishedAt = s.now() }()

	log := s.logger.With("run_id", summary.RunID)

	targets, err := navdata.ResolveTargets(ctx, s.client, opts.Session, opts.Countries)
	if err != nil {
		return summary, fmt.Errorf("resolve targets: %w", err)
	}
	summary.Targets = targets.Len()
	log.Info(ctx, "targets resolved", "airports", summary.Targets, "countries", opts.Countries)
	s.progress.TargetsResolved(summary.Targets, opts.Countries)

	if targets.Len() == 0 {
		summary.Aborted = AbortNoTargets
		return summary, nil
	}

	if s.confirmer != nil {
		ok, err := s.confirmer.Confirm(ctx, targets, opts.Countries)
		if err != nil {
			return summary, fmt.Errorf("confirm: %w", err)
		}
		if !ok {
			log.Info(ctx, "crawl declined")
			summary.Aborted = AbortDeclined
			return summary, nil
		}
	}

	processed := 0
	total := targets.Len()
	for i, rec := range targets.Items() {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		index := i + 1
		icao := string(rec.ICAO)
		alog := log.With("icao", icao)

		exists, err := s.store.Exists(ctx, icao)
		if err != nil {
			s.fail(summary, icao, 0, err)
			return summary, err
		}
		if exists && !opts.Update {
			alog.Debug(ctx, "airport skipped")
			s.progress.AirportSkipped(index, total, icao)
			summary.Skipped++
			summary.Outcomes = append(summary.Outcomes, models.AirportOutcome{ICAO: icao, Status: models.OutcomeSkipped, FinishedAt: s.now()})
			continue
		}

		paused := 0
		if opts.Disguise && s.pauser != nil && processed > 0 {
			paused, err = s.pauser.Pause(ctx, func(remaining int) { s.progress.PauseTick(index, total, remaining) })
			if err != nil {
				s.fail(summary, icao, paused, err)
				return summary, fmt.Errorf("disguise pause: %w", err)
			}
			alog.Debug(ctx, "disguise pause", "seconds", paused)
		}
		processed++

		s.progress.AirportStarted(index, total, icao)
		outcome, err := s.captureAirport(ctx, alog, index, total, opts.Session, rec)
		if err != nil {
			s.fail(summary, icao, paused, err)
			return summary, err
		}
		outcome.PauseSeconds = paused

		summary.Captured++
		summary.Charts += outcome.Charts
		summary.Bytes += outcome.Bytes
		summary.Outcomes = append(summary.Outcomes, outcome)
	}

	log.Info(ctx, "crawl finished",
		"captured", summary.Captured, "skipped", summary.Skipped,
		"charts", summary.Charts, "bytes", summary.Bytes)
	return summary, nil
}

// captureAirport downloads every chart of one airport, holding them in memory,
// and persists the lot in one unit.
func (s *CrawlService) captureAirport(ctx context.Context, log logging.Logger, index, total int, session string, rec models.AirportRecord) (models.AirportOutcome, error) {
	icao := string(rec.ICAO)

	charts, err := s.client.ListCharts(ctx, session, icao)
	if err != nil {
		return models.AirportOutcome{}, fmt.Errorf("list charts for %s: %w", icao, err)
	}
	log.Debug(ctx, "catalogue fetched", "charts", len(charts))

	binaries := make(map[string][]byte, len(charts))
	for j, ch := range charts {
		id := string(ch.ChartID)
		downloadID, err := s.client.ResolveDownloadID(ctx, session, id)
		if err != nil {
			return models.AirportOutcome{}, fmt.Errorf("resolve chart %s of %s: %w", id, icao, err)
		}
		data, err := s.client.FetchChartBinary(ctx, downloadID)
		if err != nil {
			return models.AirportOutcome{}, fmt.Errorf("download chart %s of %s: %w", id, icao, err)
		}
		binaries[id] = data
		s.progress.ChartDownloaded(index, total, icao, j+1, len(charts), ch)
	}

	res, err := s.store.Persist(ctx, rec, charts, binaries)
	if err != nil {
		return models.AirportOutcome{}, err
	}
	s.progress.AirportPersisted(index, total, icao, res)
	log.Info(ctx, "airport captured",
		"snapshot_id", res.SnapshotID, "charts", len(charts), "bytes", res.Bytes,
		"existed", res.AirportExists, "latest_advanced", res.LatestAdvanced)

	if s.archiver != nil {
		for j, ch := range charts {
			key, err := s.archiver.Archive(ctx, models.ChartDocument{
				ICAO:       icao,
				SnapshotID: res.SnapshotID,
				BinaryID:   res.BinaryIDs[j],
				ChartID:    string(ch.ChartID),
				ChartType:  string(ch.ChartType),
				ChartName:  string(ch.ChartName),
				MimeType:   models.DefaultChartMimeType,
				Data:       binaries[string(ch.ChartID)],
			})
			if err != nil {
				return models.AirportOutcome{}, fmt.Errorf("archive chart %s of %s: %w", ch.ChartID, icao, err)
			}
			log.Debug(ctx, "chart archived", "key", key)
		}
	}

	return models.AirportOutcome{
		ICAO:       icao,
		Status:     models.OutcomeCaptured,
		SnapshotID: res.SnapshotID,
		Charts:     len(charts),
		Bytes:      res.Bytes,
		FinishedAt: s.now(),
	}, nil
}

func (s *CrawlService) fail(summary *Summary, icao string, paused int, err error) {
	summary.Outcomes = append(summary.Outcomes, models.AirportOutcome{
		ICAO:         icao,
		Status:       models.OutcomeFailed,
		PauseSeconds: paused,
		FinishedAt:   s.now(),
		Error:        err.Error(),
	})
}

type nopProgress struct{}

func (nopProgress) TargetsResolved(int, []string) {}
func (nopProgress) AirportSkipped(int, int, string) {}
func (nopProgress) PauseTick(int, int, int) {}
func (nopProgress) AirportStarted(int, int, string) {}
func (nopProgress) ChartDownloaded(int, int, string, int, int, models.ChartRecord) {}
func (nopProgress) AirportPersisted(int, int, string, *models.PersistResult) {}
