package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/lidocrawler/internal/common"
	"github.com/dmitrijs2005/lidocrawler/internal/crawler/models"
	"github.com/dmitrijs2005/lidocrawler/internal/crawler/repositories/repomanager"
	"github.com/dmitrijs2005/lidocrawler/internal/dbx"
)

var ErrMissingBinary = errors.New("no binary held for chart")

// SnapshotStore is what the crawl needs from persistence.
type SnapshotStore interface {
	// Exists reports whether any snapshot was ever captured for icao.
	Exists(ctx context.Context, icao string) (bool, error)

	// Persist writes one airport capture atomically. binaries is keyed by
	// chart id and must hold an entry for every chart.
	Persist(ctx context.Context, airport models.AirportRecord, charts []models.ChartRecord, binaries map[string][]byte) (*models.PersistResult, error)
}

type SnapshotService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	advanceLatest bool
	mimeType      string
	now           func() time.Time
}

// NewSnapshotService returns a store over db. With advanceLatest set, an
// existing airport's latest_information is moved to each new snapshot;
// otherwise it keeps pointing at the first one.
func NewSnapshotService(db *sql.DB, m repomanager.RepositoryManager, advanceLatest bool) *SnapshotService {
	return &SnapshotService{
		db:            db,
		repomanager:   m,
		advanceLatest: advanceLatest,
		mimeType:      models.DefaultChartMimeType,
		now:           time.Now,
	}
}

func (s *SnapshotService) Exists(ctx context.Context, icao string) (bool, error) {
	ok, err := s.repomanager.Snapshots(s.db).ExistsForICAO(ctx, icao)
	if err != nil {
		return false, fmt.Errorf("check airport %s: %w", icao, err)
	}
	return ok, nil
}

func (s *SnapshotService) Persist(ctx context.Context, airport models.AirportRecord, charts []models.ChartRecord, binaries map[string][]byte) (*models.PersistResult, error) {
	icao := string(airport.ICAO)
	for _, ch := range charts {
		if _, ok := binaries[string(ch.ChartID)]; !ok {
			return nil, fmt.Errorf("persist %s: chart %s: %w", icao, ch.ChartID, ErrMissingBinary)
		}
	}

	now := s.now().UTC()
	result := &models.PersistResult{}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		snapshot, err := s.repomanager.Snapshots(tx).Create(ctx, models.SnapshotFromRecord(airport, now))
		if err != nil {
			return err
		}
		result.SnapshotID = snapshot.ID

		airportsRepo := s.repomanager.Airports(tx)
		_, err = airportsRepo.GetByICAO(ctx, icao)
		switch {
		case errors.Is(err, common.ErrorNotFound):
			err = airportsRepo.Create(ctx, &models.Airport{ICAO: icao, IATA: string(airport.IATA), LatestInformation: snapshot.ID})
			if err != nil {
				return err
			}
			result.LatestAdvanced = true
		case err != nil:
			return err
		default:
			result.AirportExists = true
			if s.advanceLatest {
				if err := airportsRepo.UpdateLatest(ctx, icao, snapshot.ID); err != nil {
					return err
				}
				result.LatestAdvanced = true
			}
		}

		binRepo := s.repomanager.Binaries(tx)
		chartRepo := s.repomanager.Charts(tx)
		for _, ch := range charts {
			data := binaries[string(ch.ChartID)]
			bin, err := binRepo.Create(ctx, &models.ChartBinary{MimeType: s.mimeType, CreationDate: now, Data: data})
			if err != nil {
				return err
			}
			chart, err := chartRepo.Create(ctx, &models.Chart{
				AirportInformation: snapshot.ID,
				NavDataChartID:     string(ch.ChartID),
				Type:               string(ch.ChartType),
				Name:               string(ch.ChartName),
				GeoChart:           bool(ch.GeoChart),
				ChartBinary:        bin.ID,
			})
			if err != nil {
				return err
			}
			result.BinaryIDs = append(result.BinaryIDs, bin.ID)
			result.ChartIDs = append(result.ChartIDs, chart.ID)
			result.Bytes += int64(len(data))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("persist %s: %w", icao, err)
	}
	return result, nil
}
