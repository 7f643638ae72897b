package services

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/lidocrawler/internal/crawler/models"
	"github.com/dmitrijs2005/lidocrawler/internal/crawler/storage"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, advanceLatest bool) (*SnapshotService, *storage.Store) {
	t.Helper()
	st, err := storage.InitDatabase(context.Background(), "sqlite", filepath.Join(t.TempDir(), "lido.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return NewSnapshotService(st.DB, st.Repos, advanceLatest), st
}

func count(t *testing.T, db *sql.DB, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(query, args...).Scan(&n))
	return n
}

func rowCounts(t *testing.T, db *sql.DB) [4]int {
	t.Helper()
	return [4]int{
		count(t, db, `SELECT COUNT(*) FROM airports`),
		count(t, db, `SELECT COUNT(*) FROM airport_information`),
		count(t, db, `SELECT COUNT(*) FROM charts`),
		count(t, db, `SELECT COUNT(*) FROM chart_binaries`),
	}
}

func airport(icao string) models.AirportRecord {
	return models.AirportRecord{ICAO: models.FlexString(icao), IATA: "X" + models.FlexString(icao[1:]), Name: models.FlexString(icao + " Intl")}
}

func chart(id string) models.ChartRecord {
	return models.ChartRecord{ChartID: models.FlexString(id), ChartType: "APT", ChartName: models.FlexString("Chart " + id)}
}

// fakeAPI serves canned directory and catalogue data. Downloads return
// "pdf-<chartID>" unless failDownload names the chart.
type fakeAPI struct {
	airports     map[string][]models.AirportRecord
	charts       map[string][]models.ChartRecord
	failDownload map[string]error
	failCharts   error

	airportCalls []string
	chartCalls   []string
	fetches      []string
}

func (f *fakeAPI) ListAirports(ctx context.Context, session, country string) (*models.AirportSet, error) {
	f.airportCalls = append(f.airportCalls, country)
	s := models.NewAirportSet()
	for _, r := range f.airports[country] {
		s.Put(r)
	}
	return s, nil
}

func (f *fakeAPI) ListCharts(ctx context.Context, session, icao string) ([]models.ChartRecord, error) {
	f.chartCalls = append(f.chartCalls, icao)
	if f.failCharts != nil {
		return nil, f.failCharts
	}
	return f.charts[icao], nil
}

func (f *fakeAPI) ResolveDownloadID(ctx context.Context, session, chartID string) (string, error) {
	return "dl-" + chartID, nil
}

func (f *fakeAPI) FetchChartBinary(ctx context.Context, downloadID string) ([]byte, error) {
	id := strings.TrimPrefix(downloadID, "dl-")
	f.fetches = append(f.fetches, id)
	if err := f.failDownload[id]; err != nil {
		return nil, err
	}
	return []byte("pdf-" + id), nil
}
