package cli

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/lidocrawler/internal/crawler/config"
	"github.com/dmitrijs2005/lidocrawler/internal/crawler/models"
	"github.com/dmitrijs2005/lidocrawler/internal/crawler/navdata"
	"github.com/dmitrijs2005/lidocrawler/internal/crawler/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// navDataServer answers with two German airports holding one chart each.
func navDataServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /airports", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"airports":[
			{"icao":"EDDF","iata":"FRA","airport_id":"10","country":"DE","name":"Frankfurt"},
			{"icao":"EDDM","iata":"MUC","airport_id":"11","country":"DE","name":"Munich"}
		]}`)
	})
	mux.HandleFunc("POST /catalogue", func(w http.ResponseWriter, r *http.Request) {
		icao := r.FormValue("icao")
		fmt.Fprintf(w, `{"catalogue":[{"chart_id":"%s-1","chart_type":"APT","chart_name":"Airport","geo_chart":"1"}]}`, icao)
	})
	mux.HandleFunc("POST /chart", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"download_id":"dl-%s"}`, r.FormValue("chartId"))
	})
	mux.HandleFunc("POST /download/{id}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "%PDF "+r.PathValue("id"))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(t *testing.T, apiURL string) *config.Config {
	t.Helper()
	c := &config.Config{}
	c.LoadDefaults()
	c.Session = "S1"
	c.APIBaseURL = apiURL
	c.HTTPTimeout = 5 * time.Second
	c.DBDSN = filepath.Join(t.TempDir(), "db", "lido.sqlite")
	return c
}

func countRows(t *testing.T, dsn, table string) int {
	t.Helper()
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	defer db.Close()
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func runApp(t *testing.T, c *config.Config, input string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app, err := NewApp(context.Background(), c, strings.NewReader(input), &out, io.Discard)
	require.NoError(t, err)
	err = app.Run(context.Background())
	return out.String(), err
}

func TestApp_ConfirmedCrawl(t *testing.T) {
	srv := navDataServer(t)
	c := testConfig(t, srv.URL)
	c.Countries = []string{"DE"}
	c.ReportPath = filepath.Join(t.TempDir(), "report.csv")

	out, err := runApp(t, c, "y\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Found 2 airports for [DE].")
	assert.Contains(t, out, confirmPrompt)
	assert.Contains(t, out, "[1/2] Collecting charts for EDDF")
	assert.Contains(t, out, "[2/2] Saved EDDM (1 charts, 14 B)")
	assert.Contains(t, out, "Captured 2 airports (2 charts, 28 B), skipped 0.")

	assert.Equal(t, 2, countRows(t, c.DBDSN, "airports"))
	assert.Equal(t, 2, countRows(t, c.DBDSN, "charts"))

	f, err := os.Open(c.ReportPath)
	require.NoError(t, err)
	defer f.Close()
	outcomes, err := report.Read(f)
	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	assert.Equal(t, "EDDF", outcomes[0].ICAO)
	assert.Equal(t, models.OutcomeCaptured, outcomes[1].Status)
}

func TestApp_SecondRunSkipsKnownAirports(t *testing.T) {
	srv := navDataServer(t)
	c := testConfig(t, srv.URL)
	c.AssumeYes = true

	_, err := runApp(t, c, "")
	require.NoError(t, err)

	out, err := runApp(t, c, "")
	require.NoError(t, err)
	assert.NotContains(t, out, confirmPrompt)
	assert.Contains(t, out, "Captured 0 airports (0 charts, 0 B), skipped 2.")
	assert.Equal(t, 2, countRows(t, c.DBDSN, "airport_information"))

	c.Update = true
	_, err = runApp(t, c, "")
	require.NoError(t, err)
	assert.Equal(t, 4, countRows(t, c.DBDSN, "airport_information"))
	assert.Equal(t, 2, countRows(t, c.DBDSN, "airports"))
}

func TestApp_Declined(t *testing.T) {
	srv := navDataServer(t)
	c := testConfig(t, srv.URL)
	c.ReportPath = filepath.Join(t.TempDir(), "report.csv")

	out, err := runApp(t, c, "n\n")
	require.NoError(t, err)
	assert.NotContains(t, out, "Captured")
	assert.Equal(t, 0, countRows(t, c.DBDSN, "airport_information"))
	assert.NoFileExists(t, c.ReportPath)
}

func TestApp_APIFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)
	c := testConfig(t, srv.URL)
	c.AssumeYes = true

	_, err := runApp(t, c, "")
	require.ErrorIs(t, err, navdata.ErrUnexpectedStatus)
}

func TestNewApp_BadDriver(t *testing.T) {
	c := testConfig(t, "http://127.0.0.1:1")
	c.DBDriver = "oracle"

	_, err := NewApp(context.Background(), c, strings.NewReader(""), io.Discard, io.Discard)
	require.Error(t, err)
}
