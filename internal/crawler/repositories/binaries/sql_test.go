package binaries

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/lidocrawler/internal/common"
	"github.com/dmitrijs2005/lidocrawler/internal/crawler/migrations"
	"github.com/dmitrijs2005/lidocrawler/internal/crawler/models"
	"github.com/dmitrijs2005/lidocrawler/internal/dbx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+filepath.Join(t.TempDir(), "b.db")+"?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, migrations.Up(context.Background(), db, dbx.DialectSQLite))
	return db
}

func TestCreateAndGet(t *testing.T) {
	r := NewSQLRepository(setupDB(t), dbx.DialectSQLite)
	ctx := context.Background()
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	b, err := r.Create(ctx, &models.ChartBinary{MimeType: models.DefaultChartMimeType, CreationDate: at, Data: []byte("%PDF-1.7")})
	require.NoError(t, err)
	require.NotZero(t, b.ID)

	got, err := r.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultChartMimeType, got.MimeType)
	assert.Equal(t, []byte("%PDF-1.7"), got.Data)
	assert.True(t, at.Equal(got.CreationDate))
}

func TestCreate_IDsAreDistinct(t *testing.T) {
	r := NewSQLRepository(setupDB(t), dbx.DialectSQLite)
	ctx := context.Background()

	a, err := r.Create(ctx, &models.ChartBinary{MimeType: "application/pdf", CreationDate: time.Now(), Data: []byte("same")})
	require.NoError(t, err)
	b, err := r.Create(ctx, &models.ChartBinary{MimeType: "application/pdf", CreationDate: time.Now(), Data: []byte("same")})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestGetByID_NotFound(t *testing.T) {
	r := NewSQLRepository(setupDB(t), dbx.DialectSQLite)
	_, err := r.GetByID(context.Background(), 1)
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestCreate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO chart_binaries`).WillReturnError(errors.New("disk full"))

	r := NewSQLRepository(db, dbx.DialectMySQL)
	_, err = r.Create(context.Background(), &models.ChartBinary{MimeType: "application/pdf", CreationDate: time.Now()})
	require.ErrorContains(t, err, "failed to insert chart binary")
	require.ErrorContains(t, err, "disk full")
	require.NoError(t, mock.ExpectationsWereMet())
}
