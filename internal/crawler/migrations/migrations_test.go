package migrations

import (
	"context"
	"database/sql"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/lidocrawler/internal/dbx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func TestFor_EveryDialectHasInit(t *testing.T) {
	for _, d := range []dbx.Dialect{dbx.DialectSQLite, dbx.DialectPostgres, dbx.DialectMySQL} {
		dir, err := For(d)
		require.NoError(t, err, d)
		b, err := fs.ReadFile(dir, "00001_init.sql")
		require.NoError(t, err, d)
		assert.Contains(t, string(b), "-- +goose Up")
		assert.Contains(t, string(b), "chart_binaries")
	}
}

func TestFor_Unknown(t *testing.T) {
	_, err := For(dbx.Dialect("oracle"))
	require.Error(t, err)
}

func TestUp_SQLiteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "m.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Up(ctx, db, dbx.DialectSQLite))
	require.NoError(t, Up(ctx, db, dbx.DialectSQLite))

	for _, table := range []string{"airports", "airport_information", "charts", "chart_binaries", "goose_db_version"} {
		var n int
		require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&n))
		assert.Equal(t, 1, n, table)
	}
}
