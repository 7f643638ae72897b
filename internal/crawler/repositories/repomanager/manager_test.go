package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/dmitrijs2005/lidocrawler/internal/crawler/repositories/airports"
	"github.com/dmitrijs2005/lidocrawler/internal/crawler/repositories/binaries"
	"github.com/dmitrijs2005/lidocrawler/internal/crawler/repositories/charts"
	"github.com/dmitrijs2005/lidocrawler/internal/crawler/repositories/snapshots"
	"github.com/dmitrijs2005/lidocrawler/internal/dbx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_VendsSQLRepositories(t *testing.T) {
	db := &sql.DB{}
	m := NewSQLRepositoryManager(dbx.DialectPostgres)

	assert.Equal(t, dbx.DialectPostgres, m.Dialect())
	assert.IsType(t, &airports.SQLRepository{}, m.Airports(db))
	assert.IsType(t, &snapshots.SQLRepository{}, m.Snapshots(db))
	assert.IsType(t, &charts.SQLRepository{}, m.Charts(db))
	assert.IsType(t, &binaries.SQLRepository{}, m.Binaries(db))

	var _ RepositoryManager = m
}

func TestRunMigrations_PassesDialect(t *testing.T) {
	orig := migrateUp
	t.Cleanup(func() { migrateUp = orig })

	var got dbx.Dialect
	migrateUp = func(ctx context.Context, db *sql.DB, d dbx.Dialect) error {
		got = d
		return nil
	}

	require.NoError(t, NewSQLRepositoryManager(dbx.DialectMySQL).RunMigrations(context.Background(), nil))
	assert.Equal(t, dbx.DialectMySQL, got)
}

func TestRunMigrations_PropagatesError(t *testing.T) {
	orig := migrateUp
	t.Cleanup(func() { migrateUp = orig })

	boom := errors.New("boom")
	migrateUp = func(ctx context.Context, db *sql.DB, d dbx.Dialect) error { return boom }

	err := NewSQLRepositoryManager(dbx.DialectSQLite).RunMigrations(context.Background(), nil)
	require.ErrorIs(t, err, boom)
}
