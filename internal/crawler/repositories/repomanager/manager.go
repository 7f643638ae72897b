// Package repomanager vends repository implementations bound to a DBTX, so
// services can run the same repositories against *sql.DB or inside a
// transaction, and exposes the schema migration hook.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/lidocrawler/internal/crawler/migrations"
	"github.com/dmitrijs2005/lidocrawler/internal/crawler/repositories/airports"
	"github.com/dmitrijs2005/lidocrawler/internal/crawler/repositories/binaries"
	"github.com/dmitrijs2005/lidocrawler/internal/crawler/repositories/charts"
	"github.com/dmitrijs2005/lidocrawler/internal/crawler/repositories/snapshots"
	"github.com/dmitrijs2005/lidocrawler/internal/dbx"
)

type RepositoryManager interface {
	Dialect() dbx.Dialect
	RunMigrations(ctx context.Context, db *sql.DB) error
	Airports(db dbx.DBTX) airports.Repository
	Snapshots(db dbx.DBTX) snapshots.Repository
	Charts(db dbx.DBTX) charts.Repository
	Binaries(db dbx.DBTX) binaries.Repository
}

// SQLRepositoryManager hands out the database/sql repositories for one dialect.
type SQLRepositoryManager struct {
	dialect dbx.Dialect
}

func NewSQLRepositoryManager(dialect dbx.Dialect) *SQLRepositoryManager {
	return &SQLRepositoryManager{dialect: dialect}
}

func (m *SQLRepositoryManager) Dialect() dbx.Dialect { return m.dialect }

func (m *SQLRepositoryManager) Airports(db dbx.DBTX) airports.Repository {
	return airports.NewSQLRepository(db, m.dialect)
}

func (m *SQLRepositoryManager) Snapshots(db dbx.DBTX) snapshots.Repository {
	return snapshots.NewSQLRepository(db, m.dialect)
}

func (m *SQLRepositoryManager) Charts(db dbx.DBTX) charts.Repository {
	return charts.NewSQLRepository(db, m.dialect)
}

func (m *SQLRepositoryManager) Binaries(db dbx.DBTX) binaries.Repository {
	return binaries.NewSQLRepository(db, m.dialect)
}

// migrateUp is a seam for testing migrations.Up.
var migrateUp = migrations.Up

// RunMigrations applies the embedded schema for the manager's dialect.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return migrateUp(ctx, db, m.dialect)
}
