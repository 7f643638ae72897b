// Package migrations embeds the store schema, one goose directory per
// supported dialect.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/dmitrijs2005/lidocrawler/internal/dbx"
	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql postgres/*.sql mysql/*.sql
var Migrations embed.FS

var gooseDialects = map[dbx.Dialect]string{
	dbx.DialectSQLite:   "sqlite3",
	dbx.DialectPostgres: "pgx",
	dbx.DialectMySQL:    "mysql",
}

// For returns the migration directory of d.
func For(d dbx.Dialect) (fs.FS, error) {
	if _, ok := gooseDialects[d]; !ok {
		return nil, fmt.Errorf("no migrations for dialect %q", d)
	}
	return fs.Sub(Migrations, string(d))
}

// Up applies every pending migration of d to db.
func Up(ctx context.Context, db *sql.DB, d dbx.Dialect) error {
	dir, err := For(d)
	if err != nil {
		return err
	}

	goose.SetBaseFS(dir)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(gooseDialects[d]); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
