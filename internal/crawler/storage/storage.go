// Package storage opens the crawler's relational store and brings its
// schema up to date.
//
// Three backends are supported; the driver name picks one:
//
//	sqlite    modernc.org/sqlite, DSN is a file path (default lido.sqlite)
//	postgres  github.com/jackc/pgx/v5 through database/sql
//	mysql     github.com/go-sql-driver/mysql
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/lidocrawler/internal/crawler/repositories/repomanager"
	"github.com/dmitrijs2005/lidocrawler/internal/dbx"
	"github.com/dmitrijs2005/lidocrawler/internal/filex"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

// DefaultSQLitePath matches the file name earlier crawls wrote to.
const DefaultSQLitePath = "lido.sqlite"

// Store bundles the open handle with the repositories for its dialect.
type Store struct {
	DB      *sql.DB
	Dialect dbx.Dialect
	Repos   repomanager.RepositoryManager
}

func (s *Store) Close() error {
	return s.DB.Close()
}

// InitDatabase opens the store, checks connectivity and applies pending
// migrations.
func InitDatabase(ctx context.Context, driver, dsn string) (*Store, error) {
	db, dialect, err := Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", dialect, err)
	}

	repos := repomanager.NewSQLRepositoryManager(dialect)
	if err := repos.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{DB: db, Dialect: dialect, Repos: repos}, nil
}

// Open returns a handle for driver without touching the network.
func Open(driver, dsn string) (*sql.DB, dbx.Dialect, error) {
	dialect, err := dbx.ParseDialect(driver)
	if err != nil {
		return nil, "", err
	}

	switch dialect {
	case dbx.DialectPostgres:
		cfg, err := pgx.ParseConfig(dsn)
		if err != nil {
			return nil, "", fmt.Errorf("parse postgres dsn: %w", err)
		}
		return stdlib.OpenDB(*cfg), dialect, nil

	case dbx.DialectMySQL:
		cfg, err := mysqlConfig(dsn)
		if err != nil {
			return nil, "", err
		}
		conn, err := mysql.NewConnector(cfg)
		if err != nil {
			return nil, "", fmt.Errorf("mysql connector: %w", err)
		}
		return sql.OpenDB(conn), dialect, nil

	default:
		source, path := sqliteDSN(dsn)
		if path != "" {
			if err := filex.EnsureParentDir(path); err != nil {
				return nil, "", err
			}
		}
		db, err := sql.Open("sqlite", source)
		if err != nil {
			return nil, "", err
		}
		// One writer at a time; the crawl is sequential anyway.
		db.SetMaxOpenConns(1)
		return db, dialect, nil
	}
}

// sqliteDSN turns a bare path into a modernc DSN with foreign keys enforced.
// DSNs already in file: form are passed through untouched. The returned path
// is empty when there is no file to create.
func sqliteDSN(dsn string) (source, path string) {
	if dsn == "" {
		dsn = DefaultSQLitePath
	}
	if strings.HasPrefix(dsn, "file:") || dsn == ":memory:" {
		return dsn, ""
	}
	return "file:" + dsn + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", dsn
}

// mysqlConfig forces parseTime so DATETIME columns scan into time.Time.
func mysqlConfig(dsn string) (*mysql.Config, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse mysql dsn: %w", err)
	}
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	return cfg, nil
}
