package airports

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/lidocrawler/internal/common"
	"github.com/dmitrijs2005/lidocrawler/internal/crawler/models"
	"github.com/dmitrijs2005/lidocrawler/internal/dbx"
)

// SQLRepository implements Repository over a DBTX (either *sql.DB or *sql.Tx).
type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

func (r *SQLRepository) Create(ctx context.Context, a *models.Airport) error {
	query := `INSERT INTO airports (icao, iata, latest_information) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, r.dialect.Rebind(query), a.ICAO, a.IATA, a.LatestInformation)
	if err != nil {
		return fmt.Errorf("failed to insert airport: %w", err)
	}
	return nil
}

func (r *SQLRepository) GetByICAO(ctx context.Context, icao string) (*models.Airport, error) {
	query := `SELECT icao, iata, latest_information FROM airports WHERE icao = ?`

	a := &models.Airport{}
	err := r.db.QueryRowContext(ctx, r.dialect.Rebind(query), icao).Scan(&a.ICAO, &a.IATA, &a.LatestInformation)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

// UpdateLatest expects exactly one row to be affected.
func (r *SQLRepository) UpdateLatest(ctx context.Context, icao string, snapshotID int64) error {
	query := `UPDATE airports SET latest_information = ? WHERE icao = ?`
	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(query), snapshotID, icao)
	if err != nil {
		return fmt.Errorf("failed to update airport: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *SQLRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM airports`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
