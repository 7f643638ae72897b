package snapshots

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/lidocrawler/internal/common"
	"github.com/dmitrijs2005/lidocrawler/internal/crawler/models"
	"github.com/dmitrijs2005/lidocrawler/internal/dbx"
)

const columns = `id, icao, nav_data_airport_id, country, city, name, latitude, longitude, elevation, longest_runway, captured_at`

type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

func (r *SQLRepository) Create(ctx context.Context, s *models.AirportSnapshot) (*models.AirportSnapshot, error) {
	query := `INSERT INTO airport_information (icao, nav_data_airport_id, country, city, name,
		latitude, longitude, elevation, longest_runway, captured_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := r.dialect.InsertID(ctx, r.db, query,
		s.ICAO, s.NavDataAirportID, s.Country, s.City, s.Name,
		s.Latitude, s.Longitude, s.Elevation, s.LongestRunway, s.CapturedAt.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to insert airport information: %w", err)
	}
	s.ID = id
	return s, nil
}

func (r *SQLRepository) ExistsForICAO(ctx context.Context, icao string) (bool, error) {
	query := `SELECT 1 FROM airport_information WHERE icao = ? LIMIT 1`

	var one int
	err := r.db.QueryRowContext(ctx, r.dialect.Rebind(query), icao).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("db error: %w", err)
	}
	return true, nil
}

func (r *SQLRepository) GetByID(ctx context.Context, id int64) (*models.AirportSnapshot, error) {
	query := `SELECT ` + columns + ` FROM airport_information WHERE id = ?`

	s, err := scan(r.db.QueryRowContext(ctx, r.dialect.Rebind(query), id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

func (r *SQLRepository) ListByICAO(ctx context.Context, icao string) ([]*models.AirportSnapshot, error) {
	query := `SELECT ` + columns + ` FROM airport_information WHERE icao = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(query), icao)
	if err != nil {
		return nil, fmt.Errorf("failed to select airport information: %w", err)
	}
	defer rows.Close()

	var result []*models.AirportSnapshot
	for rows.Next() {
		s, err := scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (*models.AirportSnapshot, error) {
	s := &models.AirportSnapshot{}
	err := row.Scan(&s.ID, &s.ICAO, &s.NavDataAirportID, &s.Country, &s.City, &s.Name,
		&s.Latitude, &s.Longitude, &s.Elevation, &s.LongestRunway, &s.CapturedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}
