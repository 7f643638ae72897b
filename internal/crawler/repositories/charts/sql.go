package charts

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lidocrawler/internal/crawler/models"
	"github.com/dmitrijs2005/lidocrawler/internal/dbx"
)

type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

func (r *SQLRepository) Create(ctx context.Context, c *models.Chart) (*models.Chart, error) {
	query := `INSERT INTO charts (airport_information, nav_data_chart_id, type, name, geo_chart, chart_binary)
		VALUES (?, ?, ?, ?, ?, ?)`

	id, err := r.dialect.InsertID(ctx, r.db, query,
		c.AirportInformation, c.NavDataChartID, c.Type, c.Name, c.GeoChart, c.ChartBinary)
	if err != nil {
		return nil, fmt.Errorf("failed to insert chart: %w", err)
	}
	c.ID = id
	return c, nil
}

func (r *SQLRepository) ListBySnapshot(ctx context.Context, snapshotID int64) ([]*models.Chart, error) {
	query := `SELECT id, airport_information, nav_data_chart_id, type, name, geo_chart, chart_binary
		FROM charts WHERE airport_information = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(query), snapshotID)
	if err != nil {
		return nil, fmt.Errorf("failed to select charts: %w", err)
	}
	defer rows.Close()

	var result []*models.Chart
	for rows.Next() {
		c := &models.Chart{}
		if err := rows.Scan(&c.ID, &c.AirportInformation, &c.NavDataChartID, &c.Type, &c.Name, &c.GeoChart, &c.ChartBinary); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLRepository) CountBySnapshot(ctx context.Context, snapshotID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM charts WHERE airport_information = ?`
	var n int64
	if err := r.db.QueryRowContext(ctx, r.dialect.Rebind(query), snapshotID).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
