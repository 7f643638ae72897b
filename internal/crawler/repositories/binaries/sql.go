package binaries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/lidocrawler/internal/common"
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

func (r *SQLRepository) Create(ctx context.Context, b *models.ChartBinary) (*models.ChartBinary, error) {
	query := `INSERT INTO chart_binaries (mime_type, creation_date, data) VALUES (?, ?, ?)`

	id, err := r.dialect.InsertID(ctx, r.db, query, b.MimeType, b.CreationDate.UTC(), b.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to insert chart binary: %w", err)
	}
	b.ID = id
	return b, nil
}

func (r *SQLRepository) GetByID(ctx context.Context, id int64) (*models.ChartBinary, error) {
	query := `SELECT id, mime_type, creation_date, data FROM chart_binaries WHERE id = ?`

	b := &models.ChartBinary{}
	err := r.db.QueryRowContext(ctx, r.dialect.Rebind(query), id).Scan(&b.ID, &b.MimeType, &b.CreationDate, &b.Data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return b, nil
}
