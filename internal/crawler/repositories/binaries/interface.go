package binaries

import (
	"context"

	"github.com/dmitrijs2005/lidocrawler/internal/crawler/models"
)

type Repository interface {
	// Create inserts b and fills in its generated ID.
	Create(ctx context.Context, b *models.ChartBinary) (*models.ChartBinary, error)

	// GetByID returns common.ErrorNotFound when no binary has the id.
	GetByID(ctx context.Context, id int64) (*models.ChartBinary, error)
}
