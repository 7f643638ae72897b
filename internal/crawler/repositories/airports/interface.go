package airports

import (
	"context"

	"github.com/dmitrijs2005/lidocrawler/internal/crawler/models"
)

type Repository interface {
	// Create inserts a new airport row.
	Create(ctx context.Context, a *models.Airport) error

	// GetByICAO returns common.ErrorNotFound when the code is unknown.
	GetByICAO(ctx context.Context, icao string) (*models.Airport, error)

	// UpdateLatest points the airport at snapshotID.
	UpdateLatest(ctx context.Context, icao string, snapshotID int64) error

	Count(ctx context.Context) (int64, error)
}
