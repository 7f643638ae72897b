package charts

import (
	"context"

	"github.com/dmitrijs2005/lidocrawler/internal/crawler/models"
)

type Repository interface {
	// Create inserts c and fills in its generated ID. Referencing a binary
	// already owned by another chart fails.
	Create(ctx context.Context, c *models.Chart) (*models.Chart, error)

	// ListBySnapshot returns the charts of one snapshot in insertion order.
	ListBySnapshot(ctx context.Context, snapshotID int64) ([]*models.Chart, error)

	// CountBySnapshot is ListBySnapshot without materializing rows.
	CountBySnapshot(ctx context.Context, snapshotID int64) (int64, error)
}
