package snapshots

import (
	"context"

	"github.com/dmitrijs2005/lidocrawler/internal/crawler/models"
)

type Repository interface {
	// Create inserts s and fills in its generated ID.
	Create(ctx context.Context, s *models.AirportSnapshot) (*models.AirportSnapshot, error)

	// ExistsForICAO reports whether at least one snapshot has the code.
	ExistsForICAO(ctx context.Context, icao string) (bool, error)

	GetByID(ctx context.Context, id int64) (*models.AirportSnapshot, error)

	// ListByICAO returns all snapshots of an airport, oldest first.
	ListByICAO(ctx context.Context, icao string) ([]*models.AirportSnapshot, error)
}
