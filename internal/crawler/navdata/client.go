package navdata

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lidocrawler/internal/crawler/models"
)

// DefaultBaseURL is the production API root.
const DefaultBaseURL = "https://navdatapro.aerosoft.com/api/v3"

type Client interface {
	// ListAirports returns the airports visible to session. An empty country
	// asks for the unscoped directory.
	ListAirports(ctx context.Context, session, country string) (*models.AirportSet, error)
	// ListCharts returns an airport's catalogue in server order.
	ListCharts(ctx context.Context, session, icao string) ([]models.ChartRecord, error)
	// ResolveDownloadID exchanges a chart id for a one-shot download id.
	ResolveDownloadID(ctx context.Context, session, chartID string) (string, error)
	// FetchChartBinary downloads the document behind downloadID.
	FetchChartBinary(ctx context.Context, downloadID string) ([]byte, error)
}

// ResolveTargets merges one ListAirports call per country filter into a
// single set; later filters overwrite earlier ones for shared codes. With no
// filters a single unscoped lookup is made.
func ResolveTargets(ctx context.Context, c Client, session string, countries []string) (*models.AirportSet, error) {
	if len(countries) == 0 {
		return c.ListAirports(ctx, session, "")
	}

	out := models.NewAirportSet()
	for _, country := range countries {
		set, err := c.ListAirports(ctx, session, country)
		if err != nil {
			return nil, fmt.Errorf("list airports for %q: %w", country, err)
		}
		out.Merge(set)
	}
	return out, nil
}
