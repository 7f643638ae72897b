package navdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/lidocrawler/internal/crawler/models"
	"github.com/dmitrijs2005/lidocrawler/internal/netx"
)

// DefaultUserAgent mimics a desktop browser.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

type HTTPClient struct {
	baseURL   string
	userAgent string
	http      *http.Client
}

// NewHTTPClient returns a client rooted at baseURL. A zero timeout leaves
// requests bounded only by their context.
func NewHTTPClient(baseURL, userAgent string, timeout time.Duration) *HTTPClient {
	return NewHTTPClientWith(baseURL, userAgent, &http.Client{Timeout: timeout})
}

// NewHTTPClientWith uses hc for every request.
func NewHTTPClientWith(baseURL, userAgent string, hc *http.Client) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &HTTPClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		http:      hc,
	}
}

func (c *HTTPClient) ListAirports(ctx context.Context, session, country string) (*models.AirportSet, error) {
	var res struct {
		Airports *[]models.AirportRecord `json:"airports"`
	}
	form := url.Values{"sessionId": {session}, "country": {country}}
	if err := c.postJSON(ctx, "/airports", form, &res); err != nil {
		return nil, err
	}
	if res.Airports == nil {
		return nil, fmt.Errorf("%w: no airports key", ErrMalformedResponse)
	}

	set := models.NewAirportSet()
	for _, a := range *res.Airports {
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
		}
		set.Put(a)
	}
	return set, nil
}

func (c *HTTPClient) ListCharts(ctx context.Context, session, icao string) ([]models.ChartRecord, error) {
	var res struct {
		Catalogue *[]models.ChartRecord `json:"catalogue"`
	}
	form := url.Values{"sessionId": {session}, "icao": {icao}}
	if err := c.postJSON(ctx, "/catalogue", form, &res); err != nil {
		return nil, err
	}
	if res.Catalogue == nil {
		return nil, fmt.Errorf("%w: no catalogue key", ErrMalformedResponse)
	}

	for _, ch := range *res.Catalogue {
		if err := ch.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
		}
	}
	return *res.Catalogue, nil
}

func (c *HTTPClient) ResolveDownloadID(ctx context.Context, session, chartID string) (string, error) {
	var res struct {
		DownloadID *models.FlexString `json:"download_id"`
	}
	form := url.Values{"sessionId": {session}, "chartId": {chartID}}
	if err := c.postJSON(ctx, "/chart", form, &res); err != nil {
		return "", err
	}
	if res.DownloadID == nil || *res.DownloadID == "" {
		return "", fmt.Errorf("%w: no download_id key", ErrMalformedResponse)
	}
	return string(*res.DownloadID), nil
}

func (c *HTTPClient) FetchChartBinary(ctx context.Context, downloadID string) ([]byte, error) {
	data, err := netx.PostForm(ctx, c.http, c.baseURL+"/download/"+url.PathEscape(downloadID), nil, c.header())
	if err != nil {
		return nil, mapError(err)
	}
	return data, nil
}

func (c *HTTPClient) postJSON(ctx context.Context, path string, form url.Values, dst any) error {
	data, err := netx.PostForm(ctx, c.http, c.baseURL+path, form, c.header())
	if err != nil {
		return mapError(err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrMalformedResponse, path, err)
	}
	return nil
}

func (c *HTTPClient) header() http.Header {
	h := http.Header{"Accept": {"application/json, */*"}}
	if c.userAgent != "" {
		h.Set("User-Agent", c.userAgent)
	}
	return h
}

func mapError(err error) error {
	var se *netx.StatusError
	if errors.As(err, &se) {
		return fmt.Errorf("%w: %w", ErrUnexpectedStatus, err)
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}
