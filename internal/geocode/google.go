// README: Geocoder backed by the Google Geocoding API.
package geocode

import (
	"context"
	"errors"
	"fmt"
	"time"

	"googlemaps.github.io/maps"

	"viagem/internal/types"
)

// Client resolves addresses through the Google Maps Geocoding API.
type Client struct {
	client   *maps.Client
	language string
	region   string
	timeout  time.Duration
}

// NewClient creates a geocoding client with the given API key. Language and
// region bias results toward the deployment locale.
func NewClient(apiKey, language, region string, timeout time.Duration) (*Client, error) {
	c, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &Client{client: c, language: language, region: region, timeout: timeout}, nil
}

func (c *Client) Geocode(ctx context.Context, query string) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Geocode(ctx, &maps.GeocodingRequest{
		Address:  query,
		Language: c.language,
		Region:   c.region,
	})
	if err != nil {
		// A slow or unreachable service must surface as unavailable, never
		// as a crash or a spurious not-found.
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
			return Result{}, ErrUnavailable
		}
		return Result{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(resp) == 0 {
		return Result{}, ErrNotFound
	}

	best := resp[0]
	return Result{
		Label: best.FormattedAddress,
		Point: types.Point{Lat: best.Geometry.Location.Lat, Lng: best.Geometry.Location.Lng},
	}, nil
}
