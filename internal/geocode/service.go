// Package geocode proxies free-text search to the ORS Pelias endpoint and
// flattens its GeoJSON features into label/lat/lng results.
package geocode

import (
	"context"
	"log/slog"

	"rotas-gateway/internal/providers/openrouteservice"
)

// SearchProvider is the slice of the ORS client the geocode service uses.
type SearchProvider interface {
	GeocodeSearch(ctx context.Context, params openrouteservice.GeocodeParams) (*openrouteservice.GeocodeAPIResponse, error)
}

type Service interface {
	Search(ctx context.Context, q Query) ([]Result, error)
}

// Query is a geocode-search request with defaults already applied.
type Query struct {
	Text    string
	Limit   int
	Lang    string
	Country string // empty disables the country filter
	Focus   *openrouteservice.FocusPoint
	Rect    *openrouteservice.BoundingRect
}

// Result is one geocode hit in caller convention (latitude-first naming).
type Result struct {
	Label string  `json:"label"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
}

type geocodeService struct {
	provider SearchProvider
	logger   *slog.Logger
}

func NewService(provider SearchProvider, logger *slog.Logger) Service {
	return &geocodeService{
		provider: provider,
		logger:   logger.With("component", "geocode-service"),
	}
}

func (s *geocodeService) Search(ctx context.Context, q Query) ([]Result, error) {
	resp, err := s.provider.GeocodeSearch(ctx, openrouteservice.GeocodeParams{
		Text:    q.Text,
		Size:    q.Limit,
		Lang:    q.Lang,
		Country: q.Country,
		Focus:   q.Focus,
		Rect:    q.Rect,
	})
	if err != nil {
		s.logger.Error("geocode search failed", "text", q.Text, "error", err)
		return nil, err
	}

	results := make([]Result, 0, len(resp.Features))
	for _, feat := range resp.Features {
		if len(feat.Geometry.Coordinates) != 2 {
			continue
		}
		label := feat.Properties.Label
		if label == "" {
			label = feat.Properties.Name
		}
		if label == "" {
			label = "resultado"
		}
		results = append(results, Result{
			Label: label,
			Lng:   feat.Geometry.Coordinates[0],
			Lat:   feat.Geometry.Coordinates[1],
		})
	}
	return results, nil
}
