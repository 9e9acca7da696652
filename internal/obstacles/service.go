// Package obstacles finds height-restricted map infrastructure (bridges,
// tunnels, low ways) inside a bounding box and filters it against a
// vehicle's height.
package obstacles

import (
	"context"
	"fmt"
	"log/slog"

	"rotas-gateway/internal/providers/overpass"
	"rotas-gateway/internal/types"
	"rotas-gateway/internal/units"
)

// BBox is the caller-supplied search window (latitude-first convention).
type BBox struct {
	South float64
	West  float64
	North float64
	East  float64
}

// Query describes one obstacle lookup. VehicleHeight, when set, keeps only
// features with a known parsed height strictly below it.
type Query struct {
	BBox          BBox
	Limit         int
	VehicleHeight *float64
}

// OverpassProvider is the slice of the Overpass client this service uses.
type OverpassProvider interface {
	Query(ctx context.Context, query string) (*overpass.QueryResponse, error)
}

type Service interface {
	FindObstacles(ctx context.Context, q Query) ([]types.ObstacleFeature, error)
}

type obstacleService struct {
	provider OverpassProvider
	logger   *slog.Logger
}

func NewService(provider OverpassProvider, logger *slog.Logger) Service {
	return &obstacleService{
		provider: provider,
		logger:   logger.With("component", "obstacle-service"),
	}
}

// Nodes and ways carrying maxheight / maxheight:physical inside the bbox.
// "out center" gives ways a representative coordinate.
const queryTemplate = `[out:json][timeout:25];
(
  node["maxheight"](%[1]v,%[2]v,%[3]v,%[4]v);
  way["maxheight"](%[1]v,%[2]v,%[3]v,%[4]v);
  node["maxheight:physical"](%[1]v,%[2]v,%[3]v,%[4]v);
  way["maxheight:physical"](%[1]v,%[2]v,%[3]v,%[4]v);
);
out tags center %[5]d;`

// BuildQuery renders the Overpass QL program for a bounding box. The limit
// also caps how many elements the interpreter returns.
func BuildQuery(b BBox, limit int) string {
	return fmt.Sprintf(queryTemplate, b.South, b.West, b.North, b.East, limit)
}

func (s *obstacleService) FindObstacles(ctx context.Context, q Query) ([]types.ObstacleFeature, error) {
	resp, err := s.provider.Query(ctx, BuildQuery(q.BBox, q.Limit))
	if err != nil {
		s.logger.Error("obstacle lookup failed", "error", err)
		return nil, err
	}

	feats := ExtractFeatures(resp, q.VehicleHeight, q.Limit)
	s.logger.Debug("obstacle lookup finished",
		"elements", len(resp.Elements),
		"features", len(feats),
		"height_filter", q.VehicleHeight != nil,
	)
	return feats, nil
}

// ExtractFeatures turns tagged elements into obstacle features, applies the
// vehicle-height filter when requested and truncates to limit last.
func ExtractFeatures(resp *overpass.QueryResponse, vehicleHeight *float64, limit int) []types.ObstacleFeature {
	feats := make([]types.ObstacleFeature, 0, len(resp.Elements))
	for _, el := range resp.Elements {
		raw := el.Tags["maxheight"]
		if raw == "" {
			raw = el.Tags["maxheight:physical"]
		}
		if raw == "" {
			continue
		}

		var lat, lng *float64
		if el.Type == "node" {
			lat, lng = el.Lat, el.Lon
		} else {
			if el.Center == nil {
				continue
			}
			lat, lng = &el.Center.Lat, &el.Center.Lon
		}

		kind := types.KindWay
		if el.Tags["bridge"] == "yes" {
			kind = types.KindBridge
		}
		// Checked after bridge on purpose: an element tagged with both
		// classifies as tunnel, which is what clients already expect.
		if el.Tags["tunnel"] == "yes" {
			kind = types.KindTunnel
		}

		feats = append(feats, types.ObstacleFeature{
			Lat:        lat,
			Lng:        lng,
			Maxheight:  raw,
			MaxheightM: units.ParseMaxHeight(raw),
			Kind:       kind,
			OsmID:      el.ID,
		})
	}

	if vehicleHeight != nil {
		kept := feats[:0]
		for _, f := range feats {
			if f.MaxheightM != nil && *f.MaxheightM < *vehicleHeight {
				kept = append(kept, f)
			}
		}
		feats = kept
	}

	if limit > 0 && len(feats) > limit {
		feats = feats[:limit]
	}
	return feats
}
