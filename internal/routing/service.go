// Package routing turns caller trip requests into directions-provider
// payloads and digests the provider's geometry responses.
package routing

import (
	"context"
	"encoding/json"
	"log/slog"

	"rotas-gateway/internal/providers/openrouteservice"
	"rotas-gateway/internal/types"
)

// DirectionsProvider is the slice of the ORS client the routing service
// depends on.
type DirectionsProvider interface {
	Directions(ctx context.Context, profile string, payload *openrouteservice.DirectionsRequest) (json.RawMessage, error)
}

// Service plans routes against the external directions provider.
type Service interface {
	// PlanRoute validates the request, calls the directions provider and
	// returns the raw geometry together with its summary.
	PlanRoute(ctx context.Context, req RouteRequest) (*RouteResult, error)
}

// RouteRequest is one validated-on-demand trip request.
type RouteRequest struct {
	Origin        types.GeoPoint
	Destination   types.GeoPoint
	Waypoints     []types.GeoPoint
	AvoidFeatures []string
	Profile       Profile
	Truck         *TruckAttributes
}

// RouteResult pairs the advisory summary with the untouched provider
// geometry. Summary is nil when the response could not be digested.
type RouteResult struct {
	Summary *types.RouteSummary
	GeoJSON json.RawMessage
}

type routingService struct {
	provider DirectionsProvider
	logger   *slog.Logger
}

func NewService(provider DirectionsProvider, logger *slog.Logger) Service {
	return &routingService{
		provider: provider,
		logger:   logger.With("component", "routing-service"),
	}
}

func (s *routingService) PlanRoute(ctx context.Context, req RouteRequest) (*RouteResult, error) {
	payload, err := BuildDirectionsRequest(req)
	if err != nil {
		return nil, err
	}

	raw, err := s.provider.Directions(ctx, string(req.Profile), payload)
	if err != nil {
		return nil, err
	}

	summary := ExtractSummary(raw)
	if summary == nil {
		s.logger.Warn("directions response had no extractable summary", "profile", req.Profile)
	}
	return &RouteResult{Summary: summary, GeoJSON: raw}, nil
}
