package routing

import (
	"fmt"

	"rotas-gateway/internal/providers/openrouteservice"
	"rotas-gateway/internal/types"
	"rotas-gateway/internal/units"
)

// Profile selects the ORS routing profile.
type Profile string

const (
	ProfileCar   Profile = "driving-car"
	ProfileTruck Profile = "driving-hgv"
)

// TruckAttributes carries the optional vehicle restrictions for the truck
// profile. Values stay untyped: weight and axleload tolerate numeric
// strings and are normalized to tonnes, the rest are forwarded as sent.
type TruckAttributes struct {
	Height   any `json:"height"`
	Width    any `json:"width"`
	Length   any `json:"length"`
	Weight   any `json:"weight"`
	Axleload any `json:"axleload"`
}

// BuildCoordinates validates every point and returns [lon, lat] pairs in
// the order origin, waypoints, destination. The first invalid point aborts
// the build; no partial payload escapes.
func BuildCoordinates(origin types.GeoPoint, waypoints []types.GeoPoint, destination types.GeoPoint) ([][]float64, error) {
	coords := make([][]float64, 0, len(waypoints)+2)

	lat, lng, err := types.ValidatePoint(origin, "origin")
	if err != nil {
		return nil, err
	}
	coords = append(coords, []float64{lng, lat})

	for i, w := range waypoints {
		lat, lng, err := types.ValidatePoint(w, fmt.Sprintf("waypoint[%d]", i))
		if err != nil {
			return nil, err
		}
		coords = append(coords, []float64{lng, lat})
	}

	lat, lng, err = types.ValidatePoint(destination, "destination")
	if err != nil {
		return nil, err
	}
	coords = append(coords, []float64{lng, lat})

	return coords, nil
}

// BuildDirectionsRequest assembles the provider payload for one route
// request. The options block is left out entirely when it would be empty.
func BuildDirectionsRequest(req RouteRequest) (*openrouteservice.DirectionsRequest, error) {
	coords, err := BuildCoordinates(req.Origin, req.Waypoints, req.Destination)
	if err != nil {
		return nil, err
	}

	payload := &openrouteservice.DirectionsRequest{
		Coordinates:  coords,
		Instructions: true,
	}

	opts := openrouteservice.RouteOptions{}
	if avoid := SanitizeAvoids(req.AvoidFeatures); len(avoid) > 0 {
		opts.AvoidFeatures = avoid
	}
	if req.Profile == ProfileTruck {
		if r := buildRestrictions(req.Truck); len(r) > 0 {
			opts.ProfileParams = &openrouteservice.ProfileParams{Restrictions: r}
		}
		// Fixed marker for ORS profile compatibility.
		opts.VehicleType = "hgv"
	}
	if opts.AvoidFeatures != nil || opts.ProfileParams != nil || opts.VehicleType != "" {
		payload.Options = &opts
	}

	return payload, nil
}

// buildRestrictions keeps only the restriction keys the caller actually
// sent. Weight and axleload go through the tonnes heuristic.
func buildRestrictions(truck *TruckAttributes) map[string]any {
	if truck == nil {
		return nil
	}
	restrictions := make(map[string]any, 5)
	if truck.Height != nil {
		restrictions["height"] = truck.Height
	}
	if truck.Width != nil {
		restrictions["width"] = truck.Width
	}
	if truck.Length != nil {
		restrictions["length"] = truck.Length
	}
	if w := units.NormalizeMassToTonnes(truck.Weight); w != nil {
		restrictions["weight"] = w
	}
	if a := units.NormalizeMassToTonnes(truck.Axleload); a != nil {
		restrictions["axleload"] = a
	}
	return restrictions
}
