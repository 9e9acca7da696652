package openrouteservice

// DirectionsRequest is the payload for POST /v2/directions/{profile}/geojson.
// Coordinates are [lon, lat] pairs, per ORS convention.
type DirectionsRequest struct {
	Coordinates  [][]float64   `json:"coordinates"`
	Instructions bool          `json:"instructions"`
	Options      *RouteOptions `json:"options,omitempty"`
}

// RouteOptions is omitted from the payload entirely when empty so provider
// defaults stay untouched.
type RouteOptions struct {
	AvoidFeatures []string       `json:"avoid_features,omitempty"`
	ProfileParams *ProfileParams `json:"profile_params,omitempty"`
	VehicleType   string         `json:"vehicle_type,omitempty"`
}

// ProfileParams carries vehicle restrictions for the HGV profile. Weight
// and axleload are in tonnes, dimensions in meters. Values are untyped
// because caller input is forwarded as-is when it cannot be normalized.
type ProfileParams struct {
	Restrictions map[string]any `json:"restrictions"`
}

// GeocodeParams mirrors the Pelias search parameters this gateway exposes.
type GeocodeParams struct {
	Text    string
	Size    int
	Lang    string
	Country string // boundary.country; empty disables the filter
	Focus   *FocusPoint
	Rect    *BoundingRect
}

// FocusPoint biases results toward a coordinate without restricting them.
type FocusPoint struct {
	Lat float64
	Lng float64
}

// BoundingRect restricts results to a rectangle.
type BoundingRect struct {
	MinLat float64
	MinLon float64
	MaxLat float64
	MaxLon float64
}

// GeocodeAPIResponse is the subset of the Pelias GeoJSON response this
// gateway reads.
type GeocodeAPIResponse struct {
	Features []GeocodeFeature `json:"features"`
}

type GeocodeFeature struct {
	Geometry struct {
		Coordinates []float64 `json:"coordinates"`
	} `json:"geometry"`
	Properties struct {
		Label string `json:"label"`
		Name  string `json:"name"`
	} `json:"properties"`
}
