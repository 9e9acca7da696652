package types

import "encoding/json"

// RouteSummary is the compact digest of a directions response. Every field
// is advisory: a response the gateway cannot digest still reaches the
// caller as raw geometry, just without a summary.
type RouteSummary struct {
	DistanceM *float64        `json:"distance_m"`
	DurationS *float64        `json:"duration_s"`
	Segments  json.RawMessage `json:"segments"`
	Bbox      json.RawMessage `json:"bbox"`
}
