package routing

import (
	"encoding/json"

	"rotas-gateway/internal/types"
)

// geometryEnvelope is the narrow slice of a directions GeoJSON response
// needed to build a RouteSummary. Everything else stays opaque.
type geometryEnvelope struct {
	Bbox     json.RawMessage `json:"bbox"`
	Features []struct {
		Properties struct {
			Summary  *summaryBlock   `json:"summary"`
			Segments json.RawMessage `json:"segments"`
		} `json:"properties"`
	} `json:"features"`
}

type summaryBlock struct {
	Distance *float64 `json:"distance"`
	Duration *float64 `json:"duration"`
}

// ExtractSummary digests the first feature of a raw directions response.
// The summary is advisory: any structural mismatch yields nil and the raw
// geometry still reaches the caller.
func ExtractSummary(raw json.RawMessage) *types.RouteSummary {
	var env geometryEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil
	}
	if len(env.Features) == 0 {
		return nil
	}
	props := env.Features[0].Properties
	if props.Summary == nil {
		return nil
	}
	return &types.RouteSummary{
		DistanceM: props.Summary.Distance,
		DurationS: props.Summary.Duration,
		Segments:  props.Segments,
		Bbox:      env.Bbox,
	}
}
