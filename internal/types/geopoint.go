package types

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// GeoPoint is an untrusted latitude/longitude pair as received from a
// caller. Fields stay untyped until ValidatePoint runs: clients send both
// JSON numbers and numeric strings.
type GeoPoint struct {
	Lat any `json:"lat"`
	Lng any `json:"lng"`
}

// InvalidPointError reports a coordinate pair that failed validation.
// Field names the offending input, including the waypoint index
// (e.g. "waypoint[2]").
type InvalidPointError struct {
	Field  string
	Reason string
}

func (e *InvalidPointError) Error() string { return e.Field + " " + e.Reason }

const (
	reasonNotNumeric = "inválido. Esperado {lat, lng} numéricos."
	reasonOutOfRange = "fora de faixa."
)

// ValidatePoint checks that p carries numeric coordinates within the WGS84
// range and returns them as floats. No external call is made before every
// point of a request has passed through here.
func ValidatePoint(p GeoPoint, field string) (lat, lng float64, err error) {
	lat, okLat := ToFloat(p.Lat)
	lng, okLng := ToFloat(p.Lng)
	if !okLat || !okLng {
		return 0, 0, &InvalidPointError{Field: field, Reason: reasonNotNumeric}
	}
	if !inRange(lat, 90) || !inRange(lng, 180) {
		return 0, 0, &InvalidPointError{Field: field, Reason: reasonOutOfRange}
	}
	return lat, lng, nil
}

func inRange(v, bound float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	return v >= -bound && v <= bound
}

// ToFloat converts JSON-decoded scalar values to float64. It accepts the
// numeric types encoding/json produces plus numeric strings.
func ToFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
