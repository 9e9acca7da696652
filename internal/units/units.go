// Package units converts the unit-ambiguous values this gateway receives,
// both from callers (truck weights) and from map data (OSM maxheight tags),
// into canonical metric values.
package units

import (
	"regexp"
	"strconv"
	"strings"

	"rotas-gateway/internal/types"
)

const feetInMeters = 0.3048

// NormalizeMassToTonnes applies the kilograms-to-tonnes heuristic used for
// truck weight and axle load: a parsed value above 1000 is assumed to be
// kilograms and divided by 1000. Values that cannot be parsed as numbers
// pass through unchanged so the directions provider can reject them itself.
func NormalizeMassToTonnes(v any) any {
	if v == nil {
		return nil
	}
	f, ok := types.ToFloat(v)
	if !ok {
		return v
	}
	if f > 1000 {
		return f / 1000.0
	}
	return f
}

var (
	metersRe   = regexp.MustCompile(`^\s*([0-9]+[.,]?[0-9]*)\s*(m|meter|metros)?\s*$`)
	feetInchRe = regexp.MustCompile(`^\s*([0-9]+)\s*'\s*([0-9]+)\s*"?\s*$`)
	feetRe     = regexp.MustCompile(`^\s*([0-9]+(?:[.,][0-9]+)?)\s*(ft|foot|feet)\s*$`)
)

// ParseMaxHeight converts common OSM maxheight values to meters.
//
// Accepted forms: "3.5", "3,5", "3.5 m", "3,5 m", `10'6"`, `10' 6"`,
// "10 ft", "10ft". A numeric value without a recognized unit is assumed to
// already be meters. Returns nil when the value cannot be interpreted.
func ParseMaxHeight(raw string) *float64 {
	if raw == "" {
		return nil
	}
	s := strings.ToLower(strings.TrimSpace(raw))

	if m := metersRe.FindStringSubmatch(s); m != nil {
		return parseDecimal(m[1])
	}
	if m := feetInchRe.FindStringSubmatch(s); m != nil {
		ft, _ := strconv.Atoi(m[1])
		inch, _ := strconv.Atoi(m[2])
		v := float64(ft)*feetInMeters + float64(inch)/12.0*feetInMeters
		return &v
	}
	if m := feetRe.FindStringSubmatch(s); m != nil {
		v := parseDecimal(m[1])
		if v == nil {
			return nil
		}
		meters := *v * feetInMeters
		return &meters
	}

	// Unknown notation: if it still looks like a number, assume meters.
	return parseDecimal(s)
}

// parseDecimal parses a number accepting both dot and comma as the decimal
// separator ("3,8" is common in OSM data from metric countries).
func parseDecimal(s string) *float64 {
	s = strings.TrimSpace(s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		f, err = strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
		if err != nil {
			return nil
		}
	}
	return &f
}
