package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePoint(t *testing.T) {
	tests := []struct {
		name    string
		point   GeoPoint
		wantLat float64
		wantLng float64
	}{
		{name: "numeric pair", point: GeoPoint{Lat: -25.51, Lng: -54.58}, wantLat: -25.51, wantLng: -54.58},
		{name: "numeric strings", point: GeoPoint{Lat: "-25.51", Lng: "-54.58"}, wantLat: -25.51, wantLng: -54.58},
		{name: "integer values", point: GeoPoint{Lat: 10, Lng: 20}, wantLat: 10, wantLng: 20},
		{name: "json.Number values", point: GeoPoint{Lat: json.Number("-25.51"), Lng: json.Number("-54.58")}, wantLat: -25.51, wantLng: -54.58},
		{name: "latitude boundary", point: GeoPoint{Lat: 90.0, Lng: 0.0}, wantLat: 90, wantLng: 0},
		{name: "longitude boundary", point: GeoPoint{Lat: 0.0, Lng: -180.0}, wantLat: 0, wantLng: -180},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat, lng, err := ValidatePoint(tt.point, "origin")
			require.NoError(t, err)
			assert.Equal(t, tt.wantLat, lat)
			assert.Equal(t, tt.wantLng, lng)
		})
	}
}

func TestValidatePoint_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		point GeoPoint
		field string
	}{
		{name: "missing lat", point: GeoPoint{Lng: -54.58}, field: "origin"},
		{name: "missing lng", point: GeoPoint{Lat: -25.51}, field: "destination"},
		{name: "empty point", point: GeoPoint{}, field: "origin"},
		{name: "non-numeric string", point: GeoPoint{Lat: "north", Lng: -54.58}, field: "origin"},
		{name: "latitude above range", point: GeoPoint{Lat: 90.01, Lng: 0.0}, field: "origin"},
		{name: "latitude below range", point: GeoPoint{Lat: -91.0, Lng: 0.0}, field: "origin"},
		{name: "longitude above range", point: GeoPoint{Lat: 0.0, Lng: 180.5}, field: "origin"},
		{name: "longitude below range", point: GeoPoint{Lat: 0.0, Lng: -181.0}, field: "waypoint[2]"},
		{name: "NaN string rejected", point: GeoPoint{Lat: "NaN", Lng: 0.0}, field: "origin"},
		{name: "infinity string rejected", point: GeoPoint{Lat: "Inf", Lng: 0.0}, field: "origin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ValidatePoint(tt.point, tt.field)
			require.Error(t, err)

			var invalid *InvalidPointError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.field, invalid.Field)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestToFloat(t *testing.T) {
	f, ok := ToFloat(" 3.5 ")
	require.True(t, ok)
	assert.Equal(t, 3.5, f)

	_, ok = ToFloat(nil)
	assert.False(t, ok)

	_, ok = ToFloat([]string{"3.5"})
	assert.False(t, ok)
}
