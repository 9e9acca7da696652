package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rotas-gateway/internal/types"
)

func TestSanitizeAvoids(t *testing.T) {
	tests := []struct {
		name      string
		requested []string
		want      []string
	}{
		{name: "nil input", requested: nil, want: []string{}},
		{name: "empty input", requested: []string{}, want: []string{}},
		{name: "unknown values dropped", requested: []string{"tollways", "bogus", "ferries"}, want: []string{"tollways", "ferries"}},
		{name: "order preserved", requested: []string{"ferries", "tollways"}, want: []string{"ferries", "tollways"}},
		{name: "duplicates preserved", requested: []string{"tollways", "tollways"}, want: []string{"tollways", "tollways"}},
		{name: "all unknown", requested: []string{"lava", "dragons"}, want: []string{}},
		{name: "full whitelist kept", requested: []string{"tollways", "ferries", "highways", "steps", "fords", "pavedroads", "unpavedroads"}, want: []string{"tollways", "ferries", "highways", "steps", "fords", "pavedroads", "unpavedroads"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeAvoids(tt.requested)
			assert.Equal(t, tt.want, got)
			// Sanitizing its own output is a no-op.
			assert.Equal(t, got, SanitizeAvoids(got))
		})
	}
}

func TestBuildCoordinates(t *testing.T) {
	coords, err := BuildCoordinates(
		types.GeoPoint{Lat: -25.51, Lng: -54.58},
		[]types.GeoPoint{{Lat: -25.48, Lng: -54.60}},
		types.GeoPoint{Lat: -25.44, Lng: -54.62},
	)
	require.NoError(t, err)
	// Provider convention is longitude-first, regardless of the lat-first
	// JSON surface.
	assert.Equal(t, [][]float64{
		{-54.58, -25.51},
		{-54.60, -25.48},
		{-54.62, -25.44},
	}, coords)
}

func TestBuildCoordinates_FailFast(t *testing.T) {
	tests := []struct {
		name        string
		origin      types.GeoPoint
		waypoints   []types.GeoPoint
		destination types.GeoPoint
		wantField   string
	}{
		{
			name:        "bad origin reported first",
			origin:      types.GeoPoint{Lat: "x", Lng: 0.0},
			waypoints:   []types.GeoPoint{{Lat: 200.0, Lng: 0.0}},
			destination: types.GeoPoint{Lat: 0.0, Lng: 0.0},
			wantField:   "origin",
		},
		{
			name:        "waypoint index in field name",
			origin:      types.GeoPoint{Lat: 0.0, Lng: 0.0},
			waypoints:   []types.GeoPoint{{Lat: 1.0, Lng: 1.0}, {Lat: 0.0, Lng: 999.0}, {Lat: "x", Lng: 0.0}},
			destination: types.GeoPoint{Lat: 0.0, Lng: 0.0},
			wantField:   "waypoint[1]",
		},
		{
			name:        "bad destination",
			origin:      types.GeoPoint{Lat: 0.0, Lng: 0.0},
			destination: types.GeoPoint{},
			wantField:   "destination",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildCoordinates(tt.origin, tt.waypoints, tt.destination)
			require.Error(t, err)

			var invalid *types.InvalidPointError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.wantField, invalid.Field)
		})
	}
}

func TestBuildDirectionsRequest_Car(t *testing.T) {
	payload, err := BuildDirectionsRequest(RouteRequest{
		Origin:      types.GeoPoint{Lat: -25.51, Lng: -54.58},
		Destination: types.GeoPoint{Lat: -25.44, Lng: -54.62},
		Profile:     ProfileCar,
	})
	require.NoError(t, err)
	assert.True(t, payload.Instructions)
	// No avoids and no truck: options must be absent so provider defaults
	// stay untouched.
	assert.Nil(t, payload.Options)
}

func TestBuildDirectionsRequest_CarWithAvoids(t *testing.T) {
	payload, err := BuildDirectionsRequest(RouteRequest{
		Origin:        types.GeoPoint{Lat: -25.51, Lng: -54.58},
		Destination:   types.GeoPoint{Lat: -25.44, Lng: -54.62},
		AvoidFeatures: []string{"tollways", "bogus", "ferries"},
		Profile:       ProfileCar,
	})
	require.NoError(t, err)
	require.NotNil(t, payload.Options)
	assert.Equal(t, []string{"tollways", "ferries"}, payload.Options.AvoidFeatures)
	assert.Nil(t, payload.Options.ProfileParams)
	assert.Empty(t, payload.Options.VehicleType)
}

func TestBuildDirectionsRequest_Truck(t *testing.T) {
	payload, err := BuildDirectionsRequest(RouteRequest{
		Origin:      types.GeoPoint{Lat: -25.51, Lng: -54.58},
		Destination: types.GeoPoint{Lat: -25.44, Lng: -54.62},
		Profile:     ProfileTruck,
		Truck: &TruckAttributes{
			Height:   4.2,
			Width:    2.6,
			Weight:   float64(38000),
			Axleload: float64(10000),
		},
	})
	require.NoError(t, err)
	require.NotNil(t, payload.Options)
	assert.Equal(t, "hgv", payload.Options.VehicleType)

	require.NotNil(t, payload.Options.ProfileParams)
	restrictions := payload.Options.ProfileParams.Restrictions
	assert.Equal(t, 4.2, restrictions["height"])
	assert.Equal(t, 2.6, restrictions["width"])
	// Kilogram-looking values arrive at the provider in tonnes.
	assert.Equal(t, 38.0, restrictions["weight"])
	assert.Equal(t, 10.0, restrictions["axleload"])
	// Absent keys are not forwarded at all.
	assert.NotContains(t, restrictions, "length")
}

func TestBuildDirectionsRequest_TruckWithoutAttributes(t *testing.T) {
	payload, err := BuildDirectionsRequest(RouteRequest{
		Origin:      types.GeoPoint{Lat: -25.51, Lng: -54.58},
		Destination: types.GeoPoint{Lat: -25.44, Lng: -54.62},
		Profile:     ProfileTruck,
	})
	require.NoError(t, err)
	// vehicle_type is always set for the truck profile, even without
	// restrictions.
	require.NotNil(t, payload.Options)
	assert.Equal(t, "hgv", payload.Options.VehicleType)
	assert.Nil(t, payload.Options.ProfileParams)
}

func TestBuildDirectionsRequest_TruckNonNumericWeight(t *testing.T) {
	payload, err := BuildDirectionsRequest(RouteRequest{
		Origin:      types.GeoPoint{Lat: -25.51, Lng: -54.58},
		Destination: types.GeoPoint{Lat: -25.44, Lng: -54.62},
		Profile:     ProfileTruck,
		Truck:       &TruckAttributes{Weight: "heavy"},
	})
	require.NoError(t, err)
	// Unparseable values are forwarded untouched; the provider rejects them.
	assert.Equal(t, "heavy", payload.Options.ProfileParams.Restrictions["weight"])
}
