package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rotas-gateway/internal/providers/openrouteservice"
)

type mockSearchProvider struct {
	response *openrouteservice.GeocodeAPIResponse
	err      error

	gotParams openrouteservice.GeocodeParams
}

func (m *mockSearchProvider) GeocodeSearch(_ context.Context, params openrouteservice.GeocodeParams) (*openrouteservice.GeocodeAPIResponse, error) {
	m.gotParams = params
	return m.response, m.err
}

func searchResponse(t *testing.T, body string) *openrouteservice.GeocodeAPIResponse {
	t.Helper()
	var resp openrouteservice.GeocodeAPIResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	return &resp
}

func TestSearch(t *testing.T) {
	provider := &mockSearchProvider{
		response: searchResponse(t, `{"features": [
			{"geometry": {"coordinates": [-54.58, -25.51]}, "properties": {"label": "Foz do Iguaçu, PR, Brasil", "name": "Foz do Iguaçu"}},
			{"geometry": {"coordinates": [-54.60, -25.48]}, "properties": {"name": "Centro"}},
			{"geometry": {"coordinates": [-54.61, -25.47]}, "properties": {}},
			{"geometry": {"coordinates": []}, "properties": {"label": "sem coordenadas"}}
		]}`),
	}
	svc := NewService(provider, slog.Default())

	results, err := svc.Search(context.Background(), Query{
		Text:    "foz do iguaçu",
		Limit:   5,
		Lang:    "pt",
		Country: "BR",
	})
	require.NoError(t, err)

	assert.Equal(t, "foz do iguaçu", provider.gotParams.Text)
	assert.Equal(t, 5, provider.gotParams.Size)
	assert.Equal(t, "BR", provider.gotParams.Country)

	// Coordinate-less features are skipped; labels fall back to name, then
	// to a generic placeholder.
	require.Len(t, results, 3)
	assert.Equal(t, Result{Label: "Foz do Iguaçu, PR, Brasil", Lat: -25.51, Lng: -54.58}, results[0])
	assert.Equal(t, Result{Label: "Centro", Lat: -25.48, Lng: -54.60}, results[1])
	assert.Equal(t, Result{Label: "resultado", Lat: -25.47, Lng: -54.61}, results[2])
}

func TestSearch_ForwardsFocusAndRect(t *testing.T) {
	provider := &mockSearchProvider{response: searchResponse(t, `{"features": []}`)}
	svc := NewService(provider, slog.Default())

	_, err := svc.Search(context.Background(), Query{
		Text:  "terminal",
		Limit: 5,
		Lang:  "pt",
		Focus: &openrouteservice.FocusPoint{Lat: -23.5, Lng: -46.6},
		Rect:  &openrouteservice.BoundingRect{MinLat: -24.0, MinLon: -46.0, MaxLat: -22.0, MaxLon: -43.0},
	})
	require.NoError(t, err)

	require.NotNil(t, provider.gotParams.Focus)
	assert.Equal(t, -23.5, provider.gotParams.Focus.Lat)
	require.NotNil(t, provider.gotParams.Rect)
	assert.Equal(t, -24.0, provider.gotParams.Rect.MinLat)
}

func TestSearch_EmptyFeatureList(t *testing.T) {
	provider := &mockSearchProvider{response: searchResponse(t, `{"features": []}`)}
	svc := NewService(provider, slog.Default())

	results, err := svc.Search(context.Background(), Query{Text: "nowhere", Limit: 5})
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSearch_ProviderError(t *testing.T) {
	wantErr := errors.New("upstream down")
	svc := NewService(&mockSearchProvider{err: wantErr}, slog.Default())

	_, err := svc.Search(context.Background(), Query{Text: "x", Limit: 5})
	assert.ErrorIs(t, err, wantErr)
}
