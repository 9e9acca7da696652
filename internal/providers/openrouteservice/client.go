package openrouteservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"rotas-gateway/internal/upstream"
)

// API Docs: https://openrouteservice.org/dev/#/api-docs
const (
	defaultDirectionsBaseURL = "https://api.openrouteservice.org/v2/directions"
	defaultGeocodeURL        = "https://api.openrouteservice.org/geocode/search"
)

// Options configures a Client. Zero-value URLs fall back to the public
// openrouteservice.org endpoints.
type Options struct {
	APIKey            string
	DirectionsBaseURL string
	GeocodeURL        string
}

type Client struct {
	httpClient        *http.Client
	directionsBaseURL string
	geocodeURL        string
	apiKey            string
	policy            upstream.Policy
	logger            *slog.Logger
}

func NewClient(httpClient *http.Client, opts Options, policy upstream.Policy, logger *slog.Logger) *Client {
	if opts.DirectionsBaseURL == "" {
		opts.DirectionsBaseURL = defaultDirectionsBaseURL
	}
	if opts.GeocodeURL == "" {
		opts.GeocodeURL = defaultGeocodeURL
	}
	return &Client{
		httpClient:        httpClient,
		directionsBaseURL: opts.DirectionsBaseURL,
		geocodeURL:        opts.GeocodeURL,
		apiKey:            opts.APIKey,
		policy:            policy,
		logger:            logger.With("component", "ors-client"),
	}
}

// Directions posts a route request for the given profile ("driving-car" or
// "driving-hgv") and returns the raw GeoJSON body untouched.
func (c *Client) Directions(ctx context.Context, profile string, payload *DirectionsRequest) (json.RawMessage, error) {
	if c.apiKey == "" {
		return nil, upstream.ErrMissingAPIKey
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode directions payload: %w", err)
	}
	u := fmt.Sprintf("%s/%s/geojson", c.directionsBaseURL, profile)

	c.logger.Debug("calling ORS directions",
		"profile", profile,
		"coordinates", len(payload.Coordinates),
	)

	res, err := c.policy.Do(ctx, c.httpClient, func() (*http.Request, error) {
		req, err := http.NewRequest(http.MethodPost, u, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", c.apiKey)
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	})
	if err != nil {
		c.logger.Error("ORS directions call failed", "profile", profile, "error", err)
		return nil, err
	}

	if !json.Valid(res.Body) {
		c.logger.Error("ORS directions returned invalid JSON", "status_code", res.StatusCode)
		return nil, &upstream.ParseError{Raw: string(res.Body)}
	}
	if res.StatusCode != http.StatusOK {
		c.logger.Error("ORS directions returned error",
			"profile", profile,
			"status_code", res.StatusCode,
		)
		return nil, &upstream.StatusError{Status: res.StatusCode, Detail: json.RawMessage(res.Body)}
	}

	return json.RawMessage(res.Body), nil
}

// GeocodeSearch runs a Pelias free-text search.
func (c *Client) GeocodeSearch(ctx context.Context, params GeocodeParams) (*GeocodeAPIResponse, error) {
	if c.apiKey == "" {
		return nil, upstream.ErrMissingAPIKey
	}

	u, err := url.Parse(c.geocodeURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse geocode URL: %w", err)
	}
	q := u.Query()
	q.Set("api_key", c.apiKey)
	q.Set("text", params.Text)
	q.Set("size", strconv.Itoa(params.Size))
	q.Set("lang", params.Lang)
	if params.Country != "" {
		q.Set("boundary.country", params.Country)
	}
	if params.Focus != nil {
		q.Set("focus.point.lat", formatCoord(params.Focus.Lat))
		q.Set("focus.point.lon", formatCoord(params.Focus.Lng))
	}
	if params.Rect != nil {
		q.Set("boundary.rect.min_lat", formatCoord(params.Rect.MinLat))
		q.Set("boundary.rect.min_lon", formatCoord(params.Rect.MinLon))
		q.Set("boundary.rect.max_lat", formatCoord(params.Rect.MaxLat))
		q.Set("boundary.rect.max_lon", formatCoord(params.Rect.MaxLon))
	}
	u.RawQuery = q.Encode()

	c.logger.Debug("calling ORS geocode search", "text", params.Text, "size", params.Size)

	res, err := c.policy.Do(ctx, c.httpClient, func() (*http.Request, error) {
		return http.NewRequest(http.MethodGet, u.String(), nil)
	})
	if err != nil {
		c.logger.Error("ORS geocode call failed", "text", params.Text, "error", err)
		return nil, err
	}

	var out GeocodeAPIResponse
	if err := json.Unmarshal(res.Body, &out); err != nil {
		c.logger.Error("failed to decode ORS geocode response", "status_code", res.StatusCode, "error", err)
		return nil, &upstream.ParseError{Raw: string(res.Body)}
	}
	if res.StatusCode != http.StatusOK {
		c.logger.Error("ORS geocode returned error", "status_code", res.StatusCode)
		return nil, &upstream.StatusError{Status: res.StatusCode, Detail: json.RawMessage(res.Body)}
	}

	return &out, nil
}

func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
