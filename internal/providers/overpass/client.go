package overpass

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"rotas-gateway/internal/upstream"
)

// API Docs: https://wiki.openstreetmap.org/wiki/Overpass_API
const defaultInterpreterURL = "https://overpass-api.de/api/interpreter"

type Client struct {
	httpClient     *http.Client
	interpreterURL string
	policy         upstream.Policy
	logger         *slog.Logger
}

func NewClient(httpClient *http.Client, interpreterURL string, policy upstream.Policy, logger *slog.Logger) *Client {
	if interpreterURL == "" {
		interpreterURL = defaultInterpreterURL
	}
	return &Client{
		httpClient:     httpClient,
		interpreterURL: interpreterURL,
		policy:         policy,
		logger:         logger.With("component", "overpass-client"),
	}
}

// Query posts an Overpass QL program to the interpreter as form data.
func (c *Client) Query(ctx context.Context, query string) (*QueryResponse, error) {
	form := url.Values{"data": {query}}
	encoded := form.Encode()

	c.logger.Debug("calling Overpass interpreter", "query_bytes", len(query))

	res, err := c.policy.Do(ctx, c.httpClient, func() (*http.Request, error) {
		req, err := http.NewRequest(http.MethodPost, c.interpreterURL, strings.NewReader(encoded))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return req, nil
	})
	if err != nil {
		c.logger.Error("Overpass call failed", "error", err)
		return nil, err
	}

	var out QueryResponse
	if err := json.Unmarshal(res.Body, &out); err != nil {
		c.logger.Error("failed to decode Overpass response", "status_code", res.StatusCode, "error", err)
		return nil, &upstream.ParseError{Raw: string(res.Body)}
	}
	if res.StatusCode != http.StatusOK {
		c.logger.Error("Overpass returned error", "status_code", res.StatusCode)
		return nil, &upstream.StatusError{Status: res.StatusCode, Detail: json.RawMessage(res.Body)}
	}

	c.logger.Debug("Overpass query succeeded", "elements", len(out.Elements))
	return &out, nil
}
