package main

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"rotas-gateway/internal/geocode"
	"rotas-gateway/internal/providers/openrouteservice"
	"rotas-gateway/internal/upstream"
)

// GeocodeInput is the request body for the geocode-search passthrough. All
// fields except q are optional; the four rect_* bounds only apply together.
type GeocodeInput struct {
	Q         string   `json:"q"`
	Limit     *int     `json:"limit"`
	Country   *string  `json:"country"`
	Lang      *string  `json:"lang"`
	FocusLat  *float64 `json:"focus_lat"`
	FocusLng  *float64 `json:"focus_lng"`
	RectNorth *float64 `json:"rect_north"`
	RectSouth *float64 `json:"rect_south"`
	RectEast  *float64 `json:"rect_east"`
	RectWest  *float64 `json:"rect_west"`
}

// GeocodeOutput is the geocode endpoint response
type GeocodeOutput struct {
	Results []geocode.Result `json:"results"`
}

// handleGeocode godoc
// @Summary Geocode search
// @Description Free-text place search, optionally biased toward a focus point or restricted to a country or bounding rectangle
// @Tags geocoding
// @Accept json
// @Produce json
// @Param request body GeocodeInput true "Search request"
// @Success 200 {object} GeocodeOutput
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /geocode [post]
func (app *App) handleGeocode(c *gin.Context) {
	var input GeocodeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Falha no geocode: %v", err)})
		return
	}

	q := strings.TrimSpace(input.Q)
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q (texto de busca) é obrigatório"})
		return
	}

	query := geocode.Query{
		Text:    q,
		Limit:   app.cfg.Geocode.Limit,
		Country: app.cfg.Geocode.Country,
		Lang:    app.cfg.Geocode.Lang,
	}
	if input.Limit != nil && *input.Limit != 0 {
		query.Limit = *input.Limit
	}
	if input.Country != nil {
		// An explicit empty string disables the country filter.
		query.Country = strings.TrimSpace(*input.Country)
	}
	if input.Lang != nil && strings.TrimSpace(*input.Lang) != "" {
		query.Lang = strings.TrimSpace(*input.Lang)
	}
	if input.FocusLat != nil && input.FocusLng != nil {
		query.Focus = &openrouteservice.FocusPoint{Lat: *input.FocusLat, Lng: *input.FocusLng}
	}
	if input.RectNorth != nil && input.RectSouth != nil && input.RectEast != nil && input.RectWest != nil {
		query.Rect = &openrouteservice.BoundingRect{
			MinLat: *input.RectSouth,
			MinLon: *input.RectWest,
			MaxLat: *input.RectNorth,
			MaxLon: *input.RectEast,
		}
	}

	results, err := app.geocodeService.Search(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, upstream.ErrMissingAPIKey) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": upstream.ErrMissingAPIKey.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Falha no geocode: %v", err)})
		return
	}

	c.JSON(http.StatusOK, GeocodeOutput{Results: results})
}
