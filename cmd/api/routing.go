package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rotas-gateway/internal/routing"
	"rotas-gateway/internal/types"
)

// RouteRequestInput is the request body shared by the car and truck routing
// endpoints. The truck block is ignored on /rota-carro.
type RouteRequestInput struct {
	Origin        types.GeoPoint           `json:"origin"`
	Destination   types.GeoPoint           `json:"destination"`
	Waypoints     []types.GeoPoint         `json:"waypoints"`
	AvoidFeatures []string                 `json:"avoid_features"`
	Truck         *routing.TruckAttributes `json:"truck"`
}

// RouteResponse pairs the summary digest with the untouched provider
// geometry. Summary is null when the response could not be digested.
type RouteResponse struct {
	Summary *types.RouteSummary `json:"summary"`
	GeoJSON json.RawMessage     `json:"geojson"`
}

// handleCarRoute godoc
// @Summary Plan a car route
// @Description Compute a driving-car route between origin and destination, optionally through waypoints and avoiding road features
// @Tags routing
// @Accept json
// @Produce json
// @Param request body RouteRequestInput true "Route request"
// @Success 200 {object} RouteResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /rota-carro [post]
func (app *App) handleCarRoute(c *gin.Context) {
	app.handleRoute(c, routing.ProfileCar)
}

// handleTruckRoute godoc
// @Summary Plan a truck route
// @Description Compute a driving-hgv route honoring the vehicle's height, width, length, weight and axle load restrictions
// @Tags routing
// @Accept json
// @Produce json
// @Param request body RouteRequestInput true "Route request with truck restrictions"
// @Success 200 {object} RouteResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /rota-caminhao [post]
func (app *App) handleTruckRoute(c *gin.Context) {
	app.handleRoute(c, routing.ProfileTruck)
}

func (app *App) handleRoute(c *gin.Context, profile routing.Profile) {
	var input RouteRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req := routing.RouteRequest{
		Origin:        input.Origin,
		Destination:   input.Destination,
		Waypoints:     input.Waypoints,
		AvoidFeatures: input.AvoidFeatures,
		Profile:       profile,
	}
	if profile == routing.ProfileTruck {
		req.Truck = input.Truck
	}

	result, err := app.routingService.PlanRoute(c.Request.Context(), req)
	if err != nil {
		var invalid *types.InvalidPointError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Error()})
			return
		}
		app.respondDirectionsError(c, err)
		return
	}

	c.JSON(http.StatusOK, RouteResponse{
		Summary: result.Summary,
		GeoJSON: result.GeoJSON,
	})
}
