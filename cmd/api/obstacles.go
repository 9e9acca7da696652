package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"rotas-gateway/internal/obstacles"
	"rotas-gateway/internal/types"
)

// ObstacleInput is the request body for the height-obstacle lookup. The
// bbox fields tolerate numeric strings, matching the routing endpoints.
type ObstacleInput struct {
	BBox struct {
		South any `json:"south"`
		West  any `json:"west"`
		North any `json:"north"`
		East  any `json:"east"`
	} `json:"bbox"`
	Limit          any `json:"limit"`
	VehicleHeightM any `json:"vehicle_height_m"`
}

// ObstacleOutput is the obstacle endpoint response
type ObstacleOutput struct {
	Features         []types.ObstacleFeature `json:"features"`
	FilteredByHeight bool                    `json:"filtered_by_height"`
}

// handleObstacles godoc
// @Summary Height obstacle lookup
// @Description List map elements with a maxheight restriction inside a bounding box, optionally keeping only those lower than the vehicle
// @Tags obstacles
// @Accept json
// @Produce json
// @Param request body ObstacleInput true "Obstacle query"
// @Success 200 {object} ObstacleOutput
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /obstaculos-altura [post]
func (app *App) handleObstacles(c *gin.Context) {
	var input ObstacleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badObstacleParams(c)
		return
	}

	south, ok1 := types.ToFloat(input.BBox.South)
	west, ok2 := types.ToFloat(input.BBox.West)
	north, ok3 := types.ToFloat(input.BBox.North)
	east, ok4 := types.ToFloat(input.BBox.East)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		badObstacleParams(c)
		return
	}

	limit := app.cfg.Obstacles.Limit
	if input.Limit != nil {
		f, ok := types.ToFloat(input.Limit)
		if !ok {
			badObstacleParams(c)
			return
		}
		if int(f) != 0 {
			limit = int(f)
		}
	}

	var vehicleHeight *float64
	if input.VehicleHeightM != nil {
		f, ok := types.ToFloat(input.VehicleHeightM)
		if !ok {
			badObstacleParams(c)
			return
		}
		vehicleHeight = &f
	}

	features, err := app.obstacleService.FindObstacles(c.Request.Context(), obstacles.Query{
		BBox:          obstacles.BBox{South: south, West: west, North: north, East: east},
		Limit:         limit,
		VehicleHeight: vehicleHeight,
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": fmt.Sprintf("Falha Overpass: %v", err)})
		return
	}

	c.JSON(http.StatusOK, ObstacleOutput{
		Features:         features,
		FilteredByHeight: vehicleHeight != nil,
	})
}

func badObstacleParams(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "bbox ou parâmetros inválidos"})
}
