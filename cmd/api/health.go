package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthResponse represents the response for the health endpoint
type HealthResponse struct {
	OK bool `json:"ok" example:"true"`
}

// handleHealth godoc
// @Summary Health check
// @Description Check if the gateway is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (app *App) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		OK: true,
	})
}
