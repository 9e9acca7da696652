package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint, reachable with either verb
	app.router.GET("/health", app.handleHealth)
	app.router.POST("/health", app.handleHealth)

	// Routing endpoints
	app.router.POST("/rota-carro", app.handleCarRoute)
	app.router.POST("/rota-caminhao", app.handleTruckRoute)

	// Geocoding and obstacle lookup
	app.router.POST("/geocode", app.handleGeocode)
	app.router.POST("/obstaculos-altura", app.handleObstacles)

	// Wrong verb on a known route
	app.router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "POST only"})
	})

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(301, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
