package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"rotas-gateway/internal/upstream"
)

// respondDirectionsError maps provider failures from the routing pipeline
// onto the gateway's status contract: missing credential is a server-side
// configuration fault, provider statuses pass through, everything else is
// a bad gateway.
func (app *App) respondDirectionsError(c *gin.Context, err error) {
	var statusErr *upstream.StatusError
	var parseErr *upstream.ParseError

	switch {
	case errors.Is(err, upstream.ErrMissingAPIKey):
		c.JSON(http.StatusInternalServerError, gin.H{"error": upstream.ErrMissingAPIKey.Error()})
	case errors.As(err, &parseErr):
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Falha ao interpretar resposta do ORS",
			"raw":   parseErr.Raw,
		})
	case errors.As(err, &statusErr):
		c.JSON(statusErr.Status, gin.H{
			"error":  "Erro do ORS",
			"status": statusErr.Status,
			"detail": statusErr.Detail,
		})
	default:
		app.logger.Error("directions request failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": fmt.Sprintf("Erro de rede ao chamar ORS: %v", err)})
	}
}
