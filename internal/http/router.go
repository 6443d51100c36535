// README: HTTP router registration.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tripgen/internal/http/handlers"
	"tripgen/internal/http/middleware"
)

func NewRouter(tripHandler *handlers.TripHandler, log *slog.Logger) http.Handler {
	r := gin.New()
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recovery())

	r.POST("/api/trips/generate", tripHandler.Generate)
	r.GET("/api/trips", tripHandler.Recent)
	r.GET("/api/trips/:id", tripHandler.Get)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
