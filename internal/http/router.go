// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"viagem/internal/http/handlers"
	"viagem/internal/http/middleware"
	"viagem/internal/modules/history"
	"viagem/internal/modules/pricing"
)

func NewRouter(pricingSvc *pricing.Service, historyStore *history.Store) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	h := handlers.NewQuoteHandler(pricingSvc, historyStore)
	r.POST("/api/estimate", h.Estimate)
	r.GET("/api/history/:chat_id", h.History)

	return r
}
