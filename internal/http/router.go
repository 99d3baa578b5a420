// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"oneyatra/internal/http/handlers"
	"oneyatra/internal/http/middleware"
	"oneyatra/internal/modules/deeplink"
	"oneyatra/internal/modules/pricing"
	"oneyatra/internal/service"
)

type RouterDeps struct {
	Log     *zap.Logger
	Planner *service.TravelPlanner
	Pricing *pricing.Service
	Tracker *deeplink.Tracker
	// Clicks is optional; nil disables the analytics read endpoint.
	Clicks handlers.ClickCounter
}

func NewRouter(deps RouterDeps) *gin.Engine {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(middleware.Recovery(log), middleware.RequestID(), middleware.Logging(log))

	api := r.Group("/api")

	travelHandler := handlers.NewTravelHandler(deps.Planner)
	api.POST("/travel", travelHandler.Search)
	api.POST("/chat", travelHandler.Chat)

	fareHandler := handlers.NewFareHandler(deps.Pricing)
	api.POST("/fares/cab", fareHandler.CabFare)

	deepLinkHandler := handlers.NewDeepLinkHandler(deps.Tracker, deps.Clicks)
	api.GET("/deeplink", deepLinkHandler.Generate)
	api.POST("/analytics/deeplink", deepLinkHandler.TrackClick)
	api.GET("/analytics/deeplink/:provider", deepLinkHandler.Counts)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
