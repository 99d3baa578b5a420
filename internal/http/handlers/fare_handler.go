// README: Cab fare quote handler.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"oneyatra/internal/modules/pricing"
)

type FareHandler struct {
	pricing *pricing.Service
}

func NewFareHandler(pricingSvc *pricing.Service) *FareHandler {
	return &FareHandler{pricing: pricingSvc}
}

// cabFareReq takes the same free-text distance and duration that travel options carry.
type cabFareReq struct {
	Distance string `json:"distance"`
	Duration string `json:"duration"`
	City     string `json:"city"`
	Time     string `json:"time"`
}

// CabFare handles POST /api/fares/cab.
func (h *FareHandler) CabFare(c *gin.Context) {
	var req cabFareReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	km := pricing.ParseDistanceToKm(req.Distance)
	mins := pricing.ParseDurationToMins(req.Duration)
	writeJSON(c, http.StatusOK, h.pricing.CalculateCabPrice(km, float64(mins), req.City, req.Time))
}
