// README: Route search and travel assistant chat handlers.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"oneyatra/internal/ai"
	"oneyatra/internal/modules/travel"
	"oneyatra/internal/service"
)

type TravelHandler struct {
	planner *service.TravelPlanner
}

func NewTravelHandler(planner *service.TravelPlanner) *TravelHandler {
	return &TravelHandler{planner: planner}
}

// Search handles POST /api/travel.
func (h *TravelHandler) Search(c *gin.Context) {
	var params travel.SearchParams
	if err := c.ShouldBindJSON(&params); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	params = params.Normalize()
	if err := params.Validate(); err != nil {
		writeDomainError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, h.planner.Search(c.Request.Context(), params))
}

type chatReq struct {
	Message string           `json:"message"`
	History []ai.ChatMessage `json:"history"`
}

type chatResp struct {
	Response string `json:"response"`
}

// Chat handles POST /api/chat.
func (h *TravelHandler) Chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		writeError(c, http.StatusBadRequest, "missing message")
		return
	}

	reply := h.planner.Chat(c.Request.Context(), req.Message, req.History)
	writeJSON(c, http.StatusOK, chatResp{Response: reply})
}
