package v1

import (
	"github.com/gin-gonic/gin"

	"bpcoach/internal/service"
)

type TrendHandler struct {
	svc *service.TrendService
}

func NewTrendHandler(svc *service.TrendService) *TrendHandler {
	return &TrendHandler{svc: svc}
}

// Trends handles GET /api/v1/sessions/:sessionID/trends.
func (h *TrendHandler) Trends(c *gin.Context) {
	sessionID, ok := parseUUID(c, "sessionID")
	if !ok {
		return
	}

	report, err := h.svc.Analyze(c.Request.Context(), sessionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, report)
}

// Readings handles GET /api/v1/sessions/:sessionID/readings.
func (h *TrendHandler) Readings(c *gin.Context) {
	sessionID, ok := parseUUID(c, "sessionID")
	if !ok {
		return
	}

	readings, err := h.svc.Readings(c.Request.Context(), sessionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, readings)
}
