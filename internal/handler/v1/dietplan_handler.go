package v1

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bpcoach/internal/domain/dietplan"
	"bpcoach/internal/service"
)

type DietPlanHandler struct {
	svc *service.DietPlanService
	log *zap.Logger
}

func NewDietPlanHandler(svc *service.DietPlanService, log *zap.Logger) *DietPlanHandler {
	return &DietPlanHandler{svc: svc, log: log}
}

type dietPlanRequest struct {
	SessionID  string `json:"session_id" binding:"required"`
	Preference string `json:"preference" binding:"required"`
	Favorites  string `json:"favorites"`
}

// Generate handles POST /api/v1/diet-plans. The plan is streamed as SSE;
// when the gateway is down the local template plan arrives as a single
// event before the terminal sentinel.
func (h *DietPlanHandler) Generate(c *gin.Context) {
	var req dietPlanRequest
	if !bindJSON(c, &req) {
		return
	}

	sessionID, ok := parseSessionID(c, req.SessionID)
	if !ok {
		return
	}

	sse, ok := newSSEWriter(c)
	if !ok {
		return
	}

	_, err := h.svc.Generate(c.Request.Context(), sessionID, dietplan.Preference(req.Preference), req.Favorites, sse.Chunk)
	if err != nil {
		if !sse.Started() {
			respondServiceError(c, err)
			return
		}
		h.log.Warn("diet plan stream aborted",
			zap.String("session_id", sessionID.String()),
			zap.Error(err),
		)
		sse.Done()
		return
	}

	sse.Done()
}
