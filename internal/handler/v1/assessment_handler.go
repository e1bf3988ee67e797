package v1

import (
	"github.com/gin-gonic/gin"

	"bpcoach/internal/domain/assessment"
	"bpcoach/internal/service"
)

type AssessmentHandler struct {
	svc *service.AssessmentService
}

func NewAssessmentHandler(svc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{svc: svc}
}

type submitAssessmentRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	assessment.PatientInput
}

// Submit handles POST /api/v1/assessments.
func (h *AssessmentHandler) Submit(c *gin.Context) {
	var req submitAssessmentRequest
	if !bindJSON(c, &req) {
		return
	}

	sessionID, ok := parseSessionID(c, req.SessionID)
	if !ok {
		return
	}

	result, err := h.svc.Submit(c.Request.Context(), sessionID, &req.PatientInput)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondCreated(c, result)
}
