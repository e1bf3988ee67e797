package v1

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bpcoach/internal/service"
)

type ChatHandler struct {
	svc *service.ChatService
	log *zap.Logger
}

func NewChatHandler(svc *service.ChatService, log *zap.Logger) *ChatHandler {
	return &ChatHandler{svc: svc, log: log}
}

type chatRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Message   string `json:"message" binding:"required"`
	Language  string `json:"language"`
}

// Send handles POST /api/v1/chat, re-streaming the coach's reply as SSE.
func (h *ChatHandler) Send(c *gin.Context) {
	var req chatRequest
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

	err := h.svc.Send(c.Request.Context(), sessionID, req.Message, req.Language, sse.Chunk)
	if err != nil {
		if !sse.Started() {
			respondServiceError(c, err)
			return
		}
		// Mid-stream failure: the transport already carries partial
		// output, so all we can do is terminate the stream.
		h.log.Warn("chat stream aborted",
			zap.String("session_id", sessionID.String()),
			zap.Error(err),
		)
		sse.Done()
		return
	}

	sse.Done()
}

// History handles GET /api/v1/chat/:sessionID/messages.
func (h *ChatHandler) History(c *gin.Context) {
	sessionID, ok := parseUUID(c, "sessionID")
	if !ok {
		return
	}

	messages, err := h.svc.History(sessionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, messages)
}

// Reset handles DELETE /api/v1/sessions/:sessionID.
func (h *ChatHandler) Reset(c *gin.Context) {
	sessionID, ok := parseUUID(c, "sessionID")
	if !ok {
		return
	}

	if err := h.svc.Reset(sessionID); err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, gin.H{"session_id": sessionID, "reset": true})
}
