package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bpcoach/internal/domain/assessment"
	"bpcoach/internal/domain/conversation"
	"bpcoach/internal/llm"
	"bpcoach/pkg/metrics"
)

type ChatService struct {
	sessions *SessionStore
	gateway  llm.Client
	metrics  *metrics.Collector
	log      *zap.Logger
}

func NewChatService(sessions *SessionStore, gateway llm.Client, m *metrics.Collector, log *zap.Logger) *ChatService {
	return &ChatService{
		sessions: sessions,
		gateway:  gateway,
		metrics:  m,
		log:      log,
	}
}

// Send appends the user's message, streams the coach's reply, and forwards
// each content fragment to onChunk as it arrives. The assistant message is
// built up in the conversation chunk by chunk; it is closed when the stream
// ends cleanly and discarded when the request fails before producing any
// content. At most one send may be in flight per session.
func (s *ChatService) Send(ctx context.Context, sessionID uuid.UUID, message, language string, onChunk func(string) error) error {
	if sessionID == uuid.Nil {
		return assessment.ErrInvalidSessionID
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return ErrEmptyMessage
	}

	state := s.sessions.get(sessionID)

	state.mu.Lock()
	if state.chatInFlight {
		state.mu.Unlock()
		return ErrChatBusy
	}
	state.chatInFlight = true
	conv := state.conversationLocked()
	conv.AppendUser(message)
	history := conv.Messages()
	in, result := state.input, state.result
	state.mu.Unlock()

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{
		Role:    "system",
		Content: coachSystemPrompt + patientContextBlock(in, result),
	})
	messages = append(messages, languageInstruction(language))
	for _, m := range history {
		messages = append(messages, llm.Message{Role: string(m.Role), Content: m.Content})
	}

	err := s.gateway.Stream(ctx, messages, func(chunk string) error {
		state.mu.Lock()
		conv.AppendChunk(chunk)
		state.mu.Unlock()
		s.metrics.StreamChunks.Inc()
		return onChunk(chunk)
	})

	state.mu.Lock()
	if err != nil {
		if !conv.DiscardOpenIfEmpty() {
			// Partial reply already shown to the user; keep it.
			conv.CloseOpen()
		}
	} else {
		conv.CloseOpen()
	}
	state.chatInFlight = false
	state.mu.Unlock()

	if err != nil {
		s.metrics.ChatStreamsTotal.WithLabelValues("error").Inc()
		s.log.Warn("chat stream failed",
			zap.String("session_id", sessionID.String()),
			zap.Error(err),
		)
		return err
	}

	s.metrics.ChatStreamsTotal.WithLabelValues("ok").Inc()
	return nil
}

// History returns a copy of the session's conversation, seeding the greeting
// for sessions that have not chatted yet.
func (s *ChatService) History(sessionID uuid.UUID) ([]conversation.Message, error) {
	if sessionID == uuid.Nil {
		return nil, assessment.ErrInvalidSessionID
	}

	state := s.sessions.get(sessionID)
	state.mu.Lock()
	defer state.mu.Unlock()
	return state.conversationLocked().Messages(), nil
}

// Reset drops the session's conversation and assessment context.
func (s *ChatService) Reset(sessionID uuid.UUID) error {
	if sessionID == uuid.Nil {
		return assessment.ErrInvalidSessionID
	}
	s.sessions.Reset(sessionID)
	return nil
}
