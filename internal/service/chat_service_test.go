package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bpcoach/internal/domain/assessment"
	"bpcoach/internal/domain/conversation"
)

func collectChunks(into *[]string) func(string) error {
	return func(c string) error {
		*into = append(*into, c)
		return nil
	}
}

func TestSend_StreamsReplyIntoConversation(t *testing.T) {
	gw := &fakeGateway{chunks: []string{"Namaste", ", reduce salt."}}
	svc := NewChatService(NewSessionStore(), gw, testMetrics, testLogger)
	sessionID := uuid.New()

	var got []string
	err := svc.Send(context.Background(), sessionID, "What should I eat?", "en", collectChunks(&got))
	require.NoError(t, err)
	assert.Equal(t, []string{"Namaste", ", reduce salt."}, got)

	history, err := svc.History(sessionID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, conversation.RoleAssistant, history[0].Role) // greeting
	assert.Equal(t, conversation.RoleUser, history[1].Role)
	assert.Equal(t, "What should I eat?", history[1].Content)
	assert.Equal(t, conversation.RoleAssistant, history[2].Role)
	assert.Equal(t, "Namaste, reduce salt.", history[2].Content)
}

func TestSend_PromptCarriesPatientContext(t *testing.T) {
	store := NewSessionStore()
	gw := &fakeGateway{chunks: []string{"ok"}}
	svc := NewChatService(store, gw, testMetrics, testLogger)
	sessionID := uuid.New()

	in := completeInput()
	result := assessment.Score(in)
	store.setAssessment(sessionID, in, &result)

	err := svc.Send(context.Background(), sessionID, "hello", "hi", func(string) error { return nil })
	require.NoError(t, err)

	require.Len(t, gw.streamMessages, 1)
	msgs := gw.streamMessages[0]
	require.GreaterOrEqual(t, len(msgs), 3)

	assert.Equal(t, "system", msgs[0].Role)
	assert.Contains(t, msgs[0].Content, "AI Hypertension Coach")
	assert.Contains(t, msgs[0].Content, "Current Patient Context")
	assert.Contains(t, msgs[0].Content, string(result.Stage))

	assert.Equal(t, "system", msgs[1].Role)
	assert.Contains(t, msgs[1].Content, "Hindi")

	last := msgs[len(msgs)-1]
	assert.Equal(t, "user", last.Role)
	assert.Equal(t, "hello", last.Content)
}

func TestSend_EmptyMessage(t *testing.T) {
	svc := NewChatService(NewSessionStore(), &fakeGateway{}, testMetrics, testLogger)

	err := svc.Send(context.Background(), uuid.New(), "   ", "en", func(string) error { return nil })
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestSend_RejectsConcurrentSend(t *testing.T) {
	store := NewSessionStore()
	svc := NewChatService(store, &fakeGateway{chunks: []string{"x"}}, testMetrics, testLogger)
	sessionID := uuid.New()

	state := store.get(sessionID)
	state.mu.Lock()
	state.chatInFlight = true
	state.mu.Unlock()

	err := svc.Send(context.Background(), sessionID, "hello", "en", func(string) error { return nil })
	assert.ErrorIs(t, err, ErrChatBusy)

	state.mu.Lock()
	state.chatInFlight = false
	state.mu.Unlock()

	err = svc.Send(context.Background(), sessionID, "hello", "en", func(string) error { return nil })
	assert.NoError(t, err)
}

func TestSend_FailureBeforeContentDropsEmptyReply(t *testing.T) {
	gw := &fakeGateway{streamErr: errors.New("gateway down")}
	svc := NewChatService(NewSessionStore(), gw, testMetrics, testLogger)
	sessionID := uuid.New()

	err := svc.Send(context.Background(), sessionID, "hello", "en", func(string) error { return nil })
	require.Error(t, err)

	history, err := svc.History(sessionID)
	require.NoError(t, err)
	require.Len(t, history, 2) // greeting + user, no empty assistant message
	assert.Equal(t, conversation.RoleUser, history[1].Role)
}

func TestSend_FailureAfterContentKeepsPartialReply(t *testing.T) {
	gw := &fakeGateway{chunks: []string{"partial "}, streamErr: errors.New("connection reset")}
	svc := NewChatService(NewSessionStore(), gw, testMetrics, testLogger)
	sessionID := uuid.New()

	err := svc.Send(context.Background(), sessionID, "hello", "en", func(string) error { return nil })
	require.Error(t, err)

	history, err := svc.History(sessionID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "partial ", history[2].Content)

	// the next send may proceed
	gw.streamErr = nil
	gw.chunks = []string{"done"}
	err = svc.Send(context.Background(), sessionID, "again", "en", func(string) error { return nil })
	assert.NoError(t, err)
}

func TestSend_ForwardErrorAbortsStream(t *testing.T) {
	gw := &fakeGateway{chunks: []string{"a", "b", "c"}}
	svc := NewChatService(NewSessionStore(), gw, testMetrics, testLogger)

	sink := errors.New("client went away")
	var forwarded int
	err := svc.Send(context.Background(), uuid.New(), "hello", "en", func(string) error {
		forwarded++
		if forwarded == 2 {
			return sink
		}
		return nil
	})

	assert.ErrorIs(t, err, sink)
	assert.Equal(t, 2, forwarded)
}

func TestHistory_SeedsGreeting(t *testing.T) {
	svc := NewChatService(NewSessionStore(), &fakeGateway{}, testMetrics, testLogger)

	history, err := svc.History(uuid.New())
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, conversation.RoleAssistant, history[0].Role)
	assert.Contains(t, history[0].Content, "complete the assessment first")
}

func TestHistory_GreetingReflectsAssessment(t *testing.T) {
	store := NewSessionStore()
	svc := NewChatService(store, &fakeGateway{}, testMetrics, testLogger)
	sessionID := uuid.New()

	in := completeInput()
	result := assessment.Score(in)
	store.setAssessment(sessionID, in, &result)

	history, err := svc.History(sessionID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.True(t, strings.Contains(history[0].Content, string(result.Stage)))
}

func TestReset_DropsConversation(t *testing.T) {
	gw := &fakeGateway{chunks: []string{"hi"}}
	store := NewSessionStore()
	svc := NewChatService(store, gw, testMetrics, testLogger)
	sessionID := uuid.New()

	require.NoError(t, svc.Send(context.Background(), sessionID, "hello", "en", func(string) error { return nil }))

	require.NoError(t, svc.Reset(sessionID))

	history, err := svc.History(sessionID)
	require.NoError(t, err)
	require.Len(t, history, 1) // back to just the greeting
}
