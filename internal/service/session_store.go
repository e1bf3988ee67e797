package service

import (
	"sync"

	"github.com/google/uuid"

	"bpcoach/internal/domain/assessment"
	"bpcoach/internal/domain/conversation"
)

// sessionState is the in-memory, session-scoped context: the conversation,
// the latest scored assessment, and the one-in-flight chat flag. All access
// goes through mu; the conversation itself is not safe for concurrent use.
type sessionState struct {
	mu sync.Mutex

	conv         *conversation.Conversation
	input        *assessment.PatientInput
	result       *assessment.PredictionResult
	chatInFlight bool
}

// conversationLocked returns the conversation, seeding the greeting on first
// use. Callers must hold s.mu.
func (s *sessionState) conversationLocked() *conversation.Conversation {
	if s.conv == nil {
		s.conv = conversation.New()
		s.conv.Seed(greeting(s.result))
	}
	return s.conv
}

// SessionStore owns the per-session state for the lifetime of the process.
// Durable history (readings, assessments) lives in the database; this store
// only carries what the original kept in page state.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*sessionState
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[uuid.UUID]*sessionState)}
}

func (st *SessionStore) get(id uuid.UUID) *sessionState {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if ok {
		return s
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if s, ok := st.sessions[id]; ok {
		return s
	}
	s = &sessionState{}
	st.sessions[id] = s
	return s
}

// Reset drops the session's in-memory state. Persisted readings are
// append-only and untouched.
func (st *SessionStore) Reset(id uuid.UUID) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// setAssessment records the latest scored questionnaire for prompt context
// and refreshes the greeting of a not-yet-started conversation.
func (st *SessionStore) setAssessment(id uuid.UUID, in *assessment.PatientInput, result *assessment.PredictionResult) {
	s := st.get(id)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.input = in
	s.result = result
	if s.conv != nil && s.conv.Len() == 1 && !s.chatInFlight {
		s.conv = nil
	}
}

func (st *SessionStore) assessment(id uuid.UUID) (*assessment.PatientInput, *assessment.PredictionResult) {
	s := st.get(id)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.input, s.result
}
