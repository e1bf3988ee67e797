package reading

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// Create appends a reading to the session's history.
	Create(ctx context.Context, r *BPReading) error

	// ListBySession returns all readings for a session ordered by creation
	// time ascending. An unknown session yields an empty slice, not an error.
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]BPReading, error)
}
