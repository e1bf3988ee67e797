package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bpcoach/internal/domain/reading"
)

type ReadingRepository struct {
	db *gorm.DB
}

func NewReadingRepository(db *gorm.DB) *ReadingRepository {
	return &ReadingRepository{db: db}
}

func (r *ReadingRepository) Create(ctx context.Context, rec *reading.BPReading) error {
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("inserting bp reading: %w", err)
	}
	return nil
}

// ListBySession returns the session's full history, oldest first. Trend math
// depends on this ordering.
func (r *ReadingRepository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]reading.BPReading, error) {
	var out []reading.BPReading
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("listing bp readings: %w", err)
	}
	return out, nil
}
