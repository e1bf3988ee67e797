package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"bpcoach/internal/domain/assessment"
)

type AssessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{db: db}
}

func (r *AssessmentRepository) Create(ctx context.Context, a *assessment.RiskAssessment) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("inserting risk assessment: %w", err)
	}
	return nil
}
