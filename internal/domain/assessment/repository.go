package assessment

import "context"

type Repository interface {
	// Create persists a scored assessment. The core never reads these back.
	Create(ctx context.Context, a *RiskAssessment) error
}
