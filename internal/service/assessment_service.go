package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bpcoach/internal/domain/assessment"
	"bpcoach/internal/domain/dietplan"
	"bpcoach/internal/domain/reading"
	"bpcoach/pkg/metrics"
)

type AssessmentService struct {
	assessments assessment.Repository
	readings    reading.Repository
	sessions    *SessionStore
	metrics     *metrics.Collector
	log         *zap.Logger
}

func NewAssessmentService(assessments assessment.Repository, readings reading.Repository, sessions *SessionStore, m *metrics.Collector, log *zap.Logger) *AssessmentService {
	return &AssessmentService{
		assessments: assessments,
		readings:    readings,
		sessions:    sessions,
		metrics:     m,
		log:         log,
	}
}

// Submit scores a completed questionnaire, records the result for the
// session, and appends a BP reading derived from the reported bands.
// Persistence is best effort: a storage failure is logged and counted but
// the caller still receives the scored result.
func (s *AssessmentService) Submit(ctx context.Context, sessionID uuid.UUID, in *assessment.PatientInput) (*assessment.PredictionResult, error) {
	if sessionID == uuid.Nil {
		return nil, assessment.ErrInvalidSessionID
	}
	if fields := in.Validate(); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	result := assessment.Score(in)

	stage := dietplan.StageFor(result.Stage)
	record := &assessment.RiskAssessment{
		SessionID:        sessionID,
		Gender:           in.Gender,
		AgeGroup:         in.AgeGroup,
		FamilyHistory:    in.FamilyHistory.Bool(),
		UnderMedicalCare: in.UnderMedicalCare.Bool(),
		OnMedication:     in.TakingMedication.Bool(),
		DiagnosedWhen:    in.DiagnosedWhen,
		Severity:         in.Severity,
		BreathShortness:  in.BreathShortness.Bool(),
		VisualChanges:    in.VisualChanges.Bool(),
		NoseBleeding:     in.NoseBleeding.Bool(),
		SystolicBand:     in.Systolic,
		DiastolicBand:    in.Diastolic,
		ControlledDiet:   in.ControlledDiet.Bool(),

		Stage:           result.Stage,
		RiskLevel:       result.RiskLevel,
		Confidence:      result.Confidence,
		Recommendations: result.Recommendations,

		DietRecommendations:      dietplan.RecommendationSnippet(stage),
		LifestyleRecommendations: dietplan.LifestyleRecommendations,
	}

	if err := s.assessments.Create(ctx, record); err != nil {
		s.log.Error("failed to persist risk assessment",
			zap.String("session_id", sessionID.String()),
			zap.Error(err),
		)
		s.metrics.PersistDropped.Inc()
	}

	r := &reading.BPReading{
		SessionID: sessionID,
		Systolic:  in.Systolic.Representative(),
		Diastolic: in.Diastolic.Representative(),
		Stage:     string(result.Stage),
	}
	if err := s.readings.Create(ctx, r); err != nil {
		s.log.Error("failed to persist bp reading",
			zap.String("session_id", sessionID.String()),
			zap.Error(err),
		)
		s.metrics.PersistDropped.Inc()
	}

	s.sessions.setAssessment(sessionID, in, &result)
	s.metrics.AssessmentsTotal.WithLabelValues(string(result.Stage)).Inc()

	s.log.Info("assessment scored",
		zap.String("session_id", sessionID.String()),
		zap.String("stage", string(result.Stage)),
		zap.String("risk_level", string(result.RiskLevel)),
		zap.Float64("confidence", result.Confidence),
	)

	return &result, nil
}
