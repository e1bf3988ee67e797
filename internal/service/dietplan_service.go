package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bpcoach/internal/domain/assessment"
	"bpcoach/internal/domain/dietplan"
	"bpcoach/internal/llm"
	"bpcoach/pkg/metrics"
)

type DietPlanService struct {
	sessions *SessionStore
	gateway  llm.Client
	metrics  *metrics.Collector
	log      *zap.Logger
}

func NewDietPlanService(sessions *SessionStore, gateway llm.Client, m *metrics.Collector, log *zap.Logger) *DietPlanService {
	return &DietPlanService{
		sessions: sessions,
		gateway:  gateway,
		metrics:  m,
		log:      log,
	}
}

// DietPlan is a generated plan plus where it came from. Source is "gateway"
// for a personalised completion and "local" for the built-in template.
type DietPlan struct {
	Stage      dietplan.Stage      `json:"stage"`
	Preference dietplan.Preference `json:"preference"`
	Plan       string              `json:"plan"`
	Source     string              `json:"source"`
}

// Generate streams a diet plan for the session's current hypertension stage,
// forwarding each fragment to onChunk. When the gateway fails before
// producing any content the local template plan is emitted as a single
// chunk instead, so the patient always gets a plan. A failure after content
// has been forwarded is returned as-is; a stream cannot be restarted on the
// caller's side.
func (s *DietPlanService) Generate(ctx context.Context, sessionID uuid.UUID, preference dietplan.Preference, favorites string, onChunk func(string) error) (*DietPlan, error) {
	if sessionID == uuid.Nil {
		return nil, assessment.ErrInvalidSessionID
	}
	if !preference.IsValid() {
		return nil, &ValidationError{Fields: []string{"preference"}}
	}

	stage := dietplan.StageNormal
	if _, result := s.sessions.assessment(sessionID); result != nil {
		stage = dietplan.StageFor(result.Stage)
	}

	plan := &DietPlan{Stage: stage, Preference: preference}

	var received strings.Builder
	start := time.Now()
	err := s.gateway.Stream(ctx, []llm.Message{
		{Role: "system", Content: dietPlannerSystemPrompt},
		{Role: "user", Content: dietPlanPrompt(stage, preference, favorites)},
	}, func(chunk string) error {
		received.WriteString(chunk)
		return onChunk(chunk)
	})
	s.metrics.GatewayRequestDuration.WithLabelValues("diet_plan").Observe(time.Since(start).Seconds())

	if err != nil && received.Len() > 0 {
		s.metrics.DietPlansTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	if err != nil || received.Len() == 0 {
		if err != nil {
			s.log.Warn("diet plan stream failed, using local template",
				zap.String("session_id", sessionID.String()),
				zap.Error(err),
			)
		}
		plan.Plan = dietplan.Generate(stage, preference, favorites)
		plan.Source = "local"
		s.metrics.DietPlansTotal.WithLabelValues("local").Inc()
		if err := onChunk(plan.Plan); err != nil {
			return nil, err
		}
		return plan, nil
	}

	plan.Plan = received.String()
	plan.Source = "gateway"
	s.metrics.DietPlansTotal.WithLabelValues("gateway").Inc()
	return plan, nil
}
