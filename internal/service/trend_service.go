package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bpcoach/internal/domain/assessment"
	"bpcoach/internal/domain/reading"
	"bpcoach/internal/llm"
	"bpcoach/pkg/metrics"
)

type TrendService struct {
	readings reading.Repository
	gateway  llm.Client
	metrics  *metrics.Collector
	log      *zap.Logger
}

func NewTrendService(readings reading.Repository, gateway llm.Client, m *metrics.Collector, log *zap.Logger) *TrendService {
	return &TrendService{
		readings: readings,
		gateway:  gateway,
		metrics:  m,
		log:      log,
	}
}

// TrendReport pairs the computed statistics with a short coach summary.
// Source is "gateway" when the summary came from the completion gateway and
// "local" when it was templated from the statistics.
type TrendReport struct {
	Data    reading.TrendData `json:"data"`
	Trend   reading.Trend     `json:"trend"`
	Summary string            `json:"summary"`
	Source  string            `json:"source"`
}

// Analyze computes trend statistics over the session's full reading history
// and attaches an encouraging summary. A gateway failure degrades to a
// templated summary rather than an error.
func (s *TrendService) Analyze(ctx context.Context, sessionID uuid.UUID) (*TrendReport, error) {
	if sessionID == uuid.Nil {
		return nil, assessment.ErrInvalidSessionID
	}

	history, err := s.readings.ListBySession(ctx, sessionID)
	if err != nil {
		s.log.Error("failed to load reading history",
			zap.String("session_id", sessionID.String()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("loading readings: %w", err)
	}

	td := reading.ComputeTrendData(history)
	report := &TrendReport{Data: td, Trend: td.Trend()}

	if td.ReadingCount == 0 {
		report.Summary = "No readings recorded yet. Complete an assessment to start tracking your BP trend."
		report.Source = "local"
		s.metrics.TrendAnalyses.WithLabelValues("local").Inc()
		return report, nil
	}

	start := time.Now()
	summary, err := s.gateway.Complete(ctx, []llm.Message{
		{Role: "system", Content: trendSystemPrompt},
		{Role: "user", Content: trendPrompt(td)},
	})
	s.metrics.GatewayRequestDuration.WithLabelValues("trend").Observe(time.Since(start).Seconds())

	if err != nil || summary == "" {
		if err != nil {
			s.log.Warn("trend summary completion failed, using templated summary",
				zap.String("session_id", sessionID.String()),
				zap.Error(err),
			)
		}
		report.Summary = fmt.Sprintf("You have %d readings recorded. Latest: %d/%d mmHg.",
			td.ReadingCount, td.LatestSystolic, td.LatestDiastolic)
		report.Source = "local"
		s.metrics.TrendAnalyses.WithLabelValues("local").Inc()
		return report, nil
	}

	report.Summary = summary
	report.Source = "gateway"
	s.metrics.TrendAnalyses.WithLabelValues("gateway").Inc()
	return report, nil
}

// Readings returns the session's full reading history, oldest first.
func (s *TrendService) Readings(ctx context.Context, sessionID uuid.UUID) ([]reading.BPReading, error) {
	if sessionID == uuid.Nil {
		return nil, assessment.ErrInvalidSessionID
	}
	return s.readings.ListBySession(ctx, sessionID)
}
