package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bpcoach/internal/domain/assessment"
	"bpcoach/internal/domain/reading"
	"bpcoach/internal/llm"
	"bpcoach/pkg/metrics"
)

// One collector per test binary; promauto registers globally.
var testMetrics = metrics.NewCollector("test")

var testLogger = zap.NewNop()

type fakeAssessmentRepo struct {
	created   []*assessment.RiskAssessment
	createErr error
}

func (f *fakeAssessmentRepo) Create(_ context.Context, a *assessment.RiskAssessment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, a)
	return nil
}

type fakeReadingRepo struct {
	readings  []reading.BPReading
	createErr error
	listErr   error
}

func (f *fakeReadingRepo) Create(_ context.Context, r *reading.BPReading) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.readings = append(f.readings, *r)
	return nil
}

func (f *fakeReadingRepo) ListBySession(_ context.Context, sessionID uuid.UUID) ([]reading.BPReading, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []reading.BPReading
	for _, r := range f.readings {
		if r.SessionID == sessionID {
			out = append(out, r)
		}
	}
	return out, nil
}

// fakeGateway scripts the completion gateway: Complete returns the canned
// text, Stream emits the canned chunks then the canned error. Every call's
// messages are recorded for assertions on prompt assembly.
type fakeGateway struct {
	completeText string
	completeErr  error

	chunks    []string
	streamErr error

	completeMessages [][]llm.Message
	streamMessages   [][]llm.Message
}

func (f *fakeGateway) Complete(_ context.Context, messages []llm.Message) (string, error) {
	f.completeMessages = append(f.completeMessages, messages)
	if f.completeErr != nil {
		return "", f.completeErr
	}
	return f.completeText, nil
}

func (f *fakeGateway) Stream(_ context.Context, messages []llm.Message, onChunk func(string) error) error {
	f.streamMessages = append(f.streamMessages, messages)
	for _, c := range f.chunks {
		if err := onChunk(c); err != nil {
			return err
		}
	}
	return f.streamErr
}

func completeInput() *assessment.PatientInput {
	return &assessment.PatientInput{
		Gender:           assessment.GenderFemale,
		AgeGroup:         assessment.Age35to50,
		FamilyHistory:    assessment.AnswerNo,
		UnderMedicalCare: assessment.AnswerNo,
		TakingMedication: assessment.AnswerNo,
		DiagnosedWhen:    assessment.DiagnosedUnderOneYear,
		Severity:         assessment.SeverityMild,
		BreathShortness:  assessment.AnswerNo,
		VisualChanges:    assessment.AnswerNo,
		NoseBleeding:     assessment.AnswerNo,
		Systolic:         assessment.SystolicNormal,
		Diastolic:        assessment.DiastolicNormal,
		ControlledDiet:   assessment.AnswerYes,
	}
}
