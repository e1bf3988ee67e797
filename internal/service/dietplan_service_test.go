package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bpcoach/internal/domain/assessment"
	"bpcoach/internal/domain/dietplan"
)

func TestGenerateDietPlan_StreamsFromGateway(t *testing.T) {
	gw := &fakeGateway{chunks: []string{"Eat palak dal ", "and lauki sabzi."}}
	svc := NewDietPlanService(NewSessionStore(), gw, testMetrics, testLogger)

	var got []string
	plan, err := svc.Generate(context.Background(), uuid.New(), dietplan.PreferenceVegetarian, "paneer", collectChunks(&got))
	require.NoError(t, err)

	assert.Equal(t, []string{"Eat palak dal ", "and lauki sabzi."}, got)
	assert.Equal(t, "gateway", plan.Source)
	assert.Equal(t, "Eat palak dal and lauki sabzi.", plan.Plan)
	assert.Equal(t, dietplan.StageNormal, plan.Stage)

	require.Len(t, gw.streamMessages, 1)
	user := gw.streamMessages[0][1]
	assert.Contains(t, user.Content, "Vegetarian")
	assert.Contains(t, user.Content, "paneer")
}

func TestGenerateDietPlan_FallsBackToLocalTemplate(t *testing.T) {
	gw := &fakeGateway{streamErr: errors.New("gateway down")}
	svc := NewDietPlanService(NewSessionStore(), gw, testMetrics, testLogger)

	var got []string
	plan, err := svc.Generate(context.Background(), uuid.New(), dietplan.PreferenceVegan, "", collectChunks(&got))
	require.NoError(t, err)

	want := dietplan.Generate(dietplan.StageNormal, dietplan.PreferenceVegan, "")
	assert.Equal(t, "local", plan.Source)
	assert.Equal(t, want, plan.Plan)
	// the whole local plan arrives as one terminal chunk
	assert.Equal(t, []string{want}, got)
}

func TestGenerateDietPlan_EmptyStreamFallsBack(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewDietPlanService(NewSessionStore(), gw, testMetrics, testLogger)

	plan, err := svc.Generate(context.Background(), uuid.New(), dietplan.PreferenceNonVegetarian, "", func(string) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, "local", plan.Source)
	assert.NotEmpty(t, plan.Plan)
}

func TestGenerateDietPlan_MidStreamFailureIsReturned(t *testing.T) {
	upstream := errors.New("connection reset")
	gw := &fakeGateway{chunks: []string{"partial "}, streamErr: upstream}
	svc := NewDietPlanService(NewSessionStore(), gw, testMetrics, testLogger)

	var got []string
	_, err := svc.Generate(context.Background(), uuid.New(), dietplan.PreferenceVegetarian, "", collectChunks(&got))

	assert.ErrorIs(t, err, upstream)
	// no local plan appended after partial gateway output
	assert.Equal(t, []string{"partial "}, got)
}

func TestGenerateDietPlan_UsesSessionStage(t *testing.T) {
	store := NewSessionStore()
	gw := &fakeGateway{streamErr: errors.New("offline")}
	svc := NewDietPlanService(store, gw, testMetrics, testLogger)
	sessionID := uuid.New()

	in := completeInput()
	in.Systolic = assessment.SystolicHigh
	in.Diastolic = assessment.DiastolicCrisis
	in.BreathShortness = assessment.AnswerYes
	in.NoseBleeding = assessment.AnswerYes
	in.VisualChanges = assessment.AnswerYes
	in.Severity = assessment.SeveritySevere
	result := assessment.Score(in)
	require.Equal(t, assessment.StageCrisis, result.Stage)
	store.setAssessment(sessionID, in, &result)

	plan, err := svc.Generate(context.Background(), sessionID, dietplan.PreferenceVegetarian, "", func(string) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, dietplan.StageCrisis, plan.Stage)
	assert.Contains(t, plan.Plan, "EMERGENCY - Immediate Medical Attention Required")
}

func TestGenerateDietPlan_InvalidPreference(t *testing.T) {
	svc := NewDietPlanService(NewSessionStore(), &fakeGateway{}, testMetrics, testLogger)

	_, err := svc.Generate(context.Background(), uuid.New(), "Pescatarian", "", func(string) error { return nil })

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"preference"}, verr.Fields)
}

func TestGenerateDietPlan_NilSessionID(t *testing.T) {
	svc := NewDietPlanService(NewSessionStore(), &fakeGateway{}, testMetrics, testLogger)

	_, err := svc.Generate(context.Background(), uuid.Nil, dietplan.PreferenceVegetarian, "", func(string) error { return nil })
	assert.ErrorIs(t, err, assessment.ErrInvalidSessionID)
}
