package dietplan

import (
	"strings"
	"testing"

	"bpcoach/internal/domain/assessment"

	"github.com/stretchr/testify/assert"
)

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(StageOne, PreferenceVegetarian, "paneer, banana")
	b := Generate(StageOne, PreferenceVegetarian, "paneer, banana")
	assert.Equal(t, a, b)
}

func TestGenerate_PreferenceBlocks(t *testing.T) {
	tests := []struct {
		preference Preference
		marker     string
		protein    string
	}{
		{PreferenceVegetarian, "🥬 VEGETARIAN OPTION", "All dals, paneer"},
		{PreferenceVegan, "🌱 VEGAN OPTION", "tofu (if available)"},
		{PreferenceNonVegetarian, "🍗 NON-VEGETARIAN OPTION", "White fish (sardine, mackerel, pomfret)"},
	}

	for _, tt := range tests {
		t.Run(string(tt.preference), func(t *testing.T) {
			plan := Generate(StageTwo, tt.preference, "")
			assert.Contains(t, plan, tt.marker)
			assert.Contains(t, plan, tt.protein)
			assert.Contains(t, plan, "SAMPLE 1-DAY MEAL PLAN")
			assert.Contains(t, plan, "3 EASY RECIPES")
			assert.Contains(t, plan, "IMPORTANT TIPS")
		})
	}
}

func TestGenerate_FavoritesNoteOnlyWhenPresent(t *testing.T) {
	withFavorites := Generate(StageNormal, PreferenceVegan, "paneer, spicy chutney")
	assert.Contains(t, withFavorites, "Using Your Favorites")
	assert.Contains(t, withFavorites, "paneer, spicy chutney")

	without := Generate(StageNormal, PreferenceVegan, "")
	assert.NotContains(t, without, "Using Your Favorites")

	blank := Generate(StageNormal, PreferenceVegan, "   ")
	assert.NotContains(t, blank, "Using Your Favorites")
}

func TestGenerate_StageTemplates(t *testing.T) {
	assert.True(t, strings.HasPrefix(Generate(StageNormal, PreferenceVegetarian, ""), "Normal BP - Maintenance Plan"))
	assert.True(t, strings.HasPrefix(Generate(StageElevated, PreferenceVegetarian, ""), "Elevated BP - Prevention Plan"))
	assert.True(t, strings.HasPrefix(Generate(StageCrisis, PreferenceVegetarian, ""), "EMERGENCY - Immediate Medical Attention Required"))
}

func TestGenerate_UnknownStageFallsBackToNormal(t *testing.T) {
	plan := Generate(Stage("Stage 7"), PreferenceVegetarian, "")
	assert.True(t, strings.HasPrefix(plan, "Normal BP - Maintenance Plan"))
}

func TestStageFor(t *testing.T) {
	assert.Equal(t, StageNormal, StageFor(assessment.StageNormal))
	assert.Equal(t, StageOne, StageFor(assessment.StageOne))
	assert.Equal(t, StageTwo, StageFor(assessment.StageTwo))
	assert.Equal(t, StageCrisis, StageFor(assessment.StageCrisis))
	assert.Equal(t, StageNormal, StageFor(assessment.Stage("bogus")))
}

func TestRecommendationSnippet(t *testing.T) {
	assert.Contains(t, RecommendationSnippet(StageTwo), "Therapeutic DASH diet")
	assert.Equal(t, "Consult healthcare provider for personalized diet plan", RecommendationSnippet(Stage("bogus")))
}
