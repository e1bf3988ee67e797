// Package dietplan builds deterministic, multi-section Indian diet plans for
// hypertension patients. It is the offline fallback used when the streaming
// generation path is unavailable, and the source of the static per-stage
// recommendation snippets persisted with each assessment.
package dietplan

import (
	"fmt"
	"strings"

	"bpcoach/internal/domain/assessment"
)

// Stage is the diet-plan template key. The plan tables cover five stages,
// one more granular than the scorer's four (the dataset's "Elevated" band).
type Stage string

const (
	StageNormal   Stage = "Normal"
	StageElevated Stage = "Elevated"
	StageOne      Stage = "Stage 1"
	StageTwo      Stage = "Stage 2"
	StageCrisis   Stage = "Hypertensive Crisis"
)

func (s Stage) IsValid() bool {
	switch s {
	case StageNormal, StageElevated, StageOne, StageTwo, StageCrisis:
		return true
	}
	return false
}

// StageFor maps a scored assessment stage onto its diet-plan template.
func StageFor(s assessment.Stage) Stage {
	switch s {
	case assessment.StageOne:
		return StageOne
	case assessment.StageTwo:
		return StageTwo
	case assessment.StageCrisis:
		return StageCrisis
	default:
		return StageNormal
	}
}

type Preference string

const (
	PreferenceVegetarian    Preference = "Vegetarian"
	PreferenceVegan         Preference = "Vegan"
	PreferenceNonVegetarian Preference = "Non-vegetarian"
)

func (p Preference) IsValid() bool {
	switch p {
	case PreferenceVegetarian, PreferenceVegan, PreferenceNonVegetarian:
		return true
	}
	return false
}

// Generate composes the full plan text: stage template, preference-specific
// protein/dairy/fat block, a favorites note only when favorites is non-empty,
// the preference's sample meal plan and recipes, and the fixed tips block.
// Total over its inputs: an unknown stage falls back to the Normal template
// and an unknown preference to the non-vegetarian block, matching the
// behaviour of the form this replaces.
func Generate(stage Stage, preference Preference, favorites string) string {
	tmpl, ok := stageTemplates[stage]
	if !ok {
		tmpl = stageTemplates[StageNormal]
	}

	pref, ok := preferenceBlocks[preference]
	if !ok {
		pref = preferenceBlocks[PreferenceNonVegetarian]
	}

	var favoritesNote string
	if strings.TrimSpace(favorites) != "" {
		favoritesNote = fmt.Sprintf(favoritesNoteFormat, favorites)
	}

	return fmt.Sprintf("%s\n%s\n\n%s\n%s%s\n\n🍽️ RECOMMENDED FOODS:\n%s\n\n🚫 FOODS TO AVOID:\n%s\n\n%s\n\n%s\n\n%s",
		tmpl.Title,
		tmpl.KeyPoints,
		pref.Note,
		pref.Foods,
		favoritesNote,
		tmpl.Foods,
		tmpl.Avoid,
		pref.MealPlan,
		pref.Recipes,
		tipsBlock,
	)
}

// RecommendationSnippet is the short per-stage diet guidance stored alongside
// a risk assessment and folded into the coach's patient context.
func RecommendationSnippet(stage Stage) string {
	if s, ok := recommendationSnippets[stage]; ok {
		return s
	}
	return "Consult healthcare provider for personalized diet plan"
}
