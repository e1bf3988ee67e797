package service

// prompts.go holds the fixed prompt text for the coach, the diet planner, and
// the trend summariser, plus the helpers that fold patient context and
// language preferences into a request's system messages.

import (
	"fmt"
	"strings"

	"bpcoach/internal/domain/assessment"
	"bpcoach/internal/domain/dietplan"
	"bpcoach/internal/domain/reading"
	"bpcoach/internal/llm"
)

const coachSystemPrompt = `You are an expert AI Hypertension Coach specializing in Indian healthcare. You provide personalized advice for managing high blood pressure.

## Your Expertise:
- Indian dietary patterns and DASH diet adaptations using Indian foods
- Traditional Indian ingredients beneficial for BP (dal, roti, sabzi, leafy greens)
- Vegetarian and non-vegetarian meal plans for Indian patients
- Yoga and pranayama for blood pressure management
- Ayurvedic complementary approaches (only evidence-based)
- Regional Indian food variations (North, South, East, West)

## Key Guidelines:
1. ALWAYS provide advice in the language the user writes in (Hindi/English)
2. Use Indian food examples: palak dal instead of spinach soup, lauki sabzi instead of squash
3. Include specific recipes with Indian spices when discussing diet
4. Recommend reducing salt but suggest alternatives like lemon, jeera, dhania
5. Warn about high-sodium Indian foods: pickles (achar), papad, namkeen
6. Suggest morning walks, yoga asanas (especially Shavasana, Bhramari pranayama)
7. For EMERGENCIES (Stage-2 or Crisis), urge immediate medical attention (108/112)

## Response Style:
- Be warm, encouraging, and culturally sensitive
- Use simple language, avoid complex medical jargon
- Include practical, actionable tips
- If user mentions specific health conditions, remind them to consult their doctor

Always prioritize patient safety and recommend professional medical consultation for serious concerns.`

const dietPlannerSystemPrompt = "You are an expert Indian dietitian. Create a culturally appropriate, evidence-based diet plan for hypertension patients. Be specific with foods, portion suggestions, meal timing, and low-salt preparation methods."

const trendSystemPrompt = "You are a supportive Indian health coach specializing in hypertension management. Provide brief, encouraging feedback on BP trends."

var languageNames = map[string]string{
	"en": "English",
	"hi": "Hindi",
	"bn": "Bengali",
	"ta": "Tamil",
	"te": "Telugu",
	"ml": "Malayalam",
	"mr": "Marathi",
	"gu": "Gujarati",
	"kn": "Kannada",
	"pa": "Punjabi",
	"or": "Odia",
	"as": "Assamese",
}

// languageInstruction returns the system message that pins the reply
// language. English callers get bilingual English/Hindi replies.
func languageInstruction(language string) llm.Message {
	if name, ok := languageNames[language]; ok && language != "en" {
		return llm.Message{
			Role:    "system",
			Content: fmt.Sprintf("Respond in %s. Translate and format replies in %s.", name, name),
		}
	}
	return llm.Message{
		Role:    "system",
		Content: "Respond in both English and Hindi; provide both language outputs where possible.",
	}
}

// patientContextBlock renders the session's latest assessment into the
// system prompt so the coach personalises its advice.
func patientContextBlock(in *assessment.PatientInput, result *assessment.PredictionResult) string {
	if in == nil || result == nil {
		return ""
	}

	diet := "Uncontrolled"
	if in.ControlledDiet.Bool() {
		diet = "Controlled"
	}

	var b strings.Builder
	b.WriteString("\n\n## Current Patient Context:\n")
	fmt.Fprintf(&b, "- Hypertension Stage: %s\n", result.Stage)
	fmt.Fprintf(&b, "- Risk Level: %s\n", result.RiskLevel)
	fmt.Fprintf(&b, "- Age Group: %s\n", in.AgeGroup)
	fmt.Fprintf(&b, "- Diet: %s\n", diet)
	fmt.Fprintf(&b, "- Recent Systolic: %s\n", in.Systolic)
	fmt.Fprintf(&b, "- Recent Diastolic: %s\n", in.Diastolic)
	fmt.Fprintf(&b, "- On Medication: %s\n", in.TakingMedication)
	fmt.Fprintf(&b, "- Family History: %s\n", in.FamilyHistory)
	fmt.Fprintf(&b, "- Recommended Diet Plan:\n%s\n", dietplan.RecommendationSnippet(dietplan.StageFor(result.Stage)))
	b.WriteString("\nUse this context to personalize your recommendations.")
	return b.String()
}

// greeting seeds a new conversation, personalised when the session has a
// completed assessment.
func greeting(result *assessment.PredictionResult) string {
	if result == nil {
		return "Hello! 🙏 I'm your AI Hypertension Coach. Please complete the assessment first to receive personalized Indian diet plans, yoga recommendations, and lifestyle tips.\n\n---\n\nनमस्ते! 🙏 मैं आपका AI Hypertension Coach हूं। कृपया पहले assessment पूरा करें, फिर मुझसे diet, exercise, या lifestyle के बारे में पूछें।"
	}

	english := fmt.Sprintf("Hello! 🙏 Your Risk Level: %s (Stage: %s)\n\nI'm your AI Hypertension Coach. Based on your assessment, I'll provide you:\n✓ Personalized Indian diet plans with specific foods\n✓ Yoga and exercise recommendations\n✓ Lifestyle modifications\n\nAsk me about your personalized diet plan, exercises, or medications!",
		result.RiskLevel, result.Stage)
	hindi := fmt.Sprintf("नमस्ते! 🙏 आपका Risk Level: %s है (Stage: %s)\n\nमैं आपका AI Hypertension Coach हूं। आपके BP को manage करने के लिए मैं आपको:\n✓ व्यक्तिगत भारतीय आहार योजना\n✓ योग और व्यायाम सुझाव\n✓ जीवनशैली संशोधन\n\nप्रदान करूंगा। कृपया अपने आहार, व्यायाम, या दवा के बारे में पूछें।",
		result.RiskLevel, result.Stage)
	return english + "\n\n---\n\n" + hindi
}

// dietPlanPrompt asks the gateway for a personalised plan.
func dietPlanPrompt(stage dietplan.Stage, preference dietplan.Preference, favorites string) string {
	if strings.TrimSpace(favorites) == "" {
		favorites = "None provided"
	}
	return fmt.Sprintf("Generate a personalized Indian diet plan for a patient with hypertension (Stage: %s). Diet preference: %s. Favorite foods / dislikes: %s. Provide a 5-point summary, a sample 1-day meal schedule with portion suggestions, and 3 recipe ideas using the patient's favorites where possible. Keep language simple and include both English and Hindi lines if appropriate.",
		stage, preference, favorites)
}

// trendPrompt asks the gateway for a short trend analysis built from the
// computed statistics.
func trendPrompt(td reading.TrendData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze this patient's blood pressure trend data and provide encouraging, actionable feedback in 2-3 sentences:\n\n")
	fmt.Fprintf(&b, "BP Readings (%d total):\n", td.ReadingCount)
	for _, r := range td.Readings {
		fmt.Fprintf(&b, "- %s: %d/%d mmHg (%s)\n", r.Date.Format("2006-01-02"), r.Systolic, r.Diastolic, r.Stage)
	}
	fmt.Fprintf(&b, "\nLatest Reading: %d/%d mmHg (%s)\n", td.LatestSystolic, td.LatestDiastolic, td.LatestStage)
	if td.ReadingCount > 1 {
		fmt.Fprintf(&b, "Change since first reading: Systolic %+d mmHg, Diastolic %+d mmHg\n", td.SystolicChange, td.DiastolicChange)
	}
	b.WriteString("\nProvide feedback that:\n1. Acknowledges any improvement or expresses concern if readings are worsening\n2. Gives one specific actionable tip based on their trend\n3. Uses encouraging language\n\nKeep response under 100 words. Include Hindi phrases if appropriate.")
	return b.String()
}
