package assessment

// Additive rule-based classifier derived from the intake dataset. Each factor
// contributes independently; there are no interaction terms. Identical input
// always produces identical output.

func (s SystolicBand) points() float64 {
	switch s {
	case SystolicHigh:
		return 3
	case SystolicElevated:
		return 2
	default:
		return 1
	}
}

func (d DiastolicBand) points() float64 {
	switch d {
	case DiastolicCrisis:
		return 3
	case DiastolicHigh:
		return 2
	case DiastolicElevated:
		return 1
	default:
		return 0
	}
}

func (s Severity) points() float64 {
	switch s {
	case SeveritySevere:
		return 1
	case SeverityModerate:
		return 0.5
	default:
		return 0
	}
}

func (d DiagnosisDuration) points() float64 {
	switch d {
	case DiagnosedOverFive:
		return 0.5
	case DiagnosedOneToFive:
		return 0.3
	default:
		return 0
	}
}

func (a AgeGroup) points() float64 {
	switch a {
	case Age65Plus:
		return 0.3
	case Age51to64:
		return 0.2
	default:
		return 0
	}
}

// riskScore sums the factor contributions. Blood pressure bands carry the
// heaviest weight, nosebleeds outweigh the other symptoms.
func riskScore(in *PatientInput) float64 {
	score := in.Systolic.points() + in.Diastolic.points()

	if in.BreathShortness.Bool() {
		score += 1
	}
	if in.VisualChanges.Bool() {
		score += 1
	}
	if in.NoseBleeding.Bool() {
		score += 1.5
	}

	if in.FamilyHistory.Bool() {
		score += 0.5
	}
	if in.UnderMedicalCare.Bool() {
		score += 0.5
	}
	if in.TakingMedication.Bool() {
		score += 0.5
	}

	score += in.Severity.points()
	score += in.DiagnosedWhen.points()

	// Controlled diet is protective; its absence adds risk.
	if !in.ControlledDiet.Bool() {
		score += 0.3
	}

	score += in.AgeGroup.points()

	return score
}

// Score classifies a completed questionnaire into a stage. Thresholds are
// evaluated high to low, first match wins. Confidence grows with the margin
// above the matched threshold (below it, for Normal) and is capped per stage.
func Score(in *PatientInput) PredictionResult {
	s := riskScore(in)

	switch {
	case s >= 10:
		return PredictionResult{
			Stage:           StageCrisis,
			Confidence:      min(97, 85+(s-10)*3),
			RiskLevel:       RiskEmergency,
			Recommendations: crisisRecommendations,
		}
	case s >= 7:
		return PredictionResult{
			Stage:           StageTwo,
			Confidence:      min(94, 78+(s-7)*4),
			RiskLevel:       RiskHigh,
			Recommendations: stageTwoRecommendations,
		}
	case s >= 4:
		return PredictionResult{
			Stage:           StageOne,
			Confidence:      min(91, 72+(s-4)*5),
			RiskLevel:       RiskModerate,
			Recommendations: stageOneRecommendations,
		}
	default:
		return PredictionResult{
			Stage:           StageNormal,
			Confidence:      min(96, 80+(4-s)*5),
			RiskLevel:       RiskLow,
			Recommendations: normalRecommendations,
		}
	}
}

var crisisRecommendations = []string{
	"SEEK IMMEDIATE MEDICAL ATTENTION",
	"Call emergency services (911) immediately",
	"Do not attempt to lower blood pressure on your own",
	"Remain calm and avoid physical exertion",
	"If prescribed, take emergency medication as directed",
	"Monitor for symptoms: severe headache, chest pain, vision problems",
}

var stageTwoRecommendations = []string{
	"Schedule an urgent appointment with your healthcare provider",
	"Combination of two or more antihypertensive medications may be needed",
	"Implement strict dietary changes (DASH diet recommended)",
	"Reduce sodium intake to less than 1,500mg daily",
	"Engage in regular aerobic exercise (150 min/week)",
	"Monitor blood pressure daily and maintain a log",
}

var stageOneRecommendations = []string{
	"Consult with your healthcare provider within 1 month",
	"Lifestyle modifications are the first line of treatment",
	"Reduce sodium intake and increase potassium-rich foods",
	"Maintain a healthy weight (BMI 18.5-24.9)",
	"Limit alcohol consumption",
	"Practice stress management techniques",
}

var normalRecommendations = []string{
	"Maintain your current healthy lifestyle",
	"Continue regular check-ups annually",
	"Keep a balanced diet rich in fruits and vegetables",
	"Stay physically active (at least 30 minutes daily)",
	"Monitor blood pressure periodically",
	"Avoid excessive salt and processed foods",
}
