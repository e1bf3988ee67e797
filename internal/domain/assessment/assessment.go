package assessment

import (
	"time"

	"github.com/google/uuid"
)

// The questionnaire is fully categorical. Every field is an enumerated string
// matching the intake form options exactly, including the form's original
// spellings ("Sever", "121- 130").

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale:
		return true
	}
	return false
}

type AgeGroup string

const (
	Age18to34 AgeGroup = "18-34"
	Age35to50 AgeGroup = "35-50"
	Age51to64 AgeGroup = "51-64"
	Age65Plus AgeGroup = "65+"
)

func (a AgeGroup) IsValid() bool {
	switch a {
	case Age18to34, Age35to50, Age51to64, Age65Plus:
		return true
	}
	return false
}

// Answer is a yes/no questionnaire response.
type Answer string

const (
	AnswerYes Answer = "Yes"
	AnswerNo  Answer = "No"
)

func (a Answer) IsValid() bool {
	return a == AnswerYes || a == AnswerNo
}

func (a Answer) Bool() bool {
	return a == AnswerYes
}

type Severity string

const (
	SeverityMild     Severity = "Mild"
	SeverityModerate Severity = "Moderate"
	SeveritySevere   Severity = "Sever"
)

func (s Severity) IsValid() bool {
	switch s {
	case SeverityMild, SeverityModerate, SeveritySevere:
		return true
	}
	return false
}

type DiagnosisDuration string

const (
	DiagnosedUnderOneYear DiagnosisDuration = "<1 Year"
	DiagnosedOneToFive    DiagnosisDuration = "1 - 5 Years"
	DiagnosedOverFive     DiagnosisDuration = ">5 Years"
)

func (d DiagnosisDuration) IsValid() bool {
	switch d {
	case DiagnosedUnderOneYear, DiagnosedOneToFive, DiagnosedOverFive:
		return true
	}
	return false
}

type SystolicBand string

const (
	SystolicNormal   SystolicBand = "111 - 120"
	SystolicElevated SystolicBand = "121- 130"
	SystolicHigh     SystolicBand = "130+"
)

func (s SystolicBand) IsValid() bool {
	switch s {
	case SystolicNormal, SystolicElevated, SystolicHigh:
		return true
	}
	return false
}

// Representative returns the mmHg value recorded for trend tracking: the band
// midpoint, or midpoint + 5 for the open-ended top band.
func (s SystolicBand) Representative() int {
	switch s {
	case SystolicElevated:
		return 125
	case SystolicHigh:
		return 135
	default:
		return 115
	}
}

type DiastolicBand string

const (
	DiastolicNormal   DiastolicBand = "70 - 80"
	DiastolicElevated DiastolicBand = "81 - 90"
	DiastolicHigh     DiastolicBand = "91 - 100"
	DiastolicCrisis   DiastolicBand = "100+"
)

func (d DiastolicBand) IsValid() bool {
	switch d {
	case DiastolicNormal, DiastolicElevated, DiastolicHigh, DiastolicCrisis:
		return true
	}
	return false
}

func (d DiastolicBand) Representative() int {
	switch d {
	case DiastolicElevated:
		return 85
	case DiastolicHigh:
		return 95
	case DiastolicCrisis:
		return 105
	default:
		return 75
	}
}

// PatientInput is one completed intake questionnaire. Scoring requires every
// field populated; Validate reports all missing or invalid fields at once.
type PatientInput struct {
	Gender           Gender            `json:"gender"`
	AgeGroup         AgeGroup          `json:"age_group"`
	FamilyHistory    Answer            `json:"family_history"`
	UnderMedicalCare Answer            `json:"under_medical_care"`
	TakingMedication Answer            `json:"taking_medication"`
	DiagnosedWhen    DiagnosisDuration `json:"diagnosed_when"`
	Severity         Severity          `json:"severity"`
	BreathShortness  Answer            `json:"breath_shortness"`
	VisualChanges    Answer            `json:"visual_changes"`
	NoseBleeding     Answer            `json:"nose_bleeding"`
	Systolic         SystolicBand      `json:"systolic"`
	Diastolic        DiastolicBand     `json:"diastolic"`
	ControlledDiet   Answer            `json:"controlled_diet"`
}

func (in *PatientInput) Validate() []string {
	var fields []string

	check := func(ok bool, name string) {
		if !ok {
			fields = append(fields, name)
		}
	}

	check(in.Gender.IsValid(), "gender")
	check(in.AgeGroup.IsValid(), "age_group")
	check(in.FamilyHistory.IsValid(), "family_history")
	check(in.UnderMedicalCare.IsValid(), "under_medical_care")
	check(in.TakingMedication.IsValid(), "taking_medication")
	check(in.DiagnosedWhen.IsValid(), "diagnosed_when")
	check(in.Severity.IsValid(), "severity")
	check(in.BreathShortness.IsValid(), "breath_shortness")
	check(in.VisualChanges.IsValid(), "visual_changes")
	check(in.NoseBleeding.IsValid(), "nose_bleeding")
	check(in.Systolic.IsValid(), "systolic")
	check(in.Diastolic.IsValid(), "diastolic")
	check(in.ControlledDiet.IsValid(), "controlled_diet")

	return fields
}

// Stage is one of the four ordered clinical severity categories. The string
// values are the display labels the original dataset uses.
type Stage string

const (
	StageNormal Stage = "NORMAL"
	StageOne    Stage = "HYPERTENSION (Stage-1)"
	StageTwo    Stage = "HYPERTENSION (Stage-2)"
	StageCrisis Stage = "HYPERTENSIVE CRISIS"
)

func (s Stage) IsValid() bool {
	switch s {
	case StageNormal, StageOne, StageTwo, StageCrisis:
		return true
	}
	return false
}

type RiskLevel string

const (
	RiskLow       RiskLevel = "Low"
	RiskModerate  RiskLevel = "Moderate"
	RiskHigh      RiskLevel = "High"
	RiskEmergency RiskLevel = "EMERGENCY"
)

// PredictionResult is the scorer's output. It is created once per completed
// questionnaire and never mutated afterwards.
type PredictionResult struct {
	Stage           Stage     `json:"stage"`
	Confidence      float64   `json:"confidence"`
	RiskLevel       RiskLevel `json:"risk_level"`
	Recommendations []string  `json:"recommendations"`
}

// RiskAssessment is the persisted record of one scored questionnaire.
// Write-only from the service's perspective.
type RiskAssessment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`

	SessionID uuid.UUID `gorm:"column:session_id;type:uuid;not null;index"`

	Gender           Gender            `gorm:"column:gender;type:varchar(10);not null"`
	AgeGroup         AgeGroup          `gorm:"column:age_group;type:varchar(10);not null"`
	FamilyHistory    bool              `gorm:"column:family_history;not null"`
	UnderMedicalCare bool              `gorm:"column:under_medical_care;not null"`
	OnMedication     bool              `gorm:"column:on_medication;not null"`
	DiagnosedWhen    DiagnosisDuration `gorm:"column:diagnosed_when;type:varchar(20);not null"`
	Severity         Severity          `gorm:"column:severity;type:varchar(10);not null"`
	BreathShortness  bool              `gorm:"column:breath_shortness;not null"`
	VisualChanges    bool              `gorm:"column:visual_changes;not null"`
	NoseBleeding     bool              `gorm:"column:nose_bleeding;not null"`
	SystolicBand     SystolicBand      `gorm:"column:systolic_band;type:varchar(20);not null"`
	DiastolicBand    DiastolicBand     `gorm:"column:diastolic_band;type:varchar(20);not null"`
	ControlledDiet   bool              `gorm:"column:controlled_diet;not null"`

	Stage           Stage     `gorm:"column:stage;type:varchar(40);not null;index"`
	RiskLevel       RiskLevel `gorm:"column:risk_level;type:varchar(20);not null"`
	Confidence      float64   `gorm:"column:confidence;not null"`
	Recommendations []string  `gorm:"column:recommendations;serializer:json"`

	DietRecommendations      string `gorm:"column:diet_recommendations;type:text"`
	LifestyleRecommendations string `gorm:"column:lifestyle_recommendations;type:text"`
}

func (RiskAssessment) TableName() string {
	return "coach.risk_assessments"
}
