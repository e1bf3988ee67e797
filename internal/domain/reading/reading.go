package reading

import (
	"time"

	"github.com/google/uuid"
)

// BPReading is one blood pressure data point for a session. Rows are
// append-only: produced once per completed assessment, never updated.
type BPReading struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`

	SessionID uuid.UUID `gorm:"column:session_id;type:uuid;not null;index"`
	Systolic  int       `gorm:"column:systolic;not null"`
	Diastolic int       `gorm:"column:diastolic;not null"`
	Stage     string    `gorm:"column:stage;type:varchar(40);not null"`
}

func (BPReading) TableName() string {
	return "coach.bp_readings"
}

// Trend is the categorical summary of systolic change across a history.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendWorsening Trend = "worsening"
	TrendStable    Trend = "stable"
	TrendNeutral   Trend = "neutral"
)

// Systolic changes within ±5 mmHg are considered noise, not a trend.
const trendThresholdMmHg = 5

type ReadingPoint struct {
	Systolic  int       `json:"systolic"`
	Diastolic int       `json:"diastolic"`
	Stage     string    `json:"stage"`
	Date      time.Time `json:"date"`
}

// TrendData is a derived view over the full ordered reading history. It is
// recomputed on every analysis request and never persisted.
type TrendData struct {
	Readings        []ReadingPoint `json:"readings"`
	LatestSystolic  int            `json:"latest_systolic"`
	LatestDiastolic int            `json:"latest_diastolic"`
	LatestStage     string         `json:"latest_stage"`
	ReadingCount    int            `json:"reading_count"`
	AvgSystolic     int            `json:"avg_systolic"`
	AvgDiastolic    int            `json:"avg_diastolic"`
	SystolicChange  int            `json:"systolic_change"`
	DiastolicChange int            `json:"diastolic_change"`
}

// ComputeTrendData summarises readings ordered oldest first. With fewer than
// two readings the averages and deltas stay zero.
func ComputeTrendData(readings []BPReading) TrendData {
	td := TrendData{ReadingCount: len(readings)}
	if len(readings) == 0 {
		return td
	}

	td.Readings = make([]ReadingPoint, 0, len(readings))
	for _, r := range readings {
		td.Readings = append(td.Readings, ReadingPoint{
			Systolic:  r.Systolic,
			Diastolic: r.Diastolic,
			Stage:     r.Stage,
			Date:      r.CreatedAt,
		})
	}

	latest := readings[len(readings)-1]
	td.LatestSystolic = latest.Systolic
	td.LatestDiastolic = latest.Diastolic
	td.LatestStage = latest.Stage

	if len(readings) > 1 {
		var sumSys, sumDia int
		for _, r := range readings {
			sumSys += r.Systolic
			sumDia += r.Diastolic
		}
		td.AvgSystolic = roundedMean(sumSys, len(readings))
		td.AvgDiastolic = roundedMean(sumDia, len(readings))

		first := readings[0]
		td.SystolicChange = latest.Systolic - first.Systolic
		td.DiastolicChange = latest.Diastolic - first.Diastolic
	}

	return td
}

// Trend classifies the systolic delta. An empty history is neutral.
func (td TrendData) Trend() Trend {
	switch {
	case td.ReadingCount == 0:
		return TrendNeutral
	case td.SystolicChange < -trendThresholdMmHg:
		return TrendImproving
	case td.SystolicChange > trendThresholdMmHg:
		return TrendWorsening
	default:
		return TrendStable
	}
}

// roundedMean is the arithmetic mean rounded half-up to the nearest integer.
func roundedMean(sum, n int) int {
	return (sum*2 + n) / (n * 2)
}
