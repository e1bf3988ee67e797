package reading

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func mkReading(sys, dia int, stage string, at time.Time) BPReading {
	return BPReading{
		ID:        uuid.New(),
		SessionID: uuid.New(),
		Systolic:  sys,
		Diastolic: dia,
		Stage:     stage,
		CreatedAt: at,
	}
}

func TestComputeTrendData_Empty(t *testing.T) {
	td := ComputeTrendData(nil)

	assert.Equal(t, 0, td.ReadingCount)
	assert.Equal(t, TrendNeutral, td.Trend())
	assert.Empty(t, td.Readings)
}

func TestComputeTrendData_SingleReading(t *testing.T) {
	now := time.Now()
	td := ComputeTrendData([]BPReading{mkReading(135, 95, "HYPERTENSION (Stage-2)", now)})

	assert.Equal(t, 1, td.ReadingCount)
	assert.Equal(t, 135, td.LatestSystolic)
	assert.Equal(t, 95, td.LatestDiastolic)
	assert.Equal(t, "HYPERTENSION (Stage-2)", td.LatestStage)

	// no averages or deltas from a single point
	assert.Zero(t, td.AvgSystolic)
	assert.Zero(t, td.AvgDiastolic)
	assert.Zero(t, td.SystolicChange)
	assert.Zero(t, td.DiastolicChange)
	assert.Equal(t, TrendStable, td.Trend())
}

func TestComputeTrendData_Averages(t *testing.T) {
	now := time.Now()
	readings := []BPReading{
		mkReading(135, 95, "HYPERTENSION (Stage-2)", now.Add(-48*time.Hour)),
		mkReading(128, 88, "HYPERTENSION (Stage-1)", now.Add(-24*time.Hour)),
		mkReading(118, 78, "NORMAL", now),
	}

	td := ComputeTrendData(readings)

	assert.Equal(t, 3, td.ReadingCount)
	// (135+128+118)/3 = 127, (95+88+78)/3 = 87
	assert.Equal(t, 127, td.AvgSystolic)
	assert.Equal(t, 87, td.AvgDiastolic)
	assert.Equal(t, -17, td.SystolicChange)
	assert.Equal(t, -17, td.DiastolicChange)
	assert.Equal(t, "NORMAL", td.LatestStage)
	assert.Len(t, td.Readings, 3)
}

func TestTrendThresholds(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name  string
		first int
		last  int
		want  Trend
	}{
		{"drop beyond threshold improves", 135, 125, TrendImproving},
		{"rise beyond threshold worsens", 120, 131, TrendWorsening},
		{"drop within threshold is stable", 130, 125, TrendStable},
		{"rise within threshold is stable", 125, 130, TrendStable},
		{"no change is stable", 125, 125, TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			td := ComputeTrendData([]BPReading{
				mkReading(tt.first, 80, "NORMAL", now.Add(-time.Hour)),
				mkReading(tt.last, 80, "NORMAL", now),
			})
			assert.Equal(t, tt.want, td.Trend())
		})
	}
}

func TestRoundedMean(t *testing.T) {
	assert.Equal(t, 3, roundedMean(5, 2))  // 2.5 rounds up
	assert.Equal(t, 4, roundedMean(7, 2))  // 3.5 rounds up
	assert.Equal(t, 2, roundedMean(7, 3))  // 2.33 rounds down
	assert.Equal(t, 3, roundedMean(8, 3))  // 2.67 rounds up
	assert.Equal(t, 120, roundedMean(360, 3))
}
