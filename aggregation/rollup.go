package aggregation

import (
	"math"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/heartbridge/telemetry/measurements"
)

const rollupDays = 7

// WeeklyWindow returns the half-open interval covering the last seven
// calendar days including today, bounded by wall clock midnights in loc.
func WeeklyWindow(now time.Time, loc *time.Location) (time.Time, time.Time) {
	local := now.In(loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return today.AddDate(0, 0, -(rollupDays - 1)), today.AddDate(0, 0, 1)
}

// ComputeWeeklyRollup buckets the readings into seven fixed calendar-day
// buckets starting at start, which must be a midnight in loc. Readings
// outside the window are ignored.
func ComputeWeeklyRollup(readings []*measurements.Measurement, start time.Time, loc *time.Location) *WeeklyRollup {
	byDay := make(map[string][]*measurements.Measurement)
	var pooled []*measurements.Measurement
	end := start.AddDate(0, 0, rollupDays)
	for _, m := range readings {
		ts := m.Timestamp.In(loc)
		if ts.Before(start) || !ts.Before(end) {
			continue
		}
		key := ts.Format("2006-01-02")
		byDay[key] = append(byDay[key], m)
		pooled = append(pooled, m)
	}

	rollup := &WeeklyRollup{
		Days: make([]DayBucket, rollupDays),
	}
	for i := 0; i < rollupDays; i++ {
		day := start.AddDate(0, 0, i)
		key := day.Format("2006-01-02")
		bucket := DayBucket{Date: key}
		fillStatistics(byDay[key], &bucket.Count, &bucket.AvgHeartRate, &bucket.AvgSpO2, &bucket.MinHeartRate, &bucket.MaxHeartRate)
		rollup.Days[i] = bucket
	}
	fillStatistics(pooled, &rollup.Totals.Count, &rollup.Totals.AvgHeartRate, &rollup.Totals.AvgSpO2, &rollup.Totals.MinHeartRate, &rollup.Totals.MaxHeartRate)

	return rollup
}

// DailyWindow returns the half-open UTC day interval for a date. The upper
// bound is exclusive: a reading stamped exactly at the next midnight belongs
// to the next day.
func DailyWindow(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}

func fillStatistics(readings []*measurements.Measurement, count *int, avgHeartRate, avgSpO2 **int, minHeartRate, maxHeartRate **float64) {
	*count = len(readings)
	if len(readings) == 0 {
		// Empty buckets report nil statistics, never zero.
		return
	}

	heartRates := make(stats.Float64Data, len(readings))
	spo2s := make(stats.Float64Data, len(readings))
	for i, m := range readings {
		heartRates[i] = m.HeartRate
		spo2s[i] = m.SpO2
	}

	meanHeartRate, _ := stats.Mean(heartRates)
	meanSpO2, _ := stats.Mean(spo2s)
	minRate, _ := stats.Min(heartRates)
	maxRate, _ := stats.Max(heartRates)

	avgHr := roundHalfUp(meanHeartRate)
	avgSp := roundHalfUp(meanSpO2)
	*avgHeartRate = &avgHr
	*avgSpO2 = &avgSp
	*minHeartRate = &minRate
	*maxHeartRate = &maxRate
}

// roundHalfUp rounds to the nearest integer with halves rounding up,
// matching the rounding of the rollup contract.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
