package aggregation_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/heartbridge/telemetry/aggregation"
	"github.com/heartbridge/telemetry/measurements"
)

func reading(deviceId string, heartRate, spo2 float64, ts time.Time) *measurements.Measurement {
	return &measurements.Measurement{
		DeviceId:  deviceId,
		HeartRate: heartRate,
		SpO2:      spo2,
		Timestamp: ts,
	}
}

var _ = Describe("WeeklyWindow", func() {
	It("spans the last seven calendar days including today", func() {
		loc := time.UTC
		now := time.Date(2024, 3, 15, 14, 30, 0, 0, loc)

		start, end := aggregation.WeeklyWindow(now, loc)
		Expect(start).To(Equal(time.Date(2024, 3, 9, 0, 0, 0, 0, loc)))
		Expect(end).To(Equal(time.Date(2024, 3, 16, 0, 0, 0, 0, loc)))
	})

	It("bounds the window by midnights in the given location", func() {
		loc, err := time.LoadLocation("America/New_York")
		Expect(err).ToNot(HaveOccurred())

		// 03:30 UTC is still the previous day on the US east coast.
		now := time.Date(2024, 3, 15, 3, 30, 0, 0, time.UTC)
		start, _ := aggregation.WeeklyWindow(now, loc)
		Expect(start).To(Equal(time.Date(2024, 3, 8, 0, 0, 0, 0, loc)))
	})
})

var _ = Describe("DailyWindow", func() {
	It("returns the half-open UTC day", func() {
		day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
		start, end := aggregation.DailyWindow(day)
		Expect(start).To(Equal(day))
		Expect(end).To(Equal(time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)))
	})
})

var _ = Describe("ComputeWeeklyRollup", func() {
	var loc *time.Location
	var start time.Time

	BeforeEach(func() {
		loc = time.UTC
		start = time.Date(2024, 3, 9, 0, 0, 0, 0, loc)
	})

	It("computes count, average, min and max per day", func() {
		day := start.Add(10 * time.Hour)
		rollup := aggregation.ComputeWeeklyRollup([]*measurements.Measurement{
			reading("d1", 70, 98, day),
			reading("d1", 80, 97, day.Add(time.Minute)),
			reading("d1", 90, 99, day.Add(2*time.Minute)),
		}, start, loc)

		Expect(rollup.Days).To(HaveLen(7))
		bucket := rollup.Days[0]
		Expect(bucket.Date).To(Equal("2024-03-09"))
		Expect(bucket.Count).To(Equal(3))
		Expect(*bucket.AvgHeartRate).To(Equal(80))
		Expect(*bucket.AvgSpO2).To(Equal(98))
		Expect(*bucket.MinHeartRate).To(Equal(70.0))
		Expect(*bucket.MaxHeartRate).To(Equal(90.0))
	})

	It("reports nil statistics for empty days", func() {
		rollup := aggregation.ComputeWeeklyRollup(nil, start, loc)

		Expect(rollup.Days).To(HaveLen(7))
		for _, bucket := range rollup.Days {
			Expect(bucket.Count).To(Equal(0))
			Expect(bucket.AvgHeartRate).To(BeNil())
			Expect(bucket.AvgSpO2).To(BeNil())
			Expect(bucket.MinHeartRate).To(BeNil())
			Expect(bucket.MaxHeartRate).To(BeNil())
		}
		Expect(rollup.Totals.Count).To(Equal(0))
		Expect(rollup.Totals.AvgHeartRate).To(BeNil())
	})

	It("rounds averages half up", func() {
		day := start.Add(10 * time.Hour)
		rollup := aggregation.ComputeWeeklyRollup([]*measurements.Measurement{
			reading("d1", 72, 96, day),
			reading("d1", 73, 97, day.Add(time.Minute)),
		}, start, loc)

		// 72.5 rounds up to 73, 96.5 to 97.
		Expect(*rollup.Days[0].AvgHeartRate).To(Equal(73))
		Expect(*rollup.Days[0].AvgSpO2).To(Equal(97))
	})

	It("assigns readings to calendar days by wall clock in the given location", func() {
		newYork, err := time.LoadLocation("America/New_York")
		Expect(err).ToNot(HaveOccurred())
		localStart := time.Date(2024, 3, 9, 0, 0, 0, 0, newYork)

		// 03:30 UTC on March 10th is 22:30 on March 9th in New York.
		rollup := aggregation.ComputeWeeklyRollup([]*measurements.Measurement{
			reading("d1", 75, 98, time.Date(2024, 3, 10, 3, 30, 0, 0, time.UTC)),
		}, localStart, newYork)

		Expect(rollup.Days[0].Date).To(Equal("2024-03-09"))
		Expect(rollup.Days[0].Count).To(Equal(1))
		Expect(rollup.Days[1].Count).To(Equal(0))
	})

	It("ignores readings outside the window", func() {
		rollup := aggregation.ComputeWeeklyRollup([]*measurements.Measurement{
			reading("d1", 75, 98, start.Add(-time.Second)),
			reading("d1", 80, 97, start.AddDate(0, 0, 7)),
		}, start, loc)

		Expect(rollup.Totals.Count).To(Equal(0))
	})

	It("pools every reading in the window into the totals", func() {
		rollup := aggregation.ComputeWeeklyRollup([]*measurements.Measurement{
			reading("d1", 60, 98, start.Add(time.Hour)),
			reading("d2", 100, 96, start.AddDate(0, 0, 3).Add(time.Hour)),
		}, start, loc)

		Expect(rollup.Totals.Count).To(Equal(2))
		Expect(*rollup.Totals.AvgHeartRate).To(Equal(80))
		Expect(*rollup.Totals.MinHeartRate).To(Equal(60.0))
		Expect(*rollup.Totals.MaxHeartRate).To(Equal(100.0))
	})
})
