package aggregation

import (
	"context"
	"fmt"
	"time"

	"github.com/heartbridge/telemetry/errors"
	"github.com/heartbridge/telemetry/users"
)

var (
	ErrInvalidDate = fmt.Errorf("date must be formatted as YYYY-MM-DD: %w", errors.BadRequest)
)

//go:generate mockgen --build_flags=--mod=mod -source=./aggregation.go -destination=./test/mock_service.go -package test MockService

// DayBucket is the per-calendar-day statistical summary of a weekly rollup.
// The averages are rounded to the nearest integer. All statistics are nil
// when the bucket holds no readings.
type DayBucket struct {
	Date         string   `json:"date"`
	Count        int      `json:"count"`
	AvgHeartRate *int     `json:"avgHeartRate"`
	AvgSpO2      *int     `json:"avgSpO2"`
	MinHeartRate *float64 `json:"minHeartRate"`
	MaxHeartRate *float64 `json:"maxHeartRate"`
}

// WeeklyTotals pools every reading in the window, across all devices, into
// one set before computing statistics. There is no per-device breakdown at
// this level.
type WeeklyTotals struct {
	Count        int      `json:"count"`
	AvgHeartRate *int     `json:"avgHeartRate"`
	AvgSpO2      *int     `json:"avgSpO2"`
	MinHeartRate *float64 `json:"minHeartRate"`
	MaxHeartRate *float64 `json:"maxHeartRate"`
}

// WeeklyRollup covers the last seven calendar days including today, bucketed
// by wall clock day boundaries in the rollup's location. Days are ordered
// oldest first.
type WeeklyRollup struct {
	Days   []DayBucket  `json:"days"`
	Totals WeeklyTotals `json:"totals"`
}

type DeviceInfo struct {
	DeviceId                    string  `json:"deviceId"`
	Nickname                    *string `json:"nickname,omitempty"`
	MeasurementFrequencySeconds int     `json:"measurementFrequencySeconds,omitempty"`
}

type PatientInfo struct {
	Id    string `json:"id"`
	Email string `json:"email"`
}

// PatientOverview is one row of the physician "patients" view.
type PatientOverview struct {
	Patient PatientInfo  `json:"patient"`
	Devices []DeviceInfo `json:"devices"`
	Stats   WeeklyTotals `json:"stats"`
}

// Entry is a raw reading exposed unmodified.
type Entry struct {
	Bpm       float64   `json:"bpm"`
	SpO2      float64   `json:"spo2"`
	Timestamp time.Time `json:"timestamp"`
}

type DeviceSummary struct {
	Device DeviceInfo `json:"device"`
	Latest *Entry     `json:"latest"`
}

type PatientSummary struct {
	Patient   PatientInfo     `json:"patient"`
	Summaries []DeviceSummary `json:"summaries"`
}

type DeviceDailyDetail struct {
	Device  DeviceInfo `json:"device"`
	Entries []Entry    `json:"entries"`
}

// DailyDetail is the per-patient, per-date physician view. The window is
// bounded by UTC day boundaries, unlike the weekly rollup which uses the
// local wall clock. Both behaviors are deliberate contracts.
type DailyDetail struct {
	Date    string              `json:"date"`
	Details []DeviceDailyDetail `json:"details"`
}

// Service computes rollups on demand from the measurement ledger, scoped by
// the authorization policy. Nothing is cached or incrementally maintained:
// every result is recomputed per request.
type Service interface {
	WeeklyRollupForDevice(ctx context.Context, requester *users.User, deviceRecordId string) (*WeeklyRollup, error)
	PatientsOverview(ctx context.Context, physician *users.User) ([]*PatientOverview, error)
	PatientSummary(ctx context.Context, physician *users.User, patientId string) (*PatientSummary, error)
	DailyDetail(ctx context.Context, physician *users.User, patientId string, date string) (*DailyDetail, error)
}
