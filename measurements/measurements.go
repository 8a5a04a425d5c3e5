package measurements

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/heartbridge/telemetry/errors"
)

var (
	ErrMissingVitals = fmt.Errorf("heartRate and spo2 are required: %w", errors.BadRequest)
)

//go:generate mockgen --build_flags=--mod=mod -source=./measurements.go -destination=./test/mock_service.go -package test MockService

// DefaultRecentLimit bounds the non-paginated recent listing. Callers that
// need more history must issue a ranged query.
const DefaultRecentLimit = 50

// Measurement is an immutable sample. There is no update or delete operation.
// No physiological bounds are enforced on the values; device calibration is
// out of scope.
type Measurement struct {
	Id        *primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	DeviceId  string              `bson:"deviceId" json:"deviceId"`
	HeartRate float64             `bson:"heartRate" json:"heartRate"`
	SpO2      float64             `bson:"spo2" json:"spo2"`
	Timestamp time.Time           `bson:"timestamp" json:"timestamp"`
}

// Sample is an inbound reading. Vitals are pointers so that absent fields
// are distinguishable from zero values.
type Sample struct {
	HeartRate *float64
	SpO2      *float64
	Timestamp *time.Time
}

type Service interface {
	Append(ctx context.Context, deviceId string, sample Sample) (*Measurement, error)
	Recent(ctx context.Context, deviceId string, limit int) ([]*Measurement, error)
	InRange(ctx context.Context, deviceIds []string, start time.Time, end time.Time) ([]*Measurement, error)
	Latest(ctx context.Context, deviceId string) (*Measurement, error)
}
