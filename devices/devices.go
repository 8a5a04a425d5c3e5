package devices

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/heartbridge/telemetry/errors"
	"github.com/heartbridge/telemetry/users"
)

var (
	ErrNotFound         = fmt.Errorf("device %w", errors.NotFound)
	ErrDuplicate        = fmt.Errorf("device id %w", errors.Duplicate)
	ErrInvalidApiKey    = fmt.Errorf("invalid api key: %w", errors.Unauthorized)
	ErrInvalidFrequency = fmt.Errorf("measurement frequency must be a positive number of seconds: %w", errors.BadRequest)
)

//go:generate mockgen --build_flags=--mod=mod -source=./devices.go -destination=./test/mock_service.go -package test MockService

type Device struct {
	Id          *primitive.ObjectID `bson:"_id,omitempty"`
	DeviceId    *string             `bson:"deviceId,omitempty"`
	Nickname    *string             `bson:"nickname,omitempty"`
	OwnerUserId *primitive.ObjectID `bson:"user,omitempty"`
	ApiKey      *string             `bson:"apiKey,omitempty"`

	// Physician-set measurement interval in seconds.
	MeasurementFrequencySeconds int `bson:"measurementFrequencySeconds"`
}

func (d *Device) Owner() primitive.ObjectID {
	if d.OwnerUserId == nil {
		return primitive.ObjectID{}
	}
	return *d.OwnerUserId
}

func (d *Device) PublicId() string {
	if d.DeviceId == nil {
		return ""
	}
	return *d.DeviceId
}

type Registration struct {
	DeviceId string
	Nickname *string
}

type Service interface {
	Register(ctx context.Context, ownerId string, registration Registration) (*Device, error)
	Unregister(ctx context.Context, requester *users.User, deviceRecordId string) error
	SetFrequency(ctx context.Context, requester *users.User, deviceId string, seconds int) (*Device, error)
	ResolveByApiKey(ctx context.Context, apiKey string) (*Device, error)
	Get(ctx context.Context, requester *users.User, deviceRecordId string) (*Device, error)
	GetByDeviceId(ctx context.Context, deviceId string) (*Device, error)
	List(ctx context.Context, ownerId string) ([]*Device, error)
}
