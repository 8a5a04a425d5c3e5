package test

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/heartbridge/telemetry/devices"
	"github.com/heartbridge/telemetry/pointer"
	"github.com/heartbridge/telemetry/test"
)

func RandomDevice(ownerId primitive.ObjectID) *devices.Device {
	return &devices.Device{
		Id:                          pointer.FromAny(primitive.NewObjectID()),
		DeviceId:                    pointer.FromAny(test.Faker.UUID().V4()),
		Nickname:                    pointer.FromAny(test.Faker.Person().FirstName()),
		OwnerUserId:                 &ownerId,
		ApiKey:                      pointer.FromAny(test.Faker.UUID().V4()),
		MeasurementFrequencySeconds: devices.DefaultMeasurementFrequencySeconds,
	}
}

func RandomRegistration() devices.Registration {
	return devices.Registration{
		DeviceId: test.Faker.UUID().V4(),
		Nickname: pointer.FromAny(test.Faker.Person().FirstName()),
	}
}
