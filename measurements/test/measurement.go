package test

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/heartbridge/telemetry/measurements"
	"github.com/heartbridge/telemetry/test"
)

func RandomMeasurement(deviceId string, ts time.Time) *measurements.Measurement {
	id := primitive.NewObjectID()
	return &measurements.Measurement{
		Id:        &id,
		DeviceId:  deviceId,
		HeartRate: float64(test.Faker.IntBetween(50, 180)),
		SpO2:      float64(test.Faker.IntBetween(85, 100)),
		Timestamp: ts,
	}
}

func RandomSample() measurements.Sample {
	heartRate := float64(test.Faker.IntBetween(50, 180))
	spo2 := float64(test.Faker.IntBetween(85, 100))
	ts := time.Now().UTC().Truncate(time.Second)
	return measurements.Sample{
		HeartRate: &heartRate,
		SpO2:      &spo2,
		Timestamp: &ts,
	}
}
