package measurements

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"

	"github.com/heartbridge/telemetry/store"
)

const measurementsCollectionName = "measurements"

var (
	newestFirst = store.Sort{Attribute: "timestamp"}
	oldestFirst = store.Sort{Attribute: "timestamp", Ascending: true}
)

//go:generate mockgen --build_flags=--mod=mod -source=./repo.go -destination=./test/mock_repository.go -package test -aux_files=github.com/heartbridge/telemetry/measurements=measurements.go MockRepository

type Repository interface {
	Append(ctx context.Context, measurement Measurement) (*Measurement, error)
	Recent(ctx context.Context, deviceId string, limit int) ([]*Measurement, error)
	InRange(ctx context.Context, deviceIds []string, start time.Time, end time.Time) ([]*Measurement, error)
	Latest(ctx context.Context, deviceId string) (*Measurement, error)
}

func NewRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		collection: db.Collection(measurementsCollectionName),
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

type repository struct {
	collection *mongo.Collection
}

func (r *repository) Initialize(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "deviceId", Value: 1},
				{Key: "timestamp", Value: -1},
			},
			Options: options.Index().
				SetName("DeviceTimestamp"),
		},
	})
	return err
}

func (r *repository) Append(ctx context.Context, measurement Measurement) (*Measurement, error) {
	res, err := r.collection.InsertOne(ctx, measurement)
	if err != nil {
		return nil, fmt.Errorf("error appending measurement: %w", err)
	}

	id := res.InsertedID.(primitive.ObjectID)
	measurement.Id = &id
	return &measurement, nil
}

func (r *repository) Recent(ctx context.Context, deviceId string, limit int) ([]*Measurement, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: newestFirst.Attribute, Value: newestFirst.Order()}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{"deviceId": deviceId}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing measurements: %w", err)
	}

	return decodeAll(ctx, cursor)
}

func (r *repository) InRange(ctx context.Context, deviceIds []string, start time.Time, end time.Time) ([]*Measurement, error) {
	if len(deviceIds) == 0 {
		return nil, nil
	}

	selector := bson.M{
		"deviceId": bson.M{"$in": deviceIds},
		"timestamp": bson.M{
			"$gte": start,
			"$lt":  end,
		},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: oldestFirst.Attribute, Value: oldestFirst.Order()}})

	cursor, err := r.collection.Find(ctx, selector, opts)
	if err != nil {
		return nil, fmt.Errorf("error querying measurement range: %w", err)
	}

	return decodeAll(ctx, cursor)
}

func (r *repository) Latest(ctx context.Context, deviceId string) (*Measurement, error) {
	opts := options.FindOne().
		SetSort(bson.D{{Key: newestFirst.Attribute, Value: newestFirst.Order()}})

	measurement := &Measurement{}
	err := r.collection.FindOne(ctx, bson.M{"deviceId": deviceId}, opts).Decode(measurement)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return measurement, nil
}

func decodeAll(ctx context.Context, cursor *mongo.Cursor) ([]*Measurement, error) {
	var measurements []*Measurement
	if err := cursor.All(ctx, &measurements); err != nil {
		return nil, fmt.Errorf("error decoding measurements: %w", err)
	}
	return measurements, nil
}
