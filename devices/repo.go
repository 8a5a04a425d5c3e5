package devices

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"

	"github.com/heartbridge/telemetry/store"
)

const devicesCollectionName = "devices"

//go:generate mockgen --build_flags=--mod=mod -source=./repo.go -destination=./test/mock_repository.go -package test -aux_files=github.com/heartbridge/telemetry/devices=devices.go MockRepository

type Repository interface {
	Create(ctx context.Context, device Device) (*Device, error)
	Get(ctx context.Context, id string) (*Device, error)
	GetByDeviceId(ctx context.Context, deviceId string) (*Device, error)
	GetByApiKey(ctx context.Context, apiKey string) (*Device, error)
	ListByOwner(ctx context.Context, ownerId primitive.ObjectID) ([]*Device, error)
	SetFrequency(ctx context.Context, deviceId string, seconds int) (*Device, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

func NewRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		collection: db.Collection(devicesCollectionName),
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
			},
			Options: options.Index().
				SetUnique(true).
				SetName("UniqueDeviceId"),
		},
		{
			Keys: bson.D{
				{Key: "apiKey", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("UniqueApiKey"),
		},
		{
			Keys: bson.D{
				{Key: "user", Value: 1},
			},
			Options: options.Index().
				SetName("DeviceOwner"),
		},
	})
	return err
}

func (r *repository) Create(ctx context.Context, device Device) (*Device, error) {
	res, err := r.collection.InsertOne(ctx, device)
	if err != nil {
		if store.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("error creating device: %w", err)
	}

	id := res.InsertedID.(primitive.ObjectID)
	device.Id = &id
	return &device, nil
}

func (r *repository) Get(ctx context.Context, id string) (*Device, error) {
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return r.findOne(ctx, bson.M{"_id": objId})
}

func (r *repository) GetByDeviceId(ctx context.Context, deviceId string) (*Device, error) {
	return r.findOne(ctx, bson.M{"deviceId": deviceId})
}

func (r *repository) GetByApiKey(ctx context.Context, apiKey string) (*Device, error) {
	device, err := r.findOne(ctx, bson.M{"apiKey": apiKey})
	if err == ErrNotFound {
		return nil, ErrInvalidApiKey
	}
	return device, err
}

func (r *repository) ListByOwner(ctx context.Context, ownerId primitive.ObjectID) ([]*Device, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user": ownerId})
	if err != nil {
		return nil, fmt.Errorf("error listing devices: %w", err)
	}

	var devices []*Device
	if err = cursor.All(ctx, &devices); err != nil {
		return nil, fmt.Errorf("error decoding device list: %w", err)
	}

	return devices, nil
}

func (r *repository) SetFrequency(ctx context.Context, deviceId string, seconds int) (*Device, error) {
	device := &Device{}
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"deviceId": deviceId},
		bson.M{"$set": bson.M{"measurementFrequencySeconds": seconds}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(device)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	return device, nil
}

func (r *repository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *repository) findOne(ctx context.Context, selector bson.M) (*Device, error) {
	device := &Device{}
	err := r.collection.FindOne(ctx, selector).Decode(device)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	return device, nil
}
