package users

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

const usersCollectionName = "users"

//go:generate mockgen --build_flags=--mod=mod -source=./repo.go -destination=./test/mock_repository.go -package test -aux_files=github.com/heartbridge/telemetry/users=users.go MockRepository

type Repository interface {
	Create(ctx context.Context, user User) (*User, error)
	Get(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, filter *Filter) ([]*User, error)
	Update(ctx context.Context, id string, update bson.M) (*User, error)
}

func NewRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		collection: db.Collection(usersCollectionName),
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
				{Key: "email", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("UniqueEmail"),
		},
		{
			Keys: bson.D{
				{Key: "assignedPhysician", Value: 1},
			},
			Options: options.Index().
				SetName("AssignedPhysician"),
		},
	})
	return err
}

func (r *repository) Create(ctx context.Context, user User) (*User, error) {
	res, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if store.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	id := res.InsertedID.(primitive.ObjectID)
	user.Id = &id
	return &user, nil
}

func (r *repository) Get(ctx context.Context, id string) (*User, error) {
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	user := &User{}
	err = r.collection.FindOne(ctx, bson.M{"_id": objId}).Decode(user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	user := &User{}
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *repository) List(ctx context.Context, filter *Filter) ([]*User, error) {
	selector := bson.M{}
	if filter.Role != nil {
		selector["role"] = *filter.Role
	}
	if filter.AssignedPhysicianId != nil {
		selector["assignedPhysician"] = *filter.AssignedPhysicianId
	}

	cursor, err := r.collection.Find(ctx, selector)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	var users []*User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("error decoding user list: %w", err)
	}

	return users, nil
}

func (r *repository) Update(ctx context.Context, id string, update bson.M) (*User, error) {
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	user := &User{}
	err = r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": objId},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	} else if err != nil {
		if store.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	return user, nil
}
