package users

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type service struct {
	repo   Repository
	hasher PasswordHasher
	logger *zap.SugaredLogger
}

var _ Service = &service{}

func NewService(repo Repository, hasher PasswordHasher, logger *zap.SugaredLogger) (Service, error) {
	return &service{
		repo:   repo,
		hasher: hasher,
		logger: logger,
	}, nil
}

func (s *service) SignUp(ctx context.Context, signUp SignUp) (*User, error) {
	if !IsStrongPassword(signUp.Password) {
		return nil, ErrWeakPassword
	}

	hash, err := s.hasher.Hash(signUp.Password)
	if err != nil {
		return nil, err
	}

	role := signUp.Role
	if role == "" {
		role = RolePatient
	}

	user := User{
		Email:        &signUp.Email,
		PasswordHash: &hash,
		Role:         role,
	}

	// Duplicate emails are rejected by the unique index, not by a
	// check-then-create sequence.
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("created user account", "userId", created.Id.Hex(), "role", created.Role)
	return created, nil
}

func (s *service) Login(ctx context.Context, email string, password string) (*User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		// An unknown email and a wrong password are indistinguishable to
		// the caller.
		return nil, ErrInvalidCredentials
	}

	if user.PasswordHash == nil || !s.hasher.Compare(password, *user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *service) Get(ctx context.Context, id string) (*User, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) ListPhysicians(ctx context.Context) ([]*User, error) {
	role := RolePhysician
	return s.repo.List(ctx, &Filter{Role: &role})
}

func (s *service) ListAssignedPatients(ctx context.Context, physicianId string) ([]*User, error) {
	physicianObjId, err := primitive.ObjectIDFromHex(physicianId)
	if err != nil {
		return nil, ErrNotFound
	}
	return s.repo.List(ctx, &Filter{AssignedPhysicianId: &physicianObjId})
}

func (s *service) UpdateAccount(ctx context.Context, userId string, update AccountUpdate) (*User, error) {
	set := bson.M{}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.Password != nil {
		if !IsStrongPassword(*update.Password) {
			return nil, ErrWeakPassword
		}
		hash, err := s.hasher.Hash(*update.Password)
		if err != nil {
			return nil, err
		}
		set["passwordHash"] = hash
	}
	if len(set) == 0 {
		return s.repo.Get(ctx, userId)
	}

	return s.repo.Update(ctx, userId, bson.M{"$set": set})
}

func (s *service) AssignPhysician(ctx context.Context, patientId string, physicianId string) (*User, error) {
	physician, err := s.repo.Get(ctx, physicianId)
	if err != nil {
		return nil, err
	}
	if !physician.IsPhysician() {
		return nil, ErrNotAPhysician
	}

	updated, err := s.repo.Update(ctx, patientId, bson.M{
		"$set": bson.M{"assignedPhysician": *physician.Id},
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("assigned physician", "patientId", patientId, "physicianId", physicianId)
	return updated, nil
}

func (s *service) AddDevice(ctx context.Context, userId string, deviceId primitive.ObjectID) error {
	_, err := s.repo.Update(ctx, userId, bson.M{
		"$addToSet": bson.M{"devices": deviceId},
	})
	return err
}

func (s *service) RemoveDevice(ctx context.Context, userId string, deviceId primitive.ObjectID) error {
	_, err := s.repo.Update(ctx, userId, bson.M{
		"$pull": bson.M{"devices": deviceId},
	})
	return err
}
