package users

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/heartbridge/telemetry/errors"
)

var (
	ErrNotFound           = fmt.Errorf("user %w", errors.NotFound)
	ErrDuplicateEmail     = fmt.Errorf("email address %w", errors.Duplicate)
	ErrInvalidCredentials = fmt.Errorf("invalid email or password: %w", errors.Unauthorized)
	ErrWeakPassword       = fmt.Errorf("password must be at least 8 characters and include upper, lower, number, and special character: %w", errors.BadRequest)
	ErrNotAPhysician      = fmt.Errorf("the assigned user must be a physician: %w", errors.BadRequest)
)

//go:generate mockgen --build_flags=--mod=mod -source=./users.go -destination=./test/mock_service.go -package test MockService

// Role is the closed set of user roles. All role checks go through the
// authorization policy functions, never through inline string comparisons in
// handlers.
type Role string

const (
	RolePatient   Role = "patient"
	RolePhysician Role = "physician"
)

type User struct {
	Id                  *primitive.ObjectID  `bson:"_id,omitempty"`
	Email               *string              `bson:"email,omitempty"`
	PasswordHash        *string              `bson:"passwordHash,omitempty"`
	Role                Role                 `bson:"role,omitempty"`
	DeviceIds           []primitive.ObjectID `bson:"devices,omitempty"`
	AssignedPhysicianId *primitive.ObjectID  `bson:"assignedPhysician,omitempty"`
}

func (u *User) IsPhysician() bool {
	return u.Role == RolePhysician
}

type SignUp struct {
	Email    string
	Password string
	Role     Role
}

type AccountUpdate struct {
	Email    *string
	Password *string
}

type Filter struct {
	Role                *Role
	AssignedPhysicianId *primitive.ObjectID
}

type Service interface {
	SignUp(ctx context.Context, signUp SignUp) (*User, error)
	Login(ctx context.Context, email string, password string) (*User, error)
	Get(ctx context.Context, id string) (*User, error)
	ListPhysicians(ctx context.Context) ([]*User, error)
	ListAssignedPatients(ctx context.Context, physicianId string) ([]*User, error)
	UpdateAccount(ctx context.Context, userId string, update AccountUpdate) (*User, error)
	AssignPhysician(ctx context.Context, patientId string, physicianId string) (*User, error)
	AddDevice(ctx context.Context, userId string, deviceId primitive.ObjectID) error
	RemoveDevice(ctx context.Context, userId string, deviceId primitive.ObjectID) error
}
