package test

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/heartbridge/telemetry/pointer"
	"github.com/heartbridge/telemetry/test"
	"github.com/heartbridge/telemetry/users"
)

func RandomPatient() *users.User {
	return &users.User{
		Id:           pointer.FromAny(primitive.NewObjectID()),
		Email:        pointer.FromAny(test.Faker.Internet().Email()),
		PasswordHash: pointer.FromAny(test.Faker.UUID().V4()),
		Role:         users.RolePatient,
	}
}

func RandomPhysician() *users.User {
	physician := RandomPatient()
	physician.Role = users.RolePhysician
	return physician
}

// RandomAssignedPatient returns a patient assigned to the given physician.
func RandomAssignedPatient(physician *users.User) *users.User {
	patient := RandomPatient()
	patient.AssignedPhysicianId = physician.Id
	return patient
}
