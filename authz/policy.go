package authz

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/heartbridge/telemetry/errors"
	"github.com/heartbridge/telemetry/users"
)

var (
	ErrNotOwner             = fmt.Errorf("the principal does not own the device: %w", errors.Forbidden)
	ErrPhysicianRequired    = fmt.Errorf("physician access required: %w", errors.Forbidden)
	ErrNotAssignedPhysician = fmt.Errorf("the principal is not the patient's assigned physician: %w", errors.Forbidden)
	ErrDeviceMismatch       = fmt.Errorf("the device id does not match the api key: %w", errors.Forbidden)
)

// Device is the subset of a device record the policy evaluates. It is
// satisfied by devices.Device.
type Device interface {
	Owner() primitive.ObjectID
	PublicId() string
}

// The decision functions below are pure. They are evaluated before any
// mutation and a deny short-circuits the request with no partial effect.

// CanManageDevice allows only the device owner.
func CanManageDevice(principal *users.User, device Device) error {
	if principal == nil || principal.Id == nil {
		return ErrNotOwner
	}
	if *principal.Id != device.Owner() {
		return ErrNotOwner
	}
	return nil
}

// CanSetFrequency allows the physician assigned to the device owner.
func CanSetFrequency(principal *users.User, owner *users.User) error {
	if principal == nil || !principal.IsPhysician() {
		return ErrPhysicianRequired
	}
	if owner == nil || owner.AssignedPhysicianId == nil || principal.Id == nil ||
		*owner.AssignedPhysicianId != *principal.Id {
		return ErrNotAssignedPhysician
	}
	return nil
}

// CanReadPatientData allows the physician assigned to the patient.
func CanReadPatientData(principal *users.User, patient *users.User) error {
	if principal == nil || !principal.IsPhysician() {
		return ErrPhysicianRequired
	}
	if patient == nil || patient.AssignedPhysicianId == nil || principal.Id == nil ||
		*patient.AssignedPhysicianId != *principal.Id {
		return ErrNotAssignedPhysician
	}
	return nil
}

// CanWriteMeasurement allows a device principal to write a measurement when
// the submitted device id is absent or matches the device resolved from the
// api key.
func CanWriteMeasurement(device Device, submittedDeviceId string) error {
	if submittedDeviceId != "" && submittedDeviceId != device.PublicId() {
		return ErrDeviceMismatch
	}
	return nil
}

// RequirePhysician gates the physician-only surface.
func RequirePhysician(principal *users.User) error {
	if principal == nil || !principal.IsPhysician() {
		return ErrPhysicianRequired
	}
	return nil
}
