package authz_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/heartbridge/telemetry/authz"
	devicesTest "github.com/heartbridge/telemetry/devices/test"
	errs "github.com/heartbridge/telemetry/errors"
	"github.com/heartbridge/telemetry/users"
	usersTest "github.com/heartbridge/telemetry/users/test"
)

var _ = Describe("Policy", func() {
	var patient *users.User
	var physician *users.User

	BeforeEach(func() {
		physician = usersTest.RandomPhysician()
		patient = usersTest.RandomAssignedPatient(physician)
	})

	Describe("CanManageDevice", func() {
		It("allows the owner", func() {
			device := devicesTest.RandomDevice(*patient.Id)
			Expect(authz.CanManageDevice(patient, device)).To(Succeed())
		})

		It("denies any other user", func() {
			device := devicesTest.RandomDevice(*patient.Id)
			other := usersTest.RandomPatient()
			err := authz.CanManageDevice(other, device)
			Expect(err).To(MatchError(authz.ErrNotOwner))
			Expect(errors.Is(err, errs.Forbidden)).To(BeTrue())
		})

		It("denies the owner's physician", func() {
			device := devicesTest.RandomDevice(*patient.Id)
			Expect(authz.CanManageDevice(physician, device)).To(MatchError(authz.ErrNotOwner))
		})

		It("denies a nil principal", func() {
			device := devicesTest.RandomDevice(*patient.Id)
			Expect(authz.CanManageDevice(nil, device)).To(MatchError(authz.ErrNotOwner))
		})
	})

	Describe("CanSetFrequency", func() {
		It("allows the assigned physician", func() {
			Expect(authz.CanSetFrequency(physician, patient)).To(Succeed())
		})

		It("denies patients", func() {
			err := authz.CanSetFrequency(patient, patient)
			Expect(err).To(MatchError(authz.ErrPhysicianRequired))
			Expect(errors.Is(err, errs.Forbidden)).To(BeTrue())
		})

		It("denies physicians who are not assigned to the owner", func() {
			other := usersTest.RandomPhysician()
			err := authz.CanSetFrequency(other, patient)
			Expect(err).To(MatchError(authz.ErrNotAssignedPhysician))
		})

		It("denies when the owner has no assigned physician", func() {
			unassigned := usersTest.RandomPatient()
			Expect(authz.CanSetFrequency(physician, unassigned)).To(MatchError(authz.ErrNotAssignedPhysician))
		})
	})

	Describe("CanReadPatientData", func() {
		It("allows the assigned physician", func() {
			Expect(authz.CanReadPatientData(physician, patient)).To(Succeed())
		})

		It("denies patients, even for their own record", func() {
			err := authz.CanReadPatientData(patient, patient)
			Expect(err).To(MatchError(authz.ErrPhysicianRequired))
		})

		It("denies physicians who are not assigned", func() {
			other := usersTest.RandomPhysician()
			Expect(authz.CanReadPatientData(other, patient)).To(MatchError(authz.ErrNotAssignedPhysician))
		})
	})

	Describe("CanWriteMeasurement", func() {
		It("allows when no device id was submitted", func() {
			device := devicesTest.RandomDevice(*patient.Id)
			Expect(authz.CanWriteMeasurement(device, "")).To(Succeed())
		})

		It("allows when the submitted device id matches", func() {
			device := devicesTest.RandomDevice(*patient.Id)
			Expect(authz.CanWriteMeasurement(device, device.PublicId())).To(Succeed())
		})

		It("denies a mismatched device id", func() {
			device := devicesTest.RandomDevice(*patient.Id)
			err := authz.CanWriteMeasurement(device, "someone-elses-device")
			Expect(err).To(MatchError(authz.ErrDeviceMismatch))
			Expect(errors.Is(err, errs.Forbidden)).To(BeTrue())
		})
	})

	Describe("RequirePhysician", func() {
		It("allows physicians", func() {
			Expect(authz.RequirePhysician(physician)).To(Succeed())
		})

		It("denies patients", func() {
			Expect(authz.RequirePhysician(patient)).To(MatchError(authz.ErrPhysicianRequired))
		})

		It("denies a nil principal", func() {
			Expect(authz.RequirePhysician(nil)).To(MatchError(authz.ErrPhysicianRequired))
		})
	})
})
