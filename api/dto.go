package api

import (
	"time"

	"github.com/heartbridge/telemetry/aggregation"
	"github.com/heartbridge/telemetry/devices"
	"github.com/heartbridge/telemetry/pointer"
	"github.com/heartbridge/telemetry/users"
)

type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AccountUpdateRequest struct {
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

type UserDto struct {
	Id    string     `json:"id"`
	Email string     `json:"email"`
	Role  users.Role `json:"role"`
}

type AuthResponseDto struct {
	Message string  `json:"message"`
	Token   string  `json:"token"`
	User    UserDto `json:"user"`
}

type AssignPhysicianRequest struct {
	UserId      string `json:"userId"`
	PhysicianId string `json:"physicianId"`
}

type AssignPhysicianResponseDto struct {
	Message     string `json:"message"`
	UserId      string `json:"userId"`
	PhysicianId string `json:"physicianId"`
}

type DeviceRegistrationRequest struct {
	DeviceId string  `json:"deviceId"`
	Nickname *string `json:"nickname,omitempty"`
}

type RegisteredDeviceDto struct {
	Id       string  `json:"id"`
	DeviceId string  `json:"deviceId"`
	Nickname *string `json:"nickname,omitempty"`
}

type DeviceDto struct {
	Id                          string  `json:"id"`
	DeviceId                    string  `json:"deviceId"`
	Nickname                    *string `json:"nickname,omitempty"`
	ApiKey                      string  `json:"apiKey,omitempty"`
	MeasurementFrequencySeconds int     `json:"measurementFrequencySeconds"`
}

type MeasurementRequest struct {
	DeviceId  *string    `json:"deviceId,omitempty"`
	HeartRate *float64   `json:"heartRate"`
	SpO2      *float64   `json:"spo2"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

type FrequencyUpdateRequest struct {
	Seconds *int `json:"seconds"`
}

type PatientsDto struct {
	Patients []*aggregation.PatientOverview `json:"patients"`
}

type PhysiciansDto struct {
	Physicians []UserDto `json:"physicians"`
}

type MessageDto struct {
	Message string `json:"message"`
}

func NewUserDto(user *users.User) UserDto {
	return UserDto{
		Id:    user.Id.Hex(),
		Email: pointer.ToString(user.Email),
		Role:  user.Role,
	}
}

func NewRegisteredDeviceDto(device *devices.Device) RegisteredDeviceDto {
	return RegisteredDeviceDto{
		Id:       device.Id.Hex(),
		DeviceId: device.PublicId(),
		Nickname: device.Nickname,
	}
}

func NewDeviceDto(device *devices.Device) DeviceDto {
	return DeviceDto{
		Id:                          device.Id.Hex(),
		DeviceId:                    device.PublicId(),
		Nickname:                    device.Nickname,
		ApiKey:                      pointer.ToString(device.ApiKey),
		MeasurementFrequencySeconds: devices.EffectiveFrequency(device),
	}
}

func NewDeviceDtos(list []*devices.Device) []DeviceDto {
	dtos := make([]DeviceDto, 0, len(list))
	for _, device := range list {
		dto := NewDeviceDto(device)
		// The api key is only revealed on the single-device view.
		dto.ApiKey = ""
		dtos = append(dtos, dto)
	}
	return dtos
}
