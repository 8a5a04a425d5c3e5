package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/heartbridge/telemetry/auth"
	"github.com/heartbridge/telemetry/authz"
	"github.com/heartbridge/telemetry/measurements"
)

// POST /measurements
func (h *Handler) CreateMeasurement(ec echo.Context) error {
	ctx := ec.Request().Context()
	device := auth.GetDevice(ctx)

	dto := MeasurementRequest{}
	if err := ec.Bind(&dto); err != nil {
		return err
	}

	var submittedDeviceId string
	if dto.DeviceId != nil {
		submittedDeviceId = *dto.DeviceId
	}
	if err := authz.CanWriteMeasurement(device, submittedDeviceId); err != nil {
		return err
	}

	measurement, err := h.measurements.Append(ctx, device.PublicId(), measurements.Sample{
		HeartRate: dto.HeartRate,
		SpO2:      dto.SpO2,
		Timestamp: dto.Timestamp,
	})
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusCreated, measurement)
}

// GET /measurements/:deviceId
func (h *Handler) ListMeasurements(ec echo.Context, deviceId string) error {
	ctx := ec.Request().Context()
	device := auth.GetDevice(ctx)

	if err := authz.CanWriteMeasurement(device, deviceId); err != nil {
		return err
	}

	list, err := h.measurements.Recent(ctx, device.PublicId(), measurements.DefaultRecentLimit)
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, list)
}
