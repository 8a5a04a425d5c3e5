package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/heartbridge/telemetry/auth"
	"github.com/heartbridge/telemetry/devices"
)

// POST /devices
func (h *Handler) RegisterDevice(ec echo.Context) error {
	ctx := ec.Request().Context()
	principal := auth.GetUser(ctx)

	dto := DeviceRegistrationRequest{}
	if err := ec.Bind(&dto); err != nil {
		return err
	}
	if dto.DeviceId == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "deviceId is required")
	}

	device, err := h.devices.Register(ctx, principal.Id.Hex(), devices.Registration{
		DeviceId: dto.DeviceId,
		Nickname: dto.Nickname,
	})
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, struct {
		Message string              `json:"message"`
		Device  RegisteredDeviceDto `json:"device"`
	}{
		Message: "Device registered",
		Device:  NewRegisteredDeviceDto(device),
	})
}

// GET /devices
func (h *Handler) ListDevices(ec echo.Context) error {
	ctx := ec.Request().Context()
	principal := auth.GetUser(ctx)

	list, err := h.devices.List(ctx, principal.Id.Hex())
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, struct {
		Devices []DeviceDto `json:"devices"`
	}{
		Devices: NewDeviceDtos(list),
	})
}

// GET /devices/:id
func (h *Handler) GetDevice(ec echo.Context, id string) error {
	ctx := ec.Request().Context()
	principal := auth.GetUser(ctx)

	device, err := h.devices.Get(ctx, principal, id)
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, struct {
		Device DeviceDto `json:"device"`
	}{
		Device: NewDeviceDto(device),
	})
}

// DELETE /devices/:id
func (h *Handler) DeleteDevice(ec echo.Context, id string) error {
	ctx := ec.Request().Context()
	principal := auth.GetUser(ctx)

	if err := h.devices.Unregister(ctx, principal, id); err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, MessageDto{Message: "Device removed"})
}

// GET /devices/:id/weekly
func (h *Handler) GetDeviceWeeklyRollup(ec echo.Context, id string) error {
	ctx := ec.Request().Context()
	principal := auth.GetUser(ctx)

	rollup, err := h.aggregator.WeeklyRollupForDevice(ctx, principal, id)
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, rollup)
}
