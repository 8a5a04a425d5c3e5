package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/heartbridge/telemetry/auth"
)

// GET /physician/list
func (h *Handler) ListPhysicians(ec echo.Context) error {
	ctx := ec.Request().Context()

	physicians, err := h.users.ListPhysicians(ctx)
	if err != nil {
		return err
	}

	dto := PhysiciansDto{
		Physicians: make([]UserDto, 0, len(physicians)),
	}
	for _, physician := range physicians {
		dto.Physicians = append(dto.Physicians, NewUserDto(physician))
	}

	return ec.JSON(http.StatusOK, dto)
}

// PUT /physician/assign
func (h *Handler) AssignPhysician(ec echo.Context) error {
	ctx := ec.Request().Context()

	dto := AssignPhysicianRequest{}
	if err := ec.Bind(&dto); err != nil {
		return err
	}
	if dto.UserId == "" || dto.PhysicianId == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "userId and physicianId are required")
	}

	if _, err := h.users.AssignPhysician(ctx, dto.UserId, dto.PhysicianId); err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, AssignPhysicianResponseDto{
		Message:     "Physician assigned",
		UserId:      dto.UserId,
		PhysicianId: dto.PhysicianId,
	})
}

// GET /physician/patients
func (h *Handler) ListPatients(ec echo.Context) error {
	ctx := ec.Request().Context()
	principal := auth.GetUser(ctx)

	overviews, err := h.aggregator.PatientsOverview(ctx, principal)
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, PatientsDto{Patients: overviews})
}

// GET /physician/patient/:id/summary
func (h *Handler) GetPatientSummary(ec echo.Context, patientId string) error {
	ctx := ec.Request().Context()
	principal := auth.GetUser(ctx)

	summary, err := h.aggregator.PatientSummary(ctx, principal, patientId)
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, summary)
}

// GET /physician/patient/:id/daily?date=YYYY-MM-DD
func (h *Handler) GetPatientDailyDetail(ec echo.Context, patientId string) error {
	ctx := ec.Request().Context()
	principal := auth.GetUser(ctx)

	date := ec.QueryParam("date")
	if date == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "date is required")
	}

	detail, err := h.aggregator.DailyDetail(ctx, principal, patientId, date)
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, detail)
}

// PUT /physician/device/:deviceId/frequency
func (h *Handler) UpdateDeviceFrequency(ec echo.Context, deviceId string) error {
	ctx := ec.Request().Context()
	principal := auth.GetUser(ctx)

	dto := FrequencyUpdateRequest{}
	if err := ec.Bind(&dto); err != nil {
		return err
	}
	if dto.Seconds == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "seconds is required")
	}

	device, err := h.devices.SetFrequency(ctx, principal, deviceId, *dto.Seconds)
	if err != nil {
		return err
	}

	dtoOut := NewDeviceDto(device)
	dtoOut.ApiKey = ""

	return ec.JSON(http.StatusOK, struct {
		Message string    `json:"message"`
		Device  DeviceDto `json:"device"`
	}{
		Message: "Frequency updated",
		Device:  dtoOut,
	})
}
