package aggregation

import (
	"context"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"go.uber.org/zap"

	"github.com/heartbridge/telemetry/authz"
	"github.com/heartbridge/telemetry/devices"
	"github.com/heartbridge/telemetry/measurements"
	"github.com/heartbridge/telemetry/pointer"
	"github.com/heartbridge/telemetry/users"
)

type engine struct {
	measurements measurements.Service
	devices      devices.Service
	users        users.Service
	logger       *zap.SugaredLogger

	now func() time.Time
	// Weekly rollups bucket by the local wall clock, daily details by UTC.
	// The asymmetry is part of the contract and must not be unified.
	location *time.Location
}

var _ Service = &engine{}

func NewService(measurementsService measurements.Service, devicesService devices.Service, usersService users.Service, logger *zap.SugaredLogger) (Service, error) {
	return &engine{
		measurements: measurementsService,
		devices:      devicesService,
		users:        usersService,
		logger:       logger,
		now:          time.Now,
		location:     time.Local,
	}, nil
}

func (e *engine) WeeklyRollupForDevice(ctx context.Context, requester *users.User, deviceRecordId string) (*WeeklyRollup, error) {
	device, err := e.devices.Get(ctx, requester, deviceRecordId)
	if err != nil {
		return nil, err
	}

	start, end := WeeklyWindow(e.now(), e.location)
	readings, err := e.measurements.InRange(ctx, []string{device.PublicId()}, start, end)
	if err != nil {
		return nil, err
	}

	return ComputeWeeklyRollup(readings, start, e.location), nil
}

func (e *engine) PatientsOverview(ctx context.Context, physician *users.User) ([]*PatientOverview, error) {
	if err := authz.RequirePhysician(physician); err != nil {
		return nil, err
	}

	patients, err := e.users.ListAssignedPatients(ctx, physician.Id.Hex())
	if err != nil {
		return nil, err
	}

	start, end := WeeklyWindow(e.now(), e.location)
	overviews := make([]*PatientOverview, 0, len(patients))
	for _, patient := range patients {
		patientDevices, err := e.devices.List(ctx, patient.Id.Hex())
		if err != nil {
			return nil, err
		}

		overview := &PatientOverview{
			Patient: patientInfo(patient),
			Devices: make([]DeviceInfo, 0, len(patientDevices)),
		}
		deviceIds := mapset.NewSet[string]()
		for _, d := range patientDevices {
			deviceIds.Add(d.PublicId())
			overview.Devices = append(overview.Devices, DeviceInfo{
				DeviceId: d.PublicId(),
				Nickname: d.Nickname,
			})
		}

		// All of the patient's devices are pooled into one set of readings
		// before computing statistics.
		readings, err := e.measurements.InRange(ctx, deviceIds.ToSlice(), start, end)
		if err != nil {
			return nil, err
		}
		overview.Stats = ComputeWeeklyRollup(readings, start, e.location).Totals

		overviews = append(overviews, overview)
	}

	return overviews, nil
}

func (e *engine) PatientSummary(ctx context.Context, physician *users.User, patientId string) (*PatientSummary, error) {
	patient, err := e.patientForPhysician(ctx, physician, patientId)
	if err != nil {
		return nil, err
	}

	patientDevices, err := e.devices.List(ctx, patient.Id.Hex())
	if err != nil {
		return nil, err
	}

	summary := &PatientSummary{
		Patient:   patientInfo(patient),
		Summaries: make([]DeviceSummary, 0, len(patientDevices)),
	}
	for _, d := range patientDevices {
		latest, err := e.measurements.Latest(ctx, d.PublicId())
		if err != nil {
			return nil, err
		}

		deviceSummary := DeviceSummary{
			Device: DeviceInfo{
				DeviceId:                    d.PublicId(),
				Nickname:                    d.Nickname,
				MeasurementFrequencySeconds: devices.EffectiveFrequency(d),
			},
		}
		if latest != nil {
			deviceSummary.Latest = &Entry{
				Bpm:       latest.HeartRate,
				SpO2:      latest.SpO2,
				Timestamp: latest.Timestamp,
			}
		}
		summary.Summaries = append(summary.Summaries, deviceSummary)
	}

	return summary, nil
}

func (e *engine) DailyDetail(ctx context.Context, physician *users.User, patientId string, date string) (*DailyDetail, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return nil, ErrInvalidDate
	}

	patient, err := e.patientForPhysician(ctx, physician, patientId)
	if err != nil {
		return nil, err
	}

	patientDevices, err := e.devices.List(ctx, patient.Id.Hex())
	if err != nil {
		return nil, err
	}

	deviceIds := make([]string, 0, len(patientDevices))
	for _, d := range patientDevices {
		deviceIds = append(deviceIds, d.PublicId())
	}

	start, end := DailyWindow(day)
	readings, err := e.measurements.InRange(ctx, deviceIds, start, end)
	if err != nil {
		return nil, err
	}

	// Entries are kept in ascending timestamp order per device and exposed
	// unmodified.
	byDevice := make(map[string][]Entry)
	for _, m := range readings {
		byDevice[m.DeviceId] = append(byDevice[m.DeviceId], Entry{
			Bpm:       m.HeartRate,
			SpO2:      m.SpO2,
			Timestamp: m.Timestamp,
		})
	}

	detail := &DailyDetail{
		Date:    date,
		Details: make([]DeviceDailyDetail, 0, len(patientDevices)),
	}
	for _, d := range patientDevices {
		detail.Details = append(detail.Details, DeviceDailyDetail{
			Device: DeviceInfo{
				DeviceId: d.PublicId(),
				Nickname: d.Nickname,
			},
			Entries: byDevice[d.PublicId()],
		})
	}

	return detail, nil
}

func (e *engine) patientForPhysician(ctx context.Context, physician *users.User, patientId string) (*users.User, error) {
	if err := authz.RequirePhysician(physician); err != nil {
		return nil, err
	}

	patient, err := e.users.Get(ctx, patientId)
	if err != nil {
		return nil, err
	}
	if err := authz.CanReadPatientData(physician, patient); err != nil {
		return nil, err
	}

	return patient, nil
}

func patientInfo(patient *users.User) PatientInfo {
	return PatientInfo{
		Id:    patient.Id.Hex(),
		Email: pointer.ToString(patient.Email),
	}
}
