package devices

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/heartbridge/telemetry/authz"
	"github.com/heartbridge/telemetry/users"
)

type service struct {
	repo   Repository
	users  users.Service
	logger *zap.SugaredLogger
}

var _ Service = &service{}

func NewService(repo Repository, usersService users.Service, logger *zap.SugaredLogger) (Service, error) {
	return &service{
		repo:   repo,
		users:  usersService,
		logger: logger,
	}, nil
}

func (s *service) Register(ctx context.Context, ownerId string, registration Registration) (*Device, error) {
	owner, err := s.users.Get(ctx, ownerId)
	if err != nil {
		return nil, err
	}

	apiKey := uuid.NewString()
	device := Device{
		DeviceId:                    &registration.DeviceId,
		Nickname:                    registration.Nickname,
		OwnerUserId:                 owner.Id,
		ApiKey:                      &apiKey,
		MeasurementFrequencySeconds: DefaultMeasurementFrequencySeconds,
	}

	// The unique index on deviceId is the sole guard against concurrent
	// registration of the same device. The owner's device set is only
	// updated after the insert succeeded, so a rejected attempt leaves no
	// partial state behind.
	created, err := s.repo.Create(ctx, device)
	if err != nil {
		return nil, err
	}

	if err := s.users.AddDevice(ctx, ownerId, *created.Id); err != nil {
		return nil, err
	}

	s.logger.Infow("registered device", "deviceId", registration.DeviceId, "ownerId", ownerId)
	return created, nil
}

func (s *service) Unregister(ctx context.Context, requester *users.User, deviceRecordId string) error {
	device, err := s.repo.Get(ctx, deviceRecordId)
	if err != nil {
		return err
	}

	if err := authz.CanManageDevice(requester, device); err != nil {
		return err
	}

	// Measurement history is retained. Orphaned measurements are tolerated.
	if err := s.repo.Delete(ctx, *device.Id); err != nil {
		return err
	}
	if err := s.users.RemoveDevice(ctx, device.OwnerUserId.Hex(), *device.Id); err != nil {
		return err
	}

	s.logger.Infow("unregistered device", "deviceId", device.PublicId(), "ownerId", device.OwnerUserId.Hex())
	return nil
}

func (s *service) SetFrequency(ctx context.Context, requester *users.User, deviceId string, seconds int) (*Device, error) {
	device, err := s.repo.GetByDeviceId(ctx, deviceId)
	if err != nil {
		return nil, err
	}

	owner, err := s.users.Get(ctx, device.OwnerUserId.Hex())
	if err != nil {
		return nil, err
	}
	if err := authz.CanSetFrequency(requester, owner); err != nil {
		return nil, err
	}

	if seconds <= 0 {
		return nil, ErrInvalidFrequency
	}

	updated, err := s.repo.SetFrequency(ctx, deviceId, seconds)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("updated measurement frequency", "deviceId", deviceId, "seconds", seconds)
	return updated, nil
}

func (s *service) ResolveByApiKey(ctx context.Context, apiKey string) (*Device, error) {
	return s.repo.GetByApiKey(ctx, apiKey)
}

func (s *service) Get(ctx context.Context, requester *users.User, deviceRecordId string) (*Device, error) {
	device, err := s.repo.Get(ctx, deviceRecordId)
	if err != nil {
		return nil, err
	}
	if err := authz.CanManageDevice(requester, device); err != nil {
		return nil, err
	}
	return device, nil
}

func (s *service) GetByDeviceId(ctx context.Context, deviceId string) (*Device, error) {
	return s.repo.GetByDeviceId(ctx, deviceId)
}

func (s *service) List(ctx context.Context, ownerId string) ([]*Device, error) {
	owner, err := s.users.Get(ctx, ownerId)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByOwner(ctx, *owner.Id)
}
