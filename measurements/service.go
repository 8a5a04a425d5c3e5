package measurements

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type service struct {
	repo   Repository
	logger *zap.SugaredLogger
}

var _ Service = &service{}

func NewService(repo Repository, logger *zap.SugaredLogger) (Service, error) {
	return &service{
		repo:   repo,
		logger: logger,
	}, nil
}

func (s *service) Append(ctx context.Context, deviceId string, sample Sample) (*Measurement, error) {
	if sample.HeartRate == nil || sample.SpO2 == nil {
		return nil, ErrMissingVitals
	}

	timestamp := time.Now()
	if sample.Timestamp != nil {
		timestamp = *sample.Timestamp
	}

	measurement := Measurement{
		DeviceId:  deviceId,
		HeartRate: *sample.HeartRate,
		SpO2:      *sample.SpO2,
		Timestamp: timestamp,
	}

	return s.repo.Append(ctx, measurement)
}

func (s *service) Recent(ctx context.Context, deviceId string, limit int) ([]*Measurement, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return s.repo.Recent(ctx, deviceId, limit)
}

func (s *service) InRange(ctx context.Context, deviceIds []string, start time.Time, end time.Time) ([]*Measurement, error) {
	return s.repo.InRange(ctx, deviceIds, start, end)
}

func (s *service) Latest(ctx context.Context, deviceId string) (*Measurement, error) {
	return s.repo.Latest(ctx, deviceId)
}
