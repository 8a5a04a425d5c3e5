package api

import (
	"go.uber.org/fx"

	"github.com/heartbridge/telemetry/aggregation"
	"github.com/heartbridge/telemetry/devices"
	"github.com/heartbridge/telemetry/measurements"
	"github.com/heartbridge/telemetry/token"
	"github.com/heartbridge/telemetry/users"
)

type Handler struct {
	users        users.Service
	devices      devices.Service
	measurements measurements.Service
	aggregator   aggregation.Service
	tokens       *token.Codec
}

type Params struct {
	fx.In

	Users        users.Service
	Devices      devices.Service
	Measurements measurements.Service
	Aggregator   aggregation.Service
	Tokens       *token.Codec
}

func NewHandler(p Params) *Handler {
	return &Handler{
		users:        p.Users,
		devices:      p.Devices,
		measurements: p.Measurements,
		aggregator:   p.Aggregator,
		tokens:       p.Tokens,
	}
}
