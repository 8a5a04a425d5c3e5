package api

import (
	"github.com/labstack/echo/v4"

	"github.com/heartbridge/telemetry/auth"
	"github.com/heartbridge/telemetry/token"
	"github.com/heartbridge/telemetry/users"
)

// RegisterRoutes wires the boundary surface. Routes fall in three auth
// modes: public, bearer (user principal), and api-key (device principal).
func RegisterRoutes(e *echo.Echo, handler *Handler, healthCheck *HealthCheck, codec *token.Codec, usersService users.Service, resolver auth.DeviceResolver) {
	bearer := auth.NewBearerMiddleware(codec, usersService)
	apiKey := auth.NewApiKeyMiddleware(resolver)

	e.GET("/ready", healthCheck.Ready)

	e.POST("/auth/signup", handler.SignUp)
	e.POST("/auth/physician/signup", handler.PhysicianSignUp)
	e.POST("/auth/login", handler.Login)

	accounts := e.Group("/accounts", bearer)
	accounts.PUT("/update", handler.UpdateAccount)

	devices := e.Group("/devices", bearer)
	devices.POST("", handler.RegisterDevice)
	devices.GET("", handler.ListDevices)
	devices.GET("/:id", func(ec echo.Context) error {
		return handler.GetDevice(ec, ec.Param("id"))
	})
	devices.DELETE("/:id", func(ec echo.Context) error {
		return handler.DeleteDevice(ec, ec.Param("id"))
	})
	devices.GET("/:id/weekly", func(ec echo.Context) error {
		return handler.GetDeviceWeeklyRollup(ec, ec.Param("id"))
	})

	e.GET("/physician/list", handler.ListPhysicians)
	physician := e.Group("/physician", bearer)
	physician.PUT("/assign", handler.AssignPhysician)
	physician.GET("/patients", handler.ListPatients)
	physician.GET("/patient/:id/summary", func(ec echo.Context) error {
		return handler.GetPatientSummary(ec, ec.Param("id"))
	})
	physician.GET("/patient/:id/daily", func(ec echo.Context) error {
		return handler.GetPatientDailyDetail(ec, ec.Param("id"))
	})
	physician.PUT("/device/:deviceId/frequency", func(ec echo.Context) error {
		return handler.UpdateDeviceFrequency(ec, ec.Param("deviceId"))
	})

	ingestion := e.Group("/measurements", apiKey)
	ingestion.POST("", handler.CreateMeasurement)
	ingestion.GET("/:deviceId", func(ec echo.Context) error {
		return handler.ListMeasurements(ec, ec.Param("deviceId"))
	})
}
