package api

import (
	"context"
	"fmt"

	"github.com/brpaz/echozap"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/heartbridge/telemetry/aggregation"
	"github.com/heartbridge/telemetry/auth"
	"github.com/heartbridge/telemetry/config"
	"github.com/heartbridge/telemetry/devices"
	"github.com/heartbridge/telemetry/errors"
	"github.com/heartbridge/telemetry/logger"
	"github.com/heartbridge/telemetry/measurements"
	"github.com/heartbridge/telemetry/store"
	"github.com/heartbridge/telemetry/token"
	"github.com/heartbridge/telemetry/users"
)

func Start(e *echo.Echo, cfg *config.Config, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := e.Start(fmt.Sprintf(":%v", cfg.HttpPort)); err != nil {
					fmt.Println(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}

func SetReady(healthCheck *HealthCheck, db *mongo.Database, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := db.Client().Ping(ctx, nil); err != nil {
				return err
			}

			// It's important this is set after mongo is initialized, which is ensured
			// by taking a dependency on mongo in the constructor, because lifecycle hooks
			// are executed in topological order
			healthCheck.SetReady(true)
			return nil
		},
		OnStop: nil,
	})
}

func NewServer(handler *Handler, healthCheck *HealthCheck, codec *token.Codec, usersService users.Service, resolver auth.DeviceResolver, zapLogger *zap.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(echozap.ZapLogger(zapLogger))

	e.HTTPErrorHandler = errors.CustomHTTPErrorHandler

	RegisterRoutes(e, handler, healthCheck, codec, usersService, resolver)

	return e, nil
}

func MainLoop() {
	fx.New(
		fx.Provide(
			logger.NewProductionLogger,
			logger.Suggar,
			config.NewConfig,
			store.NewConfig,
			store.NewClient,
			store.NewDatabase,
			token.NewCodec,
			users.NewPasswordHasher,
			users.NewRepository,
			users.NewService,
			devices.NewRepository,
			devices.NewService,
			measurements.NewRepository,
			measurements.NewService,
			aggregation.NewService,
			auth.NewDeviceResolver,
			NewHealthCheck,
			NewHandler,
			NewServer,
		),
		fx.Invoke(
			Start,
			SetReady,
		),
	).Run()
}
