package auth

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/heartbridge/telemetry/devices"
	"github.com/heartbridge/telemetry/users"
)

var AuthContextKey = AuthKey("auth")

type AuthKey string

// Auth carries the resolved principal of a request. Exactly one of User and
// Device is set: User for bearer authenticated calls, Device for api-key
// authenticated ingestion.
type Auth struct {
	User   *users.User
	Device *devices.Device
}

func GetAuthData(ctx context.Context) *Auth {
	if auth, ok := ctx.Value(AuthContextKey).(*Auth); ok {
		return auth
	}

	return nil
}

func SetAuthData(ec echo.Context, auth *Auth) {
	ctx := context.WithValue(ec.Request().Context(), AuthContextKey, auth)
	ec.SetRequest(ec.Request().WithContext(ctx))
}

func GetUser(ctx context.Context) *users.User {
	if auth := GetAuthData(ctx); auth != nil {
		return auth.User
	}
	return nil
}

func GetDevice(ctx context.Context) *devices.Device {
	if auth := GetAuthData(ctx); auth != nil {
		return auth.Device
	}
	return nil
}
