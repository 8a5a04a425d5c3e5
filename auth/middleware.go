package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/heartbridge/telemetry/token"
	"github.com/heartbridge/telemetry/users"
)

const (
	authorizationHeaderKey = "Authorization"
	bearerPrefix           = "Bearer "
	apiKeyHeaderKey        = "x-api-key"
)

// NewBearerMiddleware authenticates user-facing calls. The token is a
// capability hint only: the subject is re-resolved against the user store on
// every request to obtain the current role and state.
func NewBearerMiddleware(codec *token.Codec, usersService users.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(authorizationHeaderKey)
			if !strings.HasPrefix(header, bearerPrefix) {
				return echo.NewHTTPError(http.StatusUnauthorized, "bearer token is missing")
			}

			claims, err := codec.Decode(strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
			if err != nil {
				return &echo.HTTPError{
					Code:     http.StatusUnauthorized,
					Message:  "bearer token is invalid",
					Internal: err,
				}
			}

			user, err := usersService.Get(c.Request().Context(), claims.SubjectId())
			if err != nil {
				return &echo.HTTPError{
					Code:     http.StatusUnauthorized,
					Message:  "bearer token subject is unknown",
					Internal: err,
				}
			}

			SetAuthData(c, &Auth{User: user})
			return next(c)
		}
	}
}

// NewApiKeyMiddleware authenticates device ingestion calls via the x-api-key
// header.
func NewApiKeyMiddleware(resolver DeviceResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(apiKeyHeaderKey)
			if apiKey == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "api key is missing")
			}

			device, err := resolver.ResolveByApiKey(c.Request().Context(), apiKey)
			if err != nil {
				return &echo.HTTPError{
					Code:     http.StatusUnauthorized,
					Message:  "api key is invalid",
					Internal: err,
				}
			}

			SetAuthData(c, &Auth{Device: device})
			return next(c)
		}
	}
}
