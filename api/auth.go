package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/heartbridge/telemetry/auth"
	"github.com/heartbridge/telemetry/pointer"
	"github.com/heartbridge/telemetry/users"
)

// POST /auth/signup
func (h *Handler) SignUp(ec echo.Context) error {
	return h.signUp(ec, users.RolePatient, "Account created")
}

// POST /auth/physician/signup
func (h *Handler) PhysicianSignUp(ec echo.Context) error {
	return h.signUp(ec, users.RolePhysician, "Physician account created")
}

func (h *Handler) signUp(ec echo.Context, role users.Role, message string) error {
	ctx := ec.Request().Context()
	dto := SignUpRequest{}
	if err := ec.Bind(&dto); err != nil {
		return err
	}
	if dto.Email == "" || dto.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email and password are required")
	}

	user, err := h.users.SignUp(ctx, users.SignUp{
		Email:    dto.Email,
		Password: dto.Password,
		Role:     role,
	})
	if err != nil {
		return err
	}

	return h.authResponse(ec, user, message)
}

// POST /auth/login
func (h *Handler) Login(ec echo.Context) error {
	ctx := ec.Request().Context()
	dto := LoginRequest{}
	if err := ec.Bind(&dto); err != nil {
		return err
	}

	user, err := h.users.Login(ctx, dto.Email, dto.Password)
	if err != nil {
		return err
	}

	return h.authResponse(ec, user, "Logged in")
}

// PUT /accounts/update
func (h *Handler) UpdateAccount(ec echo.Context) error {
	ctx := ec.Request().Context()
	principal := auth.GetUser(ctx)

	dto := AccountUpdateRequest{}
	if err := ec.Bind(&dto); err != nil {
		return err
	}

	updated, err := h.users.UpdateAccount(ctx, principal.Id.Hex(), users.AccountUpdate{
		Email:    dto.Email,
		Password: dto.Password,
	})
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, struct {
		Message string  `json:"message"`
		User    UserDto `json:"user"`
	}{
		Message: "Account updated",
		User:    NewUserDto(updated),
	})
}

func (h *Handler) authResponse(ec echo.Context, user *users.User, message string) error {
	t, err := h.tokens.Encode(user.Id.Hex(), pointer.ToString(user.Email))
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, AuthResponseDto{
		Message: message,
		Token:   t,
		User:    NewUserDto(user),
	})
}
