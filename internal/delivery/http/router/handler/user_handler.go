package handler

import (
	"log/slog"
	"net/http"

	"medvantage/internal/delivery/http/response"
	"medvantage/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the upsert-registration request. Registering an email that
// already exists is reported without writing a second record.
func (h *UserHandler) Register(c echo.Context) error {
	var input *usecase.RegisterUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.RegisterUser(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	if output.AlreadyExists {
		return response.Success(c, http.StatusOK, output.User, "User already exists")
	}

	return response.Success(c, http.StatusCreated, output.User, "User registered successfully")
}

// List handles the admin listing of every account.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "")
}

// GetByEmail handles the self lookup of a single account.
func (h *UserHandler) GetByEmail(c echo.Context) error {
	user, err := h.uc.GetUserByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}

// CheckAdmin reports whether the account holds the admin role.
func (h *UserHandler) CheckAdmin(c echo.Context) error {
	user, err := h.uc.GetUserByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"isAdmin": user.IsAdmin()}, "")
}

// CheckSeller reports whether the account holds the seller role.
func (h *UserHandler) CheckSeller(c echo.Context) error {
	user, err := h.uc.GetUserByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"isSeller": user.IsSeller()}, "")
}

// UpdateRoleByID handles the admin role change keyed by document id.
func (h *UserHandler) UpdateRoleByID(c echo.Context) error {
	var input *usecase.UpdateRoleInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.UpdateRoleByID(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Role updated successfully")
}

// UpdateRoleByEmail handles the admin role change keyed by email.
func (h *UserHandler) UpdateRoleByEmail(c echo.Context) error {
	var input *usecase.UpdateRoleInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.UpdateRoleByEmail(c.Request().Context(), c.Param("email"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Role updated successfully")
}

// Delete handles the admin removal of an account.
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.uc.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User deleted successfully")
}
