package handler

import (
	"log/slog"
	"net/http"

	"medvantage/internal/delivery/http/middleware"
	"medvantage/internal/delivery/http/response"
	"medvantage/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SellerRequestHandler holds dependencies for the seller onboarding handlers.
type SellerRequestHandler struct {
	uc     usecase.SellerRequestUsecase
	logger *slog.Logger
}

// NewSellerRequestHandler is the constructor for SellerRequestHandler, injected by Fx.
func NewSellerRequestHandler(uc usecase.SellerRequestUsecase, logger *slog.Logger) *SellerRequestHandler {
	return &SellerRequestHandler{
		uc:     uc,
		logger: logger,
	}
}

// Submit handles an authenticated user applying for the seller role.
func (h *SellerRequestHandler) Submit(c echo.Context) error {
	var input *usecase.SubmitSellerRequestInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid seller request input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	request, err := h.uc.Submit(c.Request().Context(), middleware.PrincipalEmail(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, request, "Seller request submitted")
}

// List handles the admin listing of every seller request.
func (h *SellerRequestHandler) List(c echo.Context) error {
	requests, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests, "")
}

// Decide handles the admin approval or rejection of a pending request.
func (h *SellerRequestHandler) Decide(c echo.Context) error {
	var input *usecase.DecideSellerRequestInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid decision input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.Decide(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"request":      output.Request,
		"rolePromoted": output.RolePromoted,
	}, "Seller request processed")
}
