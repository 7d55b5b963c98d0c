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

// AdvertisementHandler holds dependencies for banner handlers.
type AdvertisementHandler struct {
	uc     usecase.AdvertisementUsecase
	logger *slog.Logger
}

// NewAdvertisementHandler is the constructor for AdvertisementHandler, injected by Fx.
func NewAdvertisementHandler(uc usecase.AdvertisementUsecase, logger *slog.Logger) *AdvertisementHandler {
	return &AdvertisementHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the public advertisement listing. The active query parameter
// limits the result to storefront entries.
func (h *AdvertisementHandler) List(c echo.Context) error {
	activeOnly := c.QueryParam("active") == "true"

	ads, err := h.uc.List(c.Request().Context(), activeOnly)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ads, "")
}

// ListBySeller handles the seller's own banner listing.
func (h *AdvertisementHandler) ListBySeller(c echo.Context) error {
	ads, err := h.uc.ListBySeller(c.Request().Context(), c.Param("email"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ads, "")
}

// Submit handles a seller filing a new banner.
func (h *AdvertisementHandler) Submit(c echo.Context) error {
	var input *usecase.AdvertisementInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid advertisement input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	ad, err := h.uc.Submit(c.Request().Context(), middleware.PrincipalEmail(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, ad, "Advertisement submitted")
}

// SetActive handles the admin storefront toggle.
func (h *AdvertisementHandler) SetActive(c echo.Context) error {
	var input *usecase.ToggleAdvertisementInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid toggle input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	if err := h.uc.SetActive(c.Request().Context(), c.Param("id"), *input.Active); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Advertisement toggled")
}
