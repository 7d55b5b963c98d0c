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

// UpdateCartQuantityInput is the quantity change body.
type UpdateCartQuantityInput struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// CartHandler holds dependencies for shopping cart handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListByUser handles the self listing of cart entries.
func (h *CartHandler) ListByUser(c echo.Context) error {
	items, err := h.uc.ListByUser(c.Request().Context(), c.Param("email"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

// Add handles putting a medicine into the authenticated user's cart.
func (h *CartHandler) Add(c echo.Context) error {
	var input *usecase.AddCartItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	item, err := h.uc.Add(c.Request().Context(), middleware.PrincipalEmail(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Item added to cart")
}

// UpdateQuantity handles changing the quantity of one cart entry.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	var input *UpdateCartQuantityInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	if err := h.uc.UpdateQuantity(c.Request().Context(), c.Param("id"), middleware.PrincipalEmail(c), input.Quantity); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Quantity updated")
}

// Remove handles deleting one cart entry.
func (h *CartHandler) Remove(c echo.Context) error {
	if err := h.uc.Remove(c.Request().Context(), c.Param("id"), middleware.PrincipalEmail(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Item removed from cart")
}

// Clear handles deleting every cart entry owned by the email.
func (h *CartHandler) Clear(c echo.Context) error {
	deleted, err := h.uc.Clear(c.Request().Context(), c.Param("email"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"deleted": deleted}, "Cart cleared")
}
