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

// PaymentHandler holds dependencies for the payment workflow handlers.
type PaymentHandler struct {
	uc     usecase.PaymentUsecase
	logger *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateIntent handles registering a payment intent with the processor.
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var input *usecase.CreateIntentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment intent input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.CreateIntent(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"clientSecret": output.ClientSecret,
	}, "Payment intent created")
}

// Settle handles recording a confirmed payment. The paying account is the
// authenticated principal; the body cannot settle on someone else's behalf.
func (h *PaymentHandler) Settle(c echo.Context) error {
	var input *usecase.SettlePaymentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.Settle(c.Request().Context(), middleware.PrincipalEmail(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"payment":      output.Payment,
		"cartsCleared": output.CartsCleared,
	}, "Payment recorded successfully")
}

// ListByUser handles the self listing of payment history.
func (h *PaymentHandler) ListByUser(c echo.Context) error {
	payments, err := h.uc.ListByUser(c.Request().Context(), c.Param("email"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payments, "")
}

// List handles the admin listing of every payment.
func (h *PaymentHandler) List(c echo.Context) error {
	payments, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payments, "")
}
