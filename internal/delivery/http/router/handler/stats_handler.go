package handler

import (
	"log/slog"
	"net/http"

	"medvantage/internal/delivery/http/response"
	"medvantage/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StatsHandler serves the admin dashboard snapshot.
type StatsHandler struct {
	uc     usecase.StatsUsecase
	logger *slog.Logger
}

// NewStatsHandler is the constructor for StatsHandler, injected by Fx.
func NewStatsHandler(uc usecase.StatsUsecase, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{
		uc:     uc,
		logger: logger,
	}
}

// AdminStats handles the dashboard snapshot request.
func (h *StatsHandler) AdminStats(c echo.Context) error {
	stats, err := h.uc.AdminStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}
