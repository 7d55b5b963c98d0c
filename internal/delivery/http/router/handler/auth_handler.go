// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"medvantage/internal/delivery/http/response"
	"medvantage/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// IssueTokenInput is the credential request body.
type IssueTokenInput struct {
	Email string `json:"email" validate:"required,email"`
}

// AuthHandler issues signed tokens for client sessions.
type AuthHandler struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(tokenSvc service.TokenService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

// IssueToken handles the token issuance request. Any syntactically valid
// email receives a token; authority is checked against the stored role on
// each later request, never against the token itself.
func (h *AuthHandler) IssueToken(c echo.Context) error {
	var input IssueTokenInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token request")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	token, err := h.tokenSvc.Generate(input.Email)
	if err != nil {
		h.logger.Error("Token generation failed", slog.Any("error", err))

		return response.InternalServerError(c, "TOKEN_GENERATION_FAILED", "Could not issue token")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"token":     token,
		"expiresIn": int64(h.tokenSvc.TokenDuration().Seconds()),
	}, "Token issued successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
