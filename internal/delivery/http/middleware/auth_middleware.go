package middleware

import (
	"strings"

	"medvantage/internal/domain/entity"
	domainerrors "medvantage/internal/domain/errors"
	"medvantage/internal/domain/repository"
	"medvantage/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// KeyUserEmail is the echo context key holding the authenticated principal's email.
const KeyUserEmail = "userEmail"

// AuthMiddleware provides middleware for token authentication and role authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the bearer token and stores the principal email on
// the echo context. It makes no store calls; the token alone gates entry.
// Missing header, bad scheme, bad signature, malformed and expired tokens are
// indistinguishable to the caller.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrUnauthorized
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrUnauthorized
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthorized
		}

		c.Set(KeyUserEmail, claims.Email)

		return next(c)
	}
}

// RequireRole checks the stored role of the authenticated account on every
// request. The read-through lookup means a role change binds on the very next
// request; tokens never carry authority on their own. Must run after
// Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, ok := c.Get(KeyUserEmail).(string)
			if !ok || email == "" {
				return domainerrors.ErrUnauthorized
			}

			user, err := m.userRepo.FindByEmail(c.Request().Context(), email)
			if err != nil {
				return domainerrors.ErrForbidden
			}

			if user.Role != role {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

// RequireSelf restricts a route to the account named by the given path
// parameter. It compares emails only and never touches the store. Must run
// after Authenticate.
func (m *AuthMiddleware) RequireSelf(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, ok := c.Get(KeyUserEmail).(string)
			if !ok || email == "" {
				return domainerrors.ErrUnauthorized
			}

			if c.Param(param) != email {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

// PrincipalEmail returns the authenticated email set by Authenticate.
func PrincipalEmail(c echo.Context) string {
	email, _ := c.Get(KeyUserEmail).(string)

	return email
}
