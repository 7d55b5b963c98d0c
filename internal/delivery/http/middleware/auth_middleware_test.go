package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"medvantage/internal/domain/entity"
	domainerrors "medvantage/internal/domain/errors"
	"medvantage/internal/domain/repository"
	"medvantage/internal/domain/service"
	mockRepo "medvantage/internal/mocks/repository"
	mockSvc "medvantage/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authMiddlewareFixtures struct {
	mw       *AuthMiddleware
	tokenSvc *mockSvc.MockTokenService
	userRepo *mockRepo.MockUserRepository
}

func createTestAuthMiddleware(t *testing.T) authMiddlewareFixtures {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	return authMiddlewareFixtures{
		mw:       NewAuthMiddleware(tokenSvc, userRepo),
		tokenSvc: tokenSvc,
		userRepo: userRepo,
	}
}

func newEchoContext(t *testing.T, header string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}

	return e.NewContext(req, httptest.NewRecorder())
}

func passThrough(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true

		return nil
	}
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	var nextCalled bool
	err := fx.mw.Authenticate(passThrough(&nextCalled))(newEchoContext(t, ""))

	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	assert.False(t, nextCalled)
	// The token never reached the verifier and the store was never touched.
	fx.tokenSvc.AssertNotCalled(t, "Validate", mock.Anything)
	fx.userRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestAuthenticate_NonBearerScheme(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	var nextCalled bool
	err := fx.mw.Authenticate(passThrough(&nextCalled))(newEchoContext(t, "Basic dXNlcjpwYXNz"))

	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	assert.False(t, nextCalled)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.tokenSvc.On("Validate", "garbage").Return(nil, errors.New("token is malformed"))

	var nextCalled bool
	err := fx.mw.Authenticate(passThrough(&nextCalled))(newEchoContext(t, "Bearer garbage"))

	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	assert.False(t, nextCalled)
	fx.userRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestAuthenticate_SetsPrincipal(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.tokenSvc.On("Validate", "good-token").
		Return(&service.Claims{Email: "buyer@example.com"}, nil)

	c := newEchoContext(t, "Bearer good-token")

	var nextCalled bool
	err := fx.mw.Authenticate(passThrough(&nextCalled))(c)

	require.NoError(t, err)
	assert.True(t, nextCalled)
	assert.Equal(t, "buyer@example.com", PrincipalEmail(c))
}

func TestRequireRole_ReadsStoredRole(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	c := newEchoContext(t, "")
	c.Set(KeyUserEmail, "admin@example.com")

	fx.userRepo.On("FindByEmail", mock.Anything, "admin@example.com").
		Return(&entity.User{Email: "admin@example.com", Role: entity.RoleAdmin}, nil)

	var nextCalled bool
	err := fx.mw.RequireRole(entity.RoleAdmin)(passThrough(&nextCalled))(c)

	require.NoError(t, err)
	assert.True(t, nextCalled)
}

func TestRequireRole_StoredRoleMismatch(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	c := newEchoContext(t, "")
	c.Set(KeyUserEmail, "buyer@example.com")

	// A valid token does not help: the stored role decides.
	fx.userRepo.On("FindByEmail", mock.Anything, "buyer@example.com").
		Return(&entity.User{Email: "buyer@example.com", Role: entity.RoleUser}, nil)

	var nextCalled bool
	err := fx.mw.RequireRole(entity.RoleAdmin)(passThrough(&nextCalled))(c)

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.False(t, nextCalled)
}

func TestRequireRole_AccountDeleted(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	c := newEchoContext(t, "")
	c.Set(KeyUserEmail, "gone@example.com")

	fx.userRepo.On("FindByEmail", mock.Anything, "gone@example.com").
		Return(nil, repository.ErrUserNotFound)

	var nextCalled bool
	err := fx.mw.RequireRole(entity.RoleAdmin)(passThrough(&nextCalled))(c)

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.False(t, nextCalled)
}

func TestRequireSelf_EmailMismatch(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/other@example.com", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("email")
	c.SetParamValues("other@example.com")
	c.Set(KeyUserEmail, "buyer@example.com")

	var nextCalled bool
	err := fx.mw.RequireSelf("email")(passThrough(&nextCalled))(c)

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.False(t, nextCalled)
	// Self mode never consults the store.
	fx.userRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestRequireSelf_Match(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/buyer@example.com", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("email")
	c.SetParamValues("buyer@example.com")
	c.Set(KeyUserEmail, "buyer@example.com")

	var nextCalled bool
	err := fx.mw.RequireSelf("email")(passThrough(&nextCalled))(c)

	require.NoError(t, err)
	assert.True(t, nextCalled)
}
