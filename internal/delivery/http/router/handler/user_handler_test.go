package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"medvantage/internal/domain/entity"
	"medvantage/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockUserUsecase implements usecase.UserUsecase for handler tests.
type mockUserUsecase struct {
	mock.Mock
}

func (m *mockUserUsecase) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	output, _ := args.Get(0).(*usecase.RegisterOutput)

	return output, args.Error(1)
}

func (m *mockUserUsecase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]*entity.User)

	return users, args.Error(1)
}

func (m *mockUserUsecase) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *mockUserUsecase) UpdateRoleByID(ctx context.Context, id string, input *usecase.UpdateRoleInput) (*usecase.RoleChangeOutput, error) {
	args := m.Called(ctx, id, input)
	output, _ := args.Get(0).(*usecase.RoleChangeOutput)

	return output, args.Error(1)
}

func (m *mockUserUsecase) UpdateRoleByEmail(ctx context.Context, email string, input *usecase.UpdateRoleInput) (*usecase.RoleChangeOutput, error) {
	args := m.Called(ctx, email, input)
	output, _ := args.Get(0).(*usecase.RoleChangeOutput)

	return output, args.Error(1)
}

func (m *mockUserUsecase) DeleteUser(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type stubValidator struct{}

func (stubValidator) Validate(any) error { return nil }

func newUserHandlerContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = stubValidator{}
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestUserHandler_Register_NewAccount(t *testing.T) {
	uc := &mockUserUsecase{}
	h := NewUserHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	uc.On("RegisterUser", mock.Anything, mock.MatchedBy(func(in *usecase.RegisterUserInput) bool {
		return in.Email == "new@example.com"
	})).Return(&usecase.RegisterOutput{
		User: &entity.User{Email: "new@example.com", Role: entity.RoleUser},
	}, nil)

	c, rec := newUserHandlerContext(t, http.MethodPut, "/users", `{"email":"new@example.com","name":"New User"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "registered successfully")
}

func TestUserHandler_Register_AlreadyExists(t *testing.T) {
	uc := &mockUserUsecase{}
	h := NewUserHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	uc.On("RegisterUser", mock.Anything, mock.Anything).Return(&usecase.RegisterOutput{
		User:          &entity.User{Email: "old@example.com", Role: entity.RoleSeller},
		AlreadyExists: true,
	}, nil)

	c, rec := newUserHandlerContext(t, http.MethodPut, "/users", `{"email":"old@example.com","name":"Old"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "already exists")
}

func TestUserHandler_CheckAdmin(t *testing.T) {
	uc := &mockUserUsecase{}
	h := NewUserHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	uc.On("GetUserByEmail", mock.Anything, "boss@example.com").
		Return(&entity.User{Email: "boss@example.com", Role: entity.RoleAdmin}, nil)

	c, rec := newUserHandlerContext(t, http.MethodGet, "/users/admin/boss@example.com", "")
	c.SetParamNames("email")
	c.SetParamValues("boss@example.com")

	require.NoError(t, h.CheckAdmin(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"isAdmin":true`)
}
