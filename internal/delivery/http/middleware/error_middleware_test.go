package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"medvantage/internal/delivery/http/response"
	domainerrors "medvantage/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/anything", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewErrorMiddleware(newDiscardLogger())
	mw.HandleHTTPError(err, c)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestHandleHTTPError_AppError(t *testing.T) {
	rec, body := renderError(t, domainerrors.ErrUserNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "USER_NOT_FOUND", body.Error.Code)
}

func TestHandleHTTPError_WrappedAppError(t *testing.T) {
	wrapped := errors.Wrap(domainerrors.ErrForbidden.WrapMessage("stored role mismatch"), "admin gate")

	rec, body := renderError(t, wrapped)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "FORBIDDEN", body.Error.Code)
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	rec, body := renderError(t, echo.NewHTTPError(http.StatusNotFound, "Not Found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
}

func TestHandleHTTPError_UnknownErrorHidesDetail(t *testing.T) {
	rec, body := renderError(t, errors.New("connection reset by peer"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.Empty(t, body.Error.Details)
}
