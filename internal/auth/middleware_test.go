package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"groupchat/internal/model"
)

const testSecret = "test-secret"

func newProtectedEcho(extra ...echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	middlewares := append([]echo.MiddlewareFunc{Authenticate(testSecret)}, extra...)
	e.POST("/protected", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, middlewares...)
	return e
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	e := newProtectedEcho()

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	e := newProtectedEcho()

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestAuthenticate_WrongSecret(t *testing.T) {
	e := newProtectedEcho()

	token, err := NewJWTService("another-secret").GenerateToken(uuid.New(), model.RoleAdmin)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthenticate_ValidTokenAttachesIdentity(t *testing.T) {
	userID := uuid.New()
	e := echo.New()
	e.POST("/protected", func(c echo.Context) error {
		identity, ok := IdentityFromContext(c)
		assert.True(t, ok)
		assert.Equal(t, userID, identity.UserID)
		assert.Equal(t, model.RoleAdmin, identity.Role)
		return c.String(http.StatusOK, "ok")
	}, Authenticate(testSecret))

	token, err := NewJWTService(testSecret).GenerateToken(userID, model.RoleAdmin)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name         string
		role         string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "admin passes",
			role:         model.RoleAdmin,
			expectedCode: http.StatusOK,
			expectedBody: "ok",
		},
		{
			name:         "non-admin is forbidden",
			role:         model.RoleUser,
			expectedCode: http.StatusForbidden,
			expectedBody: `{"message":"Forbidden"}` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newProtectedEcho(RequireAdmin)

			token, err := NewJWTService(testSecret).GenerateToken(uuid.New(), tt.role)
			assert.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/protected", nil)
			req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, tt.expectedBody, rec.Body.String())
		})
	}
}

func TestRequireAdmin_NoIdentityFailsClosed(t *testing.T) {
	e := echo.New()
	e.POST("/protected", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, RequireAdmin)

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
