package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salestrackhq/salestrack_app/internal/middleware"
	"github.com/salestrackhq/salestrack_app/internal/utils"
)

const testJWTSecret = "test-secret"

func authTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.AuthMiddleware(testJWTSecret), func(c *gin.Context) {
		accountID, ok := middleware.GetAccountIDFromCtx(c.Request.Context())
		if !ok {
			c.String(http.StatusInternalServerError, "no account in context")
			return
		}
		c.String(http.StatusOK, accountID)
	})
	return r
}

func getWithToken(t *testing.T, r *gin.Engine, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	r := authTestRouter()

	token, err := utils.GenerateJWT("acc-1", testJWTSecret, time.Hour, "salestrack-test")
	require.NoError(t, err)

	w := getWithToken(t, r, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "acc-1", w.Body.String(), "subject must land in the request context")
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	r := authTestRouter()

	token, err := utils.GenerateJWT("acc-1", testJWTSecret, -time.Hour, "salestrack-test")
	require.NoError(t, err)

	w := getWithToken(t, r, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "expired")
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	r := authTestRouter()

	token, err := utils.GenerateJWT("acc-1", "another-secret", time.Hour, "salestrack-test")
	require.NoError(t, err)

	w := getWithToken(t, r, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	r := authTestRouter()

	w := getWithToken(t, r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	r := authTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
