package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Sunatl/mushkiloti-gomea/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": utils.CurrentUserID(c)})
	})
	r.GET("/open", OptionalAuth(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": utils.CurrentUserID(c)})
	})
	return r
}

func get(r *gin.Engine, path, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := protectedRouter()

	token, err := utils.GenerateToken(42, "citizen", testSecret, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.jwt", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + mustToken(t, 42, "other-secret"), http.StatusUnauthorized},
		{"valid", "Bearer " + token, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, get(r, "/protected", tt.header).Code)
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	r := protectedRouter()

	// anonymous passes through with a zero principal
	w := get(r, "/open", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":0}`, w.Body.String())

	// a valid token sets the principal
	token, err := utils.GenerateToken(7, "citizen", testSecret, time.Hour)
	require.NoError(t, err)
	w = get(r, "/open", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":7}`, w.Body.String())

	// a bad token is ignored rather than rejected
	w = get(r, "/open", "Bearer broken")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":0}`, w.Body.String())
}

func mustToken(t *testing.T, userID uint, secret string) string {
	t.Helper()
	token, err := utils.GenerateToken(userID, "citizen", secret, time.Hour)
	require.NoError(t, err)
	return token
}
