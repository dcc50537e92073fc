package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"comenta-app/internal/config"
	"comenta-app/internal/middleware"
	"comenta-app/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessionStore struct {
	keys map[string]bool
}

func (f *fakeSessionStore) Exists(ctx context.Context, keys ...string) (int64, error) {
	var n int64
	for _, key := range keys {
		if f.keys[key] {
			n++
		}
	}
	return n, nil
}

func authTestRouter(t *testing.T, cfg *config.Config, sessions middleware.SessionStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected", middleware.AuthRequired(cfg, sessions), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": middleware.CurrentUserID(c)})
	})
	router.GET("/open", middleware.OptionalAuth(cfg, sessions), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": middleware.CurrentUserID(c)})
	})
	return router
}

func doRequest(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)
	return w
}

// TestAuthRequired_LiveSession verifies a valid token with a live session is
// let through with the caller identity attached.
func TestAuthRequired_LiveSession(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	token, err := utils.GenerateToken("user-1", "ana@example.com", "User", cfg.JWTSecret, time.Hour)
	require.NoError(t, err)

	sessions := &fakeSessionStore{keys: map[string]bool{"session:user-1": true}}
	w := doRequest(authTestRouter(t, cfg, sessions), "/protected", token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

// TestAuthRequired_RevokedSession verifies a token whose session was deleted
// by logout is rejected even though its signature and expiry are still valid.
func TestAuthRequired_RevokedSession(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	token, err := utils.GenerateToken("user-1", "ana@example.com", "User", cfg.JWTSecret, time.Hour)
	require.NoError(t, err)

	sessions := &fakeSessionStore{keys: map[string]bool{}}
	w := doRequest(authTestRouter(t, cfg, sessions), "/protected", token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// TestAuthRequired_MissingToken verifies requests without a bearer token are
// rejected.
func TestAuthRequired_MissingToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	sessions := &fakeSessionStore{keys: map[string]bool{"session:user-1": true}}

	w := doRequest(authTestRouter(t, cfg, sessions), "/protected", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// TestOptionalAuth_RevokedTokenIsAnonymous verifies a logged-out token on a
// read endpoint degrades to an anonymous request instead of failing.
func TestOptionalAuth_RevokedTokenIsAnonymous(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	token, err := utils.GenerateToken("user-1", "ana@example.com", "User", cfg.JWTSecret, time.Hour)
	require.NoError(t, err)

	sessions := &fakeSessionStore{keys: map[string]bool{}}
	w := doRequest(authTestRouter(t, cfg, sessions), "/open", token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":""`)
}

// TestOptionalAuth_LiveSessionAttachesViewer verifies the viewer identity is
// attached on read endpoints when the session is live.
func TestOptionalAuth_LiveSessionAttachesViewer(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	token, err := utils.GenerateToken("user-1", "ana@example.com", "User", cfg.JWTSecret, time.Hour)
	require.NoError(t, err)

	sessions := &fakeSessionStore{keys: map[string]bool{"session:user-1": true}}
	w := doRequest(authTestRouter(t, cfg, sessions), "/open", token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}
