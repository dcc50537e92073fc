package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"comenta-app/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLikeService struct {
	liked bool
	count int64
	err   error

	lastUserID      string
	lastComplaintID string
}

func (f *fakeLikeService) Toggle(userID, complaintID string) (bool, int64, error) {
	f.lastUserID = userID
	f.lastComplaintID = complaintID
	return f.liked, f.count, f.err
}

func (f *fakeLikeService) IsLiked(userID, complaintID string) (bool, error) {
	f.lastUserID = userID
	f.lastComplaintID = complaintID
	return f.liked, f.err
}

func likeTestRouter(t *testing.T, likes LikeService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := NewLikeHandler(likes)
	identity := func(c *gin.Context) { c.Set("user_id", "user-1") }

	router := gin.New()
	router.POST("/likes/:complaintId", identity, handler.Toggle)
	router.GET("/likes/:complaintId", identity, handler.Status)
	return router
}

// TestLikeHandler_Toggle verifies the toggle response carries the new state
// and count, and that the caller and complaint reach the service.
func TestLikeHandler_Toggle(t *testing.T) {
	likes := &fakeLikeService{liked: true, count: 3}
	router := likeTestRouter(t, likes)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/likes/complaint-1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", likes.lastUserID)
	assert.Equal(t, "complaint-1", likes.lastComplaintID)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["is_liked"])
	assert.Equal(t, float64(3), body["likes_count"])
}

// TestLikeHandler_Toggle_NotFound verifies a missing complaint maps to 404.
func TestLikeHandler_Toggle_NotFound(t *testing.T) {
	likes := &fakeLikeService{err: services.ErrComplaintNotFound}
	router := likeTestRouter(t, likes)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/likes/missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestLikeHandler_Status verifies the liked-state read reports the current
// state for the caller.
func TestLikeHandler_Status(t *testing.T) {
	likes := &fakeLikeService{liked: true}
	router := likeTestRouter(t, likes)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/likes/complaint-1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", likes.lastUserID)
	assert.Equal(t, "complaint-1", likes.lastComplaintID)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["is_liked"])
}
