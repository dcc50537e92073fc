package handlers

import (
	"net/http"

	"comenta-app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// LikeService is the like state the handler needs; *services.LikeService
// implements it.
type LikeService interface {
	Toggle(userID, complaintID string) (liked bool, count int64, err error)
	IsLiked(userID, complaintID string) (bool, error)
}

type LikeHandler struct {
	likes LikeService
}

func NewLikeHandler(likes LikeService) *LikeHandler {
	return &LikeHandler{likes: likes}
}

// Toggle flips the caller's like on a complaint and reports the new state
// along with the current like count.
func (h *LikeHandler) Toggle(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	complaintID := c.Param("complaintId")

	liked, count, err := h.likes.Toggle(userID, complaintID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"is_liked":    liked,
		"likes_count": count,
	})
}

// Status reports whether the caller currently likes the complaint, without
// loading the full aggregated view.
func (h *LikeHandler) Status(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	complaintID := c.Param("complaintId")

	liked, err := h.likes.IsLiked(userID, complaintID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"is_liked": liked})
}
