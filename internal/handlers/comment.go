package handlers

import (
	"net/http"

	"comenta-app/internal/middleware"
	"comenta-app/internal/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	comments *services.CommentService
}

func NewCommentHandler(comments *services.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

func (h *CommentHandler) Create(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	complaintID := c.Param("complaintId")

	var input services.CreateCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.comments.Create(userID, complaintID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

func (h *CommentHandler) List(c *gin.Context) {
	views, err := h.comments.List(c.Param("complaintId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, views)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	if err := h.comments.Delete(userID, c.Param("commentId")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}
