package handlers

import (
	"net/http"
	"strconv"

	"comenta-app/internal/middleware"
	"comenta-app/internal/services"
	"comenta-app/internal/websocket"

	"github.com/gin-gonic/gin"
)

type ComplaintHandler struct {
	complaints *services.ComplaintService
	hub        *websocket.Hub
}

func NewComplaintHandler(complaints *services.ComplaintService, hub *websocket.Hub) *ComplaintHandler {
	return &ComplaintHandler{
		complaints: complaints,
		hub:        hub,
	}
}

func (h *ComplaintHandler) Create(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var input services.CreateComplaintInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.complaints.Create(userID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	h.hub.Publish(websocket.EventComplaintCreated, view)

	c.JSON(http.StatusCreated, view)
}

func (h *ComplaintHandler) List(c *gin.Context) {
	views, err := h.complaints.List(middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, views)
}

func (h *ComplaintHandler) GetByID(c *gin.Context) {
	view, err := h.complaints.GetByID(c.Param("id"), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *ComplaintHandler) Categories(c *gin.Context) {
	categories, err := h.complaints.Categories()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *ComplaintHandler) Search(c *gin.Context) {
	params := parseSearchParams(c)

	result, err := h.complaints.Search(params, middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func parseSearchParams(c *gin.Context) services.SearchParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	return services.SearchParams{
		Keyword:    c.Query("keyword"),
		CategoryID: c.Query("categoryId"),
		Status:     c.Query("status"),
		State:      c.Query("state"),
		City:       c.Query("city"),
		Page:       page,
		PageSize:   pageSize,
	}
}
