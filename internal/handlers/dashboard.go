package handlers

import (
	"net/http"

	"comenta-app/internal/services"
	"comenta-app/internal/websocket"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboard *services.DashboardService
	hub       *websocket.Hub
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,complaintstatus"`
}

func NewDashboardHandler(dashboard *services.DashboardService, hub *websocket.Hub) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
		hub:       hub,
	}
}

func (h *DashboardHandler) GetStatistics(c *gin.Context) {
	stats, err := h.dashboard.GetStatistics()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *DashboardHandler) UpdateComplaintStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	complaint, err := h.dashboard.UpdateComplaintStatus(c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	h.hub.Publish(websocket.EventStatusChanged, gin.H{
		"complaint_id": complaint.ID,
		"status":       complaint.Status,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Status updated successfully"})
}
