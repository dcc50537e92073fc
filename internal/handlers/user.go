package handlers

import (
	"errors"
	"net/http"

	"comenta-app/internal/config"
	"comenta-app/internal/middleware"
	"comenta-app/internal/models"
	"comenta-app/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserHandler struct {
	db      *gorm.DB
	storage *services.StorageService
	cfg     *config.Config
}

type UpdateProfileRequest struct {
	FirstName   string `json:"first_name" binding:"required,max=100"`
	LastName    string `json:"last_name" binding:"required,max=100"`
	City        string `json:"city" binding:"required,max=100"`
	State       string `json:"state" binding:"required,len=2,alpha"`
	PhoneNumber string `json:"phone_number,omitempty" binding:"omitempty,max=20"`
	Address     string `json:"address,omitempty" binding:"omitempty,max=500"`
}

func NewUserHandler(db *gorm.DB, storage *services.StorageService, cfg *config.Config) *UserHandler {
	return &UserHandler{
		db:      db,
		storage: storage,
		cfg:     cfg,
	}
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var user models.User
	if err := h.db.Where("id = ?", userID).First(&user).Error; err != nil {
		respondError(c, userLookupError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// userLookupError narrows a profile lookup failure to the not-found sentinel
// when the row is simply missing.
func userLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return services.ErrUserNotFound
	}
	return err
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := h.db.Where("id = ?", userID).First(&user).Error; err != nil {
		respondError(c, userLookupError(err))
		return
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.City = req.City
	user.State = req.State
	if req.PhoneNumber != "" {
		user.PhoneNumber = &req.PhoneNumber
	} else {
		user.PhoneNumber = nil
	}
	if req.Address != "" {
		user.Address = &req.Address
	} else {
		user.Address = nil
	}

	if err := h.db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "user": user})
}

func (h *UserHandler) UploadAvatar(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	file, header, err := c.Request.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No avatar provided"})
		return
	}
	defer file.Close()

	if err := h.storage.ValidateFile(header); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	url, err := h.storage.UploadFile(c.Request.Context(), file, header.Filename, "avatars",
		header.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload avatar"})
		return
	}

	var user models.User
	if err := h.db.Where("id = ?", userID).First(&user).Error; err != nil {
		respondError(c, userLookupError(err))
		return
	}

	user.AvatarURL = &url
	if err := h.db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save avatar"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}
