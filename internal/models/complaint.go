package models

import (
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status is the lifecycle state of a complaint. New complaints always start
// as Pending; transitions happen only through the admin status update.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "InProgress"
	StatusResolved   Status = "Resolved"
	StatusRejected   Status = "Rejected"
)

// AllStatuses lists every recognized status, in dashboard display order.
var AllStatuses = []Status{StatusPending, StatusInProgress, StatusResolved, StatusRejected}

// ParseStatus maps a status string to its Status value. The match is exact:
// "pending" is not a recognized status.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusInProgress, StatusResolved, StatusRejected:
		return Status(s), true
	}
	return "", false
}

type MediaKind string

const (
	MediaImage MediaKind = "Image"
	MediaVideo MediaKind = "Video"
)

var videoExtensions = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".avi":  true,
	".webm": true,
}

// MediaKindFromURL classifies a media URL by its file extension. Video
// extensions are mp4/mov/avi/webm (case-insensitive); everything else,
// including extensionless URLs, is an image.
func MediaKindFromURL(url string) MediaKind {
	ext := strings.ToLower(path.Ext(url))
	if videoExtensions[ext] {
		return MediaVideo
	}
	return MediaImage
}

type Complaint struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      string    `json:"user_id" gorm:"type:uuid;not null;index"`
	CategoryID  string    `json:"category_id" gorm:"type:uuid;not null;index"`
	Title       string    `json:"title" gorm:"size:200;not null"`
	Description string    `json:"description" gorm:"size:2000;not null"`
	Latitude    *float64  `json:"latitude,omitempty" gorm:"type:decimal(9,6)"`
	Longitude   *float64  `json:"longitude,omitempty" gorm:"type:decimal(9,6)"`
	Address     string    `json:"address" gorm:"size:500;not null"`
	Status      Status    `json:"status" gorm:"size:20;not null;default:Pending"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User     User             `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	Category Category         `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Media    []ComplaintMedia `json:"media,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Likes    []Like           `json:"likes,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Comments []Comment        `json:"comments,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

func (c *Complaint) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

type ComplaintMedia struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey"`
	ComplaintID string    `json:"complaint_id" gorm:"type:uuid;not null;index"`
	MediaURL    string    `json:"media_url" gorm:"size:500;not null"`
	MediaType   MediaKind `json:"media_type" gorm:"size:10;not null"`
	CreatedAt   time.Time `json:"created_at"`
}

func (m *ComplaintMedia) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

type Like struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_complaint"`
	ComplaintID string    `json:"complaint_id" gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_complaint"`
	CreatedAt   time.Time `json:"created_at"`

	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}

func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

type Comment struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      string    `json:"user_id" gorm:"type:uuid;not null;index"`
	ComplaintID string    `json:"complaint_id" gorm:"type:uuid;not null;index"`
	Content     string    `json:"content" gorm:"size:1000;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
