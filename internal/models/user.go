package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleUser  = "User"
	RoleAdmin = "Admin"
)

type User struct {
	ID           string    `json:"id" gorm:"type:uuid;primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	FirstName    string    `json:"first_name" gorm:"size:100;not null"`
	LastName     string    `json:"last_name" gorm:"size:100;not null"`
	AvatarURL    *string   `json:"avatar_url,omitempty" gorm:"size:500"`
	PhoneNumber  *string   `json:"phone_number,omitempty" gorm:"size:20"`
	Address      *string   `json:"address,omitempty" gorm:"size:500"`
	City         string    `json:"city" gorm:"size:100;not null"`
	State        string    `json:"state" gorm:"size:2;not null"` // 2-letter state code
	Role         string    `json:"role" gorm:"size:20;not null;default:User"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Dependent rows survive the user (RESTRICT), so deleting a user with
	// complaints or comments fails at the database.
	Complaints []Complaint `json:"-" gorm:"foreignKey:UserID"`
	Comments   []Comment   `json:"-" gorm:"foreignKey:UserID"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserBasic is the public slice of a user attached to complaints and comments.
type UserBasic struct {
	ID        string  `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

func (u *User) Basic() UserBasic {
	return UserBasic{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		AvatarURL: u.AvatarURL,
	}
}
