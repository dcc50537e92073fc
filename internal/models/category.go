package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;size:100;not null"`
	IconName  string    `json:"icon_name" gorm:"size:50;not null"`
	Color     string    `json:"color" gorm:"size:7;not null"` // hex, e.g. #EF4444
	CreatedAt time.Time `json:"created_at"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// CategoryInfo is the public slice of a category embedded in complaint views.
type CategoryInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IconName string `json:"icon_name"`
	Color    string `json:"color"`
}

func (c *Category) Info() CategoryInfo {
	return CategoryInfo{
		ID:       c.ID,
		Name:     c.Name,
		IconName: c.IconName,
		Color:    c.Color,
	}
}
