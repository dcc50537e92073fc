package services

import (
	"time"

	"comenta-app/internal/models"
)

// ComplaintView is the denormalized presentation record for a complaint:
// the row itself plus author, category, media and counts derived from the
// loaded relations. Counts are computed per request, never cached.
type ComplaintView struct {
	ID                   string              `json:"id"`
	UserID               string              `json:"user_id"`
	User                 models.UserBasic    `json:"user"`
	CategoryID           string              `json:"category_id"`
	Category             models.CategoryInfo `json:"category"`
	Title                string              `json:"title"`
	Description          string              `json:"description"`
	Latitude             *float64            `json:"latitude,omitempty"`
	Longitude            *float64            `json:"longitude,omitempty"`
	Address              string              `json:"address"`
	Status               string              `json:"status"`
	Media                []MediaView         `json:"media"`
	LikesCount           int                 `json:"likes_count"`
	CommentsCount        int                 `json:"comments_count"`
	IsLikedByCurrentUser bool                `json:"is_liked_by_current_user"`
	CreatedAt            time.Time           `json:"created_at"`
}

type MediaView struct {
	ID        string `json:"id"`
	MediaURL  string `json:"media_url"`
	MediaType string `json:"media_type"`
}

type CommentView struct {
	ID          string           `json:"id"`
	UserID      string           `json:"user_id"`
	User        models.UserBasic `json:"user"`
	ComplaintID string           `json:"complaint_id"`
	Content     string           `json:"content"`
	CreatedAt   time.Time        `json:"created_at"`
}

// NewComplaintView maps a complaint with preloaded relations to its view.
// viewerID may be empty for anonymous requests, in which case
// IsLikedByCurrentUser is always false.
func NewComplaintView(c *models.Complaint, viewerID string) ComplaintView {
	media := make([]MediaView, 0, len(c.Media))
	for _, m := range c.Media {
		media = append(media, MediaView{
			ID:        m.ID,
			MediaURL:  m.MediaURL,
			MediaType: string(m.MediaType),
		})
	}

	liked := false
	if viewerID != "" {
		for _, l := range c.Likes {
			if l.UserID == viewerID {
				liked = true
				break
			}
		}
	}

	return ComplaintView{
		ID:                   c.ID,
		UserID:               c.UserID,
		User:                 c.User.Basic(),
		CategoryID:           c.CategoryID,
		Category:             c.Category.Info(),
		Title:                c.Title,
		Description:          c.Description,
		Latitude:             c.Latitude,
		Longitude:            c.Longitude,
		Address:              c.Address,
		Status:               string(c.Status),
		Media:                media,
		LikesCount:           len(c.Likes),
		CommentsCount:        len(c.Comments),
		IsLikedByCurrentUser: liked,
		CreatedAt:            c.CreatedAt,
	}
}

func NewCommentView(c *models.Comment) CommentView {
	return CommentView{
		ID:          c.ID,
		UserID:      c.UserID,
		User:        c.User.Basic(),
		ComplaintID: c.ComplaintID,
		Content:     c.Content,
		CreatedAt:   c.CreatedAt,
	}
}
