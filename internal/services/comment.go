package services

import (
	"errors"

	"comenta-app/internal/models"

	"gorm.io/gorm"
)

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

type CreateCommentInput struct {
	Content string `json:"content" binding:"required,max=1000"`
}

// Create adds a comment to an existing complaint and returns it with the
// author's public info attached.
func (s *CommentService) Create(userID, complaintID string, input CreateCommentInput) (*CommentView, error) {
	var complaint models.Complaint
	if err := s.db.Select("id").Where("id = ?", complaintID).First(&complaint).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrComplaintNotFound
		}
		return nil, err
	}

	comment := models.Comment{
		UserID:      userID,
		ComplaintID: complaintID,
		Content:     input.Content,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}

	if err := s.db.Preload("User").Where("id = ?", comment.ID).First(&comment).Error; err != nil {
		return nil, err
	}

	view := NewCommentView(&comment)
	return &view, nil
}

// List returns a complaint's comments oldest first, each with author info.
func (s *CommentService) List(complaintID string) ([]CommentView, error) {
	var comments []models.Comment
	if err := s.db.Preload("User").
		Where("complaint_id = ?", complaintID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}

	views := make([]CommentView, 0, len(comments))
	for i := range comments {
		views = append(views, NewCommentView(&comments[i]))
	}
	return views, nil
}

// Delete removes a comment. Only the original author may delete it.
func (s *CommentService) Delete(userID, commentID string) error {
	var comment models.Comment
	if err := s.db.Where("id = ?", commentID).First(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}

	if comment.UserID != userID {
		return ErrNotCommentAuthor
	}

	return s.db.Delete(&comment).Error
}
