package services

import (
	"errors"

	"comenta-app/internal/models"

	"gorm.io/gorm"
)

type LikeService struct {
	db *gorm.DB
}

func NewLikeService(db *gorm.DB) *LikeService {
	return &LikeService{db: db}
}

// Toggle flips the like state for a (user, complaint) pair and returns the
// new state plus the current like count. Two racing toggles from the same
// user can both pass the existence check; the unique index on
// (user_id, complaint_id) catches the loser, which surfaces as
// ErrLikeConflict instead of a double insert.
func (s *LikeService) Toggle(userID, complaintID string) (liked bool, count int64, err error) {
	var complaint models.Complaint
	if err := s.db.Select("id").Where("id = ?", complaintID).First(&complaint).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, 0, ErrComplaintNotFound
		}
		return false, 0, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Like
		findErr := tx.Where("user_id = ? AND complaint_id = ?", userID, complaintID).
			First(&existing).Error

		if findErr == nil {
			liked = false
			return tx.Delete(&existing).Error
		}
		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		liked = true
		return tx.Create(&models.Like{UserID: userID, ComplaintID: complaintID}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, 0, ErrLikeConflict
		}
		return false, 0, err
	}

	if err := s.db.Model(&models.Like{}).
		Where("complaint_id = ?", complaintID).
		Count(&count).Error; err != nil {
		return liked, 0, err
	}

	return liked, count, nil
}

// IsLiked reports whether the user currently likes the complaint.
func (s *LikeService) IsLiked(userID, complaintID string) (bool, error) {
	var count int64
	err := s.db.Model(&models.Like{}).
		Where("user_id = ? AND complaint_id = ?", userID, complaintID).
		Count(&count).Error
	return count > 0, err
}
