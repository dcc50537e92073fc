package services_test

import (
	"testing"
	"time"

	"comenta-app/internal/models"
	"comenta-app/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleComplaint() models.Complaint {
	avatar := "https://cdn.example.com/avatars/ana.png"
	return models.Complaint{
		ID:          "complaint-1",
		UserID:      "user-1",
		CategoryID:  "cat-1",
		Title:       "Rua X",
		Description: "Buraco enorme na esquina",
		Address:     "Rua X, 123",
		Status:      models.StatusPending,
		CreatedAt:   time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		User: models.User{
			ID:        "user-1",
			FirstName: "Ana",
			LastName:  "Silva",
			AvatarURL: &avatar,
		},
		Category: models.Category{
			ID:       "cat-1",
			Name:     "Buraco na via",
			IconName: "construction",
			Color:    "#EF4444",
		},
		Media: []models.ComplaintMedia{
			{ID: "m1", MediaURL: "a.jpg", MediaType: models.MediaImage},
			{ID: "m2", MediaURL: "b.mp4", MediaType: models.MediaVideo},
		},
		Likes: []models.Like{
			{ID: "l1", UserID: "user-2", ComplaintID: "complaint-1"},
			{ID: "l2", UserID: "user-3", ComplaintID: "complaint-1"},
		},
		Comments: []models.Comment{
			{ID: "cm1", UserID: "user-2", ComplaintID: "complaint-1", Content: "Confirmo"},
		},
	}
}

// TestNewComplaintView_Aggregation verifies counts, author and category
// public info, and media serialization in the denormalized view.
func TestNewComplaintView_Aggregation(t *testing.T) {
	complaint := sampleComplaint()

	view := services.NewComplaintView(&complaint, "")

	assert.Equal(t, "complaint-1", view.ID)
	assert.Equal(t, 2, view.LikesCount)
	assert.Equal(t, 1, view.CommentsCount)
	assert.Equal(t, "Pending", view.Status)

	assert.Equal(t, "Ana", view.User.FirstName)
	assert.Equal(t, "Silva", view.User.LastName)
	require.NotNil(t, view.User.AvatarURL)

	assert.Equal(t, "Buraco na via", view.Category.Name)
	assert.Equal(t, "#EF4444", view.Category.Color)

	require.Len(t, view.Media, 2)
	assert.Equal(t, "Image", view.Media[0].MediaType)
	assert.Equal(t, "Video", view.Media[1].MediaType)
}

// TestNewComplaintView_LikedByViewer verifies the "liked by me" flag for
// likers, non-likers and anonymous viewers.
func TestNewComplaintView_LikedByViewer(t *testing.T) {
	complaint := sampleComplaint()

	assert.True(t, services.NewComplaintView(&complaint, "user-2").IsLikedByCurrentUser)
	assert.True(t, services.NewComplaintView(&complaint, "user-3").IsLikedByCurrentUser)
	assert.False(t, services.NewComplaintView(&complaint, "user-1").IsLikedByCurrentUser,
		"author has not liked their own complaint")
	assert.False(t, services.NewComplaintView(&complaint, "").IsLikedByCurrentUser,
		"anonymous viewer never sees liked=true")
}

// TestNewComplaintView_NoRelations verifies a complaint without media,
// likes or comments produces zero counts and an empty (non-nil) media list.
func TestNewComplaintView_NoRelations(t *testing.T) {
	complaint := sampleComplaint()
	complaint.Media = nil
	complaint.Likes = nil
	complaint.Comments = nil

	view := services.NewComplaintView(&complaint, "user-2")

	assert.Equal(t, 0, view.LikesCount)
	assert.Equal(t, 0, view.CommentsCount)
	assert.False(t, view.IsLikedByCurrentUser)
	assert.NotNil(t, view.Media)
	assert.Empty(t, view.Media)
}

// TestNewCommentView verifies the comment view carries the author's public
// info.
func TestNewCommentView(t *testing.T) {
	comment := models.Comment{
		ID:          "cm1",
		UserID:      "user-2",
		ComplaintID: "complaint-1",
		Content:     "Confirmo, passo ali todo dia",
		CreatedAt:   time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC),
		User: models.User{
			ID:        "user-2",
			FirstName: "Bruno",
			LastName:  "Costa",
		},
	}

	view := services.NewCommentView(&comment)

	assert.Equal(t, "cm1", view.ID)
	assert.Equal(t, "Bruno", view.User.FirstName)
	assert.Equal(t, "Confirmo, passo ali todo dia", view.Content)
	assert.Nil(t, view.User.AvatarURL)
}
