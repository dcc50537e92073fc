package models_test

import (
	"testing"

	"comenta-app/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// TestMediaKindFromURL verifies the extension-based media classification:
// video extensions are recognized case-insensitively, everything else is an
// image.
func TestMediaKindFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want models.MediaKind
	}{
		{"mp4 is video", "https://cdn.example.com/complaints/a.mp4", models.MediaVideo},
		{"mov is video", "/uploads/complaints/clip.mov", models.MediaVideo},
		{"avi is video", "file.avi", models.MediaVideo},
		{"webm is video", "file.webm", models.MediaVideo},
		{"uppercase extension is video", "https://cdn.example.com/CLIP.MP4", models.MediaVideo},
		{"mixed case is video", "clip.WebM", models.MediaVideo},
		{"jpg is image", "https://cdn.example.com/photo.jpg", models.MediaImage},
		{"png is image", "photo.png", models.MediaImage},
		{"gif is image", "photo.gif", models.MediaImage},
		{"no extension is image", "https://cdn.example.com/blob", models.MediaImage},
		{"unknown extension is image", "document.pdf", models.MediaImage},
		{"mp4 in name but not extension", "mp4-tutorial.png", models.MediaImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, models.MediaKindFromURL(tt.url))
		})
	}
}

// TestParseStatus verifies that only the four exact status names are
// recognized.
func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"Pending", "InProgress", "Resolved", "Rejected"} {
		status, ok := models.ParseStatus(valid)
		assert.True(t, ok, "expected %q to parse", valid)
		assert.Equal(t, models.Status(valid), status)
	}

	for _, invalid := range []string{"", "pending", "INPROGRESS", "Done", "in progress", "Pending "} {
		_, ok := models.ParseStatus(invalid)
		assert.False(t, ok, "expected %q to be rejected", invalid)
	}
}

// TestComplaintBeforeCreate_GeneratesUUID verifies the id hook assigns a
// valid UUID and preserves an existing one.
func TestComplaintBeforeCreate_GeneratesUUID(t *testing.T) {
	complaint := &models.Complaint{Title: "Rua X"}

	err := complaint.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, complaint.ID)

	_, parseErr := uuid.Parse(complaint.ID)
	assert.NoError(t, parseErr, "Complaint ID must be a valid UUID string")

	existing := uuid.New().String()
	withID := &models.Complaint{ID: existing, Title: "Rua Y"}
	assert.NoError(t, withID.BeforeCreate(nil))
	assert.Equal(t, existing, withID.ID, "BeforeCreate should preserve existing ID")
}

// TestLikeBeforeCreate_UniqueIDs verifies distinct likes get distinct ids.
func TestLikeBeforeCreate_UniqueIDs(t *testing.T) {
	a := &models.Like{UserID: "u1", ComplaintID: "c1"}
	b := &models.Like{UserID: "u2", ComplaintID: "c1"}

	assert.NoError(t, a.BeforeCreate(nil))
	assert.NoError(t, b.BeforeCreate(nil))
	assert.NotEqual(t, a.ID, b.ID)
}
