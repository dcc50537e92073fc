package services

import (
	"errors"
	"time"

	"comenta-app/internal/models"

	"gorm.io/gorm"
)

type Statistics struct {
	TotalComplaints      int64             `json:"total_complaints"`
	TotalUsers           int64             `json:"total_users"`
	PendingComplaints    int64             `json:"pending_complaints"`
	InProgressComplaints int64             `json:"in_progress_complaints"`
	ResolvedComplaints   int64             `json:"resolved_complaints"`
	RejectedComplaints   int64             `json:"rejected_complaints"`
	ComplaintsByCategory []CategoryStat    `json:"complaints_by_category"`
	RecentComplaints     []RecentComplaint `json:"recent_complaints"`
}

type CategoryStat struct {
	CategoryName  string `json:"category_name"`
	CategoryColor string `json:"category_color"`
	Count         int64  `json:"count"`
}

type RecentComplaint struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	CategoryName string    `json:"category_name"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type StatusCountRow struct {
	Status models.Status
	Count  int64
}

// StatusCounts zero-fills the per-status totals so every recognized status
// is reported even when no complaint has it.
func StatusCounts(rows []StatusCountRow) map[models.Status]int64 {
	counts := make(map[models.Status]int64, len(models.AllStatuses))
	for _, s := range models.AllStatuses {
		counts[s] = 0
	}
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts
}

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// GetStatistics computes the dashboard aggregates over the whole complaint
// and user collections.
func (s *DashboardService) GetStatistics() (*Statistics, error) {
	var totalComplaints int64
	if err := s.db.Model(&models.Complaint{}).Count(&totalComplaints).Error; err != nil {
		return nil, err
	}

	var totalUsers int64
	if err := s.db.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		return nil, err
	}

	var statusRows []StatusCountRow
	if err := s.db.Model(&models.Complaint{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&statusRows).Error; err != nil {
		return nil, err
	}
	byStatus := StatusCounts(statusRows)

	// Categories without complaints do not appear.
	var byCategory []CategoryStat
	if err := s.db.Model(&models.Complaint{}).
		Select("categories.name as category_name, categories.color as category_color, COUNT(*) as count").
		Joins("JOIN categories ON categories.id = complaints.category_id").
		Group("categories.name, categories.color").
		Order("count DESC").
		Scan(&byCategory).Error; err != nil {
		return nil, err
	}

	var recent []models.Complaint
	if err := s.db.Preload("Category").
		Order("created_at DESC, id DESC").
		Limit(10).
		Find(&recent).Error; err != nil {
		return nil, err
	}

	recentViews := make([]RecentComplaint, 0, len(recent))
	for _, c := range recent {
		recentViews = append(recentViews, RecentComplaint{
			ID:           c.ID,
			Title:        c.Title,
			CategoryName: c.Category.Name,
			Status:       string(c.Status),
			CreatedAt:    c.CreatedAt,
		})
	}

	return &Statistics{
		TotalComplaints:      totalComplaints,
		TotalUsers:           totalUsers,
		PendingComplaints:    byStatus[models.StatusPending],
		InProgressComplaints: byStatus[models.StatusInProgress],
		ResolvedComplaints:   byStatus[models.StatusResolved],
		RejectedComplaints:   byStatus[models.StatusRejected],
		ComplaintsByCategory: byCategory,
		RecentComplaints:     recentViews,
	}, nil
}

// UpdateComplaintStatus sets a complaint's status. The status string must
// parse exactly; concurrent admin updates are last-write-wins.
func (s *DashboardService) UpdateComplaintStatus(complaintID, status string) (*models.Complaint, error) {
	newStatus, ok := models.ParseStatus(status)
	if !ok {
		return nil, ErrInvalidStatus
	}

	var complaint models.Complaint
	if err := s.db.Where("id = ?", complaintID).First(&complaint).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrComplaintNotFound
		}
		return nil, err
	}

	complaint.Status = newStatus
	if err := s.db.Save(&complaint).Error; err != nil {
		return nil, err
	}

	return &complaint, nil
}
