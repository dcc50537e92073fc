package services

import (
	"errors"
	"strings"

	"comenta-app/internal/models"

	"gorm.io/gorm"
)

// complaintPreloads loads every relation the aggregated view needs.
func complaintPreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User").
		Preload("Category").
		Preload("Media").
		Preload("Likes").
		Preload("Comments")
}

type ComplaintService struct {
	db *gorm.DB
}

func NewComplaintService(db *gorm.DB) *ComplaintService {
	return &ComplaintService{db: db}
}

type CreateComplaintInput struct {
	CategoryID  string   `json:"category_id" binding:"required,uuid"`
	Title       string   `json:"title" binding:"required,max=200"`
	Description string   `json:"description" binding:"required,max=2000"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Address     string   `json:"address" binding:"required,max=500"`
	MediaURLs   []string `json:"media_urls"`
}

// Create persists a complaint and its media rows in one transaction. Status
// is always Pending no matter what the caller sends; media kinds are derived
// from the URL extensions.
func (s *ComplaintService) Create(userID string, input CreateComplaintInput) (*ComplaintView, error) {
	// Unknown category is a validation failure, not an FK violation.
	var category models.Category
	if err := s.db.Where("id = ?", input.CategoryID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	complaint := models.Complaint{
		UserID:      userID,
		CategoryID:  input.CategoryID,
		Title:       input.Title,
		Description: input.Description,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Address:     input.Address,
		Status:      models.StatusPending,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&complaint).Error; err != nil {
			return err
		}

		for _, url := range input.MediaURLs {
			media := models.ComplaintMedia{
				ComplaintID: complaint.ID,
				MediaURL:    url,
				MediaType:   models.MediaKindFromURL(url),
			}
			if err := tx.Create(&media).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The creator is the viewer; no like can exist yet.
	return s.GetByID(complaint.ID, userID)
}

// GetByID returns the aggregated view of one complaint.
func (s *ComplaintService) GetByID(complaintID, viewerID string) (*ComplaintView, error) {
	var complaint models.Complaint
	if err := complaintPreloads(s.db).Where("id = ?", complaintID).First(&complaint).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrComplaintNotFound
		}
		return nil, err
	}

	view := NewComplaintView(&complaint, viewerID)
	return &view, nil
}

// List returns every complaint, newest first, as aggregated views.
func (s *ComplaintService) List(viewerID string) ([]ComplaintView, error) {
	var complaints []models.Complaint
	if err := complaintPreloads(s.db).
		Order("created_at DESC, id DESC").
		Find(&complaints).Error; err != nil {
		return nil, err
	}

	views := make([]ComplaintView, 0, len(complaints))
	for i := range complaints {
		views = append(views, NewComplaintView(&complaints[i], viewerID))
	}
	return views, nil
}

// Categories lists all categories ordered by name.
func (s *ComplaintService) Categories() ([]models.CategoryInfo, error) {
	var categories []models.Category
	if err := s.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}

	infos := make([]models.CategoryInfo, 0, len(categories))
	for i := range categories {
		infos = append(infos, categories[i].Info())
	}
	return infos, nil
}

type SearchParams struct {
	Keyword    string
	CategoryID string
	Status     string
	State      string
	City       string
	Page       int
	PageSize   int
}

// Normalize applies the pagination defaults (page 1, size 10) and clamps the
// page size to at most 100.
func (p *SearchParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 10
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}

// applySearchFilters ANDs every present filter onto the query. An
// unrecognized status string is ignored rather than rejected, matching the
// lenient filter contract; the admin status update is the strict path.
func applySearchFilters(query *gorm.DB, params SearchParams) *gorm.DB {
	if params.Keyword != "" {
		pattern := "%" + params.Keyword + "%"
		query = query.Where("(title ILIKE ? OR description ILIKE ? OR address ILIKE ?)",
			pattern, pattern, pattern)
	}

	if params.CategoryID != "" {
		query = query.Where("category_id = ?", params.CategoryID)
	}

	if params.Status != "" {
		if status, ok := models.ParseStatus(params.Status); ok {
			query = query.Where("status = ?", status)
		}
	}

	// State and city live on the author, not the complaint.
	if params.State != "" {
		query = query.Where("user_id IN (SELECT id FROM users WHERE UPPER(state) = ?)",
			strings.ToUpper(params.State))
	}

	if params.City != "" {
		query = query.Where("user_id IN (SELECT id FROM users WHERE city ILIKE ?)",
			"%"+params.City+"%")
	}

	return query
}

// Search filters, orders and pages the complaint collection.
func (s *ComplaintService) Search(params SearchParams, viewerID string) (*PaginatedComplaints, error) {
	params.Normalize()

	query := applySearchFilters(s.db.Model(&models.Complaint{}), params)

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, err
	}

	// id is the tiebreaker so pages stay stable when timestamps collide.
	var complaints []models.Complaint
	if err := complaintPreloads(query).
		Order("created_at DESC, id DESC").
		Offset((params.Page - 1) * params.PageSize).
		Limit(params.PageSize).
		Find(&complaints).Error; err != nil {
		return nil, err
	}

	views := make([]ComplaintView, 0, len(complaints))
	for i := range complaints {
		views = append(views, NewComplaintView(&complaints[i], viewerID))
	}

	totalPages, hasNext, hasPrev := PaginationMeta(totalCount, params.Page, params.PageSize)

	return &PaginatedComplaints{
		Data:            views,
		TotalCount:      totalCount,
		Page:            params.Page,
		PageSize:        params.PageSize,
		TotalPages:      totalPages,
		HasNextPage:     hasNext,
		HasPreviousPage: hasPrev,
	}, nil
}
