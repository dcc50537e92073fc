package services

// PaginatedComplaints is the envelope returned by complaint search.
type PaginatedComplaints struct {
	Data            []ComplaintView `json:"data"`
	TotalCount      int64           `json:"total_count"`
	Page            int             `json:"page"`
	PageSize        int             `json:"page_size"`
	TotalPages      int             `json:"total_pages"`
	HasNextPage     bool            `json:"has_next_page"`
	HasPreviousPage bool            `json:"has_previous_page"`
}

// PaginationMeta computes the derived pagination fields. Pages are 1-based;
// a page beyond the last yields hasNext=false rather than an error.
func PaginationMeta(totalCount int64, page, pageSize int) (totalPages int, hasNext, hasPrev bool) {
	totalPages = int((totalCount + int64(pageSize) - 1) / int64(pageSize))
	return totalPages, page < totalPages, page > 1
}
