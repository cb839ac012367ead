package dto

import "time"

// CaseResponse for case details
type CaseResponse struct {
	ID          string    `json:"id"`
	LawyerID    string    `json:"lawyer_id"`
	ClientID    string    `json:"client_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PaginatedCaseResponse for paginated case lists
type PaginatedCaseResponse struct {
	Cases      []CaseResponse `json:"cases"`
	PageNumber int            `json:"page_number"`
	PageSize   int            `json:"page_size"`
	Total      int64          `json:"total"`
}
