package dto

import (
	"time"
)

// ===================== Request DTOs =====================

// CreateScheduleRequest for creating a schedule under a case
type CreateScheduleRequest struct {
	CaseID      string `json:"case_id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Type        string `json:"type" validate:"required"`
	Description string `json:"description"`
	Date        string `json:"date" validate:"required"`       // YYYY-MM-DD
	StartTime   string `json:"start_time" validate:"required"` // RFC3339
	EndTime     string `json:"end_time" validate:"required"`   // RFC3339
}

// UpdateScheduleRequest for updating an existing schedule
type UpdateScheduleRequest struct {
	Title       string `json:"title" validate:"required"`
	Type        string `json:"type" validate:"required"`
	Description string `json:"description"`
	Date        string `json:"date" validate:"required"`
	StartTime   string `json:"start_time" validate:"required"`
	EndTime     string `json:"end_time" validate:"required"`
}

// ===================== Response DTOs =====================

// ScheduleResponse for schedule details
type ScheduleResponse struct {
	ID             string    `json:"id"`
	CaseID         string    `json:"case_id"`
	LawyerID       string    `json:"lawyer_id"`
	ClientID       string    `json:"client_id"`
	Title          string    `json:"title"`
	Type           string    `json:"type"`
	Description    string    `json:"description,omitempty"`
	Date           string    `json:"date"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	GoogleEventID  string    `json:"google_calendar_event_id,omitempty"`
	CalendarSynced bool      `json:"calendar_synced"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// PaginatedScheduleResponse for paginated schedule lists
type PaginatedScheduleResponse struct {
	Schedules  []ScheduleResponse `json:"schedules"`
	PageNumber int                `json:"page_number"`
	PageSize   int                `json:"page_size"`
	Total      int64              `json:"total"`
}

// DeleteScheduleResponse confirms a deletion
type DeleteScheduleResponse struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}
