package dto

import (
	"time"

	"github.com/google/uuid"
)

// ReminderPayload is the serialized body of a queued reminder task.
type ReminderPayload struct {
	ScheduleID     uuid.UUID `json:"schedule_id"`
	RecipientID    uuid.UUID `json:"recipient_id"`
	RecipientEmail string    `json:"recipient_email"`
	RecipientName  string    `json:"recipient_name"`
	Title          string    `json:"title"`
	ScheduleType   string    `json:"schedule_type"`
	StartTime      time.Time `json:"start_time"`
}
