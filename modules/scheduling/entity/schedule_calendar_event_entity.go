package entity

import (
	"legalconnect/core/entity"

	"github.com/google/uuid"
)

// ScheduleGoogleCalendarEvent maps a schedule to its remote calendar event.
// OwnerUserID is the user whose credential created the event; later update
// and delete calls must use the same user's calendar. The event id is
// assigned by Google and never generated locally.
type ScheduleGoogleCalendarEvent struct {
	ScheduleID            uuid.UUID `db:"schedule_id" json:"schedule_id"`
	OwnerUserID           uuid.UUID `db:"owner_user_id" json:"owner_user_id"`
	GoogleCalendarEventID string    `db:"google_calendar_event_id" json:"google_calendar_event_id"`
	entity.BaseEntity
}
