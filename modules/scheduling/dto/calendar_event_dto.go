package dto

import "time"

// CreateCalendarEventDTO is the internal payload handed to the calendar
// client when pushing a schedule to Google
type CreateCalendarEventDTO struct {
	Title          string
	Description    string
	StartTime      time.Time
	EndTime        time.Time
	OrganizerEmail string
	AttendeeEmails []string
}

// UpdateCalendarEventDTO carries the mutable fields for a remote event patch
type UpdateCalendarEventDTO struct {
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
}

// ===================== Google Calendar wire format =====================

// GoogleCalendarEvent mirrors the events resource of the Calendar v3 API,
// limited to the fields this service reads and writes.
type GoogleCalendarEvent struct {
	ID          string                     `json:"id,omitempty"`
	Summary     string                     `json:"summary,omitempty"`
	Description string                     `json:"description,omitempty"`
	Location    string                     `json:"location,omitempty"`
	Start       *GoogleEventDateTime       `json:"start,omitempty"`
	End         *GoogleEventDateTime       `json:"end,omitempty"`
	Attendees   []GoogleEventAttendee      `json:"attendees,omitempty"`
	Organizer   *GoogleEventOrganizer      `json:"organizer,omitempty"`
	Reminders   *GoogleEventReminders      `json:"reminders,omitempty"`
	Status      string                     `json:"status,omitempty"`
}

type GoogleEventDateTime struct {
	DateTime string `json:"dateTime,omitempty"`
	TimeZone string `json:"timeZone,omitempty"`
}

type GoogleEventAttendee struct {
	Email string `json:"email"`
}

type GoogleEventOrganizer struct {
	Email string `json:"email,omitempty"`
}

type GoogleEventReminders struct {
	UseDefault bool                   `json:"useDefault"`
	Overrides  []GoogleEventReminder  `json:"overrides,omitempty"`
}

type GoogleEventReminder struct {
	Method  string `json:"method"`
	Minutes int    `json:"minutes"`
}
