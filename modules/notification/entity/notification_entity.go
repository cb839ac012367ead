package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"legalconnect/core/entity"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationTypeSchedule NotificationType = "SCHEDULE"
	NotificationTypeReminder NotificationType = "REMINDER"
	NotificationTypeCalendar NotificationType = "CALENDAR"
)

type Notification struct {
	UserID  uuid.UUID        `db:"user_id" json:"user_id"`
	Title   string           `db:"title" json:"title"`
	Message string           `db:"message" json:"message"`
	Type    NotificationType `db:"type" json:"type"`
	Data    JSONB            `db:"data" json:"data"`
	IsRead  bool             `db:"is_read" json:"is_read"`
	entity.BaseEntity
}

// JSONB stores arbitrary structured payloads in a jsonb column.
type JSONB map[string]any

func (a JSONB) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *JSONB) Scan(value any) error {
	if value == nil {
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &a)
}

type PaginatedNotificationEntity = entity.Pagination[Notification]
