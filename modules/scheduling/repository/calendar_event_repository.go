package repository

import (
	"context"
	"database/sql"

	"legalconnect/core/logger"
	"legalconnect/modules/scheduling/entity"

	"github.com/google/uuid"
)

func (r *SchedulingRepository) SaveCalendarEventMapping(ctx context.Context, mapping *entity.ScheduleGoogleCalendarEvent) error {
	query := `
		INSERT INTO schedule_google_calendar_events (id, schedule_id, owner_user_id, google_calendar_event_id, created_at, updated_at)
		VALUES (:id, :schedule_id, :owner_user_id, :google_calendar_event_id, :created_at, :updated_at)
		ON CONFLICT (schedule_id) DO UPDATE
		SET owner_user_id = EXCLUDED.owner_user_id,
		    google_calendar_event_id = EXCLUDED.google_calendar_event_id,
		    updated_at = EXCLUDED.updated_at`
	_, err := r.DB.NamedExecContext(ctx, query, mapping)
	if err != nil {
		logger.Error("SchedulingRepository:SaveCalendarEventMapping:Error", "error", err, "schedule_id", mapping.ScheduleID)
		return err
	}
	return nil
}

func (r *SchedulingRepository) GetCalendarEventMapping(ctx context.Context, scheduleID uuid.UUID) (*entity.ScheduleGoogleCalendarEvent, error) {
	var mapping entity.ScheduleGoogleCalendarEvent
	query := `
		SELECT id, schedule_id, owner_user_id, google_calendar_event_id, created_at, updated_at
		FROM schedule_google_calendar_events WHERE schedule_id = $1`
	err := r.DB.GetContext(ctx, &mapping, query, scheduleID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("SchedulingRepository:GetCalendarEventMapping:Error", "error", err, "schedule_id", scheduleID)
		return nil, err
	}
	return &mapping, nil
}

func (r *SchedulingRepository) DeleteCalendarEventMapping(ctx context.Context, scheduleID uuid.UUID) error {
	query := `DELETE FROM schedule_google_calendar_events WHERE schedule_id = $1`
	err := r.DB.ExecContext(ctx, query, scheduleID)
	if err != nil {
		logger.Error("SchedulingRepository:DeleteCalendarEventMapping:Error", "error", err, "schedule_id", scheduleID)
		return err
	}
	return nil
}
