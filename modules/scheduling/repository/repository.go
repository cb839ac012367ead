package repository

import (
	"context"

	"legalconnect/core/params"
	"legalconnect/modules/scheduling/entity"

	"github.com/google/uuid"
)

// SchedulingRepositoryInterface covers the three persistence concerns of the
// module: schedules, per-user OAuth calendar tokens, and the schedule-to-event
// mapping rows. Lookups return (nil, nil) when no row matches.
type SchedulingRepositoryInterface interface {
	CreateSchedule(ctx context.Context, schedule *entity.Schedule) error
	UpdateSchedule(ctx context.Context, schedule *entity.Schedule) error
	DeleteSchedule(ctx context.Context, id uuid.UUID) error
	GetScheduleByID(ctx context.Context, id uuid.UUID) (*entity.Schedule, error)
	GetSchedulesByCaseID(ctx context.Context, caseID uuid.UUID, queryParams params.QueryParams) ([]entity.Schedule, error)
	GetSchedulesByUserID(ctx context.Context, userID uuid.UUID, queryParams params.QueryParams) ([]entity.Schedule, error)
	CountSchedulesByCaseID(ctx context.Context, caseID uuid.UUID) (int64, error)
	CountSchedulesByUserID(ctx context.Context, userID uuid.UUID) (int64, error)

	UpsertOAuthToken(ctx context.Context, token *entity.OAuthCalendarToken) error
	GetOAuthTokenByUserID(ctx context.Context, userID uuid.UUID) (*entity.OAuthCalendarToken, error)
	UpdateAccessToken(ctx context.Context, userID uuid.UUID, token *entity.OAuthCalendarToken) error
	DeleteOAuthToken(ctx context.Context, userID uuid.UUID) error

	SaveCalendarEventMapping(ctx context.Context, mapping *entity.ScheduleGoogleCalendarEvent) error
	GetCalendarEventMapping(ctx context.Context, scheduleID uuid.UUID) (*entity.ScheduleGoogleCalendarEvent, error)
	DeleteCalendarEventMapping(ctx context.Context, scheduleID uuid.UUID) error
}
