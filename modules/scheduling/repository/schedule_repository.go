package repository

import (
	"context"
	"database/sql"
	"fmt"

	"legalconnect/core/database"
	"legalconnect/core/logger"
	"legalconnect/core/params"
	"legalconnect/modules/scheduling/entity"

	"github.com/google/uuid"
)

type SchedulingRepository struct {
	DB database.Database
}

func NewSchedulingRepository(db database.Database) *SchedulingRepository {
	return &SchedulingRepository{DB: db}
}

func (r *SchedulingRepository) CreateSchedule(ctx context.Context, schedule *entity.Schedule) error {
	query := `
		INSERT INTO schedules (id, case_id, lawyer_id, client_id, title, type, description, date, start_time, end_time, created_at, updated_at)
		VALUES (:id, :case_id, :lawyer_id, :client_id, :title, :type, :description, :date, :start_time, :end_time, :created_at, :updated_at)`
	_, err := r.DB.NamedExecContext(ctx, query, schedule)
	if err != nil {
		logger.Error("SchedulingRepository:CreateSchedule:Error", "error", err, "schedule_id", schedule.ID)
		return err
	}
	return nil
}

func (r *SchedulingRepository) UpdateSchedule(ctx context.Context, schedule *entity.Schedule) error {
	query := `
		UPDATE schedules
		SET title = :title,
		    type = :type,
		    description = :description,
		    date = :date,
		    start_time = :start_time,
		    end_time = :end_time,
		    updated_at = :updated_at
		WHERE id = :id`
	result, err := r.DB.NamedExecContext(ctx, query, schedule)
	if err != nil {
		logger.Error("SchedulingRepository:UpdateSchedule:Error", "error", err, "schedule_id", schedule.ID)
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *SchedulingRepository) DeleteSchedule(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM schedules WHERE id = $1`
	err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("SchedulingRepository:DeleteSchedule:Error", "error", err, "schedule_id", id)
		return err
	}
	return nil
}

func (r *SchedulingRepository) GetScheduleByID(ctx context.Context, id uuid.UUID) (*entity.Schedule, error) {
	var schedule entity.Schedule
	query := `
		SELECT id, case_id, lawyer_id, client_id, title, type, description, date, start_time, end_time, created_at, updated_at
		FROM schedules WHERE id = $1`
	err := r.DB.GetContext(ctx, &schedule, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("SchedulingRepository:GetScheduleByID:Error", "error", err, "schedule_id", id)
		return nil, err
	}
	return &schedule, nil
}

func (r *SchedulingRepository) GetSchedulesByCaseID(ctx context.Context, caseID uuid.UUID, queryParams params.QueryParams) ([]entity.Schedule, error) {
	schedules := []entity.Schedule{}
	query := fmt.Sprintf(`
		SELECT id, case_id, lawyer_id, client_id, title, type, description, date, start_time, end_time, created_at, updated_at
		FROM schedules
		WHERE case_id = $1
		ORDER BY start_time %s
		LIMIT $2 OFFSET $3`, queryParams.SortDirection)
	err := r.DB.SelectContext(ctx, &schedules, query, caseID, queryParams.PageSize, queryParams.Offset())
	if err != nil {
		logger.Error("SchedulingRepository:GetSchedulesByCaseID:Error", "error", err, "case_id", caseID)
		return nil, err
	}
	return schedules, nil
}

func (r *SchedulingRepository) GetSchedulesByUserID(ctx context.Context, userID uuid.UUID, queryParams params.QueryParams) ([]entity.Schedule, error) {
	schedules := []entity.Schedule{}
	query := fmt.Sprintf(`
		SELECT id, case_id, lawyer_id, client_id, title, type, description, date, start_time, end_time, created_at, updated_at
		FROM schedules
		WHERE lawyer_id = $1 OR client_id = $1
		ORDER BY start_time %s
		LIMIT $2 OFFSET $3`, queryParams.SortDirection)
	err := r.DB.SelectContext(ctx, &schedules, query, userID, queryParams.PageSize, queryParams.Offset())
	if err != nil {
		logger.Error("SchedulingRepository:GetSchedulesByUserID:Error", "error", err, "user_id", userID)
		return nil, err
	}
	return schedules, nil
}

func (r *SchedulingRepository) CountSchedulesByCaseID(ctx context.Context, caseID uuid.UUID) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM schedules WHERE case_id = $1`
	err := r.DB.GetContext(ctx, &count, query, caseID)
	if err != nil {
		logger.Error("SchedulingRepository:CountSchedulesByCaseID:Error", "error", err, "case_id", caseID)
		return 0, err
	}
	return count, nil
}

func (r *SchedulingRepository) CountSchedulesByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM schedules WHERE lawyer_id = $1 OR client_id = $1`
	err := r.DB.GetContext(ctx, &count, query, userID)
	if err != nil {
		logger.Error("SchedulingRepository:CountSchedulesByUserID:Error", "error", err, "user_id", userID)
		return 0, err
	}
	return count, nil
}
