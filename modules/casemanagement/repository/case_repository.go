package repository

import (
	"context"
	"database/sql"
	"fmt"

	"legalconnect/core/database"
	"legalconnect/core/logger"
	"legalconnect/core/params"
	"legalconnect/modules/casemanagement/entity"

	"github.com/google/uuid"
)

type CaseRepositoryInterface interface {
	GetCaseByID(ctx context.Context, id uuid.UUID) (*entity.Case, error)
	GetCasesByUserID(ctx context.Context, userID uuid.UUID, queryParams params.QueryParams) ([]entity.Case, error)
	CountCasesByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}

type CaseRepository struct {
	DB database.Database
}

func NewCaseRepository(db database.Database) *CaseRepository {
	return &CaseRepository{DB: db}
}

func (r *CaseRepository) GetCaseByID(ctx context.Context, id uuid.UUID) (*entity.Case, error) {
	var caseEntity entity.Case
	query := `SELECT id, lawyer_id, client_id, title, description, status, created_at, updated_at FROM cases WHERE id = $1`
	err := r.DB.GetContext(ctx, &caseEntity, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("CaseRepository:GetCaseByID:Error", "error", err, "case_id", id)
		return nil, err
	}
	return &caseEntity, nil
}

func (r *CaseRepository) GetCasesByUserID(ctx context.Context, userID uuid.UUID, queryParams params.QueryParams) ([]entity.Case, error) {
	cases := []entity.Case{}
	query := fmt.Sprintf(`
		SELECT id, lawyer_id, client_id, title, description, status, created_at, updated_at
		FROM cases
		WHERE lawyer_id = $1 OR client_id = $1
		ORDER BY created_at %s
		LIMIT $2 OFFSET $3`, queryParams.SortDirection)
	err := r.DB.SelectContext(ctx, &cases, query, userID, queryParams.PageSize, queryParams.Offset())
	if err != nil {
		logger.Error("CaseRepository:GetCasesByUserID:Error", "error", err, "user_id", userID)
		return nil, err
	}
	return cases, nil
}

func (r *CaseRepository) CountCasesByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM cases WHERE lawyer_id = $1 OR client_id = $1`
	err := r.DB.GetContext(ctx, &count, query, userID)
	if err != nil {
		logger.Error("CaseRepository:CountCasesByUserID:Error", "error", err, "user_id", userID)
		return 0, err
	}
	return count, nil
}
