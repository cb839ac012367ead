package service

import (
	"context"

	"legalconnect/core/errors"
	"legalconnect/core/params"
	"legalconnect/modules/casemanagement/dto"
	"legalconnect/modules/casemanagement/entity"
	"legalconnect/modules/casemanagement/repository"

	"github.com/google/uuid"
)

type CaseServiceInterface interface {
	GetCase(ctx context.Context, actorID, caseID uuid.UUID) (*dto.CaseResponse, *errors.AppError)
	GetMyCases(ctx context.Context, userID uuid.UUID, queryParams params.QueryParams) (*dto.PaginatedCaseResponse, *errors.AppError)
}

type CaseService struct {
	repo repository.CaseRepositoryInterface
}

func NewCaseService(repo repository.CaseRepositoryInterface) *CaseService {
	return &CaseService{repo: repo}
}

func (s *CaseService) GetCase(ctx context.Context, actorID, caseID uuid.UUID) (*dto.CaseResponse, *errors.AppError) {
	caseEntity, err := s.repo.GetCaseByID(ctx, caseID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load case", err)
	}
	if caseEntity == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "case not found", nil)
	}
	if caseEntity.LawyerID != actorID && caseEntity.ClientID != actorID {
		return nil, errors.NewAppError(errors.ErrForbidden, "not a participant of this case", nil)
	}
	return toCaseResponse(caseEntity), nil
}

func (s *CaseService) GetMyCases(ctx context.Context, userID uuid.UUID, queryParams params.QueryParams) (*dto.PaginatedCaseResponse, *errors.AppError) {
	cases, err := s.repo.GetCasesByUserID(ctx, userID, queryParams)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list cases", err)
	}
	total, err := s.repo.CountCasesByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to count cases", err)
	}

	responses := make([]dto.CaseResponse, 0, len(cases))
	for i := range cases {
		responses = append(responses, *toCaseResponse(&cases[i]))
	}
	return &dto.PaginatedCaseResponse{
		Cases:      responses,
		PageNumber: queryParams.PageNumber,
		PageSize:   queryParams.PageSize,
		Total:      total,
	}, nil
}

func toCaseResponse(c *entity.Case) *dto.CaseResponse {
	return &dto.CaseResponse{
		ID:          c.ID.String(),
		LawyerID:    c.LawyerID.String(),
		ClientID:    c.ClientID.String(),
		Title:       c.Title,
		Description: c.Description,
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
