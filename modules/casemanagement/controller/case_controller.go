package controller

import (
	"legalconnect/core/controller"
	"legalconnect/core/errors"
	"legalconnect/core/params"
	"legalconnect/core/utils"
	"legalconnect/modules/casemanagement/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type CaseController struct {
	controller.BaseController
	CaseService service.CaseServiceInterface
}

func NewCaseController(svc service.CaseServiceInterface) *CaseController {
	return &CaseController{
		BaseController: controller.NewBaseController(),
		CaseService:    svc,
	}
}

// GetMyCases handles GET /cases
// @Summary List my cases
// @Tags Case
// @Security BearerAuth
// @Success 200 {object} dto.PaginatedCaseResponse
// @Router /private/cases [get]
func (c *CaseController) GetMyCases(ctx echo.Context) error {
	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	queryParams := params.FromEchoContext(ctx)
	result, appErr := c.CaseService.GetMyCases(ctx.Request().Context(), userID, queryParams)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetCase handles GET /cases/:caseId
// @Summary Get a case
// @Tags Case
// @Security BearerAuth
// @Param caseId path string true "Case ID"
// @Success 200 {object} dto.CaseResponse
// @Router /private/cases/{caseId} [get]
func (c *CaseController) GetCase(ctx echo.Context) error {
	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	caseID, err := uuid.Parse(ctx.Param("caseId"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid case ID")
	}

	result, appErr := c.CaseService.GetCase(ctx.Request().Context(), userID, caseID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}
