package controller

import (
	"legalconnect/core/controller"
	"legalconnect/core/errors"
	"legalconnect/core/params"
	"legalconnect/core/utils"
	"legalconnect/modules/scheduling/dto"
	"legalconnect/modules/scheduling/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SchedulingController handles schedule HTTP requests
type SchedulingController struct {
	controller.BaseController
	SchedulingService service.SchedulingServiceInterface
}

func NewSchedulingController(svc service.SchedulingServiceInterface) *SchedulingController {
	return &SchedulingController{
		BaseController:    controller.NewBaseController(),
		SchedulingService: svc,
	}
}

// CreateSchedule handles POST /schedules
// @Summary Create a schedule
// @Description Creates a schedule under a case and syncs it to Google Calendar when possible
// @Tags Scheduling
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateScheduleRequest true "Schedule details"
// @Success 201 {object} dto.ScheduleResponse
// @Failure 400 {object} controller.ErrorResponse
// @Router /private/schedules [post]
func (c *SchedulingController) CreateSchedule(ctx echo.Context) error {
	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.CreateScheduleRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	validation := validateScheduleFields(req.Title, req.Type, req.Date, req.StartTime, req.EndTime)
	if req.CaseID == "" {
		validation.Add("case_id", "case_id is required")
	}
	if validation.HasError() {
		return c.BadRequest(errors.ErrInvalidInput, "Validation failed", validation.Errors)
	}

	result, appErr := c.SchedulingService.CreateSchedule(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.CreatedResponse(ctx, result, "Schedule created successfully")
}

// UpdateSchedule handles PUT /schedules/:id
// @Summary Update a schedule
// @Tags Scheduling
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID"
// @Param request body dto.UpdateScheduleRequest true "Schedule details"
// @Success 200 {object} dto.ScheduleResponse
// @Router /private/schedules/{id} [put]
func (c *SchedulingController) UpdateSchedule(ctx echo.Context) error {
	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	scheduleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid schedule ID")
	}

	var req dto.UpdateScheduleRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	validation := validateScheduleFields(req.Title, req.Type, req.Date, req.StartTime, req.EndTime)
	if validation.HasError() {
		return c.BadRequest(errors.ErrInvalidInput, "Validation failed", validation.Errors)
	}

	result, appErr := c.SchedulingService.UpdateSchedule(ctx.Request().Context(), userID, scheduleID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Schedule updated successfully")
}

// DeleteSchedule handles DELETE /schedules/:id
// @Summary Delete a schedule
// @Tags Scheduling
// @Security BearerAuth
// @Param id path string true "Schedule ID"
// @Success 200 {object} dto.DeleteScheduleResponse
// @Router /private/schedules/{id} [delete]
func (c *SchedulingController) DeleteSchedule(ctx echo.Context) error {
	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	scheduleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid schedule ID")
	}

	result, appErr := c.SchedulingService.DeleteSchedule(ctx.Request().Context(), userID, scheduleID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Schedule deleted successfully")
}

// GetSchedule handles GET /schedules/:id
// @Summary Get a schedule
// @Tags Scheduling
// @Security BearerAuth
// @Param id path string true "Schedule ID"
// @Success 200 {object} dto.ScheduleResponse
// @Router /private/schedules/{id} [get]
func (c *SchedulingController) GetSchedule(ctx echo.Context) error {
	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	scheduleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid schedule ID")
	}

	result, appErr := c.SchedulingService.GetSchedule(ctx.Request().Context(), userID, scheduleID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetMySchedules handles GET /schedules
// @Summary List my schedules
// @Tags Scheduling
// @Security BearerAuth
// @Success 200 {object} dto.PaginatedScheduleResponse
// @Router /private/schedules [get]
func (c *SchedulingController) GetMySchedules(ctx echo.Context) error {
	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	queryParams := params.FromEchoContext(ctx)

	result, appErr := c.SchedulingService.GetMySchedules(ctx.Request().Context(), userID, queryParams)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetSchedulesByCase handles GET /cases/:caseId/schedules
// @Summary List schedules of a case
// @Tags Scheduling
// @Security BearerAuth
// @Param caseId path string true "Case ID"
// @Success 200 {object} dto.PaginatedScheduleResponse
// @Router /private/cases/{caseId}/schedules [get]
func (c *SchedulingController) GetSchedulesByCase(ctx echo.Context) error {
	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	caseID, err := uuid.Parse(ctx.Param("caseId"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid case ID")
	}

	queryParams := params.FromEchoContext(ctx)

	result, appErr := c.SchedulingService.GetSchedulesByCase(ctx.Request().Context(), userID, caseID, queryParams)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

func validateScheduleFields(title, scheduleType, date, startTime, endTime string) controller.ValidationResult {
	var validation controller.ValidationResult
	if title == "" {
		validation.Add("title", "title is required")
	}
	if scheduleType == "" {
		validation.Add("type", "type is required")
	}
	if date == "" {
		validation.Add("date", "date is required")
	}
	if startTime == "" {
		validation.Add("start_time", "start_time is required")
	}
	if endTime == "" {
		validation.Add("end_time", "end_time is required")
	}
	return validation
}
