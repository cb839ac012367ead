package controller

import (
	"legalconnect/core/controller"
	"legalconnect/core/errors"
	"legalconnect/core/utils"
	"legalconnect/modules/user/service"

	"github.com/labstack/echo/v4"
)

type UserController struct {
	controller.BaseController
	UserService service.UserServiceInterface
}

func NewUserController(svc service.UserServiceInterface) *UserController {
	return &UserController{
		BaseController: controller.NewBaseController(),
		UserService:    svc,
	}
}

// GetMe handles GET /users/me
// @Summary Get my profile
// @Tags User
// @Security BearerAuth
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} controller.ErrorResponse
// @Router /private/users/me [get]
func (c *UserController) GetMe(ctx echo.Context) error {
	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.UserService.GetProfile(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}
