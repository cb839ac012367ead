package controller

import (
	"net/http"

	"legalconnect/core/controller"
	"legalconnect/core/errors"
	"legalconnect/core/utils"
	"legalconnect/modules/scheduling/service"

	"github.com/labstack/echo/v4"
)

// OAuthController handles the Google Calendar connection flow
type OAuthController struct {
	controller.BaseController
	OAuthService service.OAuthServiceInterface
}

func NewOAuthController(svc service.OAuthServiceInterface) *OAuthController {
	return &OAuthController{
		BaseController: controller.NewBaseController(),
		OAuthService:   svc,
	}
}

// Authorize handles GET /schedule/oauth/authorize
// @Summary Start Google Calendar authorization
// @Description Redirects the browser to the Google consent screen
// @Tags OAuth
// @Security BearerAuth
// @Success 302
// @Failure 401 {object} controller.ErrorResponse
// @Router /private/schedule/oauth/authorize [get]
func (c *OAuthController) Authorize(ctx echo.Context) error {
	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.OAuthService.BuildAuthorizationURL(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return ctx.Redirect(http.StatusFound, result.URL)
}

// AuthorizationURL handles GET /schedule/oauth/authorize-url
// @Summary Get the Google consent URL
// @Description Returns the consent URL as JSON for clients that open it themselves
// @Tags OAuth
// @Security BearerAuth
// @Success 200 {object} dto.AuthorizationURLResponse
// @Router /private/schedule/oauth/authorize-url [get]
func (c *OAuthController) AuthorizationURL(ctx echo.Context) error {
	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.OAuthService.BuildAuthorizationURL(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Authorization URL generated")
}

// Callback handles GET /schedule/oauth/callback
// @Summary Google OAuth callback
// @Description Completes the handshake and redirects to the user's dashboard
// @Tags OAuth
// @Param code query string true "Authorization code"
// @Param state query string true "State nonce"
// @Success 302
// @Failure 400 {object} controller.ErrorResponse
// @Router /schedule/oauth/callback [get]
func (c *OAuthController) Callback(ctx echo.Context) error {
	code := ctx.QueryParam("code")
	state := ctx.QueryParam("state")

	if errParam := ctx.QueryParam("error"); errParam != "" {
		return c.BadRequest(errors.ErrTokenExchange, "Authorization denied: "+errParam)
	}
	if code == "" || state == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Missing code or state parameter")
	}

	result, appErr := c.OAuthService.HandleCallback(ctx.Request().Context(), code, state)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return ctx.Redirect(http.StatusFound, result.RedirectURL)
}

// Status handles GET /schedule/oauth/status
// @Summary Calendar connection status
// @Tags OAuth
// @Security BearerAuth
// @Success 200 {object} dto.TokenStatusResponse
// @Router /private/schedule/oauth/status [get]
func (c *OAuthController) Status(ctx echo.Context) error {
	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.OAuthService.GetTokenStatus(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// Disconnect handles DELETE /schedule/oauth
// @Summary Disconnect Google Calendar
// @Tags OAuth
// @Security BearerAuth
// @Success 200
// @Router /private/schedule/oauth [delete]
func (c *OAuthController) Disconnect(ctx echo.Context) error {
	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	if appErr := c.OAuthService.DisconnectCalendar(ctx.Request().Context(), userID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Calendar disconnected")
}
