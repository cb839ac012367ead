package router

import (
	"legalconnect/core/middleware"
	"legalconnect/modules/scheduling/controller"

	"github.com/labstack/echo/v4"
)

// SchedulingRouter registers OAuth and schedule routes
type SchedulingRouter struct {
	OAuthController      *controller.OAuthController
	SchedulingController *controller.SchedulingController
}

func NewSchedulingRouter(oauthController *controller.OAuthController, schedulingController *controller.SchedulingController) *SchedulingRouter {
	return &SchedulingRouter{
		OAuthController:      oauthController,
		SchedulingController: schedulingController,
	}
}

// Setup registers scheduling routes. The OAuth callback is public: Google
// redirects the browser there without a bearer token.
func (r *SchedulingRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	v1.GET("/schedule/oauth/callback", r.OAuthController.Callback)

	privateRoutes := v1.Group("/private")

	oauthRoutes := privateRoutes.Group("/schedule/oauth", mw.AuthMiddleware())
	oauthRoutes.GET("/authorize", r.OAuthController.Authorize)
	oauthRoutes.GET("/authorize-url", r.OAuthController.AuthorizationURL)
	oauthRoutes.GET("/status", r.OAuthController.Status)
	oauthRoutes.DELETE("", r.OAuthController.Disconnect)

	scheduleRoutes := privateRoutes.Group("/schedules", mw.AuthMiddleware())
	scheduleRoutes.POST("", r.SchedulingController.CreateSchedule)
	scheduleRoutes.GET("", r.SchedulingController.GetMySchedules)
	scheduleRoutes.GET("/:id", r.SchedulingController.GetSchedule)
	scheduleRoutes.PUT("/:id", r.SchedulingController.UpdateSchedule)
	scheduleRoutes.DELETE("/:id", r.SchedulingController.DeleteSchedule)

	caseRoutes := privateRoutes.Group("/cases", mw.AuthMiddleware())
	caseRoutes.GET("/:caseId/schedules", r.SchedulingController.GetSchedulesByCase)
}
