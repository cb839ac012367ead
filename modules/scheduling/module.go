package scheduling

import (
	"legalconnect/core/cache"
	"legalconnect/core/config"
	"legalconnect/core/database"
	"legalconnect/core/middleware"
	caserepository "legalconnect/modules/casemanagement/repository"
	"legalconnect/modules/scheduling/controller"
	"legalconnect/modules/scheduling/repository"
	"legalconnect/modules/scheduling/router"
	"legalconnect/modules/scheduling/service"
	userrepository "legalconnect/modules/user/repository"

	"github.com/labstack/echo/v4"
)

// Init wires the scheduling module: OAuth flow, calendar sync, and schedule
// CRUD. Notifications and reminders are provided by their own modules.
func Init(
	e *echo.Echo,
	db database.Database,
	cacheStore cache.Cache,
	mw *middleware.Middleware,
	notifier service.NotificationSender,
	reminders service.ReminderScheduler,
) {
	cfg := config.Get()

	repo := repository.NewSchedulingRepository(db)
	userRepo := userrepository.NewUserRepository(db)
	caseRepo := caserepository.NewCaseRepository(db)

	oauthSvc := service.NewOAuthService(cfg.GoogleAPI, cfg.FrontendURL, repo, userRepo, cacheStore)
	calendarSvc := service.NewGoogleCalendarService(oauthSvc)
	schedulingSvc := service.NewSchedulingService(repo, caseRepo, userRepo, oauthSvc, calendarSvc, notifier, reminders)

	oauthCtrl := controller.NewOAuthController(oauthSvc)
	schedulingCtrl := controller.NewSchedulingController(schedulingSvc)

	router.NewSchedulingRouter(oauthCtrl, schedulingCtrl).Setup(e, mw)
}
