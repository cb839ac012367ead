package notification

import (
	"legalconnect/core/database"
	"legalconnect/core/middleware"
	"legalconnect/modules/notification/controller"
	"legalconnect/modules/notification/repository"
	"legalconnect/modules/notification/router"
	"legalconnect/modules/notification/service"

	"github.com/labstack/echo/v4"
)

// Init wires the notification module and returns the service so other
// modules can push notifications through it.
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) *service.NotificationService {
	repo := repository.NewNotificationRepository(db)
	svc := service.NewNotificationService(repo)
	ctrl := controller.NewNotificationController(svc)

	router.NewNotificationRouter(ctrl).Setup(e, mw)

	return svc
}
