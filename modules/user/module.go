package user

import (
	"legalconnect/core/database"
	"legalconnect/core/middleware"
	"legalconnect/modules/user/controller"
	"legalconnect/modules/user/repository"
	"legalconnect/modules/user/router"
	"legalconnect/modules/user/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) {
	repo := repository.NewUserRepository(db)
	svc := service.NewUserService(repo)
	ctrl := controller.NewUserController(svc)

	router.NewUserRouter(ctrl).Setup(e, mw)
}
