package casemanagement

import (
	"legalconnect/core/database"
	"legalconnect/core/middleware"
	"legalconnect/modules/casemanagement/controller"
	"legalconnect/modules/casemanagement/repository"
	"legalconnect/modules/casemanagement/router"
	"legalconnect/modules/casemanagement/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) {
	repo := repository.NewCaseRepository(db)
	svc := service.NewCaseService(repo)
	ctrl := controller.NewCaseController(svc)

	router.NewCaseRouter(ctrl).Setup(e, mw)
}
