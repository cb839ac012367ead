package router

import (
	"legalconnect/core/middleware"
	"legalconnect/modules/casemanagement/controller"

	"github.com/labstack/echo/v4"
)

type CaseRouter struct {
	CaseController *controller.CaseController
}

func NewCaseRouter(caseController *controller.CaseController) *CaseRouter {
	return &CaseRouter{CaseController: caseController}
}

func (r *CaseRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	caseRoutes := v1.Group("/private/cases", mw.AuthMiddleware())
	caseRoutes.GET("", r.CaseController.GetMyCases)
	caseRoutes.GET("/:caseId", r.CaseController.GetCase)
}
