package router

import (
	"legalconnect/core/middleware"
	"legalconnect/modules/user/controller"

	"github.com/labstack/echo/v4"
)

type UserRouter struct {
	UserController *controller.UserController
}

func NewUserRouter(userController *controller.UserController) *UserRouter {
	return &UserRouter{UserController: userController}
}

func (r *UserRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	userRoutes := v1.Group("/private/users", mw.AuthMiddleware())
	userRoutes.GET("/me", r.UserController.GetMe)
}
