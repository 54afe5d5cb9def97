package router

import (
	"meetbrief-api/core/middleware"
	"meetbrief-api/modules/contact/controller"

	"github.com/labstack/echo/v4"
)

type ContactRouter struct {
	controller *controller.ContactController
}

func NewContactRouter(controller *controller.ContactController) *ContactRouter {
	return &ContactRouter{controller: controller}
}

func (r *ContactRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	contactRoutes := v1.Group("/private/contact")
	contactRoutes.Use(mw.AuthMiddleware())

	contactRoutes.POST("", r.controller.Submit)
}
