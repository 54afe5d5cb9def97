package router

import (
	"meetbrief-api/core/middleware"
	"meetbrief-api/modules/apikey/controller"

	"github.com/labstack/echo/v4"
)

type APIKeyRouter struct {
	controller *controller.APIKeyController
}

func NewAPIKeyRouter(controller *controller.APIKeyController) *APIKeyRouter {
	return &APIKeyRouter{controller: controller}
}

func (r *APIKeyRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	keyRoutes := v1.Group("/private/apikeys")
	keyRoutes.Use(mw.AuthMiddleware())

	keyRoutes.POST("", r.controller.Create)
	keyRoutes.GET("", r.controller.List)
	keyRoutes.PUT("/:id", r.controller.Update)
	keyRoutes.DELETE("/:id", r.controller.Delete)
}
