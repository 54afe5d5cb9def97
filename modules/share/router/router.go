package router

import (
	"meetbrief-api/core/middleware"
	"meetbrief-api/modules/share/controller"

	"github.com/labstack/echo/v4"
)

type ShareRouter struct {
	controller *controller.ShareController
}

func NewShareRouter(controller *controller.ShareController) *ShareRouter {
	return &ShareRouter{controller: controller}
}

func (r *ShareRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	// Public: the whole point of a share link.
	v1.GET("/shares/:slug", r.controller.GetSharedBrief)

	shareRoutes := v1.Group("/private/shares")
	shareRoutes.Use(mw.AuthMiddleware())

	shareRoutes.POST("", r.controller.Create)
	shareRoutes.GET("", r.controller.List)
	shareRoutes.DELETE("/:id", r.controller.Delete)
}
