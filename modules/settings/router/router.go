package router

import (
	"meetbrief-api/core/middleware"
	"meetbrief-api/modules/settings/controller"

	"github.com/labstack/echo/v4"
)

type SettingsRouter struct {
	controller *controller.SettingsController
}

func NewSettingsRouter(controller *controller.SettingsController) *SettingsRouter {
	return &SettingsRouter{controller: controller}
}

func (r *SettingsRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	settingsRoutes := v1.Group("/private/settings")
	settingsRoutes.Use(mw.AuthMiddleware())

	settingsRoutes.GET("/vendors", r.controller.ListVendors)
	settingsRoutes.GET("", r.controller.ListSettings)
	settingsRoutes.POST("", r.controller.CreateSetting)
	settingsRoutes.PUT("/:id", r.controller.UpdateSetting)
	settingsRoutes.DELETE("/:id", r.controller.DeleteSetting)
}
