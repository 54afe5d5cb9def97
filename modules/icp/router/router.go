package router

import (
	"meetbrief-api/core/middleware"
	"meetbrief-api/modules/icp/controller"

	"github.com/labstack/echo/v4"
)

type ICPRouter struct {
	controller *controller.ICPController
}

func NewICPRouter(controller *controller.ICPController) *ICPRouter {
	return &ICPRouter{controller: controller}
}

func (r *ICPRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	icpRoutes := v1.Group("/private/icp")
	icpRoutes.Use(mw.AuthMiddleware())

	icpRoutes.GET("/criteria", r.controller.GetCriteria)
	icpRoutes.PUT("/criteria", r.controller.UpdateCriteria)
	icpRoutes.GET("/status", r.controller.GetStatus)
	icpRoutes.POST("/analyze", r.controller.Analyze)
	icpRoutes.GET("/stats", r.controller.GetStats)

	prefRoutes := v1.Group("/private/preferences")
	prefRoutes.Use(mw.AuthMiddleware())

	prefRoutes.GET("/questions", r.controller.GetQuestions)
	prefRoutes.PUT("/questions", r.controller.UpdateQuestions)
}
