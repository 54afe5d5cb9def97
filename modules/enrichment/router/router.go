package router

import (
	"meetbrief-api/core/middleware"
	"meetbrief-api/modules/enrichment/controller"

	"github.com/labstack/echo/v4"
)

type EnrichmentRouter struct {
	controller *controller.EnrichmentController
}

func NewEnrichmentRouter(controller *controller.EnrichmentController) *EnrichmentRouter {
	return &EnrichmentRouter{controller: controller}
}

func (r *EnrichmentRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	enrichmentRoutes := v1.Group("/private/enrichment")
	enrichmentRoutes.Use(mw.AuthMiddleware())

	enrichmentRoutes.POST("/upload", r.controller.Upload)
	enrichmentRoutes.GET("/jobs", r.controller.ListJobs)
}
