package router

import (
	"meetbrief-api/core/middleware"
	"meetbrief-api/modules/meeting/controller"

	"github.com/labstack/echo/v4"
)

type MeetingRouter struct {
	controller *controller.MeetingController
}

func NewMeetingRouter(controller *controller.MeetingController) *MeetingRouter {
	return &MeetingRouter{controller: controller}
}

func (r *MeetingRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	private := v1.Group("/private")
	private.Use(mw.AuthMiddleware())

	private.POST("/calendar/sync", r.controller.SyncCalendar)
	private.GET("/meetings", r.controller.GetMeetings)
	private.GET("/dashboard", r.controller.GetDashboard)
}
