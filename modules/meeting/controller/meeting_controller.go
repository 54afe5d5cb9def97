package controller

import (
	"meetbrief-api/core/controller"
	"meetbrief-api/core/middleware"
	"meetbrief-api/modules/meeting/service"

	"github.com/labstack/echo/v4"
)

type MeetingController struct {
	controller.BaseController
	service service.MeetingService
}

func NewMeetingController(svc service.MeetingService) *MeetingController {
	return &MeetingController{
		BaseController: controller.NewBaseController(),
		service:        svc,
	}
}

// SyncCalendar triggers a provider calendar pull on the heart API
// POST /api/v1/private/calendar/sync
func (c *MeetingController) SyncCalendar(ctx echo.Context) error {
	resp, appErr := c.service.SyncCalendar(ctx.Request().Context(), middleware.BearerToken(ctx))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "calendar synced")
}

// GetMeetings lists upcoming meetings as view-models
// GET /api/v1/private/meetings
func (c *MeetingController) GetMeetings(ctx echo.Context) error {
	resp, appErr := c.service.GetMeetings(ctx.Request().Context(), middleware.BearerToken(ctx), middleware.UserEmail(ctx))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "")
}

// GetDashboard returns the landing-screen summary
// GET /api/v1/private/dashboard
func (c *MeetingController) GetDashboard(ctx echo.Context) error {
	resp, appErr := c.service.GetDashboard(ctx.Request().Context(), middleware.BearerToken(ctx), middleware.UserEmail(ctx))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "")
}
