package controller

import (
	"meetbrief-api/core/controller"
	"meetbrief-api/core/errors"
	"meetbrief-api/core/middleware"
	"meetbrief-api/modules/icp/dto"
	"meetbrief-api/modules/icp/service"

	"github.com/labstack/echo/v4"
)

type ICPController struct {
	controller.BaseController
	service service.ICPService
}

func NewICPController(svc service.ICPService) *ICPController {
	return &ICPController{
		BaseController: controller.NewBaseController(),
		service:        svc,
	}
}

// GetCriteria returns the saved ICP criteria
// GET /api/v1/private/icp/criteria
func (c *ICPController) GetCriteria(ctx echo.Context) error {
	resp, appErr := c.service.GetCriteria(ctx.Request().Context(), middleware.UserID(ctx))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "")
}

// UpdateCriteria saves ICP criteria locally and upstream
// PUT /api/v1/private/icp/criteria
func (c *ICPController) UpdateCriteria(ctx echo.Context) error {
	var req dto.CriteriaRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}

	resp, appErr := c.service.UpdateCriteria(ctx.Request().Context(), middleware.UserID(ctx), middleware.BearerToken(ctx), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "criteria updated")
}

// GetStatus returns analysis progress
// GET /api/v1/private/icp/status
func (c *ICPController) GetStatus(ctx echo.Context) error {
	resp, appErr := c.service.GetStatus(ctx.Request().Context(), middleware.BearerToken(ctx))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "")
}

// Analyze queues ICP analysis for unanalyzed meetings
// POST /api/v1/private/icp/analyze
func (c *ICPController) Analyze(ctx echo.Context) error {
	resp, appErr := c.service.Analyze(ctx.Request().Context(), middleware.BearerToken(ctx))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "analysis queued")
}

// GetQuestions returns the preference questions and saved answers
// GET /api/v1/private/preferences/questions
func (c *ICPController) GetQuestions(ctx echo.Context) error {
	resp, appErr := c.service.GetQuestions(ctx.Request().Context(), middleware.BearerToken(ctx))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "")
}

// UpdateQuestions saves preference answers
// PUT /api/v1/private/preferences/questions
func (c *ICPController) UpdateQuestions(ctx echo.Context) error {
	var req dto.QuestionsRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}

	resp, appErr := c.service.UpdateQuestions(ctx.Request().Context(), middleware.BearerToken(ctx), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "preferences updated")
}

// GetStats returns fit/non-fit aggregates
// GET /api/v1/private/icp/stats
func (c *ICPController) GetStats(ctx echo.Context) error {
	resp, appErr := c.service.GetStats(ctx.Request().Context(), middleware.BearerToken(ctx))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "")
}
