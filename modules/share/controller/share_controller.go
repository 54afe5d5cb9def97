package controller

import (
	"meetbrief-api/core/controller"
	"meetbrief-api/core/errors"
	"meetbrief-api/core/middleware"
	"meetbrief-api/modules/share/dto"
	"meetbrief-api/modules/share/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ShareController struct {
	controller.BaseController
	service service.ShareService
}

func NewShareController(svc service.ShareService) *ShareController {
	return &ShareController{
		BaseController: controller.NewBaseController(),
		service:        svc,
	}
}

// Create snapshots a meeting brief under a public slug
// POST /api/v1/private/shares
func (c *ShareController) Create(ctx echo.Context) error {
	var req dto.CreateShareRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}

	resp, appErr := c.service.CreateShare(ctx.Request().Context(), middleware.UserID(ctx), middleware.BearerToken(ctx), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "share created")
}

// List returns the user's share links
// GET /api/v1/private/shares
func (c *ShareController) List(ctx echo.Context) error {
	resp, appErr := c.service.ListShares(ctx.Request().Context(), middleware.UserID(ctx))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "")
}

// Delete revokes a share link
// DELETE /api/v1/private/shares/:id
func (c *ShareController) Delete(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid share id")
	}

	if appErr := c.service.DeleteShare(ctx.Request().Context(), middleware.UserID(ctx), id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "share deleted")
}

// GetSharedBrief serves a shared brief without authentication
// GET /api/v1/shares/:slug
func (c *ShareController) GetSharedBrief(ctx echo.Context) error {
	resp, appErr := c.service.GetSharedBrief(ctx.Request().Context(), ctx.Param("slug"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "")
}
