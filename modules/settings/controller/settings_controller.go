package controller

import (
	"meetbrief-api/core/controller"
	"meetbrief-api/core/errors"
	"meetbrief-api/modules/settings/dto"
	"meetbrief-api/modules/settings/service"

	"github.com/labstack/echo/v4"
)

type SettingsController struct {
	controller.BaseController
	service service.SettingsService
}

func NewSettingsController(svc service.SettingsService) *SettingsController {
	return &SettingsController{
		BaseController: controller.NewBaseController(),
		service:        svc,
	}
}

// ListVendors returns integration vendors from the settings API
// GET /api/v1/private/settings/vendors
func (c *SettingsController) ListVendors(ctx echo.Context) error {
	resp, appErr := c.service.ListVendors(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "")
}

// ListSettings returns configured webhook settings
// GET /api/v1/private/settings
func (c *SettingsController) ListSettings(ctx echo.Context) error {
	resp, appErr := c.service.ListSettings(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "")
}

// CreateSetting adds a webhook setting
// POST /api/v1/private/settings
func (c *SettingsController) CreateSetting(ctx echo.Context) error {
	var req dto.SettingRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}

	resp, appErr := c.service.CreateSetting(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "setting created")
}

// UpdateSetting updates a webhook setting
// PUT /api/v1/private/settings/:id
func (c *SettingsController) UpdateSetting(ctx echo.Context) error {
	var req dto.SettingRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}

	resp, appErr := c.service.UpdateSetting(ctx.Request().Context(), ctx.Param("id"), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "setting updated")
}

// DeleteSetting removes a webhook setting
// DELETE /api/v1/private/settings/:id
func (c *SettingsController) DeleteSetting(ctx echo.Context) error {
	if appErr := c.service.DeleteSetting(ctx.Request().Context(), ctx.Param("id")); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "setting deleted")
}
