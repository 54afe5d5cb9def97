package controller

import (
	"meetbrief-api/core/controller"
	"meetbrief-api/core/errors"
	"meetbrief-api/core/middleware"
	"meetbrief-api/modules/apikey/dto"
	"meetbrief-api/modules/apikey/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type APIKeyController struct {
	controller.BaseController
	service service.APIKeyService
}

func NewAPIKeyController(svc service.APIKeyService) *APIKeyController {
	return &APIKeyController{
		BaseController: controller.NewBaseController(),
		service:        svc,
	}
}

// Create generates a new bridge API key. The full key appears in this
// response only.
// POST /api/v1/private/apikeys
func (c *APIKeyController) Create(ctx echo.Context) error {
	var req dto.CreateKeyRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}

	resp, appErr := c.service.Create(ctx.Request().Context(), middleware.UserID(ctx), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "api key created")
}

// List returns the user's keys, prefix only
// GET /api/v1/private/apikeys
func (c *APIKeyController) List(ctx echo.Context) error {
	resp, appErr := c.service.List(ctx.Request().Context(), middleware.UserID(ctx))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "")
}

// Update renames or (de)activates a key
// PUT /api/v1/private/apikeys/:id
func (c *APIKeyController) Update(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid key id")
	}

	var req dto.UpdateKeyRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}

	resp, appErr := c.service.Update(ctx.Request().Context(), middleware.UserID(ctx), id, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "api key updated")
}

// Delete removes a key
// DELETE /api/v1/private/apikeys/:id
func (c *APIKeyController) Delete(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid key id")
	}

	if appErr := c.service.Delete(ctx.Request().Context(), middleware.UserID(ctx), id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "api key deleted")
}
