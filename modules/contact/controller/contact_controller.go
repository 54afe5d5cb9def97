package controller

import (
	"meetbrief-api/core/controller"
	"meetbrief-api/core/errors"
	"meetbrief-api/modules/contact/dto"
	"meetbrief-api/modules/contact/service"

	"github.com/labstack/echo/v4"
)

type ContactController struct {
	controller.BaseController
	service service.ContactService
}

func NewContactController(svc service.ContactService) *ContactController {
	return &ContactController{
		BaseController: controller.NewBaseController(),
		service:        svc,
	}
}

// Submit relays a contact-form message
// POST /api/v1/private/contact
func (c *ContactController) Submit(ctx echo.Context) error {
	var req dto.ContactRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}

	resp, appErr := c.service.Submit(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "message sent")
}
