package controller

import (
	"io"

	"meetbrief-api/core/controller"
	"meetbrief-api/core/errors"
	"meetbrief-api/core/middleware"
	"meetbrief-api/modules/enrichment/service"

	"github.com/labstack/echo/v4"
)

// CSV uploads are small contact lists; 10MB is generous.
const maxUploadBytes = 10 << 20

type EnrichmentController struct {
	controller.BaseController
	service service.EnrichmentService
}

func NewEnrichmentController(svc service.EnrichmentService) *EnrichmentController {
	return &EnrichmentController{
		BaseController: controller.NewBaseController(),
		service:        svc,
	}
}

// Upload accepts a person/company CSV and forwards it to the bridge
// POST /api/v1/private/enrichment/upload  (multipart: file, kind)
func (c *EnrichmentController) Upload(ctx echo.Context) error {
	kind := ctx.FormValue("kind")

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "file is required")
	}
	if fileHeader.Size > maxUploadBytes {
		return c.BadRequest(errors.ErrInvalidInput, "file too large")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "could not read file")
	}
	defer f.Close()

	csv, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "could not read file")
	}

	resp, appErr := c.service.CreateJob(ctx.Request().Context(), middleware.UserID(ctx), kind, fileHeader.Filename, csv)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "upload accepted")
}

// ListJobs returns the user's enrichment jobs, newest first
// GET /api/v1/private/enrichment/jobs
func (c *EnrichmentController) ListJobs(ctx echo.Context) error {
	resp, appErr := c.service.ListJobs(ctx.Request().Context(), middleware.UserID(ctx))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "")
}
