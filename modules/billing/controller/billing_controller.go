package controller

import (
	"meetbrief-api/core/controller"
	"meetbrief-api/core/errors"
	"meetbrief-api/core/middleware"
	"meetbrief-api/modules/billing/dto"
	"meetbrief-api/modules/billing/service"

	"github.com/labstack/echo/v4"
)

type BillingController struct {
	controller.BaseController
	service service.BillingService
}

func NewBillingController(svc service.BillingService) *BillingController {
	return &BillingController{
		BaseController: controller.NewBaseController(),
		service:        svc,
	}
}

// GetBalance returns the current credit balance
// GET /api/v1/private/billing/balance
func (c *BillingController) GetBalance(ctx echo.Context) error {
	resp, appErr := c.service.GetBalance(ctx.Request().Context(), middleware.BearerToken(ctx))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "")
}

// GetTransactions returns the credit transaction history
// GET /api/v1/private/billing/transactions
func (c *BillingController) GetTransactions(ctx echo.Context) error {
	resp, appErr := c.service.GetTransactions(ctx.Request().Context(), middleware.BearerToken(ctx))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "")
}

// Purchase buys a credit package
// POST /api/v1/private/billing/purchase
func (c *BillingController) Purchase(ctx echo.Context) error {
	var req dto.PurchaseRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}

	resp, appErr := c.service.Purchase(ctx.Request().Context(), middleware.BearerToken(ctx), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "purchase created")
}

// GetAutoTopUp returns the auto top-up configuration
// GET /api/v1/private/billing/auto-top-up
func (c *BillingController) GetAutoTopUp(ctx echo.Context) error {
	resp, appErr := c.service.GetAutoTopUp(ctx.Request().Context(), middleware.BearerToken(ctx))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "")
}

// SetAutoTopUp updates the auto top-up configuration
// PUT /api/v1/private/billing/auto-top-up
func (c *BillingController) SetAutoTopUp(ctx echo.Context) error {
	var req dto.AutoTopUpConfig
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}

	resp, appErr := c.service.SetAutoTopUp(ctx.Request().Context(), middleware.BearerToken(ctx), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "auto top-up updated")
}

// GetSubscriptionStatus returns the stripe subscription state
// GET /api/v1/private/billing/subscription
func (c *BillingController) GetSubscriptionStatus(ctx echo.Context) error {
	resp, appErr := c.service.GetSubscriptionStatus(ctx.Request().Context(), middleware.BearerToken(ctx))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "")
}

// CreateSubscription starts a stripe subscription
// POST /api/v1/private/billing/subscription
func (c *BillingController) CreateSubscription(ctx echo.Context) error {
	var req dto.CreateSubscriptionRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}

	resp, appErr := c.service.CreateSubscription(ctx.Request().Context(), middleware.BearerToken(ctx), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "subscription created")
}

// SetAutoRenewal toggles subscription auto-renewal
// PUT /api/v1/private/billing/subscription/auto-renewal
func (c *BillingController) SetAutoRenewal(ctx echo.Context) error {
	var req dto.AutoRenewalRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}

	if appErr := c.service.SetAutoRenewal(ctx.Request().Context(), middleware.BearerToken(ctx), &req); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "auto-renewal updated")
}
