package router

import (
	"meetbrief-api/core/middleware"
	"meetbrief-api/modules/billing/controller"

	"github.com/labstack/echo/v4"
)

type BillingRouter struct {
	controller *controller.BillingController
}

func NewBillingRouter(controller *controller.BillingController) *BillingRouter {
	return &BillingRouter{controller: controller}
}

func (r *BillingRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	billingRoutes := v1.Group("/private/billing")
	billingRoutes.Use(mw.AuthMiddleware())

	billingRoutes.GET("/balance", r.controller.GetBalance)
	billingRoutes.GET("/transactions", r.controller.GetTransactions)
	billingRoutes.POST("/purchase", r.controller.Purchase)
	billingRoutes.GET("/auto-top-up", r.controller.GetAutoTopUp)
	billingRoutes.PUT("/auto-top-up", r.controller.SetAutoTopUp)
	billingRoutes.GET("/subscription", r.controller.GetSubscriptionStatus)
	billingRoutes.POST("/subscription", r.controller.CreateSubscription)
	billingRoutes.PUT("/subscription/auto-renewal", r.controller.SetAutoRenewal)
}
