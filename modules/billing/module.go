package billing

import (
	"meetbrief-api/core/cache"
	"meetbrief-api/core/config"
	"meetbrief-api/core/middleware"
	"meetbrief-api/core/upstream"
	"meetbrief-api/modules/billing/controller"
	"meetbrief-api/modules/billing/router"
	"meetbrief-api/modules/billing/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, c cache.Cache) {
	cfg := config.Get()

	svc := service.NewBillingService(upstream.New(cfg.HeartAPI.BaseURL))
	ctrl := controller.NewBillingController(svc)
	mw := middleware.NewMiddleware(c)

	router.NewBillingRouter(ctrl).Setup(e, mw)
}
