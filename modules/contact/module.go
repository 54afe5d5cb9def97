package contact

import (
	"meetbrief-api/core/cache"
	"meetbrief-api/core/config"
	"meetbrief-api/core/middleware"
	"meetbrief-api/core/upstream"
	"meetbrief-api/modules/contact/controller"
	"meetbrief-api/modules/contact/router"
	"meetbrief-api/modules/contact/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, c cache.Cache) {
	cfg := config.Get()

	svc := service.NewContactService(upstream.New(cfg.FormRelay.Endpoint))
	ctrl := controller.NewContactController(svc)
	mw := middleware.NewMiddleware(c)

	router.NewContactRouter(ctrl).Setup(e, mw)
}
