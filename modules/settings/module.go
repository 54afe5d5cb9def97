package settings

import (
	"meetbrief-api/core/cache"
	"meetbrief-api/core/config"
	"meetbrief-api/core/middleware"
	"meetbrief-api/core/upstream"
	"meetbrief-api/modules/settings/controller"
	"meetbrief-api/modules/settings/router"
	"meetbrief-api/modules/settings/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, c cache.Cache) {
	cfg := config.Get()

	svc := service.NewSettingsService(c, upstream.New(cfg.SettingsAPI.BaseURL))
	ctrl := controller.NewSettingsController(svc)
	mw := middleware.NewMiddleware(c)

	router.NewSettingsRouter(ctrl).Setup(e, mw)
}
