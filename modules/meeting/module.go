package meeting

import (
	"meetbrief-api/core/cache"
	"meetbrief-api/core/config"
	"meetbrief-api/core/middleware"
	"meetbrief-api/core/upstream"
	"meetbrief-api/modules/meeting/controller"
	"meetbrief-api/modules/meeting/router"
	"meetbrief-api/modules/meeting/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, c cache.Cache) {
	cfg := config.Get()

	heart := upstream.New(cfg.HeartAPI.BaseURL)
	heartSync := upstream.NewUnbounded(cfg.HeartAPI.BaseURL)

	svc := service.NewMeetingService(heart, heartSync)
	ctrl := controller.NewMeetingController(svc)
	mw := middleware.NewMiddleware(c)

	router.NewMeetingRouter(ctrl).Setup(e, mw)
}
