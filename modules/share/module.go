package share

import (
	"meetbrief-api/core/cache"
	"meetbrief-api/core/config"
	"meetbrief-api/core/database"
	"meetbrief-api/core/middleware"
	"meetbrief-api/core/upstream"
	"meetbrief-api/modules/share/controller"
	"meetbrief-api/modules/share/repository"
	"meetbrief-api/modules/share/router"
	"meetbrief-api/modules/share/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, c cache.Cache) {
	cfg := config.Get()

	repo := repository.NewShareRepository(&db)
	svc := service.NewShareService(repo, upstream.New(cfg.HeartAPI.BaseURL))
	ctrl := controller.NewShareController(svc)
	mw := middleware.NewMiddleware(c)

	router.NewShareRouter(ctrl).Setup(e, mw)
}
