package icp

import (
	"meetbrief-api/core/cache"
	"meetbrief-api/core/config"
	"meetbrief-api/core/database"
	"meetbrief-api/core/middleware"
	"meetbrief-api/core/upstream"
	"meetbrief-api/modules/icp/controller"
	"meetbrief-api/modules/icp/repository"
	"meetbrief-api/modules/icp/router"
	"meetbrief-api/modules/icp/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, c cache.Cache) {
	cfg := config.Get()

	repo := repository.NewICPRepository(&db)
	svc := service.NewICPService(repo, upstream.New(cfg.HeartAPI.BaseURL))
	ctrl := controller.NewICPController(svc)
	mw := middleware.NewMiddleware(c)

	router.NewICPRouter(ctrl).Setup(e, mw)
}
