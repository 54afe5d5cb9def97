package apikey

import (
	"meetbrief-api/core/cache"
	"meetbrief-api/core/database"
	"meetbrief-api/core/middleware"
	"meetbrief-api/modules/apikey/controller"
	"meetbrief-api/modules/apikey/repository"
	"meetbrief-api/modules/apikey/router"
	"meetbrief-api/modules/apikey/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, c cache.Cache) {
	repo := repository.NewAPIKeyRepository(&db)
	svc := service.NewAPIKeyService(repo)
	ctrl := controller.NewAPIKeyController(svc)
	mw := middleware.NewMiddleware(c)

	router.NewAPIKeyRouter(ctrl).Setup(e, mw)
}
