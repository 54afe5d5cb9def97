package auth

import (
	"meetbrief-api/core/cache"
	"meetbrief-api/core/database"
	"meetbrief-api/core/middleware"
	"meetbrief-api/modules/auth/controller"
	"meetbrief-api/modules/auth/repository"
	"meetbrief-api/modules/auth/router"
	"meetbrief-api/modules/auth/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, c cache.Cache) {
	repo := repository.NewAuthRepository(&db)
	authService := service.NewAuthService(repo, c)
	oauthService := service.NewOAuthService(repo, c)
	ctrl := controller.NewAuthController(authService, oauthService)
	mw := middleware.NewMiddleware(c)

	router.NewAuthRouter(ctrl).Setup(e, mw)
}
