package router

import (
	"meetbrief-api/core/middleware"
	"meetbrief-api/modules/auth/controller"

	"github.com/labstack/echo/v4"
)

type AuthRouter struct {
	controller *controller.AuthController
}

func NewAuthRouter(controller *controller.AuthController) *AuthRouter {
	return &AuthRouter{controller: controller}
}

func (r *AuthRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	// Public routes
	authRoutes := v1.Group("/auth")
	authRoutes.POST("/signup", r.controller.SignUp)
	authRoutes.POST("/signin", r.controller.SignIn)
	authRoutes.POST("/reset-password", r.controller.ResetPassword)
	authRoutes.POST("/reset-password/complete", r.controller.CompleteReset)
	authRoutes.GET("/oauth/:provider/url", r.controller.OAuthURL)
	authRoutes.POST("/oauth/callback", r.controller.OAuthCallback)

	// Private routes (require authentication)
	privateRoutes := v1.Group("/private/auth")
	privateRoutes.Use(mw.AuthMiddleware())
	privateRoutes.POST("/signout", r.controller.SignOut)
	privateRoutes.GET("/me", r.controller.Me)
	privateRoutes.POST("/onboarding/complete", r.controller.CompleteOnboarding)
}
