package controller

import (
	"meetbrief-api/core/controller"
	"meetbrief-api/core/errors"
	"meetbrief-api/core/middleware"
	"meetbrief-api/modules/auth/dto"
	"meetbrief-api/modules/auth/service"

	"github.com/labstack/echo/v4"
)

type AuthController struct {
	controller.BaseController
	service      service.AuthService
	oauthService service.OAuthService
}

func NewAuthController(svc service.AuthService, oauthSvc service.OAuthService) *AuthController {
	return &AuthController{
		BaseController: controller.NewBaseController(),
		service:        svc,
		oauthService:   oauthSvc,
	}
}

// SignUp creates a local account
// POST /api/v1/auth/signup
func (c *AuthController) SignUp(ctx echo.Context) error {
	var req dto.SignUpRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}

	resp, appErr := c.service.SignUp(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "signed up")
}

// SignIn authenticates with email/password
// POST /api/v1/auth/signin
func (c *AuthController) SignIn(ctx echo.Context) error {
	var req dto.SignInRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}

	resp, appErr := c.service.SignIn(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "signed in")
}

// SignOut revokes the current session token
// POST /api/v1/private/auth/signout
func (c *AuthController) SignOut(ctx echo.Context) error {
	if appErr := c.service.SignOut(ctx.Request().Context(), middleware.BearerToken(ctx)); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "signed out")
}

// Me returns the current user
// GET /api/v1/private/auth/me
func (c *AuthController) Me(ctx echo.Context) error {
	resp, appErr := c.service.Me(ctx.Request().Context(), middleware.UserID(ctx))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "")
}

// ResetPassword starts the password reset flow
// POST /api/v1/auth/reset-password
func (c *AuthController) ResetPassword(ctx echo.Context) error {
	var req dto.ResetPasswordRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}

	if appErr := c.service.ResetPassword(ctx.Request().Context(), req.Email); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "if the account exists, a reset link has been sent")
}

// CompleteReset finishes the password reset flow
// POST /api/v1/auth/reset-password/complete
func (c *AuthController) CompleteReset(ctx echo.Context) error {
	var req dto.CompleteResetRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}

	if appErr := c.service.CompleteReset(ctx.Request().Context(), &req); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "password updated")
}

// OAuthURL returns the provider consent URL
// GET /api/v1/auth/oauth/:provider/url
func (c *AuthController) OAuthURL(ctx echo.Context) error {
	resp, appErr := c.oauthService.AuthURL(ctx.Request().Context(), ctx.Param("provider"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "")
}

// OAuthCallback exchanges the provider code for a session
// POST /api/v1/auth/oauth/callback
func (c *AuthController) OAuthCallback(ctx echo.Context) error {
	var req dto.OAuthCallbackRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}

	resp, appErr := c.oauthService.HandleCallback(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "signed in")
}

// CompleteOnboarding marks onboarding done for the current user
// POST /api/v1/private/auth/onboarding/complete
func (c *AuthController) CompleteOnboarding(ctx echo.Context) error {
	if appErr := c.service.CompleteOnboarding(ctx.Request().Context(), middleware.UserID(ctx)); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "onboarding complete")
}
