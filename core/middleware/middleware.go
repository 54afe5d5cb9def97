package middleware

import (
	"strings"

	"meetbrief-api/core/cache"
	"meetbrief-api/core/controller"
	"meetbrief-api/core/errors"
	"meetbrief-api/core/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	ContextKeyUserID    = "user_id"
	ContextKeyUserEmail = "user_email"
	ContextKeyToken     = "bearer_token"
)

type Middleware struct {
	cache cache.Cache
}

func NewMiddleware(c cache.Cache) *Middleware {
	return &Middleware{cache: c}
}

// AuthMiddleware validates the session JWT, rejects blacklisted tokens, and
// stores user identity on the echo context.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return controller.NewErrorResponse(401, errors.ErrMissingAuthorizationHeader, "missing authorization header")
			}

			token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			if token == "" || token == header {
				return controller.NewErrorResponse(401, errors.ErrInvalidTokenFormat, "expected Bearer token")
			}

			if m.cache != nil {
				blacklisted, err := m.cache.IsTokenBlacklisted(c.Request().Context(), token)
				if err == nil && blacklisted {
					return controller.NewErrorResponse(401, errors.ErrUnauthorized, "token revoked")
				}
			}

			data, err := utils.ValidateAndParseToken(token)
			if err != nil {
				if ae, ok := err.(*errors.AppError); ok {
					return controller.NewErrorResponse(401, ae.Code, ae.Message)
				}
				return controller.NewErrorResponse(401, errors.ErrUnauthorized, "invalid token")
			}

			c.Set(ContextKeyUserID, data.UserID)
			c.Set(ContextKeyUserEmail, data.Email)
			c.Set(ContextKeyToken, token)
			return next(c)
		}
	}
}

// UserID reads the authenticated user from context; uuid.Nil if absent.
func UserID(c echo.Context) uuid.UUID {
	if id, ok := c.Get(ContextKeyUserID).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

func UserEmail(c echo.Context) string {
	if email, ok := c.Get(ContextKeyUserEmail).(string); ok {
		return email
	}
	return ""
}

// BearerToken returns the raw session token so services can forward it to
// the heart API.
func BearerToken(c echo.Context) string {
	if tok, ok := c.Get(ContextKeyToken).(string); ok {
		return tok
	}
	return ""
}
