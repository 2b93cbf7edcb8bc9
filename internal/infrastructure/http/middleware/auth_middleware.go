package middleware

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "github.com/johnquangdev/tubeblog/errors"
	"github.com/johnquangdev/tubeblog/internal/domain/entities"
)

const (
	// UserKey holds the authenticated *entities.User in the echo context
	UserKey = "user"
	// UserIDKey holds the authenticated user's uuid.UUID in the echo context
	UserIDKey = "user_id"

	accessTokenCookie = "access_token"
)

// TokenValidator resolves an access token to its user
type TokenValidator interface {
	ValidateAccessToken(ctx context.Context, token string) (*entities.User, error)
}

// EchoAuth returns an Echo middleware that validates JWT and sets
// "user_id" (uuid.UUID) and "user" (*entities.User) into Echo context
func EchoAuth(validator TokenValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return apperrors.ErrUnauthenticated()
			}

			user, err := validator.ValidateAccessToken(c.Request().Context(), token)
			if err != nil {
				appErr := apperrors.ErrInvalidToken()
				appErr.Raw = err
				return appErr
			}

			c.Set(UserKey, user)
			c.Set(UserIDKey, user.ID)

			return next(c)
		}
	}
}

// UserIDFrom returns the authenticated user's id
func UserIDFrom(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(UserIDKey).(uuid.UUID)
	return id, ok && id != uuid.Nil
}

// UserFrom returns the authenticated user
func UserFrom(c echo.Context) (*entities.User, bool) {
	user, ok := c.Get(UserKey).(*entities.User)
	return user, ok && user != nil
}

// extractToken reads a bearer token from the Authorization header, falling
// back to the access_token cookie
func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return strings.TrimSpace(parts[1])
		}
	}

	if cookie, err := c.Cookie(accessTokenCookie); err == nil {
		return cookie.Value
	}

	return ""
}
