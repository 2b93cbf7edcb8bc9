package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	apperrors "github.com/johnquangdev/tubeblog/errors"
)

// PerUserRateLimit limits requests per authenticated user, falling back to
// the client IP for anonymous requests. It must run after EchoAuth.
func PerUserRateLimit(perMinute float64, burst int) echo.MiddlewareFunc {
	store := echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(perMinute / 60),
		Burst:     burst,
		ExpiresIn: 10 * time.Minute,
	})

	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			if id, ok := UserIDFrom(c); ok {
				return "user:" + id.String(), nil
			}
			return "ip:" + c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return apperrors.ErrInternal(err)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return apperrors.ErrRateLimited()
		},
	})
}
