package routes

import (
	"strings"

	"vedacare/cmd/internal/auth"
	"vedacare/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

const claimsKey = "auth_claims"

// RequireAuth gates a route behind a valid bearer token. The handler is
// never invoked when the token is missing, malformed or expired.
func RequireAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, found := strings.CutPrefix(header, "Bearer ")
			raw = strings.TrimSpace(raw)
			if !found || raw == "" {
				return c.JSON(apierror.InvalidAuthTokenError.Code(), apierror.InvalidAuthTokenError)
			}

			claims, err := auth.ParseToken(raw, secret)
			if err != nil {
				return c.JSON(apierror.InvalidAuthTokenError.Code(), apierror.InvalidAuthTokenError)
			}

			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// callerID yields the user id RequireAuth stashed on the context.
func callerID(c echo.Context) (int, error) {
	claims, ok := c.Get(claimsKey).(*auth.Claims)
	if !ok {
		return 0, auth.ErrBadToken
	}
	return claims.UserID, nil
}
