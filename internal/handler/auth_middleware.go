package handler

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/rafaelnuansa/faculty-backend/internal/auth"
	apperrors "github.com/rafaelnuansa/faculty-backend/internal/errors"
	"github.com/rafaelnuansa/faculty-backend/internal/logger"
	"github.com/rafaelnuansa/faculty-backend/internal/service"
)

// ContextKeyToken is where the bearer guard stores the parsed *jwt.Token.
const ContextKeyToken = "user"

// CurrentClaims returns the claims of the request's verified access token.
func CurrentClaims(c echo.Context) (*auth.Claims, error) {
	token, ok := c.Get(ContextKeyToken).(*jwt.Token)
	if !ok {
		return nil, apperrors.ErrUnauthenticated
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok || claims.ID == "" || !claims.IsAccess() {
		return nil, apperrors.ErrUnauthenticated
	}
	return claims, nil
}

// RejectRevoked runs after the bearer guard and refuses tokens that were logged out.
func RejectRevoked(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := CurrentClaims(c)
			if err != nil {
				return err
			}
			revoked, err := authService.IsRevoked(c.Request().Context(), claims)
			if err != nil {
				logger.Warn().Err(err).Msg("revocation check failed")
			}
			if revoked {
				return apperrors.ErrTokenRevoked
			}
			return next(c)
		}
	}
}
