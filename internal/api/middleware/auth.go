package middleware

import (
	"context"
	"errors"
	"net/http"

	"contactbook/internal/models"
	"contactbook/pkg/utils"

	"github.com/labstack/echo/v4"
)

// TokenHeader is the request header carrying the opaque session token.
const TokenHeader = "X-API-TOKEN"

// UserFinder resolves a session token to its user. The users repository
// satisfies it.
type UserFinder interface {
	FindByToken(ctx context.Context, token string) (*models.User, error)
}

// TokenAuth returns the authentication gate for protected routes. It reads
// the X-API-TOKEN header, looks up the user whose stored token equals it,
// and attaches that user to the request context. Tokens carry no claims and
// no expiry; they stop working the moment login overwrites them or logout
// clears them, because the lookup is against the stored value on every
// request.
func TokenAuth(users UserFinder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(TokenHeader)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Errors: "Unauthorized"})
			}

			user, err := users.FindByToken(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, models.ErrNotFound) {
					return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Errors: "Unauthorized"})
				}
				c.Logger().Error("middleware.TokenAuth: ", err)
				return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Errors: "Failed to authenticate request"})
			}

			c.Set(utils.UserContextKey, user)
			return next(c)
		}
	}
}
