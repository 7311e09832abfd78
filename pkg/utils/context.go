package utils

import (
	"errors"

	"contactbook/internal/models"

	"github.com/labstack/echo/v4"
)

// UserContextKey is where the auth middleware stores the resolved user.
const UserContextKey = "user"

// GetUserFromContext returns the user attached by the auth middleware. It is
// the only source of "who is the caller" for ownership checks downstream.
func GetUserFromContext(c echo.Context) (*models.User, error) {
	user, ok := c.Get(UserContextKey).(*models.User)
	if !ok || user == nil {
		return nil, errors.New("no authenticated user in request context")
	}
	return user, nil
}
