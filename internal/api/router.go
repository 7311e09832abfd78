package api

import (
	"net/http"

	"contactbook/internal/modules/addresses"
	"contactbook/internal/modules/contacts"
	"contactbook/internal/modules/users"

	"github.com/labstack/echo/v4"
)

// SetupRoutes sets up all the API endpoints for the application.
func SetupRoutes(
	e *echo.Echo,
	authMiddleware echo.MiddlewareFunc,
	userHandler *users.Handler,
	contactHandler *contacts.Handler,
	addressHandler *addresses.Handler,
) {
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Contact Book API"})
	})

	// --- Public Routes ---
	e.POST("/api/users", userHandler.Register)
	e.POST("/api/users/login", userHandler.Login)

	// --- Current User Routes ---
	userGroup := e.Group("/api/users", authMiddleware)
	{
		userGroup.GET("/current", userHandler.GetCurrent)
		userGroup.PATCH("/current", userHandler.UpdateCurrent)
		userGroup.DELETE("/current", userHandler.Logout)
	}

	// --- Contact Routes ---
	contactGroup := e.Group("/api/contacts", authMiddleware)
	{
		contactGroup.POST("", contactHandler.Create)
		contactGroup.GET("", contactHandler.Search)
		contactGroup.GET("/:contactId", contactHandler.Get)
		contactGroup.PUT("/:contactId", contactHandler.Update)
		contactGroup.DELETE("/:contactId", contactHandler.Delete)

		// Addresses nested under a contact
		contactGroup.POST("/:contactId/addresses", addressHandler.Create)
		contactGroup.GET("/:contactId/addresses", addressHandler.List)
		contactGroup.GET("/:contactId/addresses/:addressId", addressHandler.Get)
		contactGroup.PUT("/:contactId/addresses/:addressId", addressHandler.Update)
		contactGroup.DELETE("/:contactId/addresses/:addressId", addressHandler.Delete)
	}
}
