package users

import (
	"errors"
	"net/http"

	"contactbook/internal/models"
	"contactbook/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	service  ServiceInterface
	validate *validator.Validate
}

func NewHandler(service ServiceInterface) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
	}
}

// Register handles POST /api/users.
func (h *Handler) Register(c echo.Context) error {
	var req models.RegisterUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Errors: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Errors: utils.FormatValidationErrors(err)})
	}

	resp, err := h.service.Register(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrConflict) {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Errors: "Username has taken"})
		}
		c.Logger().Error("Handler.Register: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Errors: "Failed to register user"})
	}

	return c.JSON(http.StatusOK, models.WebResponse{Data: resp})
}

// Login handles POST /api/users/login.
func (h *Handler) Login(c echo.Context) error {
	var req models.LoginUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Errors: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Errors: utils.FormatValidationErrors(err)})
	}

	resp, err := h.service.Login(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Errors: "password or username is wrong"})
		}
		c.Logger().Error("Handler.Login: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Errors: "Failed to log in"})
	}

	return c.JSON(http.StatusOK, models.WebResponse{Data: resp})
}

// GetCurrent handles GET /api/users/current.
func (h *Handler) GetCurrent(c echo.Context) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Errors: "Unauthorized"})
	}

	return c.JSON(http.StatusOK, models.WebResponse{Data: h.service.Get(user)})
}

// UpdateCurrent handles PATCH /api/users/current.
func (h *Handler) UpdateCurrent(c echo.Context) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Errors: "Unauthorized"})
	}

	var req models.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Errors: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Errors: utils.FormatValidationErrors(err)})
	}

	resp, err := h.service.Update(c.Request().Context(), user, req)
	if err != nil {
		c.Logger().Error("Handler.UpdateCurrent: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Errors: "Failed to update profile"})
	}

	return c.JSON(http.StatusOK, models.WebResponse{Data: resp})
}

// Logout handles DELETE /api/users/current. It clears the stored token so
// the presented credential stops authenticating immediately.
func (h *Handler) Logout(c echo.Context) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Errors: "Unauthorized"})
	}

	if err := h.service.Logout(c.Request().Context(), user); err != nil {
		c.Logger().Error("Handler.Logout: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Errors: "Failed to log out"})
	}

	return c.JSON(http.StatusOK, models.WebResponse{Data: "OK"})
}
