package addresses

import (
	"errors"
	"net/http"
	"strconv"

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

func idParam(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New(name + " must be a positive integer")
	}
	return id, nil
}

// Create handles POST /api/contacts/:contactId/addresses.
func (h *Handler) Create(c echo.Context) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Errors: "Unauthorized"})
	}
	contactID, err := idParam(c, "contactId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Errors: err.Error()})
	}

	var req models.CreateAddressRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Errors: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Errors: utils.FormatValidationErrors(err)})
	}

	resp, err := h.service.Create(c.Request().Context(), user, contactID, req)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Errors: "Contact not found"})
		}
		c.Logger().Error("Handler.Create: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Errors: "Failed to create address"})
	}

	return c.JSON(http.StatusOK, models.WebResponse{Data: resp})
}

// Get handles GET /api/contacts/:contactId/addresses/:addressId.
func (h *Handler) Get(c echo.Context) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Errors: "Unauthorized"})
	}
	contactID, err := idParam(c, "contactId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Errors: err.Error()})
	}
	addressID, err := idParam(c, "addressId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Errors: err.Error()})
	}

	resp, err := h.service.Get(c.Request().Context(), user, contactID, addressID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Errors: "Address not found"})
		}
		c.Logger().Error("Handler.Get: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Errors: "Failed to retrieve address"})
	}

	return c.JSON(http.StatusOK, models.WebResponse{Data: resp})
}

// Update handles PUT /api/contacts/:contactId/addresses/:addressId.
func (h *Handler) Update(c echo.Context) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Errors: "Unauthorized"})
	}
	contactID, err := idParam(c, "contactId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Errors: err.Error()})
	}
	addressID, err := idParam(c, "addressId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Errors: err.Error()})
	}

	var req models.UpdateAddressRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Errors: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Errors: utils.FormatValidationErrors(err)})
	}

	resp, err := h.service.Update(c.Request().Context(), user, contactID, addressID, req)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Errors: "Address not found"})
		}
		c.Logger().Error("Handler.Update: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Errors: "Failed to update address"})
	}

	return c.JSON(http.StatusOK, models.WebResponse{Data: resp})
}

// Delete handles DELETE /api/contacts/:contactId/addresses/:addressId.
func (h *Handler) Delete(c echo.Context) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Errors: "Unauthorized"})
	}
	contactID, err := idParam(c, "contactId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Errors: err.Error()})
	}
	addressID, err := idParam(c, "addressId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Errors: err.Error()})
	}

	if err := h.service.Delete(c.Request().Context(), user, contactID, addressID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Errors: "Address not found"})
		}
		c.Logger().Error("Handler.Delete: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Errors: "Failed to delete address"})
	}

	return c.JSON(http.StatusOK, models.WebResponse{Data: "OK"})
}

// List handles GET /api/contacts/:contactId/addresses. No paging.
func (h *Handler) List(c echo.Context) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Errors: "Unauthorized"})
	}
	contactID, err := idParam(c, "contactId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Errors: err.Error()})
	}

	resp, err := h.service.List(c.Request().Context(), user, contactID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Errors: "Contact not found"})
		}
		c.Logger().Error("Handler.List: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Errors: "Failed to list addresses"})
	}

	return c.JSON(http.StatusOK, models.WebResponse{Data: resp})
}
