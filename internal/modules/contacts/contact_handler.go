package contacts

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

// contactIDParam parses the :contactId path parameter. Identifiers must be
// positive integers.
func contactIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("contactId"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("contactId must be a positive integer")
	}
	return id, nil
}

// Create handles POST /api/contacts.
func (h *Handler) Create(c echo.Context) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Errors: "Unauthorized"})
	}

	var req models.CreateContactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Errors: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Errors: utils.FormatValidationErrors(err)})
	}

	resp, err := h.service.Create(c.Request().Context(), user, req)
	if err != nil {
		c.Logger().Error("Handler.Create: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Errors: "Failed to create contact"})
	}

	return c.JSON(http.StatusOK, models.WebResponse{Data: resp})
}

// Get handles GET /api/contacts/:contactId.
func (h *Handler) Get(c echo.Context) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Errors: "Unauthorized"})
	}
	contactID, err := contactIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Errors: err.Error()})
	}

	resp, err := h.service.Get(c.Request().Context(), user, contactID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Errors: "Contact not found"})
		}
		c.Logger().Error("Handler.Get: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Errors: "Failed to retrieve contact"})
	}

	return c.JSON(http.StatusOK, models.WebResponse{Data: resp})
}

// Update handles PUT /api/contacts/:contactId.
func (h *Handler) Update(c echo.Context) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Errors: "Unauthorized"})
	}
	contactID, err := contactIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Errors: err.Error()})
	}

	var req models.UpdateContactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Errors: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Errors: utils.FormatValidationErrors(err)})
	}

	resp, err := h.service.Update(c.Request().Context(), user, contactID, req)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Errors: "Contact not found"})
		}
		c.Logger().Error("Handler.Update: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Errors: "Failed to update contact"})
	}

	return c.JSON(http.StatusOK, models.WebResponse{Data: resp})
}

// Delete handles DELETE /api/contacts/:contactId.
func (h *Handler) Delete(c echo.Context) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Errors: "Unauthorized"})
	}
	contactID, err := contactIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Errors: err.Error()})
	}

	if err := h.service.Delete(c.Request().Context(), user, contactID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Errors: "Contact not found"})
		}
		c.Logger().Error("Handler.Delete: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Errors: "Failed to delete contact"})
	}

	return c.JSON(http.StatusOK, models.WebResponse{Data: "OK"})
}

// Search handles GET /api/contacts with optional name/email/phone filters
// and a page/size window (defaults: page 1, size 10).
func (h *Handler) Search(c echo.Context) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Errors: "Unauthorized"})
	}

	req := models.SearchContactRequest{
		Name:  c.QueryParam("name"),
		Email: c.QueryParam("email"),
		Phone: c.QueryParam("phone"),
		Page:  queryInt(c, "page", 1),
		Size:  queryInt(c, "size", 10),
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Errors: utils.FormatValidationErrors(err)})
	}

	resp, paging, err := h.service.Search(c.Request().Context(), user, req)
	if err != nil {
		c.Logger().Error("Handler.Search: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Errors: "Failed to search contacts"})
	}

	return c.JSON(http.StatusOK, models.WebResponse{Data: resp, Paging: paging})
}

func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
