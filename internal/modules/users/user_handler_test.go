package users

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"contactbook/internal/models"
	"contactbook/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserService struct {
	registerResp *models.UserResponse
	registerErr  error
	loginResp    *models.UserResponse
	loginErr     error
	updateResp   *models.UserResponse
	updateErr    error
	logoutErr    error
}

func (f *fakeUserService) Register(context.Context, models.RegisterUserRequest) (*models.UserResponse, error) {
	return f.registerResp, f.registerErr
}
func (f *fakeUserService) Login(context.Context, models.LoginUserRequest) (*models.UserResponse, error) {
	return f.loginResp, f.loginErr
}
func (f *fakeUserService) Get(user *models.User) *models.UserResponse {
	resp := models.ToUserResponse(user)
	return &resp
}
func (f *fakeUserService) Update(context.Context, *models.User, models.UpdateUserRequest) (*models.UserResponse, error) {
	return f.updateResp, f.updateErr
}
func (f *fakeUserService) Logout(context.Context, *models.User) error {
	return f.logoutErr
}

func doJSON(e *echo.Echo, method, path, body string, user *models.User) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if user == nil {
		e.ServeHTTP(rec, req)
		return rec
	}
	c := e.NewContext(req, rec)
	c.Set(utils.UserContextKey, user)
	e.Router().Find(method, path, c)
	if err := c.Handler()(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestRegisterHandlerValidation(t *testing.T) {
	e := echo.New()
	h := NewHandler(&fakeUserService{})
	e.POST("/api/users", h.Register)

	rec := doJSON(e, http.MethodPost, "/api/users", `{"username":"","password":"","name":""}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	violations, ok := body.Errors.([]interface{})
	require.True(t, ok, "errors should be a list of field violations")
	assert.Len(t, violations, 3)
}

func TestRegisterHandlerConflict(t *testing.T) {
	e := echo.New()
	h := NewHandler(&fakeUserService{registerErr: models.ErrConflict})
	e.POST("/api/users", h.Register)

	rec := doJSON(e, http.MethodPost, "/api/users", `{"username":"testtest","password":"testtest","name":"testtest"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":"Username has taken"}`, rec.Body.String())
}

func TestRegisterHandlerSuccess(t *testing.T) {
	e := echo.New()
	h := NewHandler(&fakeUserService{
		registerResp: &models.UserResponse{Username: "testtest", Name: "testtest"},
	})
	e.POST("/api/users", h.Register)

	rec := doJSON(e, http.MethodPost, "/api/users", `{"username":"testtest","password":"testtest","name":"testtest"}`, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"username":"testtest","name":"testtest"}}`, rec.Body.String())
}

func TestLoginHandlerBadCredentials(t *testing.T) {
	e := echo.New()
	h := NewHandler(&fakeUserService{loginErr: models.ErrInvalidCredentials})
	e.POST("/api/users/login", h.Login)

	rec := doJSON(e, http.MethodPost, "/api/users/login", `{"username":"testtest","password":"wrong"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"errors":"password or username is wrong"}`, rec.Body.String())
}

func TestGetCurrentHandler(t *testing.T) {
	e := echo.New()
	h := NewHandler(&fakeUserService{})
	e.GET("/api/users/current", h.GetCurrent)

	rec := doJSON(e, http.MethodGet, "/api/users/current", "", &models.User{Username: "testtest", Name: "testtest"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"username":"testtest","name":"testtest"}}`, rec.Body.String())
}

func TestLogoutHandler(t *testing.T) {
	e := echo.New()
	h := NewHandler(&fakeUserService{})
	e.DELETE("/api/users/current", h.Logout)

	rec := doJSON(e, http.MethodDelete, "/api/users/current", "", &models.User{Username: "testtest"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":"OK"}`, rec.Body.String())
}
