package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/rafaelnuansa/faculty-backend/internal/errors"
	"github.com/rafaelnuansa/faculty-backend/internal/service"
)

// UserHandler serves /admin/users.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a user handler.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// List godoc
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param search query string false "Substring of the name"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} Response{data=model.Page[model.User]}
// @Router /admin/users [get]
func (h *UserHandler) List(c echo.Context) error {
	result, err := h.svc.List(c.Request().Context(), c.QueryParam("search"), pageParam(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "List of Users", result)
}

// Create godoc
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreateUserRequest true "User payload"
// @Success 201 {object} Response{data=model.User}
// @Failure 422 {object} errors.ErrorResponse
// @Router /admin/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req service.CreateUserRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	user, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "User created successfully!", user)
}

// Get godoc
// @Summary Get user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} Response{data=model.User}
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := parseID(c, apperrors.ErrUserNotFound)
	if err != nil {
		return err
	}
	user, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "User details", user)
}

// Update godoc
// @Summary Update user
// @Description Omitted fields keep their value. An empty password is ignored; an empty faculty_id detaches the user.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body service.UpdateUserRequest true "Fields to change"
// @Success 200 {object} Response{data=model.User}
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /admin/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := parseID(c, apperrors.ErrUserNotFound)
	if err != nil {
		return err
	}
	var req service.UpdateUserRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	user, err := h.svc.Update(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "User updated successfully!", user)
}

// Delete godoc
// @Summary Delete user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} Response
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := parseID(c, apperrors.ErrUserNotFound)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "User deleted successfully!", nil)
}
