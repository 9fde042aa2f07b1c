package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/rafaelnuansa/faculty-backend/internal/errors"
	"github.com/rafaelnuansa/faculty-backend/internal/service"
)

// FacultyHandler serves /admin/faculties.
type FacultyHandler struct {
	svc service.FacultyService
}

// NewFacultyHandler creates a faculty handler.
func NewFacultyHandler(svc service.FacultyService) *FacultyHandler {
	return &FacultyHandler{svc: svc}
}

// List godoc
// @Summary List faculties
// @Tags faculties
// @Produce json
// @Security BearerAuth
// @Param search query string false "Substring of the name"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} Response{data=model.Page[model.Faculty]}
// @Router /admin/faculties [get]
func (h *FacultyHandler) List(c echo.Context) error {
	result, err := h.svc.List(c.Request().Context(), c.QueryParam("search"), pageParam(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "List of Faculties", result)
}

// All godoc
// @Summary List every faculty
// @Description Unpaginated, ordered by name. Used to fill select inputs.
// @Tags faculties
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]model.Faculty}
// @Router /admin/faculties/all [get]
func (h *FacultyHandler) All(c echo.Context) error {
	faculties, err := h.svc.All(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "List of all Faculties", faculties)
}

// Create godoc
// @Summary Create faculty
// @Tags faculties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreateFacultyRequest true "Faculty payload"
// @Success 201 {object} Response{data=model.Faculty}
// @Failure 422 {object} errors.ErrorResponse
// @Router /admin/faculties [post]
func (h *FacultyHandler) Create(c echo.Context) error {
	var req service.CreateFacultyRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	faculty, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "Faculty created successfully", faculty)
}

// Get godoc
// @Summary Get faculty
// @Tags faculties
// @Produce json
// @Security BearerAuth
// @Param id path string true "Faculty ID"
// @Success 200 {object} Response{data=model.Faculty}
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/faculties/{id} [get]
func (h *FacultyHandler) Get(c echo.Context) error {
	id, err := parseID(c, apperrors.ErrFacultyNotFound)
	if err != nil {
		return err
	}
	faculty, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Faculty details", faculty)
}

// Update godoc
// @Summary Update faculty
// @Tags faculties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Faculty ID"
// @Param request body service.UpdateFacultyRequest true "Fields to change"
// @Success 200 {object} Response{data=model.Faculty}
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /admin/faculties/{id} [put]
func (h *FacultyHandler) Update(c echo.Context) error {
	id, err := parseID(c, apperrors.ErrFacultyNotFound)
	if err != nil {
		return err
	}
	var req service.UpdateFacultyRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	faculty, err := h.svc.Update(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Faculty updated successfully", faculty)
}

// Delete godoc
// @Summary Delete faculty
// @Description Posts and programs of the faculty are deleted; its users are detached.
// @Tags faculties
// @Produce json
// @Security BearerAuth
// @Param id path string true "Faculty ID"
// @Success 200 {object} Response
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/faculties/{id} [delete]
func (h *FacultyHandler) Delete(c echo.Context) error {
	id, err := parseID(c, apperrors.ErrFacultyNotFound)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Faculty deleted successfully", nil)
}
