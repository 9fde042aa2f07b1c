package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/rafaelnuansa/faculty-backend/internal/errors"
	"github.com/rafaelnuansa/faculty-backend/internal/service"
)

// CategoryHandler serves /admin/categories.
type CategoryHandler struct {
	svc service.CategoryService
}

// NewCategoryHandler creates a category handler.
func NewCategoryHandler(svc service.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// List godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param search query string false "Substring of the name"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} Response{data=model.Page[model.Category]}
// @Router /admin/categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	result, err := h.svc.List(c.Request().Context(), c.QueryParam("search"), pageParam(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "List of Categories", result)
}

// Create godoc
// @Summary Create category
// @Description The slug is derived from slug or name and suffixed -1, -2, ... when taken.
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreateCategoryRequest true "Category payload"
// @Success 201 {object} Response{data=model.Category}
// @Failure 422 {object} errors.ErrorResponse
// @Router /admin/categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req service.CreateCategoryRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	category, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "Category created successfully", category)
}

// Get godoc
// @Summary Get category
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 200 {object} Response{data=model.Category}
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/categories/{id} [get]
func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := parseID(c, apperrors.ErrCategoryNotFound)
	if err != nil {
		return err
	}
	category, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Category details", category)
}

// Update godoc
// @Summary Update category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param request body service.UpdateCategoryRequest true "Fields to change"
// @Success 200 {object} Response{data=model.Category}
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /admin/categories/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := parseID(c, apperrors.ErrCategoryNotFound)
	if err != nil {
		return err
	}
	var req service.UpdateCategoryRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	category, err := h.svc.Update(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Category updated successfully", category)
}

// Delete godoc
// @Summary Delete category
// @Description Posts in the category are deleted with it.
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 200 {object} Response
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := parseID(c, apperrors.ErrCategoryNotFound)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Category deleted successfully", nil)
}
