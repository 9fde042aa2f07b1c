package handler

import (
	"errors"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	apperrors "github.com/rafaelnuansa/faculty-backend/internal/errors"
	"github.com/rafaelnuansa/faculty-backend/internal/service"
)

// PostHandler serves /admin/posts. Writes are multipart/form-data.
type PostHandler struct {
	svc service.PostService
}

// NewPostHandler creates a post handler.
func NewPostHandler(svc service.PostService) *PostHandler {
	return &PostHandler{svc: svc}
}

// List godoc
// @Summary List posts
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Success 200 {object} Response{data=model.Page[model.Post]}
// @Router /admin/posts [get]
func (h *PostHandler) List(c echo.Context) error {
	result, err := h.svc.List(c.Request().Context(), pageParam(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "List of Posts", result)
}

// Create godoc
// @Summary Create post
// @Tags posts
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param category_id formData string true "Category ID"
// @Param user_id formData string true "Author ID"
// @Param faculty_id formData string true "Faculty ID"
// @Param content formData string true "Body"
// @Param seo_description formData string false "Meta description"
// @Param seo_keywords formData string false "Meta keywords"
// @Param image formData file true "jpeg, png, jpg, gif or webp, at most 2048 KB"
// @Success 201 {object} Response{data=model.Post}
// @Failure 422 {object} errors.ErrorResponse
// @Router /admin/posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	form, image, err := readPostForm(c)
	if err != nil {
		return err
	}
	req := service.CreatePostRequest{
		Title:          form.Get("title"),
		CategoryID:     form.Get("category_id"),
		UserID:         form.Get("user_id"),
		FacultyID:      form.Get("faculty_id"),
		Content:        form.Get("content"),
		SEODescription: form.Get("seo_description"),
		SEOKeywords:    form.Get("seo_keywords"),
		Image:          image,
	}

	post, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "Post created successfully", post)
}

// Get godoc
// @Summary Get post
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} Response{data=model.Post}
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	id, err := parseID(c, apperrors.ErrPostNotFound)
	if err != nil {
		return err
	}
	post, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Post details", post)
}

// Update godoc
// @Summary Update post
// @Description Omitted fields keep their value. Sending an image replaces and removes the old one.
// @Tags posts
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param title formData string false "Title"
// @Param category_id formData string false "Category ID"
// @Param user_id formData string false "Author ID"
// @Param faculty_id formData string false "Faculty ID"
// @Param content formData string false "Body"
// @Param seo_description formData string false "Meta description"
// @Param seo_keywords formData string false "Meta keywords"
// @Param image formData file false "Replacement image"
// @Success 200 {object} Response{data=model.Post}
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /admin/posts/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	id, err := parseID(c, apperrors.ErrPostNotFound)
	if err != nil {
		return err
	}
	form, image, err := readPostForm(c)
	if err != nil {
		return err
	}
	req := service.UpdatePostRequest{
		Title:          sent(form, "title"),
		CategoryID:     sent(form, "category_id"),
		UserID:         sent(form, "user_id"),
		FacultyID:      sent(form, "faculty_id"),
		Content:        sent(form, "content"),
		SEODescription: sent(form, "seo_description"),
		SEOKeywords:    sent(form, "seo_keywords"),
		Image:          image,
	}

	post, err := h.svc.Update(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Post updated successfully", post)
}

// Delete godoc
// @Summary Delete post
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} Response
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	id, err := parseID(c, apperrors.ErrPostNotFound)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Post deleted successfully", nil)
}

// readPostForm returns the form values and the optional image upload.
func readPostForm(c echo.Context) (url.Values, *multipart.FileHeader, error) {
	form, err := c.FormParams()
	if err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, "invalid form body")
	}
	image, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return form, nil, nil
	}
	if err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, "invalid image upload")
	}
	return form, image, nil
}

// sent returns a pointer to the field's value, or nil when the client left it out.
func sent(form url.Values, key string) *string {
	values, ok := form[key]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}
