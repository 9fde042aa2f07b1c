package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rafaelnuansa/faculty-backend/internal/service"
)

// DashboardHandler serves the admin summary.
type DashboardHandler struct {
	svc service.DashboardService
}

// NewDashboardHandler creates a dashboard handler.
func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Summary godoc
// @Summary Dashboard counts
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=model.DashboardSummary}
// @Failure 401 {object} errors.ErrorResponse
// @Router /admin/dashboard [get]
func (h *DashboardHandler) Summary(c echo.Context) error {
	summary, err := h.svc.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "List Data on Dashboard", summary)
}
