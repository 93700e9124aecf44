package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/aidt-dashboard-api/internal/dto"
	"github.com/noah-isme/aidt-dashboard-api/internal/middleware"
	"github.com/noah-isme/aidt-dashboard-api/internal/models"
	"github.com/noah-isme/aidt-dashboard-api/internal/service"
	appErrors "github.com/noah-isme/aidt-dashboard-api/pkg/errors"
	"github.com/noah-isme/aidt-dashboard-api/pkg/response"
)

type dashboardService interface {
	Teacher(ctx context.Context, teacherID string) (*dto.DashboardViewModel, bool, error)
	Refresh(ctx context.Context, teacherID string) (*dto.DashboardViewModel, error)
	Activities(ctx context.Context, teacherID string, page, pageSize int) ([]dto.ActivityView, *models.Pagination, bool, error)
}

type exportService interface {
	Export(ctx context.Context, teacherID, table, format string) (*service.ExportResult, error)
}

// DashboardHandler wires the dashboard services to HTTP endpoints.
type DashboardHandler struct {
	service dashboardService
	exports exportService
}

// NewDashboardHandler constructs the handler. exports may be nil when exports are disabled.
func NewDashboardHandler(service dashboardService, exports exportService) *DashboardHandler {
	return &DashboardHandler{service: service, exports: exports}
}

// Teacher godoc
// @Summary Teacher dashboard view-model
// @Tags Dashboard
// @Produce json
// @Param teacherId path string true "Teacher ID"
// @Param refresh query bool false "Bypass and rebuild the cached view-model"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /teachers/{teacherId}/dashboard [get]
func (h *DashboardHandler) Teacher(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	teacherID := strings.TrimSpace(c.Param("teacherId"))
	start := time.Now()

	var (
		vm       *dto.DashboardViewModel
		cacheHit bool
		err      error
	)
	if refresh, _ := strconv.ParseBool(c.Query("refresh")); refresh {
		vm, err = h.service.Refresh(c.Request.Context(), teacherID)
	} else {
		vm, cacheHit, err = h.service.Teacher(c.Request.Context(), teacherID)
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	meta := middleware.ResponseMeta(c, start)
	response.JSON(c, http.StatusOK, vm, nil, meta)
}

// Activities godoc
// @Summary Paginated classified activity feed
// @Tags Dashboard
// @Produce json
// @Param teacherId path string true "Teacher ID"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /teachers/{teacherId}/activities [get]
func (h *DashboardHandler) Activities(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	page, err := parseOptionalInt(c.Query("page"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "page must be a number"))
		return
	}
	pageSize, err := parseOptionalInt(c.Query("pageSize"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "pageSize must be a number"))
		return
	}
	start := time.Now()
	items, pagination, cacheHit, err := h.service.Activities(c.Request.Context(), c.Param("teacherId"), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	meta := middleware.ResponseMeta(c, start)
	response.JSON(c, http.StatusOK, items, pagination, meta)
}

// Export godoc
// @Summary Download a dashboard table
// @Tags Dashboard
// @Produce text/csv
// @Produce application/pdf
// @Param teacherId path string true "Teacher ID"
// @Param table query string true "units or activities"
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /teachers/{teacherId}/dashboard/export [get]
func (h *DashboardHandler) Export(c *gin.Context) {
	if h.exports == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "dashboard exports are disabled"))
		return
	}
	table := strings.TrimSpace(c.Query("table"))
	if table == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "table is required"))
		return
	}
	result, err := h.exports.Export(c.Request.Context(), c.Param("teacherId"), table, c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, result.Filename, result.ContentType, result.Payload)
}

func parseOptionalInt(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
