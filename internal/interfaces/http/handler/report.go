package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	reportapp "github.com/retailbill/backend/internal/application/report"
	"github.com/retailbill/backend/internal/domain/report"
	"github.com/retailbill/backend/internal/interfaces/http/middleware"
)

// ReportService is the reporting use-case surface the handler needs
type ReportService interface {
	TopSellingProducts(ctx context.Context, q reportapp.TopSellingQuery) ([]report.TopSellingProduct, error)
}

// ReportHandler handles sales report endpoints
type ReportHandler struct {
	BaseHandler
	reports ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reports ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// TopSelling godoc
// @Summary      Top selling products
// @Description  Ranks catalog products by units sold, highest first. Products never sold are included with zero.
// @Tags         reports
// @Produce      json
// @Param        businessEmail query string false "Business email"
// @Param        limit query int false "Maximum number of rows" minimum(1) maximum(1000)
// @Success      200 {object} APIResponse[[]report.TopSellingProduct]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /reports/top-selling [get]
func (h *ReportHandler) TopSelling(c *gin.Context) {
	var q reportapp.TopSellingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		middleware.HandleBindError(c, err)
		return
	}

	rows, err := h.reports.TopSellingProducts(c.Request.Context(), q)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessList(c, rows, len(rows))
}

// RegisterRoutes mounts the report endpoints under rg
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/reports/top-selling", h.TopSelling)
}
