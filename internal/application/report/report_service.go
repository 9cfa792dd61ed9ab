package report

import (
	"context"

	"github.com/retailbill/backend/internal/domain/catalog"
	"github.com/retailbill/backend/internal/domain/report"
	"github.com/retailbill/backend/internal/domain/shared"
	"github.com/retailbill/backend/internal/infrastructure/telemetry"
)

// TopSellingQuery scopes the top selling report
type TopSellingQuery struct {
	BusinessEmail string `form:"businessEmail" binding:"omitempty,email"`
	// Limit caps the number of rows. Absent returns every product.
	Limit *int `form:"limit" binding:"omitempty,min=1,max=1000"`
}

// ReportService builds read-only sales reports
type ReportService struct {
	productRepo catalog.ProductRepository
	sales       report.SalesReader
}

// NewReportService creates a new ReportService
func NewReportService(productRepo catalog.ProductRepository, sales report.SalesReader) *ReportService {
	return &ReportService{
		productRepo: productRepo,
		sales:       sales,
	}
}

// TopSellingProducts ranks catalog products by units sold
func (s *ReportService) TopSellingProducts(ctx context.Context, q TopSellingQuery) ([]report.TopSellingProduct, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "report", "top_selling",
		telemetry.SpanAttrBusinessEmail, q.BusinessEmail,
	)
	defer span.End()

	filter := shared.ForBusiness(q.BusinessEmail)

	products, err := s.productRepo.FindAll(ctx, shared.Filter{
		BusinessEmail: filter.BusinessEmail,
		OrderBy:       "name",
		OrderDir:      "asc",
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	sold, err := s.sales.SoldQuantities(ctx, filter)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	rows := report.RankTopSelling(products, sold)
	if q.Limit != nil && *q.Limit > 0 && len(rows) > *q.Limit {
		rows = rows[:*q.Limit]
	}
	return rows, nil
}
