package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/retailbill/backend/internal/domain/billing"
	"github.com/retailbill/backend/internal/domain/catalog"
	"github.com/retailbill/backend/internal/domain/inventory"
	"github.com/retailbill/backend/internal/domain/shared"
	"github.com/retailbill/backend/internal/infrastructure/logger"
	"github.com/retailbill/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// InventoryApplier applies a stored bill to catalog stock
type InventoryApplier interface {
	ApplyBillToInventory(ctx context.Context, bill *billing.Bill) *inventory.ApplyResult
}

// Option configures a BillingService
type Option func(*BillingService)

// WithIdempotency enables Idempotency-Key handling backed by store
func WithIdempotency(store shared.IdempotencyStore, ttl time.Duration) Option {
	return func(s *BillingService) {
		s.idempotency = store
		s.idempotencyTTL = ttl
	}
}

// WithMetrics records sale metrics
func WithMetrics(m *telemetry.BillingMetrics) Option {
	return func(s *BillingService) {
		s.metrics = m
	}
}

// BillingService records sales and lists the bill ledger
type BillingService struct {
	billRepo       billing.BillRepository
	productRepo    catalog.ProductRepository
	inventory      InventoryApplier
	idempotency    shared.IdempotencyStore
	idempotencyTTL time.Duration
	metrics        *telemetry.BillingMetrics
	now            func() time.Time
}

// NewBillingService creates a new BillingService
func NewBillingService(
	billRepo billing.BillRepository,
	productRepo catalog.ProductRepository,
	applier InventoryApplier,
	opts ...Option,
) *BillingService {
	s := &BillingService{
		billRepo:       billRepo,
		productRepo:    productRepo,
		inventory:      applier,
		idempotencyTTL: shared.DefaultIdempotencyTTL,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RecordSale validates and stores a bill, then applies it to inventory.
// A failure to store the bill aborts the sale before any stock is touched.
// Inventory line problems are reported in the result and never fail the sale.
func (s *BillingService) RecordSale(ctx context.Context, req RecordSaleRequest, idempotencyKey string) (*RecordSaleResult, error) {
	start := s.now()

	bill, err := billing.NewBill(req.BusinessEmail, billing.Customer{
		Name:   req.Customer.Name,
		Mobile: req.Customer.Mobile,
		Email:  req.Customer.Email,
	}, req.BillDate, req.lineInputs(), req.Total)
	if err != nil {
		return nil, err
	}

	ctx, span := telemetry.StartServiceSpan(ctx, "billing", "record_sale",
		telemetry.SpanAttrBillID, bill.ID.String(),
		telemetry.SpanAttrBusinessEmail, bill.BusinessEmail,
		telemetry.SpanAttrLineCount, len(bill.Lines),
	)
	defer span.End()

	products, err := s.productRepo.FindByNames(ctx, bill.BusinessEmail, bill.ProductNames())
	if err != nil {
		s.fail(ctx, span, start, err)
		return nil, err
	}
	ids := make(map[string]uuid.UUID, len(products))
	for name, p := range products {
		ids[name] = p.ID
	}
	bill.LinkProducts(ids)

	key, err := s.claimKey(ctx, bill.BusinessEmail, idempotencyKey)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if err := s.billRepo.Create(ctx, bill); err != nil {
		s.releaseKey(ctx, key)
		s.fail(ctx, span, start, err)
		return nil, err
	}

	result := s.inventory.ApplyBillToInventory(ctx, bill)

	if s.metrics != nil {
		s.metrics.RecordSale(ctx, bill, result, s.now().Sub(start))
	}

	logger.L(ctx).Info("Sale recorded",
		zap.String("bill_id", bill.ID.String()),
		zap.Int("lines", len(bill.Lines)),
		zap.Int("lines_applied", result.Applied()),
		zap.Int("lines_skipped", result.Skipped()),
		zap.Int("lines_failed", result.Failed()),
		zap.String("total", bill.Total.String()),
	)

	return &RecordSaleResult{
		Bill:      ToBillResponse(bill),
		Inventory: result,
	}, nil
}

// ListBills returns bills newest first, for one business or for all when
// businessEmail is empty
func (s *BillingService) ListBills(ctx context.Context, businessEmail string) ([]BillResponse, error) {
	bills, err := s.billRepo.FindAll(ctx, shared.ForBusiness(businessEmail))
	if err != nil {
		return nil, err
	}
	return ToBillResponses(bills), nil
}

// GetBill returns one stored bill with its lines
func (s *BillingService) GetBill(ctx context.Context, id uuid.UUID) (*BillResponse, error) {
	bill, err := s.billRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToBillResponse(bill)
	return &resp, nil
}

// claimKey marks the key as in use. An empty return means no key is held.
// A store outage lets the sale through unguarded.
func (s *BillingService) claimKey(ctx context.Context, businessEmail, idempotencyKey string) (string, error) {
	if s.idempotency == nil || idempotencyKey == "" {
		return "", nil
	}
	key := businessEmail + ":" + idempotencyKey

	fresh, err := s.idempotency.MarkProcessed(ctx, key, s.idempotencyTTL)
	if err != nil {
		logger.L(ctx).Warn("Idempotency store unavailable, recording sale without key",
			zap.String("idempotency_key", idempotencyKey),
			zap.Error(err),
		)
		return "", nil
	}
	if !fresh {
		logger.L(ctx).Info("Duplicate sale submission rejected", zap.String("idempotency_key", idempotencyKey))
		return "", shared.ErrDuplicateRequest
	}
	return key, nil
}

func (s *BillingService) releaseKey(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.idempotency.Release(ctx, key); err != nil {
		logger.L(ctx).Warn("Failed to release idempotency key", zap.String("key", key), zap.Error(err))
	}
}

func (s *BillingService) fail(ctx context.Context, span trace.Span, start time.Time, err error) {
	telemetry.RecordError(span, err)
	if s.metrics != nil {
		s.metrics.RecordFailure(ctx, s.now().Sub(start))
	}
	logger.L(ctx).Error("Failed to record sale", zap.Error(err))
}
