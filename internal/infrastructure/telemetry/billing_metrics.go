package telemetry

import (
	"context"
	"time"

	"github.com/retailbill/backend/internal/domain/billing"
	"github.com/retailbill/backend/internal/domain/inventory"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const billingMeterName = "retailbill/billing"

// Outcome values for the bills recorded counter
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// BillingMetrics records sale and inventory instruments
type BillingMetrics struct {
	billsRecorded  *Counter
	unitsSold      *Counter
	inventoryLines *Counter
	stockouts      *Counter
	saleDuration   *Histogram
}

// NewBillingMetrics creates the billing instruments on meter
func NewBillingMetrics(meter metric.Meter) (*BillingMetrics, error) {
	var (
		m   BillingMetrics
		err error
	)
	if m.billsRecorded, err = NewCounter(meter, "retailbill.bills.recorded", "Sales submitted, by outcome", "{bill}"); err != nil {
		return nil, err
	}
	if m.unitsSold, err = NewCounter(meter, "retailbill.units.sold", "Units on recorded bills", "{unit}"); err != nil {
		return nil, err
	}
	if m.inventoryLines, err = NewCounter(meter, "retailbill.inventory.lines", "Bill lines applied to stock, by status", "{line}"); err != nil {
		return nil, err
	}
	if m.stockouts, err = NewCounter(meter, "retailbill.inventory.stockouts", "Sales that left a product with no stock", "{line}"); err != nil {
		return nil, err
	}
	if m.saleDuration, err = NewHistogram(meter, "retailbill.sale.duration", "Time to record a sale and update stock", "s", DurationBuckets...); err != nil {
		return nil, err
	}
	return &m, nil
}

// RecordSale counts a successfully recorded bill and its inventory outcome
func (m *BillingMetrics) RecordSale(ctx context.Context, bill *billing.Bill, result *inventory.ApplyResult, elapsed time.Duration) {
	m.billsRecorded.Inc(ctx, AttrOutcome.String(OutcomeSuccess))
	m.unitsSold.Add(ctx, bill.TotalQuantity())
	m.saleDuration.RecordDuration(ctx, elapsed, AttrOutcome.String(OutcomeSuccess))

	if result == nil {
		return
	}
	for _, line := range result.Lines {
		attrs := []attribute.KeyValue{AttrLineStatus.String(string(line.Status))}
		if line.Status == inventory.LineSkipped && line.Reason != "" {
			attrs = append(attrs, AttrReason.String(line.Reason))
		}
		m.inventoryLines.Inc(ctx, attrs...)
		if line.Status == inventory.LineApplied && line.OutOfStock {
			m.stockouts.Inc(ctx)
		}
	}
}

// RecordFailure counts a sale that could not be recorded
func (m *BillingMetrics) RecordFailure(ctx context.Context, elapsed time.Duration) {
	m.billsRecorded.Inc(ctx, AttrOutcome.String(OutcomeFailure))
	m.saleDuration.RecordDuration(ctx, elapsed, AttrOutcome.String(OutcomeFailure))
}
