package inventory

import (
	"context"
	"errors"

	"github.com/retailbill/backend/internal/domain/billing"
	"github.com/retailbill/backend/internal/domain/catalog"
	"github.com/retailbill/backend/internal/domain/inventory"
	"github.com/retailbill/backend/internal/domain/shared"
	"github.com/retailbill/backend/internal/infrastructure/logger"
	"github.com/retailbill/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// Updater applies recorded bills to catalog stock
type Updater struct {
	stock catalog.StockWriter
}

// NewUpdater creates a new Updater
func NewUpdater(stock catalog.StockWriter) *Updater {
	return &Updater{stock: stock}
}

// ApplyBillToInventory decrements stock for every line of the bill, in line
// order. Each line is written independently, so a failing line does not stop
// the others and never turns into an error for the caller.
func (u *Updater) ApplyBillToInventory(ctx context.Context, bill *billing.Bill) *inventory.ApplyResult {
	ctx, span := telemetry.StartServiceSpan(ctx, "inventory", "apply_bill",
		telemetry.SpanAttrBillID, bill.ID.String(),
		telemetry.SpanAttrLineCount, len(bill.Lines),
	)
	defer span.End()

	result := inventory.NewApplyResult(bill.ID, len(bill.Lines))
	for i, line := range bill.Lines {
		outcome := u.applyLine(ctx, i, line)
		result.Add(outcome)

		if outcome.Status != inventory.LineApplied {
			logger.L(ctx).Warn("Bill line not applied to inventory",
				zap.String("bill_id", bill.ID.String()),
				zap.Int("line_index", i),
				zap.String("product_name", line.ProductName),
				zap.String("status", string(outcome.Status)),
				zap.String("reason", outcome.Reason),
			)
		}
	}

	telemetry.SetAttributes(span,
		"inventory.applied", result.Applied(),
		"inventory.skipped", result.Skipped(),
		"inventory.failed", result.Failed(),
	)

	return result
}

func (u *Updater) applyLine(ctx context.Context, index int, line billing.OrderLine) inventory.LineOutcome {
	outcome := inventory.LineOutcome{
		LineIndex:   index,
		ProductName: line.ProductName,
		ProductID:   line.ProductID,
		Quantity:    line.Quantity,
	}

	if line.ProductID == nil {
		outcome.Status = inventory.LineSkipped
		outcome.Reason = inventory.ReasonProductNotFound
		return outcome
	}

	remaining, err := u.stock.DecrementStockClamped(ctx, *line.ProductID, line.Quantity)
	switch {
	case err == nil:
		outcome.Status = inventory.LineApplied
		outcome.Remaining = remaining
		outcome.OutOfStock = remaining <= 0
	case errors.Is(err, shared.ErrNotFound):
		outcome.Status = inventory.LineSkipped
		outcome.Reason = inventory.ReasonProductDeleted
	default:
		outcome.Status = inventory.LineFailed
		outcome.Reason = err.Error()
	}
	return outcome
}
