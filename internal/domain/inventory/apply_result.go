package inventory

import "github.com/google/uuid"

// LineStatus is the outcome of applying one bill line to stock
type LineStatus string

const (
	// LineApplied means the product's stock was decremented
	LineApplied LineStatus = "applied"
	// LineSkipped means no catalog product matched the line
	LineSkipped LineStatus = "skipped"
	// LineFailed means the stock write returned an error
	LineFailed LineStatus = "failed"
)

// Skip reasons
const (
	ReasonProductNotFound = "product_not_found"
	ReasonProductDeleted  = "product_deleted"
)

// LineOutcome describes what happened to a single bill line
type LineOutcome struct {
	LineIndex   int        `json:"lineIndex"`
	ProductName string     `json:"productName"`
	ProductID   *uuid.UUID `json:"productId,omitempty"`
	Quantity    int64      `json:"quantity"`
	Status      LineStatus `json:"status"`
	Remaining   int64      `json:"remaining"`
	OutOfStock  bool       `json:"outOfStock"`
	Reason      string     `json:"reason,omitempty"`
}

// ApplyResult enumerates the per-line outcomes of applying a bill to stock.
// A result with skipped or failed lines is still a completed application.
type ApplyResult struct {
	BillID uuid.UUID     `json:"billId"`
	Lines  []LineOutcome `json:"lines"`
}

// NewApplyResult creates an empty result for a bill
func NewApplyResult(billID uuid.UUID, lineCount int) *ApplyResult {
	return &ApplyResult{
		BillID: billID,
		Lines:  make([]LineOutcome, 0, lineCount),
	}
}

// Add appends a line outcome
func (r *ApplyResult) Add(o LineOutcome) {
	r.Lines = append(r.Lines, o)
}

// Applied counts lines whose stock was decremented
func (r *ApplyResult) Applied() int { return r.count(LineApplied) }

// Skipped counts lines without a matching product
func (r *ApplyResult) Skipped() int { return r.count(LineSkipped) }

// Failed counts lines whose stock write errored
func (r *ApplyResult) Failed() int { return r.count(LineFailed) }

// Complete reports whether every line was applied
func (r *ApplyResult) Complete() bool {
	return r.Applied() == len(r.Lines)
}

func (r *ApplyResult) count(s LineStatus) int {
	n := 0
	for _, l := range r.Lines {
		if l.Status == s {
			n++
		}
	}
	return n
}
