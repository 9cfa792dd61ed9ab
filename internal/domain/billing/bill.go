package billing

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/retailbill/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// MaxBillDateLength is the widest bill date the ledger stores
const MaxBillDateLength = 64

// Customer holds unvalidated buyer details
type Customer struct {
	Name   string
	Mobile string
	Email  string
}

// OrderLine is one product entry on a bill
type OrderLine struct {
	// ProductID links the line to the catalog product it sold, if one matched
	ProductID     *uuid.UUID
	ProductName   string
	Price         decimal.Decimal
	Quantity      int64
	TotalPrice    decimal.Decimal
	BusinessEmail string
}

// IsLinked reports whether the line was matched to a catalog product
func (l OrderLine) IsLinked() bool {
	return l.ProductID != nil
}

// Bill is an immutable sale receipt
type Bill struct {
	shared.BaseEntity
	Customer      Customer
	BillDate      string
	Lines         []OrderLine
	Total         decimal.Decimal
	BusinessEmail string
}

// LineInput is the caller-provided part of an order line
type LineInput struct {
	ProductName string
	Price       decimal.Decimal
	Quantity    int64
	TotalPrice  decimal.Decimal
}

// NewBill validates the input and builds a bill, stamping the business email
// onto every line. Line order is preserved.
func NewBill(businessEmail string, customer Customer, billDate string, lines []LineInput, total decimal.Decimal) (*Bill, error) {
	if len(lines) == 0 {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Bill must contain at least one order line")
	}
	if utf8.RuneCountInString(billDate) > MaxBillDateLength {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Bill date cannot exceed 64 characters")
	}

	email := shared.NormalizeEmail(businessEmail)
	bill := &Bill{
		BaseEntity:    shared.NewBaseEntity(),
		Customer:      customer,
		BillDate:      billDate,
		Lines:         make([]OrderLine, 0, len(lines)),
		Total:         total,
		BusinessEmail: email,
	}

	for i, in := range lines {
		name := strings.TrimSpace(in.ProductName)
		if name == "" {
			return nil, lineError(i, "product name is required")
		}
		if in.Quantity <= 0 {
			return nil, lineError(i, "quantity must be greater than zero")
		}
		if in.Price.IsNegative() {
			return nil, lineError(i, "price cannot be negative")
		}
		lineTotal := in.TotalPrice
		if lineTotal.IsZero() {
			lineTotal = in.Price.Mul(decimal.NewFromInt(in.Quantity))
		}
		bill.Lines = append(bill.Lines, OrderLine{
			ProductName:   name,
			Price:         in.Price,
			Quantity:      in.Quantity,
			TotalPrice:    lineTotal,
			BusinessEmail: email,
		})
	}

	if bill.Total.IsZero() {
		bill.Total = bill.LinesTotal()
	}

	return bill, nil
}

// LinkProducts sets ProductID on every line whose name is present in ids
func (b *Bill) LinkProducts(ids map[string]uuid.UUID) {
	for i := range b.Lines {
		if id, ok := ids[b.Lines[i].ProductName]; ok {
			b.Lines[i].ProductID = &id
		}
	}
}

// ProductNames returns the distinct product names on the bill, in line order
func (b *Bill) ProductNames() []string {
	seen := make(map[string]struct{}, len(b.Lines))
	names := make([]string, 0, len(b.Lines))
	for _, l := range b.Lines {
		if _, ok := seen[l.ProductName]; ok {
			continue
		}
		seen[l.ProductName] = struct{}{}
		names = append(names, l.ProductName)
	}
	return names
}

// LinesTotal sums the line totals
func (b *Bill) LinesTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range b.Lines {
		sum = sum.Add(l.TotalPrice)
	}
	return sum
}

// TotalQuantity sums the quantities of all lines
func (b *Bill) TotalQuantity() int64 {
	var n int64
	for _, l := range b.Lines {
		n += l.Quantity
	}
	return n
}

func lineError(index int, msg string) error {
	return shared.NewDomainError(shared.CodeInvalidInput, fmt.Sprintf("order line %d: %s", index+1, msg))
}
