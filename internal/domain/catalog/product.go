package catalog

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/retailbill/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// MaxProductNameLength is the longest product name accepted
const MaxProductNameLength = 200

// Product is a sellable item with a live stock quantity, owned by a business.
// Name is the key bills use to reference it and is unique within a business.
type Product struct {
	shared.BaseAggregateRoot
	BusinessEmail string
	Name          string
	Quantity      int64
	Price         decimal.Decimal
}

// NewProduct creates a new product
func NewProduct(businessEmail, name string, quantity int64, price decimal.Decimal) (*Product, error) {
	name = strings.TrimSpace(name)
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		BusinessEmail:     shared.NormalizeEmail(businessEmail),
		Name:              name,
		Quantity:          quantity,
		Price:             price,
	}, nil
}

// Rename changes the product name
func (p *Product) Rename(name string) error {
	name = strings.TrimSpace(name)
	if err := validateProductName(name); err != nil {
		return err
	}
	p.Name = name
	p.touch()
	return nil
}

// SetQuantity overwrites the stock quantity, as done by catalog management
func (p *Product) SetQuantity(quantity int64) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}
	p.Quantity = quantity
	p.touch()
	return nil
}

// SetPrice changes the unit price
func (p *Product) SetPrice(price decimal.Decimal) error {
	if err := validatePrice(price); err != nil {
		return err
	}
	p.Price = price
	p.touch()
	return nil
}

// IsOutOfStock reports whether no units are left
func (p *Product) IsOutOfStock() bool {
	return p.Quantity <= 0
}

func (p *Product) touch() {
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// ClampedDecrement returns the stock left after selling qty units from current.
// The result never goes below zero; clamped is true when the sale exceeded the stock.
func ClampedDecrement(current, qty int64) (remaining int64, clamped bool) {
	remaining = current - qty
	if remaining <= 0 {
		return 0, remaining < 0
	}
	return remaining, false
}

func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError(shared.CodeInvalidInput, "Product name cannot be empty")
	}
	if utf8.RuneCountInString(name) > MaxProductNameLength {
		return shared.NewDomainError(shared.CodeInvalidInput, "Product name cannot exceed 200 characters")
	}
	return nil
}

func validateQuantity(quantity int64) error {
	if quantity < 0 {
		return shared.NewDomainError(shared.CodeInvalidInput, "Product quantity cannot be negative")
	}
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError(shared.CodeInvalidInput, "Product price cannot be negative")
	}
	return nil
}
