package models

import (
	"github.com/google/uuid"
	"github.com/retailbill/backend/internal/domain/billing"
	"github.com/shopspring/decimal"
)

// BillModel is the persistence model for the Bill aggregate.
type BillModel struct {
	BaseModel
	BusinessEmail  string          `gorm:"type:varchar(320);not null;default:'';index:idx_bills_business_created,priority:1"`
	CustomerName   string          `gorm:"type:varchar(200);not null;default:''"`
	CustomerMobile string          `gorm:"type:varchar(50);not null;default:''"`
	CustomerEmail  string          `gorm:"type:varchar(320);not null;default:''"`
	BillDate       string          `gorm:"type:varchar(64);not null;default:''"`
	Total          decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Lines          []BillLineModel `gorm:"foreignKey:BillID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (BillModel) TableName() string {
	return "bills"
}

// BillLineModel is the persistence model for an order line.
type BillLineModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key"`
	BillID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	LineNo        int             `gorm:"not null"`
	ProductID     *uuid.UUID      `gorm:"type:uuid;index"`
	ProductName   string          `gorm:"type:varchar(200);not null;index:idx_bill_lines_business_name,priority:2"`
	BusinessEmail string          `gorm:"type:varchar(320);not null;default:'';index:idx_bill_lines_business_name,priority:1"`
	Price         decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Quantity      int64           `gorm:"not null"`
	TotalPrice    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (BillLineModel) TableName() string {
	return "bill_lines"
}

// ToDomain converts the persistence model to a domain Bill.
// Lines must already be sorted by LineNo.
func (m *BillModel) ToDomain() *billing.Bill {
	bill := &billing.Bill{
		BaseEntity: m.BaseModel.ToDomain(),
		Customer: billing.Customer{
			Name:   m.CustomerName,
			Mobile: m.CustomerMobile,
			Email:  m.CustomerEmail,
		},
		BillDate:      m.BillDate,
		Total:         m.Total,
		BusinessEmail: m.BusinessEmail,
		Lines:         make([]billing.OrderLine, 0, len(m.Lines)),
	}
	for _, l := range m.Lines {
		bill.Lines = append(bill.Lines, billing.OrderLine{
			ProductID:     l.ProductID,
			ProductName:   l.ProductName,
			Price:         l.Price,
			Quantity:      l.Quantity,
			TotalPrice:    l.TotalPrice,
			BusinessEmail: l.BusinessEmail,
		})
	}
	return bill
}

// BillModelFromDomain creates a persistence model, lines included, from a domain Bill.
func BillModelFromDomain(b *billing.Bill) *BillModel {
	m := &BillModel{
		BusinessEmail:  b.BusinessEmail,
		CustomerName:   b.Customer.Name,
		CustomerMobile: b.Customer.Mobile,
		CustomerEmail:  b.Customer.Email,
		BillDate:       b.BillDate,
		Total:          b.Total,
		Lines:          make([]BillLineModel, 0, len(b.Lines)),
	}
	m.FromDomainBaseEntity(b.BaseEntity)
	for i, l := range b.Lines {
		m.Lines = append(m.Lines, BillLineModel{
			ID:            uuid.New(),
			BillID:        b.ID,
			LineNo:        i + 1,
			ProductID:     l.ProductID,
			ProductName:   l.ProductName,
			BusinessEmail: l.BusinessEmail,
			Price:         l.Price,
			Quantity:      l.Quantity,
			TotalPrice:    l.TotalPrice,
		})
	}
	return m
}
