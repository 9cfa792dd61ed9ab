package models

import (
	"github.com/retailbill/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ProductModel is the persistence model for the Product domain entity.
type ProductModel struct {
	AggregateModel
	BusinessEmail string          `gorm:"type:varchar(320);not null;default:'';uniqueIndex:idx_products_business_name,priority:1"`
	Name          string          `gorm:"type:varchar(200);not null;uniqueIndex:idx_products_business_name,priority:2"`
	Quantity      int64           `gorm:"not null;default:0;check:chk_products_quantity_non_negative,quantity >= 0"`
	Price         decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity.
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		BusinessEmail:     m.BusinessEmail,
		Name:              m.Name,
		Quantity:          m.Quantity,
		Price:             m.Price,
	}
}

// FromDomain populates the persistence model from a domain Product entity.
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.BusinessEmail = p.BusinessEmail
	m.Name = p.Name
	m.Quantity = p.Quantity
	m.Price = p.Price
}

// ProductModelFromDomain creates a persistence model from a domain Product entity.
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}
