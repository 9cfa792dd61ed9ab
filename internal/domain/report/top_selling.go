package report

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/retailbill/backend/internal/domain/catalog"
	"github.com/retailbill/backend/internal/domain/shared"
)

// TopSellingProduct is one row of the top selling report
type TopSellingProduct struct {
	ProductID       uuid.UUID `json:"productId"`
	Name            string    `json:"name"`
	QuantitySold    int64     `json:"quantitySold"`
	QuantityInStock int64     `json:"quantityInStock"`
	IsOutOfStock    bool      `json:"isOutOfStock"`
}

// SoldQuantity is the summed quantity of bill lines sharing a product key.
// Lines linked to a catalog product carry its ID; unlinked lines are keyed
// by business email and product name.
type SoldQuantity struct {
	ProductID     *uuid.UUID
	BusinessEmail string
	ProductName   string
	Quantity      int64
}

// SalesReader reads aggregated sales from the bill ledger
type SalesReader interface {
	// SoldQuantities sums line quantities per product key, scoped by filter.BusinessEmail when set
	SoldQuantities(ctx context.Context, filter shared.Filter) ([]SoldQuantity, error)
}

type nameKey struct {
	email string
	name  string
}

// RankTopSelling joins catalog products with sold quantities and orders the
// rows by quantity sold, highest first. Every product yields exactly one row;
// sales whose product is not in the catalog are dropped. Products with equal
// sales keep their relative order from the input slice.
func RankTopSelling(products []catalog.Product, sold []SoldQuantity) []TopSellingProduct {
	byID := make(map[uuid.UUID]int64, len(sold))
	byName := make(map[nameKey]int64)
	for _, s := range sold {
		if s.ProductID != nil {
			byID[*s.ProductID] += s.Quantity
			continue
		}
		byName[nameKey{email: s.BusinessEmail, name: s.ProductName}] += s.Quantity
	}

	rows := make([]TopSellingProduct, 0, len(products))
	for _, p := range products {
		qty := byID[p.ID] + byName[nameKey{email: p.BusinessEmail, name: p.Name}]
		rows = append(rows, TopSellingProduct{
			ProductID:       p.ID,
			Name:            p.Name,
			QuantitySold:    qty,
			QuantityInStock: p.Quantity,
			IsOutOfStock:    p.IsOutOfStock(),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].QuantitySold > rows[j].QuantitySold
	})

	return rows
}
