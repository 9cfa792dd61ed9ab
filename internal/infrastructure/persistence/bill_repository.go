package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/retailbill/backend/internal/domain/billing"
	"github.com/retailbill/backend/internal/domain/report"
	"github.com/retailbill/backend/internal/domain/shared"
	"github.com/retailbill/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBillRepository implements billing.BillRepository and report.SalesReader using GORM
type GormBillRepository struct {
	db *gorm.DB
}

// NewGormBillRepository creates a new GormBillRepository
func NewGormBillRepository(db *gorm.DB) *GormBillRepository {
	return &GormBillRepository{db: db}
}

// Create inserts the bill and its lines in one transaction
func (r *GormBillRepository) Create(ctx context.Context, bill *billing.Bill) error {
	model := models.BillModelFromDomain(bill)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(model).Error; err != nil {
			return err
		}
		return tx.Create(&model.Lines).Error
	})
	if err != nil {
		return shared.NewStorageError("save bill", err)
	}
	return nil
}

// FindByID finds a bill by its ID, with lines
func (r *GormBillRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Bill, error) {
	var model models.BillModel
	if err := r.db.WithContext(ctx).
		Preload("Lines", orderLines).
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, shared.NewStorageError("find bill", err)
	}
	return model.ToDomain(), nil
}

// FindAll returns bills, newest first unless the filter says otherwise
func (r *GormBillRepository) FindAll(ctx context.Context, filter shared.Filter) ([]billing.Bill, error) {
	query := r.db.WithContext(ctx).Model(&models.BillModel{}).Preload("Lines", orderLines)
	if filter.IsScoped() {
		query = query.Where("business_email = ?", filter.BusinessEmail)
	}

	orderBy := ValidateSortField(filter.OrderBy, BillSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir, "DESC")
	query = query.Order(orderBy + " " + orderDir).Order("id ASC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var rows []models.BillModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, shared.NewStorageError("list bills", err)
	}

	bills := make([]billing.Bill, 0, len(rows))
	for i := range rows {
		bills = append(bills, *rows[i].ToDomain())
	}
	return bills, nil
}

type soldQuantityRow struct {
	ProductID     *uuid.UUID
	BusinessEmail string
	ProductName   string
	TotalQuantity int64
}

// SoldQuantities sums bill line quantities per product key
func (r *GormBillRepository) SoldQuantities(ctx context.Context, filter shared.Filter) ([]report.SoldQuantity, error) {
	query := r.db.WithContext(ctx).Model(&models.BillLineModel{}).
		Select("product_id, business_email, product_name, CAST(SUM(quantity) AS BIGINT) AS total_quantity").
		Group("product_id, business_email, product_name")
	if filter.IsScoped() {
		query = query.Where("business_email = ?", filter.BusinessEmail)
	}

	var rows []soldQuantityRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, shared.NewStorageError("sum sold quantities", err)
	}

	sold := make([]report.SoldQuantity, 0, len(rows))
	for _, row := range rows {
		sold = append(sold, report.SoldQuantity{
			ProductID:     row.ProductID,
			BusinessEmail: row.BusinessEmail,
			ProductName:   row.ProductName,
			Quantity:      row.TotalQuantity,
		})
	}
	return sold, nil
}

func orderLines(db *gorm.DB) *gorm.DB {
	return db.Order("line_no ASC")
}

var (
	_ billing.BillRepository = (*GormBillRepository)(nil)
	_ report.SalesReader     = (*GormBillRepository)(nil)
)
