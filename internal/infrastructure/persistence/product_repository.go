package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/retailbill/backend/internal/domain/catalog"
	"github.com/retailbill/backend/internal/domain/shared"
	"github.com/retailbill/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormProductRepository implements catalog.ProductRepository and
// catalog.StockWriter using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var model models.ProductModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, shared.NewStorageError("find product", err)
	}
	return model.ToDomain(), nil
}

// FindByName finds a product by exact name within a business
func (r *GormProductRepository) FindByName(ctx context.Context, businessEmail, name string) (*catalog.Product, error) {
	var model models.ProductModel
	if err := r.db.WithContext(ctx).
		Where("business_email = ? AND name = ?", businessEmail, name).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, shared.NewStorageError("find product by name", err)
	}
	return model.ToDomain(), nil
}

// FindByNames resolves several product names within a business in one query
func (r *GormProductRepository) FindByNames(ctx context.Context, businessEmail string, names []string) (map[string]*catalog.Product, error) {
	result := make(map[string]*catalog.Product, len(names))
	if len(names) == 0 {
		return result, nil
	}

	var rows []models.ProductModel
	if err := r.db.WithContext(ctx).
		Where("business_email = ? AND name IN ?", businessEmail, names).
		Find(&rows).Error; err != nil {
		return nil, shared.NewStorageError("find products by name", err)
	}
	for i := range rows {
		p := rows[i].ToDomain()
		result[p.Name] = p
	}
	return result, nil
}

// FindAll finds all products matching the filter
func (r *GormProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	query := r.db.WithContext(ctx).Model(&models.ProductModel{})
	if filter.IsScoped() {
		query = query.Where("business_email = ?", filter.BusinessEmail)
	}

	orderBy := ValidateSortField(filter.OrderBy, ProductSortFields, "name")
	orderDir := ValidateSortOrder(filter.OrderDir, "ASC")
	query = query.Order(orderBy + " " + orderDir).Order("id ASC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var rows []models.ProductModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, shared.NewStorageError("list products", err)
	}

	products := make([]catalog.Product, 0, len(rows))
	for i := range rows {
		products = append(products, *rows[i].ToDomain())
	}
	return products, nil
}

// ExistsByName checks if a business already has a product with the name
func (r *GormProductRepository) ExistsByName(ctx context.Context, businessEmail, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ProductModel{}).
		Where("business_email = ? AND name = ?", businessEmail, name).
		Count(&count).Error; err != nil {
		return false, shared.NewStorageError("check product name", err)
	}
	return count > 0, nil
}

// Save creates or updates a product. A duplicate (business, name) pair is
// reported as shared.ErrAlreadyExists.
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	model := models.ProductModelFromDomain(product)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.NewDomainError(shared.CodeAlreadyExists, "A product with this name already exists")
		}
		return shared.NewStorageError("save product", err)
	}
	return nil
}

// SaveWithLock updates name, price and stock only while the stored version
// still equals expectedVersion
func (r *GormProductRepository) SaveWithLock(ctx context.Context, product *catalog.Product, expectedVersion int) error {
	model := models.ProductModelFromDomain(product)
	result := r.db.WithContext(ctx).
		Model(&models.ProductModel{}).
		Where("id = ? AND version = ?", product.ID, expectedVersion).
		Select("name", "quantity", "price", "version", "updated_at").
		Updates(model)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return shared.NewDomainError(shared.CodeAlreadyExists, "A product with this name already exists")
		}
		return shared.NewStorageError("update product", result.Error)
	}
	if result.RowsAffected == 0 {
		exists, err := r.exists(ctx, product.ID)
		if err != nil {
			return err
		}
		if !exists {
			return shared.ErrNotFound
		}
		return shared.NewDomainError(shared.CodeConcurrency, "The product was modified by another request, reload it and retry")
	}
	return nil
}

func (r *GormProductRepository) exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ProductModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, shared.NewStorageError("find product", err)
	}
	return count > 0, nil
}

// Delete deletes a product
func (r *GormProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ProductModel{}, "id = ?", id)
	if result.Error != nil {
		return shared.NewStorageError("delete product", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DecrementStockClamped subtracts qty from the stored quantity in a single
// UPDATE, so concurrent sales of the same product serialise on the row lock
// and never lose an update. The stored value is floored at zero.
func (r *GormProductRepository) DecrementStockClamped(ctx context.Context, productID uuid.UUID, qty int64) (int64, error) {
	var remaining int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.ProductModel{}).
			Where("id = ?", productID).
			UpdateColumns(map[string]any{
				"quantity":   gorm.Expr("CASE WHEN quantity - ? <= 0 THEN 0 ELSE quantity - ? END", qty, qty),
				"version":    gorm.Expr("version + 1"),
				"updated_at": time.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return tx.Model(&models.ProductModel{}).
			Select("quantity").
			Where("id = ?", productID).
			Scan(&remaining).Error
	})
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return 0, err
		}
		return 0, shared.NewStorageError("decrement stock", err)
	}
	return remaining, nil
}

var (
	_ catalog.ProductRepository = (*GormProductRepository)(nil)
	_ catalog.StockWriter       = (*GormProductRepository)(nil)
)
