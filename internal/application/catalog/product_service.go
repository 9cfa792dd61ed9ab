package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/retailbill/backend/internal/domain/catalog"
	"github.com/retailbill/backend/internal/domain/shared"
	"github.com/retailbill/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// ProductService handles catalog maintenance
type ProductService struct {
	productRepo catalog.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// Create adds a product to a business catalog. Names are unique per business.
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	product, err := catalog.NewProduct(req.BusinessEmail, req.Name, req.Quantity, req.Price)
	if err != nil {
		return nil, err
	}

	exists, err := s.productRepo.ExistsByName(ctx, product.BusinessEmail, product.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError(shared.CodeAlreadyExists, "A product with this name already exists")
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	logger.L(ctx).Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("name", product.Name),
		zap.Int64("quantity", product.Quantity),
	)

	resp := ToProductResponse(product)
	return &resp, nil
}

// GetByID returns one product
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// List returns the products of one business, or of every business when
// businessEmail is empty, ordered by name
func (s *ProductService) List(ctx context.Context, businessEmail string) ([]ProductResponse, error) {
	products, err := s.productRepo.FindAll(ctx, shared.ForBusiness(businessEmail))
	if err != nil {
		return nil, err
	}
	return ToProductResponses(products), nil
}

// Update applies the fields present in req. The write is rejected with
// shared.ErrConcurrency if a sale or another edit changed the product after it
// was read.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	loadedVersion := product.Version

	if req.Name != nil && *req.Name != product.Name {
		if err := product.Rename(*req.Name); err != nil {
			return nil, err
		}
		exists, err := s.productRepo.ExistsByName(ctx, product.BusinessEmail, product.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError(shared.CodeAlreadyExists, "A product with this name already exists")
		}
	}
	if req.Quantity != nil {
		if err := product.SetQuantity(*req.Quantity); err != nil {
			return nil, err
		}
	}
	if req.Price != nil {
		if err := product.SetPrice(*req.Price); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.SaveWithLock(ctx, product, loadedVersion); err != nil {
		if errors.Is(err, shared.ErrConcurrency) {
			logger.L(ctx).Warn("Product update lost a version race",
				zap.String("product_id", product.ID.String()),
				zap.Int("loaded_version", loadedVersion),
			)
		}
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// Delete removes a product. Bills that sold it keep their line snapshot.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.L(ctx).Info("Product deleted", zap.String("product_id", id.String()))
	return nil
}
