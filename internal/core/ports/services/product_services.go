package services

import (
	"context"

	"github.com/aksagenset/invoquot/internal/core/domain"
	"github.com/aksagenset/invoquot/internal/dto"
)

// ProductReaderSvc defines read operations for the catalog.
type ProductReaderSvc interface {
	// GetProductByID retrieves a product within the company scope.
	GetProductByID(ctx context.Context, companyID int64, productID string) (*domain.Product, error)

	// ListProducts retrieves active products for a company, ordered by name.
	ListProducts(ctx context.Context, companyID int64) ([]domain.Product, error)
}

// ProductWriterSvc defines write operations for the catalog.
type ProductWriterSvc interface {
	// CreateProduct persists a new catalog entry.
	CreateProduct(ctx context.Context, companyID int64, req dto.CreateProductRequest) (*domain.Product, error)
}

// ProductSvcFacade combines all product-related service interfaces.
type ProductSvcFacade interface {
	ProductReaderSvc
	ProductWriterSvc
}
