package repositories

import (
	"context"

	"github.com/aksagenset/invoquot/internal/core/domain"
)

// ProductReader defines read operations for the catalog.
type ProductReader interface {
	// FindProductByID retrieves a product within the company scope.
	FindProductByID(ctx context.Context, companyID int64, productID string) (*domain.Product, error)

	// ListProducts retrieves active products for a company, ordered by name.
	ListProducts(ctx context.Context, companyID int64) ([]domain.Product, error)
}

// ProductWriter defines write operations for the catalog.
type ProductWriter interface {
	// SaveProduct persists a new catalog entry.
	SaveProduct(ctx context.Context, product domain.Product) error
}

// ProductRepositoryFacade combines all product-related repository interfaces.
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
