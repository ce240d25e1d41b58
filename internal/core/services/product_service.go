package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aksagenset/invoquot/internal/core/domain"
	portsrepo "github.com/aksagenset/invoquot/internal/core/ports/repositories"
	"github.com/aksagenset/invoquot/internal/dto"
	"github.com/aksagenset/invoquot/internal/utils/billing"
	"github.com/google/uuid"
)

// ProductService provides business logic for the catalog.
type ProductService struct {
	productRepo portsrepo.ProductRepositoryFacade
}

// NewProductService creates a new ProductService.
func NewProductService(productRepo portsrepo.ProductRepositoryFacade) *ProductService {
	return &ProductService{productRepo: productRepo}
}

func (s *ProductService) CreateProduct(ctx context.Context, companyID int64, req dto.CreateProductRequest) (*domain.Product, error) {
	now := time.Now()

	productType := domain.ProductType(req.Type)
	if productType == "" {
		productType = domain.ProductService
	}

	taxRate := billing.DefaultTaxRatePercent
	if req.TaxRate != nil {
		taxRate = *req.TaxRate
	}

	product := domain.Product{
		ProductID:   uuid.NewString(),
		CompanyID:   companyID,
		Name:        req.Name,
		Description: req.Description,
		Type:        productType,
		Price:       req.Price,
		TaxRate:     taxRate,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product in service: %w", err)
	}

	return &product, nil
}

func (s *ProductService) GetProductByID(ctx context.Context, companyID int64, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, companyID, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product in service: %w", err)
	}
	return product, nil
}

func (s *ProductService) ListProducts(ctx context.Context, companyID int64) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products in service: %w", err)
	}
	if products == nil {
		return []domain.Product{}, nil
	}
	return products, nil
}
