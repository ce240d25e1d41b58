package dto

import (
	"github.com/aksagenset/invoquot/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest is the payload for creating a catalog entry.
type CreateProductRequest struct {
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description"`
	Type        string           `json:"type" binding:"omitempty,oneof=service good"`
	Price       decimal.Decimal  `json:"price" binding:"required"`
	TaxRate     *decimal.Decimal `json:"taxRate"`
}

// ProductResponse is the product shape returned to callers.
type ProductResponse struct {
	ProductID   string          `json:"productID"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Type        string          `json:"type"`
	Price       decimal.Decimal `json:"price"`
	TaxRate     decimal.Decimal `json:"taxRate"`
	IsActive    bool            `json:"isActive"`
}

// ToProductResponse converts a domain Product to its response DTO.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:   p.ProductID,
		Name:        p.Name,
		Description: p.Description,
		Type:        string(p.Type),
		Price:       p.Price,
		TaxRate:     p.TaxRate,
		IsActive:    p.IsActive,
	}
}

// ToProductResponses converts a slice of domain Products to response DTOs.
func ToProductResponses(ps []domain.Product) []ProductResponse {
	responses := make([]ProductResponse, len(ps))
	for i := range ps {
		responses[i] = ToProductResponse(&ps[i])
	}
	return responses
}
