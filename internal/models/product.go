package models

import "github.com/shopspring/decimal"

// ProductType distinguishes services from goods.
type ProductType string

// Product mirrors one row of the products table.
type Product struct {
	ProductID   string          `json:"productID"`
	CompanyID   int64           `json:"companyID"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Type        ProductType     `json:"type"`
	Price       decimal.Decimal `json:"price"`
	TaxRate     decimal.Decimal `json:"taxRate"`
	IsActive    bool            `json:"isActive"`
	AuditFields
}
