package domain

import "github.com/shopspring/decimal"

// ProductType distinguishes services from goods in the catalog.
type ProductType string

const (
	ProductService ProductType = "service"
	ProductGood    ProductType = "good"
)

// Product is a catalog entry. Line items copy its values at document creation;
// later edits never retroactively change issued documents.
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
