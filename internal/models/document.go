package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentStatus is the lifecycle state of a document row.
type DocumentStatus string

// PaymentStatus is the settlement state of an invoice row.
type PaymentStatus string

// LineItem is the JSON shape of one entry in the items column.
// The json tags are the persisted wire format; do not rename them.
type LineItem struct {
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// Invoice mirrors one row of the invoices table, plus client display fields
// populated by the fetch-time join.
type Invoice struct {
	InvoiceID     string          `json:"invoiceID"`
	InvoiceNumber string          `json:"invoiceNumber"`
	CompanyID     int64           `json:"companyID"`
	ClientID      string          `json:"clientID"`
	IssueDate     time.Time       `json:"issueDate"`
	DueDate       time.Time       `json:"dueDate"`
	Items         []LineItem      `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxRate       decimal.Decimal `json:"taxRate"`
	TaxAmount     decimal.Decimal `json:"taxAmount"`
	Total         decimal.Decimal `json:"total"`
	CurrencyCode  string          `json:"currencyCode"`
	Notes         string          `json:"notes"`
	Status        DocumentStatus  `json:"status"`
	AmountPaid    decimal.Decimal `json:"amountPaid"`
	BalanceDue    decimal.Decimal `json:"balanceDue"`
	PaymentStatus PaymentStatus   `json:"paymentStatus"`
	ClientName    string          `json:"clientName,omitempty"`
	ClientCompany string          `json:"clientCompany,omitempty"`
	ClientEmail   string          `json:"clientEmail,omitempty"`
	ClientPhone   string          `json:"clientPhone,omitempty"`
	ClientAddress string          `json:"clientAddress,omitempty"`
	AuditFields
}

// Quotation mirrors one row of the quotations table, plus client display fields.
type Quotation struct {
	QuotationID   string          `json:"quotationID"`
	QuoteNumber   string          `json:"quoteNumber"`
	CompanyID     int64           `json:"companyID"`
	ClientID      string          `json:"clientID"`
	IssueDate     time.Time       `json:"issueDate"`
	ValidUntil    time.Time       `json:"validUntil"`
	Items         []LineItem      `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxRate       decimal.Decimal `json:"taxRate"`
	TaxAmount     decimal.Decimal `json:"taxAmount"`
	Total         decimal.Decimal `json:"total"`
	CurrencyCode  string          `json:"currencyCode"`
	Notes         string          `json:"notes"`
	Status        DocumentStatus  `json:"status"`
	ClientName    string          `json:"clientName,omitempty"`
	ClientCompany string          `json:"clientCompany,omitempty"`
	ClientEmail   string          `json:"clientEmail,omitempty"`
	ClientPhone   string          `json:"clientPhone,omitempty"`
	ClientAddress string          `json:"clientAddress,omitempty"`
	AuditFields
}
