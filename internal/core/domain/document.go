package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentType tags the two billing document variants.
type DocumentType string

const (
	DocumentInvoice   DocumentType = "invoice"
	DocumentQuotation DocumentType = "quotation"
)

// DocumentStatus is the lifecycle state of a document. Documents are never
// physically deleted; they transition status instead.
type DocumentStatus string

const (
	StatusDraft     DocumentStatus = "draft"
	StatusSent      DocumentStatus = "sent"
	StatusAccepted  DocumentStatus = "accepted"  // Quotations only
	StatusCancelled DocumentStatus = "cancelled"
)

// PaymentStatus is the settlement state of an invoice. Transitions are
// monotonic: pending -> partial -> paid.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

// LineItem is one billable row inside a document. Items are frozen once the
// parent document is issued; they copy product values rather than reference them.
type LineItem struct {
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// Amount is the line total, quantity times unit price.
func (li LineItem) Amount() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(li.Quantity))
}

// Document holds the fields shared by invoices and quotations. The persisted
// totals are recomputed from Items at creation time, never trusted from input.
type Document struct {
	DocumentID     string          `json:"documentID"`
	Number         string          `json:"number"` // Unique per company, prefix-coded
	CompanyID      int64           `json:"companyID"`
	ClientID       string          `json:"clientID"`
	IssueDate      time.Time       `json:"issueDate"`
	Items          []LineItem      `json:"items"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxRate        decimal.Decimal `json:"taxRate"` // Percent, e.g. 16
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	Total          decimal.Decimal `json:"total"`
	CurrencyCode   string          `json:"currencyCode"`
	Notes          string          `json:"notes"`
	Status         DocumentStatus  `json:"status"`
	ClientName     string          `json:"clientName,omitempty"`     // Joined display field
	ClientCompany  string          `json:"clientCompany,omitempty"`  // Joined display field
	ClientEmail    string          `json:"clientEmail,omitempty"`    // Joined display field
	ClientPhone    string          `json:"clientPhone,omitempty"`    // Joined display field
	ClientAddress  string          `json:"clientAddress,omitempty"`  // Joined display field
	AuditFields
}

// Invoice is a Document that accrues payments until settled.
type Invoice struct {
	Document
	DueDate       time.Time       `json:"dueDate"`
	AmountPaid    decimal.Decimal `json:"amountPaid"`
	BalanceDue    decimal.Decimal `json:"balanceDue"`
	PaymentStatus PaymentStatus   `json:"paymentStatus"`
}

// Quotation is a Document with a validity deadline instead of payment tracking.
type Quotation struct {
	Document
	ValidUntil time.Time `json:"validUntil"`
}
