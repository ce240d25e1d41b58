package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is one settlement event against an invoice. Payments are immutable
// after creation; the ledger is append-only.
type Payment struct {
	PaymentID       string          `json:"paymentID"`
	CompanyID       int64           `json:"companyID"`
	InvoiceID       string          `json:"invoiceID"`
	ClientID        string          `json:"clientID"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMethod   string          `json:"paymentMethod"`
	PaymentDate     time.Time       `json:"paymentDate"`
	ReferenceNumber string          `json:"referenceNumber"`
	Notes           string          `json:"notes"`
	InvoiceNumber   string          `json:"invoiceNumber,omitempty"` // Joined display field
	ClientName      string          `json:"clientName,omitempty"`    // Joined display field
	AuditFields
}
