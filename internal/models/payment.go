package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment mirrors one row of the payments table, plus joined display fields.
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
	InvoiceNumber   string          `json:"invoiceNumber,omitempty"`
	ClientName      string          `json:"clientName,omitempty"`
	AuditFields
}
