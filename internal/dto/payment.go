package dto

import (
	"time"

	"github.com/aksagenset/invoquot/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest is the payload for applying a payment to an invoice.
type RecordPaymentRequest struct {
	InvoiceID       string          `json:"invoiceID" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod   string          `json:"paymentMethod"`
	PaymentDate     string          `json:"paymentDate" binding:"required"`
	ReferenceNumber string          `json:"referenceNumber"`
	Notes           string          `json:"notes"`
}

// PaymentResponse is the payment shape returned to callers.
type PaymentResponse struct {
	PaymentID       string          `json:"paymentID"`
	InvoiceID       string          `json:"invoiceID"`
	InvoiceNumber   string          `json:"invoiceNumber,omitempty"`
	ClientName      string          `json:"clientName,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMethod   string          `json:"paymentMethod,omitempty"`
	PaymentDate     string          `json:"paymentDate"`
	ReferenceNumber string          `json:"referenceNumber,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// RecordPaymentResponse returns the persisted payment together with the
// invoice settlement state it produced.
type RecordPaymentResponse struct {
	Payment       PaymentResponse `json:"payment"`
	AmountPaid    decimal.Decimal `json:"amountPaid"`
	BalanceDue    decimal.Decimal `json:"balanceDue"`
	PaymentStatus string          `json:"paymentStatus"`
}

// ListPaymentsResponse pages through payments newest first.
type ListPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToPaymentResponse converts a domain Payment to its response DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:       p.PaymentID,
		InvoiceID:       p.InvoiceID,
		InvoiceNumber:   p.InvoiceNumber,
		ClientName:      p.ClientName,
		Amount:          p.Amount,
		PaymentMethod:   p.PaymentMethod,
		PaymentDate:     p.PaymentDate.Format(DateFormat),
		ReferenceNumber: p.ReferenceNumber,
		CreatedAt:       p.CreatedAt,
	}
}

// ToPaymentResponses converts a slice of domain Payments to response DTOs.
func ToPaymentResponses(ps []domain.Payment) []PaymentResponse {
	responses := make([]PaymentResponse, len(ps))
	for i := range ps {
		responses[i] = ToPaymentResponse(&ps[i])
	}
	return responses
}
