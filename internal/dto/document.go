package dto

import (
	"time"

	"github.com/aksagenset/invoquot/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateFormat is the calendar-date wire format for issue/due/valid-until dates.
const DateFormat = "2006-01-02"

// LineItemRequest is one billable row in a creation request.
type LineItemRequest struct {
	Description string          `json:"description" binding:"required"`
	Quantity    int64           `json:"quantity" binding:"required,gt=0"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreateInvoiceRequest is the payload for creating an invoice.
// Totals are always recomputed server-side; the request carries none.
type CreateInvoiceRequest struct {
	ClientID  string            `json:"clientID" binding:"required"`
	IssueDate string            `json:"issueDate" binding:"required"`
	DueDate   string            `json:"dueDate" binding:"required"`
	Items     []LineItemRequest `json:"items" binding:"required,min=1,dive"`
	TaxRate   *decimal.Decimal  `json:"taxRate"` // Percent; defaults to the configured rate
	Notes     string            `json:"notes"`
}

// CreateQuotationRequest is the payload for creating a quotation.
type CreateQuotationRequest struct {
	ClientID   string            `json:"clientID" binding:"required"`
	IssueDate  string            `json:"issueDate" binding:"required"`
	ValidUntil string            `json:"validUntil" binding:"required"`
	Items      []LineItemRequest `json:"items" binding:"required,min=1,dive"`
	TaxRate    *decimal.Decimal  `json:"taxRate"`
	Notes      string            `json:"notes"`
}

// LineItemResponse is one billable row in a document response.
type LineItemResponse struct {
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Amount      decimal.Decimal `json:"amount"`
}

// InvoiceResponse is the invoice shape returned to callers.
type InvoiceResponse struct {
	InvoiceID     string             `json:"invoiceID"`
	InvoiceNumber string             `json:"invoiceNumber"`
	ClientID      string             `json:"clientID"`
	ClientName    string             `json:"clientName,omitempty"`
	ClientCompany string             `json:"clientCompany,omitempty"`
	IssueDate     string             `json:"issueDate"`
	DueDate       string             `json:"dueDate"`
	Items         []LineItemResponse `json:"items"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	TaxRate       decimal.Decimal    `json:"taxRate"`
	TaxAmount     decimal.Decimal    `json:"taxAmount"`
	Total         decimal.Decimal    `json:"total"`
	CurrencyCode  string             `json:"currencyCode"`
	Notes         string             `json:"notes,omitempty"`
	Status        string             `json:"status"`
	AmountPaid    decimal.Decimal    `json:"amountPaid"`
	BalanceDue    decimal.Decimal    `json:"balanceDue"`
	PaymentStatus string             `json:"paymentStatus"`
	CreatedAt     time.Time          `json:"createdAt"`
}

// QuotationResponse is the quotation shape returned to callers.
type QuotationResponse struct {
	QuotationID   string             `json:"quotationID"`
	QuoteNumber   string             `json:"quoteNumber"`
	ClientID      string             `json:"clientID"`
	ClientName    string             `json:"clientName,omitempty"`
	ClientCompany string             `json:"clientCompany,omitempty"`
	IssueDate     string             `json:"issueDate"`
	ValidUntil    string             `json:"validUntil"`
	Items         []LineItemResponse `json:"items"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	TaxRate       decimal.Decimal    `json:"taxRate"`
	TaxAmount     decimal.Decimal    `json:"taxAmount"`
	Total         decimal.Decimal    `json:"total"`
	CurrencyCode  string             `json:"currencyCode"`
	Notes         string             `json:"notes,omitempty"`
	Status        string             `json:"status"`
	CreatedAt     time.Time          `json:"createdAt"`
}

// ListInvoicesResponse pages through invoices newest first.
type ListInvoicesResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ListQuotationsResponse pages through quotations newest first.
type ListQuotationsResponse struct {
	Quotations []QuotationResponse `json:"quotations"`
	NextToken  *string             `json:"nextToken,omitempty"`
}

func toLineItemResponses(items []domain.LineItem) []LineItemResponse {
	responses := make([]LineItemResponse, len(items))
	for i, it := range items {
		responses[i] = LineItemResponse{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Amount:      it.Amount(),
		}
	}
	return responses
}

// ToInvoiceResponse converts a domain Invoice to its response DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:     inv.DocumentID,
		InvoiceNumber: inv.Number,
		ClientID:      inv.ClientID,
		ClientName:    inv.ClientName,
		ClientCompany: inv.ClientCompany,
		IssueDate:     inv.IssueDate.Format(DateFormat),
		DueDate:       inv.DueDate.Format(DateFormat),
		Items:         toLineItemResponses(inv.Items),
		Subtotal:      inv.Subtotal,
		TaxRate:       inv.TaxRate,
		TaxAmount:     inv.TaxAmount,
		Total:         inv.Total,
		CurrencyCode:  inv.CurrencyCode,
		Notes:         inv.Notes,
		Status:        string(inv.Status),
		AmountPaid:    inv.AmountPaid,
		BalanceDue:    inv.BalanceDue,
		PaymentStatus: string(inv.PaymentStatus),
		CreatedAt:     inv.CreatedAt,
	}
}

// ToInvoiceResponses converts a slice of domain Invoices to response DTOs.
func ToInvoiceResponses(invs []domain.Invoice) []InvoiceResponse {
	responses := make([]InvoiceResponse, len(invs))
	for i := range invs {
		responses[i] = ToInvoiceResponse(&invs[i])
	}
	return responses
}

// ToQuotationResponse converts a domain Quotation to its response DTO.
func ToQuotationResponse(q *domain.Quotation) QuotationResponse {
	return QuotationResponse{
		QuotationID:   q.DocumentID,
		QuoteNumber:   q.Number,
		ClientID:      q.ClientID,
		ClientName:    q.ClientName,
		ClientCompany: q.ClientCompany,
		IssueDate:     q.IssueDate.Format(DateFormat),
		ValidUntil:    q.ValidUntil.Format(DateFormat),
		Items:         toLineItemResponses(q.Items),
		Subtotal:      q.Subtotal,
		TaxRate:       q.TaxRate,
		TaxAmount:     q.TaxAmount,
		Total:         q.Total,
		CurrencyCode:  q.CurrencyCode,
		Notes:         q.Notes,
		Status:        string(q.Status),
		CreatedAt:     q.CreatedAt,
	}
}

// ToQuotationResponses converts a slice of domain Quotations to response DTOs.
func ToQuotationResponses(qs []domain.Quotation) []QuotationResponse {
	responses := make([]QuotationResponse, len(qs))
	for i := range qs {
		responses[i] = ToQuotationResponse(&qs[i])
	}
	return responses
}
