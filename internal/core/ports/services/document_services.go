package services

import (
	"context"

	"github.com/aksagenset/invoquot/internal/core/domain"
	"github.com/aksagenset/invoquot/internal/dto"
)

// DocumentReaderSvc defines read operations for billing documents.
type DocumentReaderSvc interface {
	// GetInvoice retrieves an invoice with its client display fields.
	GetInvoice(ctx context.Context, companyID int64, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves invoices newest first with cursor pagination.
	ListInvoices(ctx context.Context, companyID int64, limit int, nextToken *string) ([]domain.Invoice, *string, error)

	// GetQuotation retrieves a quotation with its client display fields.
	GetQuotation(ctx context.Context, companyID int64, quotationID string) (*domain.Quotation, error)

	// ListQuotations retrieves quotations newest first with cursor pagination.
	ListQuotations(ctx context.Context, companyID int64, limit int, nextToken *string) ([]domain.Quotation, *string, error)
}

// DocumentWriterSvc defines creation operations for billing documents.
// Creation recomputes totals from the submitted items, allocates a document
// number and persists in one atomic write.
type DocumentWriterSvc interface {
	CreateInvoice(ctx context.Context, companyID int64, req dto.CreateInvoiceRequest) (*domain.Invoice, error)
	CreateQuotation(ctx context.Context, companyID int64, req dto.CreateQuotationRequest) (*domain.Quotation, error)
}

// DocumentSvcFacade combines all document-related service interfaces.
type DocumentSvcFacade interface {
	DocumentReaderSvc
	DocumentWriterSvc
}
