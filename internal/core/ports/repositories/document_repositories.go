package repositories

import (
	"context"

	"github.com/aksagenset/invoquot/internal/core/domain"
)

// DocumentReader defines read operations for invoices and quotations.
// Fetches join the owning client's display fields onto the document.
type DocumentReader interface {
	// FindInvoiceByID retrieves an invoice within the company scope.
	FindInvoiceByID(ctx context.Context, companyID int64, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves invoices newest first with cursor pagination.
	ListInvoices(ctx context.Context, companyID int64, limit int, nextToken *string) ([]domain.Invoice, *string, error)

	// FindQuotationByID retrieves a quotation within the company scope.
	FindQuotationByID(ctx context.Context, companyID int64, quotationID string) (*domain.Quotation, error)

	// ListQuotations retrieves quotations newest first with cursor pagination.
	ListQuotations(ctx context.Context, companyID int64, limit int, nextToken *string) ([]domain.Quotation, *string, error)
}

// DocumentWriter defines write operations for invoices and quotations.
// Saves are single atomic inserts; a document number collision surfaces as
// apperrors.ErrDuplicate so the caller can retry with a fresh number.
type DocumentWriter interface {
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error
	SaveQuotation(ctx context.Context, quotation domain.Quotation) error
}

// DocumentRepositoryFacade combines all document-related repository interfaces.
type DocumentRepositoryFacade interface {
	DocumentReader
	DocumentWriter
}
