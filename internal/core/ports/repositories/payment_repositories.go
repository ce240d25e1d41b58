package repositories

import (
	"context"

	"github.com/aksagenset/invoquot/internal/core/domain"
)

// PaymentRepositoryFacade defines the payment ledger operations.
type PaymentRepositoryFacade interface {
	// ApplyPayment inserts the payment and updates the invoice settlement
	// fields in one database transaction, serializing on the invoice row.
	// It returns the persisted payment and the invoice state it produced.
	// The payment and the invoice update commit or fail together.
	ApplyPayment(ctx context.Context, payment domain.Payment) (*domain.Payment, *domain.Invoice, error)

	// ListPayments retrieves payments newest first with cursor pagination,
	// joined with the invoice number and client name for display.
	ListPayments(ctx context.Context, companyID int64, limit int, nextToken *string) ([]domain.Payment, *string, error)
}
