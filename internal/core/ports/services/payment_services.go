package services

import (
	"context"

	"github.com/aksagenset/invoquot/internal/core/domain"
	"github.com/aksagenset/invoquot/internal/dto"
)

// PaymentSvcFacade defines the payment allocation operations.
type PaymentSvcFacade interface {
	// RecordPayment applies a payment to an invoice atomically and returns the
	// persisted payment along with the invoice state it produced.
	RecordPayment(ctx context.Context, companyID int64, req dto.RecordPaymentRequest) (*domain.Payment, *domain.Invoice, error)

	// ListPayments retrieves payments newest first with cursor pagination.
	ListPayments(ctx context.Context, companyID int64, limit int, nextToken *string) ([]domain.Payment, *string, error)
}
