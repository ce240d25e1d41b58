package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aksagenset/invoquot/internal/apperrors"
	"github.com/aksagenset/invoquot/internal/core/domain"
	portsrepo "github.com/aksagenset/invoquot/internal/core/ports/repositories"
	"github.com/aksagenset/invoquot/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentService provides business logic for the payment ledger.
type PaymentService struct {
	paymentRepo portsrepo.PaymentRepositoryFacade
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade) *PaymentService {
	return &PaymentService{paymentRepo: paymentRepo}
}

// RecordPayment applies a payment to an invoice. Amount bounds against the
// invoice balance are enforced inside the repository transaction, where the
// invoice row is locked; only request-shape checks happen here.
func (s *PaymentService) RecordPayment(ctx context.Context, companyID int64, req dto.RecordPaymentRequest) (*domain.Payment, *domain.Invoice, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}
	paymentDate, err := parseCalendarDate("paymentDate", req.PaymentDate)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	payment := domain.Payment{
		PaymentID:       uuid.NewString(),
		CompanyID:       companyID,
		InvoiceID:       req.InvoiceID,
		Amount:          req.Amount,
		PaymentMethod:   req.PaymentMethod,
		PaymentDate:     paymentDate,
		ReferenceNumber: req.ReferenceNumber,
		Notes:           req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	persisted, invoice, err := s.paymentRepo.ApplyPayment(ctx, payment)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to record payment in service: %w", err)
	}
	return persisted, invoice, nil
}

func (s *PaymentService) ListPayments(ctx context.Context, companyID int64, limit int, nextToken *string) ([]domain.Payment, *string, error) {
	payments, token, err := s.paymentRepo.ListPayments(ctx, companyID, limit, nextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list payments in service: %w", err)
	}
	if payments == nil {
		payments = []domain.Payment{}
	}
	return payments, token, nil
}
