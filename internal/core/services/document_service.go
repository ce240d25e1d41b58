package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aksagenset/invoquot/internal/apperrors"
	"github.com/aksagenset/invoquot/internal/core/domain"
	portsrepo "github.com/aksagenset/invoquot/internal/core/ports/repositories"
	"github.com/aksagenset/invoquot/internal/dto"
	"github.com/aksagenset/invoquot/internal/utils/billing"
	"github.com/aksagenset/invoquot/internal/utils/numbering"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// maxNumberAttempts bounds retries when a generated document number collides
// with an existing one for the same company.
const maxNumberAttempts = 3

// DocumentService provides business logic for invoices and quotations.
type DocumentService struct {
	documentRepo   portsrepo.DocumentRepositoryFacade
	clientRepo     portsrepo.ClientReader
	defaultTaxRate decimal.Decimal
	currencyCode   string
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(documentRepo portsrepo.DocumentRepositoryFacade, clientRepo portsrepo.ClientReader, defaultTaxRate decimal.Decimal, currencyCode string) *DocumentService {
	return &DocumentService{
		documentRepo:   documentRepo,
		clientRepo:     clientRepo,
		defaultTaxRate: defaultTaxRate,
		currencyCode:   currencyCode,
	}
}

// CreateInvoice recomputes totals from the submitted items, allocates an
// invoice number and persists the invoice in a single write.
func (s *DocumentService) CreateInvoice(ctx context.Context, companyID int64, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	issueDate, err := parseCalendarDate("issueDate", req.IssueDate)
	if err != nil {
		return nil, err
	}
	dueDate, err := parseCalendarDate("dueDate", req.DueDate)
	if err != nil {
		return nil, err
	}
	if dueDate.Before(issueDate) {
		return nil, fmt.Errorf("%w: due date must not precede issue date", apperrors.ErrValidation)
	}

	client, totals, err := s.prepareDocument(ctx, companyID, req.ClientID, req.Items, req.TaxRate)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	invoice := domain.Invoice{
		Document: domain.Document{
			DocumentID:    uuid.NewString(),
			CompanyID:     companyID,
			ClientID:      client.ClientID,
			IssueDate:     issueDate,
			Items:         toLineItems(req.Items),
			Subtotal:      totals.Subtotal,
			TaxRate:       totals.TaxRate,
			TaxAmount:     totals.TaxAmount,
			Total:         totals.Total,
			CurrencyCode:  s.currencyCode,
			Notes:         req.Notes,
			Status:        domain.StatusDraft,
			ClientName:    client.Name,
			ClientCompany: client.CompanyName,
			ClientEmail:   client.Email,
			ClientPhone:   client.Phone,
			ClientAddress: client.Address,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		},
		DueDate:       dueDate,
		AmountPaid:    decimal.Zero,
		BalanceDue:    totals.Total,
		PaymentStatus: domain.PaymentPending,
	}

	for attempt := 1; attempt <= maxNumberAttempts; attempt++ {
		number, err := numbering.NewDocumentNumber(numbering.InvoicePrefix, now)
		if err != nil {
			return nil, fmt.Errorf("failed to generate invoice number: %w", err)
		}
		invoice.Number = number

		err = s.documentRepo.SaveInvoice(ctx, invoice)
		if err == nil {
			return &invoice, nil
		}
		if !errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("failed to create invoice in service: %w", err)
		}
	}
	return nil, fmt.Errorf("%w: could not allocate a unique invoice number after %d attempts", apperrors.ErrDuplicate, maxNumberAttempts)
}

// CreateQuotation recomputes totals from the submitted items, allocates a
// quote number and persists the quotation in a single write.
func (s *DocumentService) CreateQuotation(ctx context.Context, companyID int64, req dto.CreateQuotationRequest) (*domain.Quotation, error) {
	issueDate, err := parseCalendarDate("issueDate", req.IssueDate)
	if err != nil {
		return nil, err
	}
	validUntil, err := parseCalendarDate("validUntil", req.ValidUntil)
	if err != nil {
		return nil, err
	}
	if validUntil.Before(issueDate) {
		return nil, fmt.Errorf("%w: validity date must not precede issue date", apperrors.ErrValidation)
	}

	client, totals, err := s.prepareDocument(ctx, companyID, req.ClientID, req.Items, req.TaxRate)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	quotation := domain.Quotation{
		Document: domain.Document{
			DocumentID:    uuid.NewString(),
			CompanyID:     companyID,
			ClientID:      client.ClientID,
			IssueDate:     issueDate,
			Items:         toLineItems(req.Items),
			Subtotal:      totals.Subtotal,
			TaxRate:       totals.TaxRate,
			TaxAmount:     totals.TaxAmount,
			Total:         totals.Total,
			CurrencyCode:  s.currencyCode,
			Notes:         req.Notes,
			Status:        domain.StatusDraft,
			ClientName:    client.Name,
			ClientCompany: client.CompanyName,
			ClientEmail:   client.Email,
			ClientPhone:   client.Phone,
			ClientAddress: client.Address,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		},
		ValidUntil: validUntil,
	}

	for attempt := 1; attempt <= maxNumberAttempts; attempt++ {
		number, err := numbering.NewDocumentNumber(numbering.QuotationPrefix, now)
		if err != nil {
			return nil, fmt.Errorf("failed to generate quote number: %w", err)
		}
		quotation.Number = number

		err = s.documentRepo.SaveQuotation(ctx, quotation)
		if err == nil {
			return &quotation, nil
		}
		if !errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("failed to create quotation in service: %w", err)
		}
	}
	return nil, fmt.Errorf("%w: could not allocate a unique quote number after %d attempts", apperrors.ErrDuplicate, maxNumberAttempts)
}

func (s *DocumentService) GetInvoice(ctx context.Context, companyID int64, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.documentRepo.FindInvoiceByID(ctx, companyID, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice in service: %w", err)
	}
	return invoice, nil
}

func (s *DocumentService) ListInvoices(ctx context.Context, companyID int64, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
	invoices, token, err := s.documentRepo.ListInvoices(ctx, companyID, limit, nextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list invoices in service: %w", err)
	}
	if invoices == nil {
		invoices = []domain.Invoice{}
	}
	return invoices, token, nil
}

func (s *DocumentService) GetQuotation(ctx context.Context, companyID int64, quotationID string) (*domain.Quotation, error) {
	quotation, err := s.documentRepo.FindQuotationByID(ctx, companyID, quotationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get quotation in service: %w", err)
	}
	return quotation, nil
}

func (s *DocumentService) ListQuotations(ctx context.Context, companyID int64, limit int, nextToken *string) ([]domain.Quotation, *string, error) {
	quotations, token, err := s.documentRepo.ListQuotations(ctx, companyID, limit, nextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list quotations in service: %w", err)
	}
	if quotations == nil {
		quotations = []domain.Quotation{}
	}
	return quotations, token, nil
}

// prepareDocument resolves the client and computes totals for a creation request.
func (s *DocumentService) prepareDocument(ctx context.Context, companyID int64, clientID string, items []dto.LineItemRequest, taxRate *decimal.Decimal) (*domain.Client, billing.Totals, error) {
	client, err := s.clientRepo.FindClientByID(ctx, companyID, clientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, billing.Totals{}, fmt.Errorf("%w: client '%s' not found", apperrors.ErrNotFound, clientID)
		}
		return nil, billing.Totals{}, fmt.Errorf("failed to resolve client '%s': %w", clientID, err)
	}

	rate := s.defaultTaxRate
	if taxRate != nil {
		rate = *taxRate
	}

	totals, err := billing.ComputeTotals(toLineItems(items), rate)
	if err != nil {
		return nil, billing.Totals{}, err
	}
	return client, totals, nil
}

func toLineItems(items []dto.LineItemRequest) []domain.LineItem {
	lineItems := make([]domain.LineItem, len(items))
	for i, it := range items {
		lineItems[i] = domain.LineItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		}
	}
	return lineItems
}

func parseCalendarDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dto.DateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be a calendar date in %s format", apperrors.ErrValidation, field, dto.DateFormat)
	}
	return t, nil
}
