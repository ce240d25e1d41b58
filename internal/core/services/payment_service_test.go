package services_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/aksagenset/invoquot/internal/apperrors"
	"github.com/aksagenset/invoquot/internal/core/domain"
	portsrepo "github.com/aksagenset/invoquot/internal/core/ports/repositories"
	portssvc "github.com/aksagenset/invoquot/internal/core/ports/services"
	"github.com/aksagenset/invoquot/internal/core/services"
	"github.com/aksagenset/invoquot/internal/dto"
	"github.com/aksagenset/invoquot/internal/utils/billing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) ApplyPayment(ctx context.Context, payment domain.Payment) (*domain.Payment, *domain.Invoice, error) {
	args := m.Called(ctx, payment)
	var p *domain.Payment
	if args.Get(0) != nil {
		p = args.Get(0).(*domain.Payment)
	}
	var inv *domain.Invoice
	if args.Get(1) != nil {
		inv = args.Get(1).(*domain.Invoice)
	}
	return p, inv, args.Error(2)
}

func (m *MockPaymentRepository) ListPayments(ctx context.Context, companyID int64, limit int, nextToken *string) ([]domain.Payment, *string, error) {
	args := m.Called(ctx, companyID, limit, nextToken)
	var payments []domain.Payment
	if args.Get(0) != nil {
		payments = args.Get(0).([]domain.Payment)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return payments, token, args.Error(2)
}

// --- Test Suite ---
type PaymentServiceTestSuite struct {
	suite.Suite
	mockRepo  *MockPaymentRepository
	service   portssvc.PaymentSvcFacade
	companyID int64
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPaymentRepository)
	suite.service = services.NewPaymentService(suite.mockRepo)
	suite.companyID = 1
}

// --- Test Cases ---

func (suite *PaymentServiceTestSuite) TestRecordPayment_Success() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	req := dto.RecordPaymentRequest{
		InvoiceID:     invoiceID,
		Amount:        decimal.NewFromInt(50000),
		PaymentMethod: "mpesa",
		PaymentDate:   "2025-06-15",
	}

	persisted := &domain.Payment{
		PaymentID: uuid.NewString(),
		CompanyID: suite.companyID,
		InvoiceID: invoiceID,
		Amount:    req.Amount,
	}
	updatedInvoice := &domain.Invoice{
		AmountPaid:    decimal.NewFromInt(50000),
		BalanceDue:    decimal.NewFromInt(83400),
		PaymentStatus: domain.PaymentPartial,
	}

	suite.mockRepo.On("ApplyPayment", ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.InvoiceID == invoiceID && p.CompanyID == suite.companyID &&
			p.Amount.Equal(req.Amount) && p.PaymentID != "" &&
			p.PaymentDate.Format("2006-01-02") == req.PaymentDate
	})).Return(persisted, updatedInvoice, nil).Once()

	payment, invoice, err := suite.service.RecordPayment(ctx, suite.companyID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(payment)
	suite.Require().NotNil(invoice)
	suite.Equal(domain.PaymentPartial, invoice.PaymentStatus)
	suite.True(invoice.BalanceDue.Equal(decimal.NewFromInt(83400)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.RecordPaymentRequest{
		InvoiceID:   uuid.NewString(),
		Amount:      decimal.Zero,
		PaymentDate: "2025-06-15",
	}

	payment, invoice, err := suite.service.RecordPayment(ctx, suite.companyID, req)

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ApplyPayment", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_InvalidDate() {
	ctx := context.Background()
	req := dto.RecordPaymentRequest{
		InvoiceID:   uuid.NewString(),
		Amount:      decimal.NewFromInt(100),
		PaymentDate: "15-06-2025",
	}

	payment, invoice, err := suite.service.RecordPayment(ctx, suite.companyID, req)

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ApplyPayment", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_Overpayment() {
	ctx := context.Background()
	req := dto.RecordPaymentRequest{
		InvoiceID:   uuid.NewString(),
		Amount:      decimal.NewFromInt(1000000),
		PaymentDate: "2025-06-15",
	}
	repoErr := fmt.Errorf("%w: payment amount 1000000 exceeds balance due 133400", apperrors.ErrValidation)

	suite.mockRepo.On("ApplyPayment", ctx, mock.AnythingOfType("domain.Payment")).Return(nil, nil, repoErr).Once()

	payment, invoice, err := suite.service.RecordPayment(ctx, suite.companyID, req)

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_InvoiceNotFound() {
	ctx := context.Background()
	req := dto.RecordPaymentRequest{
		InvoiceID:   uuid.NewString(),
		Amount:      decimal.NewFromInt(100),
		PaymentDate: "2025-06-15",
	}

	suite.mockRepo.On("ApplyPayment", ctx, mock.AnythingOfType("domain.Payment")).Return(nil, nil, apperrors.ErrNotFound).Once()

	payment, invoice, err := suite.service.RecordPayment(ctx, suite.companyID, req)

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestListPayments_Success() {
	ctx := context.Background()
	expected := []domain.Payment{
		{PaymentID: uuid.NewString(), Amount: decimal.NewFromInt(50000)},
		{PaymentID: uuid.NewString(), Amount: decimal.NewFromInt(83400)},
	}

	suite.mockRepo.On("ListPayments", ctx, suite.companyID, 20, (*string)(nil)).Return(expected, nil, nil).Once()

	payments, token, err := suite.service.ListPayments(ctx, suite.companyID, 20, nil)

	suite.Require().NoError(err)
	suite.Equal(expected, payments)
	suite.Nil(token)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestListPayments_Empty() {
	ctx := context.Background()

	suite.mockRepo.On("ListPayments", ctx, suite.companyID, 20, (*string)(nil)).Return(nil, nil, nil).Once()

	payments, token, err := suite.service.ListPayments(ctx, suite.companyID, 20, nil)

	suite.Require().NoError(err)
	suite.NotNil(payments)
	suite.Empty(payments)
	suite.Nil(token)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestPaymentService(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}

// --- Concurrent allocation ---

// fakePaymentStore stands in for the pgsql repository in concurrency tests.
// The mutex plays the role of the invoice row lock: ApplyPayment calls
// serialize, and each one allocates against the balance the previous call
// left behind.
type fakePaymentStore struct {
	mu      sync.Mutex
	invoice domain.Invoice
	applied int
}

var _ portsrepo.PaymentRepositoryFacade = (*fakePaymentStore)(nil)

func (f *fakePaymentStore) ApplyPayment(ctx context.Context, payment domain.Payment) (*domain.Payment, *domain.Invoice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	allocation, err := billing.AllocatePayment(f.invoice.Total, f.invoice.AmountPaid, payment.Amount)
	if err != nil {
		return nil, nil, err
	}
	f.invoice.AmountPaid = allocation.AmountPaid
	f.invoice.BalanceDue = allocation.BalanceDue
	f.invoice.PaymentStatus = allocation.PaymentStatus
	f.applied++

	updated := f.invoice
	return &payment, &updated, nil
}

func (f *fakePaymentStore) ListPayments(ctx context.Context, companyID int64, limit int, nextToken *string) ([]domain.Payment, *string, error) {
	return nil, nil, nil
}

func TestRecordPayment_ConcurrentPaymentsConverge(t *testing.T) {
	const workers = 8
	total := decimal.NewFromInt(133400)
	share := decimal.NewFromInt(16675) // 133400 / 8
	invoiceID := uuid.NewString()

	store := &fakePaymentStore{
		invoice: domain.Invoice{
			Document: domain.Document{
				DocumentID: invoiceID,
				Total:      total,
			},
			AmountPaid:    decimal.Zero,
			BalanceDue:    total,
			PaymentStatus: domain.PaymentPending,
		},
	}
	service := services.NewPaymentService(store)

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := service.RecordPayment(context.Background(), 1, dto.RecordPaymentRequest{
				InvoiceID:   invoiceID,
				Amount:      share,
				PaymentDate: "2025-06-15",
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	require.Equal(t, workers, store.applied)
	require.True(t, store.invoice.AmountPaid.Equal(total), "amount paid = %s", store.invoice.AmountPaid)
	require.True(t, store.invoice.BalanceDue.IsZero(), "balance due = %s", store.invoice.BalanceDue)
	require.Equal(t, domain.PaymentPaid, store.invoice.PaymentStatus)
}

func TestRecordPayment_ConcurrentPaymentsNeverOverSettle(t *testing.T) {
	const workers = 5
	total := decimal.NewFromInt(100000)
	half := decimal.NewFromInt(50000)
	invoiceID := uuid.NewString()

	store := &fakePaymentStore{
		invoice: domain.Invoice{
			Document: domain.Document{
				DocumentID: invoiceID,
				Total:      total,
			},
			AmountPaid:    decimal.Zero,
			BalanceDue:    total,
			PaymentStatus: domain.PaymentPending,
		},
	}
	service := services.NewPaymentService(store)

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := service.RecordPayment(context.Background(), 1, dto.RecordPaymentRequest{
				InvoiceID:   invoiceID,
				Amount:      half,
				PaymentDate: "2025-06-15",
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var rejected int
	for err := range errs {
		if err != nil {
			require.ErrorIs(t, err, apperrors.ErrValidation)
			rejected++
		}
	}

	// Only two half payments fit; every other attempt must bounce off the
	// remaining balance rather than drive it negative.
	require.Equal(t, workers-2, rejected)
	require.Equal(t, 2, store.applied)
	require.True(t, store.invoice.AmountPaid.Equal(total), "amount paid = %s", store.invoice.AmountPaid)
	require.True(t, store.invoice.BalanceDue.IsZero(), "balance due = %s", store.invoice.BalanceDue)
	require.Equal(t, domain.PaymentPaid, store.invoice.PaymentStatus)
}
