package services_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/aksagenset/invoquot/internal/apperrors"
	"github.com/aksagenset/invoquot/internal/core/domain"
	portssvc "github.com/aksagenset/invoquot/internal/core/ports/services"
	"github.com/aksagenset/invoquot/internal/core/services"
	"github.com/aksagenset/invoquot/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock DocumentRepository ---
type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) FindInvoiceByID(ctx context.Context, companyID int64, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, companyID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockDocumentRepository) ListInvoices(ctx context.Context, companyID int64, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
	args := m.Called(ctx, companyID, limit, nextToken)
	var invoices []domain.Invoice
	if args.Get(0) != nil {
		invoices = args.Get(0).([]domain.Invoice)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return invoices, token, args.Error(2)
}

func (m *MockDocumentRepository) FindQuotationByID(ctx context.Context, companyID int64, quotationID string) (*domain.Quotation, error) {
	args := m.Called(ctx, companyID, quotationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quotation), args.Error(1)
}

func (m *MockDocumentRepository) ListQuotations(ctx context.Context, companyID int64, limit int, nextToken *string) ([]domain.Quotation, *string, error) {
	args := m.Called(ctx, companyID, limit, nextToken)
	var quotations []domain.Quotation
	if args.Get(0) != nil {
		quotations = args.Get(0).([]domain.Quotation)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return quotations, token, args.Error(2)
}

func (m *MockDocumentRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockDocumentRepository) SaveQuotation(ctx context.Context, quotation domain.Quotation) error {
	args := m.Called(ctx, quotation)
	return args.Error(0)
}

// --- Mock ClientReader ---
type MockClientReader struct {
	mock.Mock
}

func (m *MockClientReader) FindClientByID(ctx context.Context, companyID int64, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, companyID, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientReader) ListClients(ctx context.Context, companyID int64) ([]domain.Client, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

// --- Test Suite ---
type DocumentServiceTestSuite struct {
	suite.Suite
	mockDocRepo    *MockDocumentRepository
	mockClientRepo *MockClientReader
	service        portssvc.DocumentSvcFacade
	companyID      int64
	client         *domain.Client
}

func (suite *DocumentServiceTestSuite) SetupTest() {
	suite.mockDocRepo = new(MockDocumentRepository)
	suite.mockClientRepo = new(MockClientReader)
	suite.service = services.NewDocumentService(suite.mockDocRepo, suite.mockClientRepo, decimal.NewFromInt(16), "KES")
	suite.companyID = 1
	suite.client = &domain.Client{
		ClientID:    uuid.NewString(),
		CompanyID:   suite.companyID,
		Name:        "Jane Wanjiku",
		CompanyName: "Wanjiku Holdings Ltd",
		Email:       "jane@wanjiku.co.ke",
		Type:        domain.ClientCompany,
		IsActive:    true,
	}
}

var invoiceNumberPattern = regexp.MustCompile(`^INV-\d{6}-\d{3}$`)
var quoteNumberPattern = regexp.MustCompile(`^QUO-\d{6}-\d{3}$`)

func (suite *DocumentServiceTestSuite) validInvoiceRequest() dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		ClientID:  suite.client.ClientID,
		IssueDate: "2025-06-01",
		DueDate:   "2025-07-01",
		Items: []dto.LineItemRequest{
			{Description: "Consulting", Quantity: 2, UnitPrice: decimal.NewFromInt(50000)},
			{Description: "Hosting", Quantity: 1, UnitPrice: decimal.NewFromInt(15000)},
		},
	}
}

// --- Test Cases ---

func (suite *DocumentServiceTestSuite) TestCreateInvoice_Success() {
	ctx := context.Background()
	req := suite.validInvoiceRequest()

	suite.mockClientRepo.On("FindClientByID", ctx, suite.companyID, req.ClientID).Return(suite.client, nil).Once()
	suite.mockDocRepo.On("SaveInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.ClientID == suite.client.ClientID && invoiceNumberPattern.MatchString(inv.Number)
	})).Return(nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, suite.companyID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(invoice)
	suite.True(invoice.Subtotal.Equal(decimal.NewFromInt(115000)), "subtotal was %s", invoice.Subtotal)
	suite.True(invoice.TaxAmount.Equal(decimal.NewFromInt(18400)), "tax was %s", invoice.TaxAmount)
	suite.True(invoice.Total.Equal(decimal.NewFromInt(133400)), "total was %s", invoice.Total)
	suite.True(invoice.AmountPaid.IsZero())
	suite.True(invoice.BalanceDue.Equal(invoice.Total))
	suite.Equal(domain.PaymentPending, invoice.PaymentStatus)
	suite.Equal(domain.StatusDraft, invoice.Status)
	suite.Equal("KES", invoice.CurrencyCode)
	suite.Equal(suite.client.Name, invoice.ClientName)
	suite.Equal(suite.client.CompanyName, invoice.ClientCompany)
	suite.Equal(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), invoice.DueDate)
	suite.mockDocRepo.AssertExpectations(suite.T())
	suite.mockClientRepo.AssertExpectations(suite.T())
}

func (suite *DocumentServiceTestSuite) TestCreateInvoice_ExplicitTaxRate() {
	ctx := context.Background()
	req := suite.validInvoiceRequest()
	zero := decimal.Zero
	req.TaxRate = &zero

	suite.mockClientRepo.On("FindClientByID", ctx, suite.companyID, req.ClientID).Return(suite.client, nil).Once()
	suite.mockDocRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice")).Return(nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, suite.companyID, req)

	suite.Require().NoError(err)
	suite.True(invoice.TaxAmount.IsZero())
	suite.True(invoice.Total.Equal(invoice.Subtotal))
	suite.mockDocRepo.AssertExpectations(suite.T())
}

func (suite *DocumentServiceTestSuite) TestCreateInvoice_RetriesOnNumberCollision() {
	ctx := context.Background()
	req := suite.validInvoiceRequest()

	suite.mockClientRepo.On("FindClientByID", ctx, suite.companyID, req.ClientID).Return(suite.client, nil).Once()
	suite.mockDocRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice")).Return(apperrors.ErrDuplicate).Once()
	suite.mockDocRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice")).Return(nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, suite.companyID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(invoice)
	suite.mockDocRepo.AssertNumberOfCalls(suite.T(), "SaveInvoice", 2)
	suite.mockDocRepo.AssertExpectations(suite.T())
}

func (suite *DocumentServiceTestSuite) TestCreateInvoice_NumberCollisionExhausted() {
	ctx := context.Background()
	req := suite.validInvoiceRequest()

	suite.mockClientRepo.On("FindClientByID", ctx, suite.companyID, req.ClientID).Return(suite.client, nil).Once()
	suite.mockDocRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice")).Return(apperrors.ErrDuplicate).Times(3)

	invoice, err := suite.service.CreateInvoice(ctx, suite.companyID, req)

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockDocRepo.AssertNumberOfCalls(suite.T(), "SaveInvoice", 3)
	suite.mockDocRepo.AssertExpectations(suite.T())
}

func (suite *DocumentServiceTestSuite) TestCreateInvoice_ClientNotFound() {
	ctx := context.Background()
	req := suite.validInvoiceRequest()

	suite.mockClientRepo.On("FindClientByID", ctx, suite.companyID, req.ClientID).Return(nil, apperrors.ErrNotFound).Once()

	invoice, err := suite.service.CreateInvoice(ctx, suite.companyID, req)

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockDocRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func (suite *DocumentServiceTestSuite) TestCreateInvoice_InvalidIssueDate() {
	ctx := context.Background()
	req := suite.validInvoiceRequest()
	req.IssueDate = "01/06/2025"

	invoice, err := suite.service.CreateInvoice(ctx, suite.companyID, req)

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *DocumentServiceTestSuite) TestCreateInvoice_DueDateBeforeIssueDate() {
	ctx := context.Background()
	req := suite.validInvoiceRequest()
	req.DueDate = "2025-05-01"

	invoice, err := suite.service.CreateInvoice(ctx, suite.companyID, req)

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *DocumentServiceTestSuite) TestCreateInvoice_NegativeUnitPrice() {
	ctx := context.Background()
	req := suite.validInvoiceRequest()
	req.Items[0].UnitPrice = decimal.NewFromInt(-5)

	suite.mockClientRepo.On("FindClientByID", ctx, suite.companyID, req.ClientID).Return(suite.client, nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, suite.companyID, req)

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockDocRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func (suite *DocumentServiceTestSuite) TestCreateQuotation_Success() {
	ctx := context.Background()
	req := dto.CreateQuotationRequest{
		ClientID:   suite.client.ClientID,
		IssueDate:  "2025-06-01",
		ValidUntil: "2025-06-30",
		Items: []dto.LineItemRequest{
			{Description: "Site survey", Quantity: 1, UnitPrice: decimal.NewFromInt(20000)},
		},
	}

	suite.mockClientRepo.On("FindClientByID", ctx, suite.companyID, req.ClientID).Return(suite.client, nil).Once()
	suite.mockDocRepo.On("SaveQuotation", ctx, mock.MatchedBy(func(q domain.Quotation) bool {
		return quoteNumberPattern.MatchString(q.Number)
	})).Return(nil).Once()

	quotation, err := suite.service.CreateQuotation(ctx, suite.companyID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(quotation)
	suite.True(quotation.Subtotal.Equal(decimal.NewFromInt(20000)))
	suite.True(quotation.TaxAmount.Equal(decimal.NewFromInt(3200)))
	suite.True(quotation.Total.Equal(decimal.NewFromInt(23200)))
	suite.Equal(time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), quotation.ValidUntil)
	suite.mockDocRepo.AssertExpectations(suite.T())
}

func (suite *DocumentServiceTestSuite) TestCreateQuotation_ValidityBeforeIssueDate() {
	ctx := context.Background()
	req := dto.CreateQuotationRequest{
		ClientID:   suite.client.ClientID,
		IssueDate:  "2025-06-01",
		ValidUntil: "2025-05-01",
		Items: []dto.LineItemRequest{
			{Description: "Site survey", Quantity: 1, UnitPrice: decimal.NewFromInt(20000)},
		},
	}

	quotation, err := suite.service.CreateQuotation(ctx, suite.companyID, req)

	suite.Require().Error(err)
	suite.Nil(quotation)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *DocumentServiceTestSuite) TestGetInvoice_NotFound() {
	ctx := context.Background()
	invoiceID := uuid.NewString()

	suite.mockDocRepo.On("FindInvoiceByID", ctx, suite.companyID, invoiceID).Return(nil, apperrors.ErrNotFound).Once()

	invoice, err := suite.service.GetInvoice(ctx, suite.companyID, invoiceID)

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockDocRepo.AssertExpectations(suite.T())
}

func (suite *DocumentServiceTestSuite) TestListInvoices_Empty() {
	ctx := context.Background()

	suite.mockDocRepo.On("ListInvoices", ctx, suite.companyID, 20, (*string)(nil)).Return(nil, nil, nil).Once()

	invoices, token, err := suite.service.ListInvoices(ctx, suite.companyID, 20, nil)

	suite.Require().NoError(err)
	suite.NotNil(invoices)
	suite.Empty(invoices)
	suite.Nil(token)
	suite.mockDocRepo.AssertExpectations(suite.T())
}

func (suite *DocumentServiceTestSuite) TestListQuotations_PassesToken() {
	ctx := context.Background()
	token := "b2s9"
	next := "next"

	suite.mockDocRepo.On("ListQuotations", ctx, suite.companyID, 10, &token).
		Return([]domain.Quotation{{Document: domain.Document{DocumentID: uuid.NewString()}}}, &next, nil).Once()

	quotations, nextToken, err := suite.service.ListQuotations(ctx, suite.companyID, 10, &token)

	suite.Require().NoError(err)
	suite.Len(quotations, 1)
	suite.Require().NotNil(nextToken)
	suite.Equal(next, *nextToken)
	suite.mockDocRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestDocumentService(t *testing.T) {
	suite.Run(t, new(DocumentServiceTestSuite))
}
