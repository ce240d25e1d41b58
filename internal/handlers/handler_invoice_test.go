package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aksagenset/invoquot/internal/apperrors"
	"github.com/aksagenset/invoquot/internal/core/domain"
	portssvc "github.com/aksagenset/invoquot/internal/core/ports/services"
	"github.com/aksagenset/invoquot/internal/dto"
	"github.com/aksagenset/invoquot/internal/handlers"
	"github.com/aksagenset/invoquot/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock DocumentService ---
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) CreateInvoice(ctx context.Context, companyID int64, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	args := m.Called(ctx, companyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockDocumentService) CreateQuotation(ctx context.Context, companyID int64, req dto.CreateQuotationRequest) (*domain.Quotation, error) {
	args := m.Called(ctx, companyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quotation), args.Error(1)
}

func (m *MockDocumentService) GetInvoice(ctx context.Context, companyID int64, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, companyID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockDocumentService) ListInvoices(ctx context.Context, companyID int64, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
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

func (m *MockDocumentService) GetQuotation(ctx context.Context, companyID int64, quotationID string) (*domain.Quotation, error) {
	args := m.Called(ctx, companyID, quotationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quotation), args.Error(1)
}

func (m *MockDocumentService) ListQuotations(ctx context.Context, companyID int64, limit int, nextToken *string) ([]domain.Quotation, *string, error) {
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

// Ensure mock implements the interface
var _ portssvc.DocumentSvcFacade = (*MockDocumentService)(nil)

// --- Stub renderer ---
type stubRenderer struct{}

func (stubRenderer) RenderInvoice(domain.Invoice) ([]byte, error) {
	return []byte("%PDF-stub"), nil
}

func (stubRenderer) RenderQuotation(domain.Quotation) ([]byte, error) {
	return []byte("%PDF-stub"), nil
}

// --- Test Suite ---
type InvoiceHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockDocumentService
}

func (suite *InvoiceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockService = new(MockDocumentService)

	cfg := &config.Config{DefaultCompanyID: 1, IsProduction: true}
	services := &portssvc.ServiceContainer{
		Document: suite.mockService,
		Renderer: stubRenderer{},
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func testInvoice() *domain.Invoice {
	createdAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return &domain.Invoice{
		Document: domain.Document{
			DocumentID: uuid.NewString(),
			Number:     "INV-250601-042",
			CompanyID:  1,
			ClientID:   uuid.NewString(),
			IssueDate:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			Items: []domain.LineItem{
				{Description: "Consulting", Quantity: 2, UnitPrice: decimal.NewFromInt(50000)},
			},
			Subtotal:     decimal.NewFromInt(100000),
			TaxRate:      decimal.NewFromInt(16),
			TaxAmount:    decimal.NewFromInt(16000),
			Total:        decimal.NewFromInt(116000),
			CurrencyCode: "KES",
			Status:       domain.StatusDraft,
			AuditFields: domain.AuditFields{
				CreatedAt:     createdAt,
				LastUpdatedAt: createdAt,
			},
		},
		DueDate:       time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		AmountPaid:    decimal.Zero,
		BalanceDue:    decimal.NewFromInt(116000),
		PaymentStatus: domain.PaymentPending,
	}
}

// --- Test Cases ---

func (suite *InvoiceHandlerTestSuite) TestCreateInvoice_Success() {
	invoice := testInvoice()
	suite.mockService.On("CreateInvoice", mock.Anything, int64(1), mock.AnythingOfType("dto.CreateInvoiceRequest")).
		Return(invoice, nil).Once()

	body, _ := json.Marshal(gin.H{
		"clientID":  invoice.ClientID,
		"issueDate": "2025-06-01",
		"dueDate":   "2025-07-01",
		"items": []gin.H{
			{"description": "Consulting", "quantity": 2, "unit_price": "50000"},
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.InvoiceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(invoice.Number, resp.InvoiceNumber)
	suite.Equal("pending", resp.PaymentStatus)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *InvoiceHandlerTestSuite) TestCreateInvoice_MissingItems() {
	body, _ := json.Marshal(gin.H{
		"clientID":  uuid.NewString(),
		"issueDate": "2025-06-01",
		"dueDate":   "2025-07-01",
		"items":     []gin.H{},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateInvoice", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceHandlerTestSuite) TestCreateInvoice_ClientNotFound() {
	suite.mockService.On("CreateInvoice", mock.Anything, int64(1), mock.AnythingOfType("dto.CreateInvoiceRequest")).
		Return(nil, fmt.Errorf("%w: client not found", apperrors.ErrNotFound)).Once()

	body, _ := json.Marshal(gin.H{
		"clientID":  uuid.NewString(),
		"issueDate": "2025-06-01",
		"dueDate":   "2025-07-01",
		"items": []gin.H{
			{"description": "Consulting", "quantity": 1, "unit_price": "100"},
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *InvoiceHandlerTestSuite) TestGetInvoice_NotFound() {
	invoiceID := uuid.NewString()
	suite.mockService.On("GetInvoice", mock.Anything, int64(1), invoiceID).
		Return(nil, apperrors.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/invoices/"+invoiceID, nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *InvoiceHandlerTestSuite) TestGetInvoicePDF_Success() {
	invoice := testInvoice()
	suite.mockService.On("GetInvoice", mock.Anything, int64(1), invoice.DocumentID).
		Return(invoice, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/invoices/"+invoice.DocumentID+"/pdf", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("application/pdf", w.Header().Get("Content-Type"))
	suite.Equal(fmt.Sprintf("attachment; filename=invoice-%s.pdf", invoice.Number), w.Header().Get("Content-Disposition"))
	suite.Equal("%PDF-stub", w.Body.String())
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *InvoiceHandlerTestSuite) TestListInvoices_CompanyHeaderScopesRequest() {
	suite.mockService.On("ListInvoices", mock.Anything, int64(7), 20, (*string)(nil)).
		Return([]domain.Invoice{}, nil, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/invoices", nil)
	req.Header.Set("X-Company-ID", "7")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *InvoiceHandlerTestSuite) TestListInvoices_InvalidCompanyHeader() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/invoices", nil)
	req.Header.Set("X-Company-ID", "not-a-number")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListInvoices", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestInvoiceHandler(t *testing.T) {
	suite.Run(t, new(InvoiceHandlerTestSuite))
}
