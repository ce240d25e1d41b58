package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aksagenset/invoquot/internal/apperrors"
	portssvc "github.com/aksagenset/invoquot/internal/core/ports/services"
	"github.com/aksagenset/invoquot/internal/dto"
	"github.com/aksagenset/invoquot/internal/middleware"
	"github.com/gin-gonic/gin"
)

// paymentHandler handles HTTP requests related to the payment ledger.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

// newPaymentHandler creates a new paymentHandler.
func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{
		paymentService: ps,
	}
}

// registerPaymentRoutes registers routes related to payments.
func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	payments := rg.Group("/payments")
	{
		payments.POST("", h.recordPayment)
		payments.GET("", h.listPayments)
	}
}

// recordPayment godoc
// @Summary Record a payment against an invoice
// @Description Applies a payment atomically; the invoice settlement fields update in the same transaction
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   payment body dto.RecordPaymentRequest true "Payment details"
// @Success 201 {object} dto.RecordPaymentResponse
// @Failure 400 {object} map[string]string "Invalid input or amount exceeds balance due"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to record payment"
// @Router /payments [post]
func (h *paymentHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	companyID, ok := middleware.GetCompanyIDFromContext(c)
	if !ok {
		logger.Error("Company scope not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Company scope not resolved"})
		return
	}

	payment, invoice, err := h.paymentService.RecordPayment(c.Request.Context(), companyID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error recording payment", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Invoice not found for payment", slog.String("invoice_id", req.InvoiceID))
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Invoice '%s' not found", req.InvoiceID)})
		default:
			logger.Error("Failed to record payment in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		}
		return
	}

	logger.Info("Payment recorded successfully",
		slog.String("payment_id", payment.PaymentID),
		slog.String("invoice_id", payment.InvoiceID),
		slog.String("payment_status", string(invoice.PaymentStatus)),
	)
	c.JSON(http.StatusCreated, dto.RecordPaymentResponse{
		Payment:       dto.ToPaymentResponse(payment),
		AmountPaid:    invoice.AmountPaid,
		BalanceDue:    invoice.BalanceDue,
		PaymentStatus: string(invoice.PaymentStatus),
	})
}

// listPayments godoc
// @Summary List payments
// @Description Retrieves payments for the company, newest first, joined with invoice and client display fields
// @Tags payments
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Cursor token from a previous page"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 400 {object} map[string]string "Invalid pagination token"
// @Failure 500 {object} map[string]string "Failed to list payments"
// @Router /payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	limit, nextToken := listParams(c)

	companyID, ok := middleware.GetCompanyIDFromContext(c)
	if !ok {
		logger.Error("Company scope not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Company scope not resolved"})
		return
	}

	payments, token, err := h.paymentService.ListPayments(c.Request.Context(), companyID, limit, nextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid pagination token for ListPayments", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination token"})
		} else {
			logger.Error("Failed to list payments from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payments"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ListPaymentsResponse{
		Payments:  dto.ToPaymentResponses(payments),
		NextToken: token,
	})
}
