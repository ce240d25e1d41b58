package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aksagenset/invoquot/internal/apperrors"
	portssvc "github.com/aksagenset/invoquot/internal/core/ports/services"
	"github.com/aksagenset/invoquot/internal/dto"
	"github.com/aksagenset/invoquot/internal/middleware"
	"github.com/gin-gonic/gin"
)

// invoiceHandler handles HTTP requests related to invoices.
type invoiceHandler struct {
	documentService portssvc.DocumentSvcFacade
	renderer        portssvc.DocumentRenderer
}

// newInvoiceHandler creates a new invoiceHandler.
func newInvoiceHandler(ds portssvc.DocumentSvcFacade, renderer portssvc.DocumentRenderer) *invoiceHandler {
	return &invoiceHandler{
		documentService: ds,
		renderer:        renderer,
	}
}

// registerInvoiceRoutes registers routes related to invoices.
func registerInvoiceRoutes(rg *gin.RouterGroup, documentService portssvc.DocumentSvcFacade, renderer portssvc.DocumentRenderer) {
	h := newInvoiceHandler(documentService, renderer)

	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.createInvoice)
		invoices.GET("", h.listInvoices)
		invoices.GET("/:id", h.getInvoiceByID)
		invoices.GET("/:id/pdf", h.getInvoicePDF)
	}
}

// listParams extracts the page size and cursor token from the query string.
func listParams(c *gin.Context) (int, *string) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		limit = 20
	}

	var nextToken *string
	if token := c.Query("nextToken"); token != "" {
		nextToken = &token
	}
	return limit, nextToken
}

// createInvoice godoc
// @Summary Create a new invoice
// @Description Creates an invoice; totals are recomputed from the submitted items
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Client not found"
// @Failure 409 {object} map[string]string "Invoice number allocation failed"
// @Failure 500 {object} map[string]string "Failed to create invoice"
// @Router /invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	companyID, ok := middleware.GetCompanyIDFromContext(c)
	if !ok {
		logger.Error("Company scope not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Company scope not resolved"})
		return
	}

	createdInvoice, err := h.documentService.CreateInvoice(c.Request.Context(), companyID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error creating invoice", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Client not found for invoice", slog.String("client_id", req.ClientID))
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Client '%s' not found", req.ClientID)})
		case errors.Is(err, apperrors.ErrDuplicate):
			logger.Warn("Invoice number allocation exhausted", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": "Could not allocate a unique invoice number, please retry"})
		default:
			logger.Error("Failed to create invoice in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create invoice"})
		}
		return
	}

	logger.Info("Invoice created successfully",
		slog.String("invoice_id", createdInvoice.DocumentID),
		slog.String("invoice_number", createdInvoice.Number),
	)
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(createdInvoice))
}

// listInvoices godoc
// @Summary List invoices
// @Description Retrieves invoices for the company, newest first, with cursor pagination
// @Tags invoices
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Cursor token from a previous page"
// @Success 200 {object} dto.ListInvoicesResponse
// @Failure 400 {object} map[string]string "Invalid pagination token"
// @Failure 500 {object} map[string]string "Failed to list invoices"
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	limit, nextToken := listParams(c)

	companyID, ok := middleware.GetCompanyIDFromContext(c)
	if !ok {
		logger.Error("Company scope not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Company scope not resolved"})
		return
	}

	invoices, token, err := h.documentService.ListInvoices(c.Request.Context(), companyID, limit, nextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid pagination token for ListInvoices", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination token"})
		} else {
			logger.Error("Failed to list invoices from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list invoices"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ListInvoicesResponse{
		Invoices:  dto.ToInvoiceResponses(invoices),
		NextToken: token,
	})
}

// getInvoiceByID godoc
// @Summary Get an invoice by ID
// @Description Retrieves a specific invoice with its client display fields
// @Tags invoices
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to retrieve invoice"
// @Router /invoices/{id} [get]
func (h *invoiceHandler) getInvoiceByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("id")

	companyID, ok := middleware.GetCompanyIDFromContext(c)
	if !ok {
		logger.Error("Company scope not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Company scope not resolved"})
		return
	}

	invoice, err := h.documentService.GetInvoice(c.Request.Context(), companyID, invoiceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Invoice not found", slog.String("invoice_id", invoiceID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		} else {
			logger.Error("Failed to get invoice from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve invoice"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// getInvoicePDF godoc
// @Summary Download an invoice as PDF
// @Description Renders the persisted invoice to a print-ready PDF
// @Tags invoices
// @Produce  application/pdf
// @Param   id path string true "Invoice ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to generate PDF"
// @Router /invoices/{id}/pdf [get]
func (h *invoiceHandler) getInvoicePDF(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("id")

	companyID, ok := middleware.GetCompanyIDFromContext(c)
	if !ok {
		logger.Error("Company scope not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Company scope not resolved"})
		return
	}

	invoice, err := h.documentService.GetInvoice(c.Request.Context(), companyID, invoiceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Invoice not found for PDF", slog.String("invoice_id", invoiceID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		} else {
			logger.Error("Failed to get invoice for PDF", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve invoice"})
		}
		return
	}

	data, err := h.renderer.RenderInvoice(*invoice)
	if err != nil {
		logger.Error("Failed to render invoice PDF", slog.String("invoice_id", invoiceID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%s.pdf", invoice.Number))
	c.Data(http.StatusOK, "application/pdf", data)
}
