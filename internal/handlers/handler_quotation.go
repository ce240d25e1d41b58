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

// quotationHandler handles HTTP requests related to quotations.
type quotationHandler struct {
	documentService portssvc.DocumentSvcFacade
	renderer        portssvc.DocumentRenderer
}

// newQuotationHandler creates a new quotationHandler.
func newQuotationHandler(ds portssvc.DocumentSvcFacade, renderer portssvc.DocumentRenderer) *quotationHandler {
	return &quotationHandler{
		documentService: ds,
		renderer:        renderer,
	}
}

// registerQuotationRoutes registers routes related to quotations.
func registerQuotationRoutes(rg *gin.RouterGroup, documentService portssvc.DocumentSvcFacade, renderer portssvc.DocumentRenderer) {
	h := newQuotationHandler(documentService, renderer)

	quotations := rg.Group("/quotations")
	{
		quotations.POST("", h.createQuotation)
		quotations.GET("", h.listQuotations)
		quotations.GET("/:id", h.getQuotationByID)
		quotations.GET("/:id/pdf", h.getQuotationPDF)
	}
}

// createQuotation godoc
// @Summary Create a new quotation
// @Description Creates a quotation; totals are recomputed from the submitted items
// @Tags quotations
// @Accept  json
// @Produce  json
// @Param   quotation body dto.CreateQuotationRequest true "Quotation details"
// @Success 201 {object} dto.QuotationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Client not found"
// @Failure 409 {object} map[string]string "Quote number allocation failed"
// @Failure 500 {object} map[string]string "Failed to create quotation"
// @Router /quotations [post]
func (h *quotationHandler) createQuotation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateQuotation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	companyID, ok := middleware.GetCompanyIDFromContext(c)
	if !ok {
		logger.Error("Company scope not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Company scope not resolved"})
		return
	}

	createdQuotation, err := h.documentService.CreateQuotation(c.Request.Context(), companyID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error creating quotation", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Client not found for quotation", slog.String("client_id", req.ClientID))
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Client '%s' not found", req.ClientID)})
		case errors.Is(err, apperrors.ErrDuplicate):
			logger.Warn("Quote number allocation exhausted", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": "Could not allocate a unique quote number, please retry"})
		default:
			logger.Error("Failed to create quotation in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create quotation"})
		}
		return
	}

	logger.Info("Quotation created successfully",
		slog.String("quotation_id", createdQuotation.DocumentID),
		slog.String("quote_number", createdQuotation.Number),
	)
	c.JSON(http.StatusCreated, dto.ToQuotationResponse(createdQuotation))
}

// listQuotations godoc
// @Summary List quotations
// @Description Retrieves quotations for the company, newest first, with cursor pagination
// @Tags quotations
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Cursor token from a previous page"
// @Success 200 {object} dto.ListQuotationsResponse
// @Failure 400 {object} map[string]string "Invalid pagination token"
// @Failure 500 {object} map[string]string "Failed to list quotations"
// @Router /quotations [get]
func (h *quotationHandler) listQuotations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	limit, nextToken := listParams(c)

	companyID, ok := middleware.GetCompanyIDFromContext(c)
	if !ok {
		logger.Error("Company scope not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Company scope not resolved"})
		return
	}

	quotations, token, err := h.documentService.ListQuotations(c.Request.Context(), companyID, limit, nextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid pagination token for ListQuotations", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination token"})
		} else {
			logger.Error("Failed to list quotations from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list quotations"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ListQuotationsResponse{
		Quotations: dto.ToQuotationResponses(quotations),
		NextToken:  token,
	})
}

// getQuotationByID godoc
// @Summary Get a quotation by ID
// @Description Retrieves a specific quotation with its client display fields
// @Tags quotations
// @Produce  json
// @Param   id path string true "Quotation ID"
// @Success 200 {object} dto.QuotationResponse
// @Failure 404 {object} map[string]string "Quotation not found"
// @Failure 500 {object} map[string]string "Failed to retrieve quotation"
// @Router /quotations/{id} [get]
func (h *quotationHandler) getQuotationByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	quotationID := c.Param("id")

	companyID, ok := middleware.GetCompanyIDFromContext(c)
	if !ok {
		logger.Error("Company scope not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Company scope not resolved"})
		return
	}

	quotation, err := h.documentService.GetQuotation(c.Request.Context(), companyID, quotationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Quotation not found", slog.String("quotation_id", quotationID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Quotation not found"})
		} else {
			logger.Error("Failed to get quotation from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve quotation"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToQuotationResponse(quotation))
}

// getQuotationPDF godoc
// @Summary Download a quotation as PDF
// @Description Renders the persisted quotation to a print-ready PDF
// @Tags quotations
// @Produce  application/pdf
// @Param   id path string true "Quotation ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string "Quotation not found"
// @Failure 500 {object} map[string]string "Failed to generate PDF"
// @Router /quotations/{id}/pdf [get]
func (h *quotationHandler) getQuotationPDF(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	quotationID := c.Param("id")

	companyID, ok := middleware.GetCompanyIDFromContext(c)
	if !ok {
		logger.Error("Company scope not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Company scope not resolved"})
		return
	}

	quotation, err := h.documentService.GetQuotation(c.Request.Context(), companyID, quotationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Quotation not found for PDF", slog.String("quotation_id", quotationID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Quotation not found"})
		} else {
			logger.Error("Failed to get quotation for PDF", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve quotation"})
		}
		return
	}

	data, err := h.renderer.RenderQuotation(*quotation)
	if err != nil {
		logger.Error("Failed to render quotation PDF", slog.String("quotation_id", quotationID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=quotation-%s.pdf", quotation.Number))
	c.Data(http.StatusOK, "application/pdf", data)
}
