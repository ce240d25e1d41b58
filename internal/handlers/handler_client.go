package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aksagenset/invoquot/internal/apperrors"
	portssvc "github.com/aksagenset/invoquot/internal/core/ports/services"
	"github.com/aksagenset/invoquot/internal/dto"
	"github.com/aksagenset/invoquot/internal/middleware"
	"github.com/gin-gonic/gin"
)

// clientHandler handles HTTP requests related to clients.
type clientHandler struct {
	clientService portssvc.ClientSvcFacade
}

// newClientHandler creates a new clientHandler.
func newClientHandler(cs portssvc.ClientSvcFacade) *clientHandler {
	return &clientHandler{
		clientService: cs,
	}
}

// registerClientRoutes registers routes related to clients.
func registerClientRoutes(rg *gin.RouterGroup, clientService portssvc.ClientSvcFacade) {
	h := newClientHandler(clientService)

	clients := rg.Group("/clients")
	{
		clients.POST("", h.createClient)
		clients.GET("", h.listClients)
		clients.GET("/:id", h.getClientByID)
		clients.DELETE("/:id", h.deactivateClient)
	}
}

// createClient godoc
// @Summary Create a new client
// @Description Adds a new billable client for the company
// @Tags clients
// @Accept  json
// @Produce  json
// @Param   client body dto.CreateClientRequest true "Client details"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create client"
// @Router /clients [post]
func (h *clientHandler) createClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateClient", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	companyID, ok := middleware.GetCompanyIDFromContext(c)
	if !ok {
		logger.Error("Company scope not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Company scope not resolved"})
		return
	}

	createdClient, err := h.clientService.CreateClient(c.Request.Context(), companyID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating client", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create client in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create client"})
		}
		return
	}

	logger.Info("Client created successfully", slog.String("client_id", createdClient.ClientID))
	c.JSON(http.StatusCreated, dto.ToClientResponse(createdClient))
}

// listClients godoc
// @Summary List clients
// @Description Retrieves all clients for the company, newest first
// @Tags clients
// @Produce  json
// @Success 200 {array} dto.ClientResponse
// @Failure 500 {object} map[string]string "Failed to list clients"
// @Router /clients [get]
func (h *clientHandler) listClients(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	companyID, ok := middleware.GetCompanyIDFromContext(c)
	if !ok {
		logger.Error("Company scope not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Company scope not resolved"})
		return
	}

	clients, err := h.clientService.ListClients(c.Request.Context(), companyID)
	if err != nil {
		logger.Error("Failed to list clients from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list clients"})
		return
	}

	c.JSON(http.StatusOK, dto.ToClientResponses(clients))
}

// getClientByID godoc
// @Summary Get a client by ID
// @Description Retrieves details for a specific client
// @Tags clients
// @Produce  json
// @Param   id path string true "Client ID"
// @Success 200 {object} dto.ClientResponse
// @Failure 404 {object} map[string]string "Client not found"
// @Failure 500 {object} map[string]string "Failed to retrieve client"
// @Router /clients/{id} [get]
func (h *clientHandler) getClientByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID := c.Param("id")

	companyID, ok := middleware.GetCompanyIDFromContext(c)
	if !ok {
		logger.Error("Company scope not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Company scope not resolved"})
		return
	}

	client, err := h.clientService.GetClientByID(c.Request.Context(), companyID, clientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Client not found", slog.String("client_id", clientID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		} else {
			logger.Error("Failed to get client from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve client"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// deactivateClient godoc
// @Summary Deactivate a client
// @Description Marks a client inactive; issued documents keep referencing it
// @Tags clients
// @Produce  json
// @Param   id path string true "Client ID"
// @Success 204 "Client deactivated"
// @Failure 404 {object} map[string]string "Client not found"
// @Failure 500 {object} map[string]string "Failed to deactivate client"
// @Router /clients/{id} [delete]
func (h *clientHandler) deactivateClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID := c.Param("id")

	companyID, ok := middleware.GetCompanyIDFromContext(c)
	if !ok {
		logger.Error("Company scope not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Company scope not resolved"})
		return
	}

	err := h.clientService.DeactivateClient(c.Request.Context(), companyID, clientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Client not found for deactivation", slog.String("client_id", clientID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		} else {
			logger.Error("Failed to deactivate client in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate client"})
		}
		return
	}

	logger.Info("Client deactivated", slog.String("client_id", clientID))
	c.Status(http.StatusNoContent)
}
