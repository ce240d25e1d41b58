package services

import (
	"context"

	"github.com/aksagenset/invoquot/internal/core/domain"
	"github.com/aksagenset/invoquot/internal/dto"
)

// ClientReaderSvc defines read operations for client data.
type ClientReaderSvc interface {
	// GetClientByID retrieves a client within the company scope.
	GetClientByID(ctx context.Context, companyID int64, clientID string) (*domain.Client, error)

	// ListClients retrieves all clients for a company, newest first.
	ListClients(ctx context.Context, companyID int64) ([]domain.Client, error)
}

// ClientWriterSvc defines write operations for client data.
type ClientWriterSvc interface {
	// CreateClient persists a new client.
	CreateClient(ctx context.Context, companyID int64, req dto.CreateClientRequest) (*domain.Client, error)

	// DeactivateClient marks a client inactive.
	DeactivateClient(ctx context.Context, companyID int64, clientID string) error
}

// ClientSvcFacade combines all client-related service interfaces.
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
}
