package repositories

import (
	"context"
	"time"

	"github.com/aksagenset/invoquot/internal/core/domain"
)

// ClientReader defines read operations for client data.
type ClientReader interface {
	// FindClientByID retrieves a client by ID within the company scope.
	FindClientByID(ctx context.Context, companyID int64, clientID string) (*domain.Client, error)

	// ListClients retrieves all clients for a company, newest first.
	ListClients(ctx context.Context, companyID int64) ([]domain.Client, error)
}

// ClientWriter defines write operations for client data.
type ClientWriter interface {
	// SaveClient persists a new client.
	SaveClient(ctx context.Context, client domain.Client) error

	// DeactivateClient marks a client inactive. Clients are never deleted.
	DeactivateClient(ctx context.Context, companyID int64, clientID string, at time.Time) error
}

// ClientRepositoryFacade combines all client-related repository interfaces.
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
