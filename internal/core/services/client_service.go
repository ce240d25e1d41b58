package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aksagenset/invoquot/internal/core/domain"
	portsrepo "github.com/aksagenset/invoquot/internal/core/ports/repositories"
	"github.com/aksagenset/invoquot/internal/dto"
	"github.com/google/uuid"
)

// ClientService provides business logic for billable clients.
type ClientService struct {
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates a new ClientService.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

func (s *ClientService) CreateClient(ctx context.Context, companyID int64, req dto.CreateClientRequest) (*domain.Client, error) {
	// Input format validation is handled by DTO binding tags.
	now := time.Now()

	clientType := domain.ClientType(req.Type)
	if clientType == "" {
		clientType = domain.ClientIndividual
	}

	client := domain.Client{
		ClientID:    uuid.NewString(),
		CompanyID:   companyID,
		Name:        req.Name,
		CompanyName: req.CompanyName,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		Type:        clientType,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client in service: %w", err)
	}

	return &client, nil
}

func (s *ClientService) GetClientByID(ctx context.Context, companyID int64, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, companyID, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get client in service: %w", err)
	}
	return client, nil
}

func (s *ClientService) ListClients(ctx context.Context, companyID int64) ([]domain.Client, error) {
	clients, err := s.clientRepo.ListClients(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients in service: %w", err)
	}
	if clients == nil {
		return []domain.Client{}, nil
	}
	return clients, nil
}

func (s *ClientService) DeactivateClient(ctx context.Context, companyID int64, clientID string) error {
	// Issued documents keep referencing the client, so it is never deleted.
	if err := s.clientRepo.DeactivateClient(ctx, companyID, clientID, time.Now()); err != nil {
		return fmt.Errorf("failed to deactivate client in service: %w", err)
	}
	return nil
}
