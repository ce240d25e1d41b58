package dto

import (
	"github.com/aksagenset/invoquot/internal/core/domain"
)

// CreateClientRequest is the payload for creating a client.
type CreateClientRequest struct {
	Name        string `json:"name" binding:"required"`
	CompanyName string `json:"companyName"`
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Type        string `json:"type" binding:"omitempty,oneof=individual company"`
}

// ClientResponse is the client shape returned to callers.
type ClientResponse struct {
	ClientID    string `json:"clientID"`
	Name        string `json:"name"`
	CompanyName string `json:"companyName,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	Type        string `json:"type"`
	IsActive    bool   `json:"isActive"`
}

// ToClientResponse converts a domain Client to its response DTO.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:    c.ClientID,
		Name:        c.Name,
		CompanyName: c.CompanyName,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		Type:        string(c.Type),
		IsActive:    c.IsActive,
	}
}

// ToClientResponses converts a slice of domain Clients to response DTOs.
func ToClientResponses(cs []domain.Client) []ClientResponse {
	responses := make([]ClientResponse, len(cs))
	for i := range cs {
		responses[i] = ToClientResponse(&cs[i])
	}
	return responses
}
