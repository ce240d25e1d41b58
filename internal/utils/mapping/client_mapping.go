package mapping

import (
	"github.com/aksagenset/invoquot/internal/core/domain"
	"github.com/aksagenset/invoquot/internal/models"
)

// ToModelClient converts a domain Client to a model Client.
func ToModelClient(d domain.Client) models.Client {
	return models.Client{
		ClientID:    d.ClientID,
		CompanyID:   d.CompanyID,
		Name:        d.Name,
		CompanyName: d.CompanyName,
		Email:       d.Email,
		Phone:       d.Phone,
		Address:     d.Address,
		Type:        models.ClientType(d.Type),
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainClient converts a model Client to a domain Client.
func ToDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID:    m.ClientID,
		CompanyID:   m.CompanyID,
		Name:        m.Name,
		CompanyName: m.CompanyName,
		Email:       m.Email,
		Phone:       m.Phone,
		Address:     m.Address,
		Type:        domain.ClientType(m.Type),
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainClientSlice converts a slice of model Clients to domain Clients.
func ToDomainClientSlice(ms []models.Client) []domain.Client {
	ds := make([]domain.Client, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainClient(m)
	}
	return ds
}
