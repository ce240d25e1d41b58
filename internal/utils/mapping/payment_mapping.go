package mapping

import (
	"github.com/aksagenset/invoquot/internal/core/domain"
	"github.com/aksagenset/invoquot/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment.
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:       d.PaymentID,
		CompanyID:       d.CompanyID,
		InvoiceID:       d.InvoiceID,
		ClientID:        d.ClientID,
		Amount:          d.Amount,
		PaymentMethod:   d.PaymentMethod,
		PaymentDate:     d.PaymentDate,
		ReferenceNumber: d.ReferenceNumber,
		Notes:           d.Notes,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a model Payment to a domain Payment.
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:       m.PaymentID,
		CompanyID:       m.CompanyID,
		InvoiceID:       m.InvoiceID,
		ClientID:        m.ClientID,
		Amount:          m.Amount,
		PaymentMethod:   m.PaymentMethod,
		PaymentDate:     m.PaymentDate,
		ReferenceNumber: m.ReferenceNumber,
		Notes:           m.Notes,
		InvoiceNumber:   m.InvoiceNumber,
		ClientName:      m.ClientName,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPaymentSlice converts a slice of model Payments to domain Payments.
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
