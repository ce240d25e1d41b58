package mapping

import (
	"github.com/aksagenset/invoquot/internal/core/domain"
	"github.com/aksagenset/invoquot/internal/models"
)

// ToModelLineItems converts domain line items to the persisted JSON shape.
func ToModelLineItems(ds []domain.LineItem) []models.LineItem {
	ms := make([]models.LineItem, len(ds))
	for i, d := range ds {
		ms[i] = models.LineItem{
			Description: d.Description,
			Quantity:    d.Quantity,
			UnitPrice:   d.UnitPrice,
		}
	}
	return ms
}

// ToDomainLineItems converts persisted line items back to domain line items.
func ToDomainLineItems(ms []models.LineItem) []domain.LineItem {
	ds := make([]domain.LineItem, len(ms))
	for i, m := range ms {
		ds[i] = domain.LineItem{
			Description: m.Description,
			Quantity:    m.Quantity,
			UnitPrice:   m.UnitPrice,
		}
	}
	return ds
}

// ToModelInvoice converts a domain Invoice to a model Invoice.
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:     d.DocumentID,
		InvoiceNumber: d.Number,
		CompanyID:     d.CompanyID,
		ClientID:      d.ClientID,
		IssueDate:     d.IssueDate,
		DueDate:       d.DueDate,
		Items:         ToModelLineItems(d.Items),
		Subtotal:      d.Subtotal,
		TaxRate:       d.TaxRate,
		TaxAmount:     d.TaxAmount,
		Total:         d.Total,
		CurrencyCode:  d.CurrencyCode,
		Notes:         d.Notes,
		Status:        models.DocumentStatus(d.Status),
		AmountPaid:    d.AmountPaid,
		BalanceDue:    d.BalanceDue,
		PaymentStatus: models.PaymentStatus(d.PaymentStatus),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvoice converts a model Invoice to a domain Invoice.
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		Document: domain.Document{
			DocumentID:    m.InvoiceID,
			Number:        m.InvoiceNumber,
			CompanyID:     m.CompanyID,
			ClientID:      m.ClientID,
			IssueDate:     m.IssueDate,
			Items:         ToDomainLineItems(m.Items),
			Subtotal:      m.Subtotal,
			TaxRate:       m.TaxRate,
			TaxAmount:     m.TaxAmount,
			Total:         m.Total,
			CurrencyCode:  m.CurrencyCode,
			Notes:         m.Notes,
			Status:        domain.DocumentStatus(m.Status),
			ClientName:    m.ClientName,
			ClientCompany: m.ClientCompany,
			ClientEmail:   m.ClientEmail,
			ClientPhone:   m.ClientPhone,
			ClientAddress: m.ClientAddress,
			AuditFields:   ToDomainAuditFields(m.AuditFields),
		},
		DueDate:       m.DueDate,
		AmountPaid:    m.AmountPaid,
		BalanceDue:    m.BalanceDue,
		PaymentStatus: domain.PaymentStatus(m.PaymentStatus),
	}
}

// ToDomainInvoiceSlice converts a slice of model Invoices to domain Invoices.
func ToDomainInvoiceSlice(ms []models.Invoice) []domain.Invoice {
	ds := make([]domain.Invoice, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvoice(m)
	}
	return ds
}

// ToModelQuotation converts a domain Quotation to a model Quotation.
func ToModelQuotation(d domain.Quotation) models.Quotation {
	return models.Quotation{
		QuotationID:  d.DocumentID,
		QuoteNumber:  d.Number,
		CompanyID:    d.CompanyID,
		ClientID:     d.ClientID,
		IssueDate:    d.IssueDate,
		ValidUntil:   d.ValidUntil,
		Items:        ToModelLineItems(d.Items),
		Subtotal:     d.Subtotal,
		TaxRate:      d.TaxRate,
		TaxAmount:    d.TaxAmount,
		Total:        d.Total,
		CurrencyCode: d.CurrencyCode,
		Notes:        d.Notes,
		Status:       models.DocumentStatus(d.Status),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainQuotation converts a model Quotation to a domain Quotation.
func ToDomainQuotation(m models.Quotation) domain.Quotation {
	return domain.Quotation{
		Document: domain.Document{
			DocumentID:    m.QuotationID,
			Number:        m.QuoteNumber,
			CompanyID:     m.CompanyID,
			ClientID:      m.ClientID,
			IssueDate:     m.IssueDate,
			Items:         ToDomainLineItems(m.Items),
			Subtotal:      m.Subtotal,
			TaxRate:       m.TaxRate,
			TaxAmount:     m.TaxAmount,
			Total:         m.Total,
			CurrencyCode:  m.CurrencyCode,
			Notes:         m.Notes,
			Status:        domain.DocumentStatus(m.Status),
			ClientName:    m.ClientName,
			ClientCompany: m.ClientCompany,
			ClientEmail:   m.ClientEmail,
			ClientPhone:   m.ClientPhone,
			ClientAddress: m.ClientAddress,
			AuditFields:   ToDomainAuditFields(m.AuditFields),
		},
		ValidUntil: m.ValidUntil,
	}
}

// ToDomainQuotationSlice converts a slice of model Quotations to domain Quotations.
func ToDomainQuotationSlice(ms []models.Quotation) []domain.Quotation {
	ds := make([]domain.Quotation, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainQuotation(m)
	}
	return ds
}
