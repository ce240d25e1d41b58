package services

import "github.com/aksagenset/invoquot/internal/core/domain"

// DocumentRenderer turns a fetched document into print-ready bytes.
// Rendering never mutates the document; re-rendering the same persisted
// document yields identical output. An un-renderable payload fails with
// apperrors.ErrRender rather than producing a partially broken document.
type DocumentRenderer interface {
	RenderInvoice(invoice domain.Invoice) ([]byte, error)
	RenderQuotation(quotation domain.Quotation) ([]byte, error)
}
