package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aksagenset/invoquot/internal/apperrors"
	"github.com/aksagenset/invoquot/internal/core/domain"
	portsrepo "github.com/aksagenset/invoquot/internal/core/ports/repositories"
	"github.com/aksagenset/invoquot/internal/models"
	"github.com/aksagenset/invoquot/internal/utils/mapping"
	"github.com/aksagenset/invoquot/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultPageSize = 20

type PgxDocumentRepository struct {
	pool *pgxpool.Pool
}

// newPgxDocumentRepository creates a new repository for invoices and quotations.
func newPgxDocumentRepository(pool *pgxpool.Pool) portsrepo.DocumentRepositoryFacade {
	return &PgxDocumentRepository{pool: pool}
}

// Ensure PgxDocumentRepository implements portsrepo.DocumentRepositoryFacade
var _ portsrepo.DocumentRepositoryFacade = (*PgxDocumentRepository)(nil)

// marshalItems encodes line items for the JSONB items column.
func marshalItems(items []models.LineItem) ([]byte, error) {
	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal line items: %v", apperrors.ErrPersistence, err)
	}
	return data, nil
}

func unmarshalItems(data []byte) ([]models.LineItem, error) {
	var items []models.LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal line items: %v", apperrors.ErrPersistence, err)
	}
	return items, nil
}

// SaveInvoice inserts a new invoice. A number collision within the company
// surfaces as apperrors.ErrDuplicate so the caller can retry with a fresh number.
func (r *PgxDocumentRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)
	itemsJSON, err := marshalItems(m.Items)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO invoices (invoice_id, company_id, client_id, invoice_number, issue_date, due_date, items, subtotal, tax_rate, tax_amount, total, currency_code, notes, status, amount_paid, balance_due, payment_status, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err = r.pool.Exec(ctx, query,
		m.InvoiceID,
		m.CompanyID,
		m.ClientID,
		m.InvoiceNumber,
		m.IssueDate,
		m.DueDate,
		itemsJSON,
		m.Subtotal,
		m.TaxRate,
		m.TaxAmount,
		m.Total,
		m.CurrencyCode,
		m.Notes,
		m.Status,
		m.AmountPaid,
		m.BalanceDue,
		m.PaymentStatus,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: invoice number %s already exists for company %d", apperrors.ErrDuplicate, m.InvoiceNumber, m.CompanyID)
		}
		return fmt.Errorf("%w: failed to save invoice %s: %v", apperrors.ErrPersistence, m.InvoiceID, err)
	}
	return nil
}

// SaveQuotation inserts a new quotation.
func (r *PgxDocumentRepository) SaveQuotation(ctx context.Context, quotation domain.Quotation) error {
	m := mapping.ToModelQuotation(quotation)
	itemsJSON, err := marshalItems(m.Items)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO quotations (quotation_id, company_id, client_id, quote_number, issue_date, valid_until, items, subtotal, tax_rate, tax_amount, total, currency_code, notes, status, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err = r.pool.Exec(ctx, query,
		m.QuotationID,
		m.CompanyID,
		m.ClientID,
		m.QuoteNumber,
		m.IssueDate,
		m.ValidUntil,
		itemsJSON,
		m.Subtotal,
		m.TaxRate,
		m.TaxAmount,
		m.Total,
		m.CurrencyCode,
		m.Notes,
		m.Status,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: quote number %s already exists for company %d", apperrors.ErrDuplicate, m.QuoteNumber, m.CompanyID)
		}
		return fmt.Errorf("%w: failed to save quotation %s: %v", apperrors.ErrPersistence, m.QuotationID, err)
	}
	return nil
}

const invoiceSelectColumns = `
	i.invoice_id, i.company_id, i.client_id, i.invoice_number, i.issue_date, i.due_date, i.items,
	i.subtotal, i.tax_rate, i.tax_amount, i.total, i.currency_code, i.notes, i.status,
	i.amount_paid, i.balance_due, i.payment_status, i.created_at, i.last_updated_at,
	c.name, c.company_name, c.email, c.phone, c.address`

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var m models.Invoice
	var itemsJSON []byte
	err := row.Scan(
		&m.InvoiceID,
		&m.CompanyID,
		&m.ClientID,
		&m.InvoiceNumber,
		&m.IssueDate,
		&m.DueDate,
		&itemsJSON,
		&m.Subtotal,
		&m.TaxRate,
		&m.TaxAmount,
		&m.Total,
		&m.CurrencyCode,
		&m.Notes,
		&m.Status,
		&m.AmountPaid,
		&m.BalanceDue,
		&m.PaymentStatus,
		&m.CreatedAt,
		&m.LastUpdatedAt,
		&m.ClientName,
		&m.ClientCompany,
		&m.ClientEmail,
		&m.ClientPhone,
		&m.ClientAddress,
	)
	if err != nil {
		return m, err
	}
	m.Items, err = unmarshalItems(itemsJSON)
	return m, err
}

// FindInvoiceByID retrieves an invoice joined with its client display fields.
func (r *PgxDocumentRepository) FindInvoiceByID(ctx context.Context, companyID int64, invoiceID string) (*domain.Invoice, error) {
	query := `
		SELECT ` + invoiceSelectColumns + `
		FROM invoices i
		JOIN clients c ON c.client_id = i.client_id
		WHERE i.company_id = $1 AND i.invoice_id = $2;
	`
	m, err := scanInvoice(r.pool.QueryRow(ctx, query, companyID, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: failed to find invoice by ID %s: %v", apperrors.ErrPersistence, invoiceID, err)
	}

	invoice := mapping.ToDomainInvoice(m)
	return &invoice, nil
}

// ListInvoices retrieves a paginated list of invoices using token-based pagination.
func (r *PgxDocumentRepository) ListInvoices(ctx context.Context, companyID int64, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}

	query := `
		SELECT ` + invoiceSelectColumns + `
		FROM invoices i
		JOIN clients c ON c.client_id = i.client_id
		WHERE i.company_id = $1`
	args := []interface{}{companyID}

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		query += ` AND i.created_at < $2`
		args = append(args, lastCreatedAt)
	}

	// Fetch one extra row to detect whether another page exists.
	query += fmt.Sprintf(` ORDER BY i.created_at DESC LIMIT %d;`, limit+1)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to list invoices for company %d: %v", apperrors.ErrPersistence, companyID, err)
	}
	defer rows.Close()

	var invoices []models.Invoice
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: failed to scan invoice row: %v", apperrors.ErrPersistence, err)
		}
		invoices = append(invoices, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("%w: error iterating invoice rows: %v", apperrors.ErrPersistence, err)
	}

	var newToken *string
	if len(invoices) > limit {
		invoices = invoices[:limit]
		token := pagination.EncodeToken(invoices[len(invoices)-1].CreatedAt)
		newToken = &token
	}

	return mapping.ToDomainInvoiceSlice(invoices), newToken, nil
}

const quotationSelectColumns = `
	q.quotation_id, q.company_id, q.client_id, q.quote_number, q.issue_date, q.valid_until, q.items,
	q.subtotal, q.tax_rate, q.tax_amount, q.total, q.currency_code, q.notes, q.status,
	q.created_at, q.last_updated_at,
	c.name, c.company_name, c.email, c.phone, c.address`

func scanQuotation(row pgx.Row) (models.Quotation, error) {
	var m models.Quotation
	var itemsJSON []byte
	err := row.Scan(
		&m.QuotationID,
		&m.CompanyID,
		&m.ClientID,
		&m.QuoteNumber,
		&m.IssueDate,
		&m.ValidUntil,
		&itemsJSON,
		&m.Subtotal,
		&m.TaxRate,
		&m.TaxAmount,
		&m.Total,
		&m.CurrencyCode,
		&m.Notes,
		&m.Status,
		&m.CreatedAt,
		&m.LastUpdatedAt,
		&m.ClientName,
		&m.ClientCompany,
		&m.ClientEmail,
		&m.ClientPhone,
		&m.ClientAddress,
	)
	if err != nil {
		return m, err
	}
	m.Items, err = unmarshalItems(itemsJSON)
	return m, err
}

// FindQuotationByID retrieves a quotation joined with its client display fields.
func (r *PgxDocumentRepository) FindQuotationByID(ctx context.Context, companyID int64, quotationID string) (*domain.Quotation, error) {
	query := `
		SELECT ` + quotationSelectColumns + `
		FROM quotations q
		JOIN clients c ON c.client_id = q.client_id
		WHERE q.company_id = $1 AND q.quotation_id = $2;
	`
	m, err := scanQuotation(r.pool.QueryRow(ctx, query, companyID, quotationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: failed to find quotation by ID %s: %v", apperrors.ErrPersistence, quotationID, err)
	}

	quotation := mapping.ToDomainQuotation(m)
	return &quotation, nil
}

// ListQuotations retrieves a paginated list of quotations using token-based pagination.
func (r *PgxDocumentRepository) ListQuotations(ctx context.Context, companyID int64, limit int, nextToken *string) ([]domain.Quotation, *string, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}

	query := `
		SELECT ` + quotationSelectColumns + `
		FROM quotations q
		JOIN clients c ON c.client_id = q.client_id
		WHERE q.company_id = $1`
	args := []interface{}{companyID}

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		query += ` AND q.created_at < $2`
		args = append(args, lastCreatedAt)
	}

	query += fmt.Sprintf(` ORDER BY q.created_at DESC LIMIT %d;`, limit+1)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to list quotations for company %d: %v", apperrors.ErrPersistence, companyID, err)
	}
	defer rows.Close()

	var quotations []models.Quotation
	for rows.Next() {
		m, err := scanQuotation(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: failed to scan quotation row: %v", apperrors.ErrPersistence, err)
		}
		quotations = append(quotations, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("%w: error iterating quotation rows: %v", apperrors.ErrPersistence, err)
	}

	var newToken *string
	if len(quotations) > limit {
		quotations = quotations[:limit]
		token := pagination.EncodeToken(quotations[len(quotations)-1].CreatedAt)
		newToken = &token
	}

	return mapping.ToDomainQuotationSlice(quotations), newToken, nil
}
