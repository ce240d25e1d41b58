package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/aksagenset/invoquot/internal/apperrors"
	"github.com/aksagenset/invoquot/internal/core/domain"
	portsrepo "github.com/aksagenset/invoquot/internal/core/ports/repositories"
	"github.com/aksagenset/invoquot/internal/models"
	"github.com/aksagenset/invoquot/internal/utils/billing"
	"github.com/aksagenset/invoquot/internal/utils/mapping"
	"github.com/aksagenset/invoquot/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for the payment ledger.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxPaymentRepository implements portsrepo.PaymentRepositoryFacade
var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

// ApplyPayment inserts the payment and updates the invoice settlement fields in
// one transaction. The invoice row is locked first, so concurrent payments
// against the same invoice serialize and each one validates against the balance
// the previous one left behind.
func (r *PgxPaymentRepository) ApplyPayment(ctx context.Context, payment domain.Payment) (*domain.Payment, *domain.Invoice, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	lockQuery := `
		SELECT ` + invoiceSelectColumns + `
		FROM invoices i
		JOIN clients c ON c.client_id = i.client_id
		WHERE i.company_id = $1 AND i.invoice_id = $2
		FOR UPDATE OF i;
	`
	invoiceModel, err := scanInvoice(tx.QueryRow(ctx, lockQuery, payment.CompanyID, payment.InvoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, fmt.Errorf("%w: invoice %s not found", apperrors.ErrNotFound, payment.InvoiceID)
		}
		return nil, nil, fmt.Errorf("%w: failed to lock invoice %s: %v", apperrors.ErrPersistence, payment.InvoiceID, err)
	}

	allocation, err := billing.AllocatePayment(invoiceModel.Total, invoiceModel.AmountPaid, payment.Amount)
	if err != nil {
		return nil, nil, err
	}

	payment.ClientID = invoiceModel.ClientID
	m := mapping.ToModelPayment(payment)

	insertQuery := `
		INSERT INTO payments (payment_id, company_id, invoice_id, client_id, amount, payment_method, payment_date, reference_number, notes, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, insertQuery,
		m.PaymentID,
		m.CompanyID,
		m.InvoiceID,
		m.ClientID,
		m.Amount,
		m.PaymentMethod,
		m.PaymentDate,
		m.ReferenceNumber,
		m.Notes,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to save payment %s: %v", apperrors.ErrPersistence, m.PaymentID, err)
	}

	updateQuery := `
		UPDATE invoices
		SET amount_paid = $3, balance_due = $4, payment_status = $5, last_updated_at = $6
		WHERE company_id = $1 AND invoice_id = $2;
	`
	_, err = tx.Exec(ctx, updateQuery,
		payment.CompanyID,
		payment.InvoiceID,
		allocation.AmountPaid,
		allocation.BalanceDue,
		string(allocation.PaymentStatus),
		m.LastUpdatedAt,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to update invoice %s settlement: %v", apperrors.ErrPersistence, payment.InvoiceID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, nil, err
	}

	invoiceModel.AmountPaid = allocation.AmountPaid
	invoiceModel.BalanceDue = allocation.BalanceDue
	invoiceModel.PaymentStatus = models.PaymentStatus(allocation.PaymentStatus)
	invoiceModel.LastUpdatedAt = m.LastUpdatedAt
	invoice := mapping.ToDomainInvoice(invoiceModel)

	persisted := mapping.ToDomainPayment(m)
	persisted.InvoiceNumber = invoiceModel.InvoiceNumber
	persisted.ClientName = invoiceModel.ClientName

	return &persisted, &invoice, nil
}

const paymentSelectColumns = `
	p.payment_id, p.company_id, p.invoice_id, p.client_id, p.amount, p.payment_method,
	p.payment_date, p.reference_number, p.notes, p.created_at, p.last_updated_at,
	i.invoice_number, c.name`

func scanPayment(row pgx.Row) (models.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.PaymentID,
		&m.CompanyID,
		&m.InvoiceID,
		&m.ClientID,
		&m.Amount,
		&m.PaymentMethod,
		&m.PaymentDate,
		&m.ReferenceNumber,
		&m.Notes,
		&m.CreatedAt,
		&m.LastUpdatedAt,
		&m.InvoiceNumber,
		&m.ClientName,
	)
	return m, err
}

// ListPayments retrieves a paginated list of payments joined with the invoice
// number and client name for display, using token-based pagination.
func (r *PgxPaymentRepository) ListPayments(ctx context.Context, companyID int64, limit int, nextToken *string) ([]domain.Payment, *string, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}

	query := `
		SELECT ` + paymentSelectColumns + `
		FROM payments p
		JOIN invoices i ON i.invoice_id = p.invoice_id
		JOIN clients c ON c.client_id = p.client_id
		WHERE p.company_id = $1`
	args := []interface{}{companyID}

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		query += ` AND p.created_at < $2`
		args = append(args, lastCreatedAt)
	}

	query += fmt.Sprintf(` ORDER BY p.created_at DESC LIMIT %d;`, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to list payments for company %d: %v", apperrors.ErrPersistence, companyID, err)
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: failed to scan payment row: %v", apperrors.ErrPersistence, err)
		}
		payments = append(payments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("%w: error iterating payment rows: %v", apperrors.ErrPersistence, err)
	}

	var newToken *string
	if len(payments) > limit {
		payments = payments[:limit]
		token := pagination.EncodeToken(payments[len(payments)-1].CreatedAt)
		newToken = &token
	}

	return mapping.ToDomainPaymentSlice(payments), newToken, nil
}
