package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aksagenset/invoquot/internal/apperrors"
	"github.com/aksagenset/invoquot/internal/core/domain"
	portsrepo "github.com/aksagenset/invoquot/internal/core/ports/repositories"
	"github.com/aksagenset/invoquot/internal/models"
	"github.com/aksagenset/invoquot/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxClientRepository struct {
	pool *pgxpool.Pool
}

// newPgxClientRepository creates a new repository for client data.
func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{pool: pool}
}

// Ensure PgxClientRepository implements portsrepo.ClientRepositoryFacade
var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

const clientColumns = `client_id, company_id, name, company_name, email, phone, address, client_type, is_active, created_at, last_updated_at`

func scanClient(row pgx.Row) (models.Client, error) {
	var m models.Client
	err := row.Scan(
		&m.ClientID,
		&m.CompanyID,
		&m.Name,
		&m.CompanyName,
		&m.Email,
		&m.Phone,
		&m.Address,
		&m.Type,
		&m.IsActive,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// SaveClient inserts a new client.
func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)

	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.pool.Exec(ctx, query,
		m.ClientID,
		m.CompanyID,
		m.Name,
		m.CompanyName,
		m.Email,
		m.Phone,
		m.Address,
		m.Type,
		m.IsActive,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: client with ID %s already exists", apperrors.ErrDuplicate, m.ClientID)
		}
		return fmt.Errorf("%w: failed to save client %s: %v", apperrors.ErrPersistence, m.ClientID, err)
	}
	return nil
}

// FindClientByID retrieves a client by its ID within the company scope.
func (r *PgxClientRepository) FindClientByID(ctx context.Context, companyID int64, clientID string) (*domain.Client, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients
		WHERE company_id = $1 AND client_id = $2;
	`
	m, err := scanClient(r.pool.QueryRow(ctx, query, companyID, clientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: failed to find client by ID %s: %v", apperrors.ErrPersistence, clientID, err)
	}

	client := mapping.ToDomainClient(m)
	return &client, nil
}

// ListClients retrieves all clients for a company, newest first.
func (r *PgxClientRepository) ListClients(ctx context.Context, companyID int64) ([]domain.Client, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients
		WHERE company_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list clients for company %d: %v", apperrors.ErrPersistence, companyID, err)
	}
	defer rows.Close()

	var clients []models.Client
	for rows.Next() {
		m, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan client row: %v", apperrors.ErrPersistence, err)
		}
		clients = append(clients, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating client rows: %v", apperrors.ErrPersistence, err)
	}

	return mapping.ToDomainClientSlice(clients), nil
}

// DeactivateClient marks a client inactive. The row is never deleted because
// issued documents keep referencing it.
func (r *PgxClientRepository) DeactivateClient(ctx context.Context, companyID int64, clientID string, at time.Time) error {
	query := `
		UPDATE clients
		SET is_active = FALSE, last_updated_at = $3
		WHERE company_id = $1 AND client_id = $2;
	`
	tag, err := r.pool.Exec(ctx, query, companyID, clientID, at)
	if err != nil {
		return fmt.Errorf("%w: failed to deactivate client %s: %v", apperrors.ErrPersistence, clientID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
