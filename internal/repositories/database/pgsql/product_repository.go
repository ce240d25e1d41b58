package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/aksagenset/invoquot/internal/apperrors"
	"github.com/aksagenset/invoquot/internal/core/domain"
	portsrepo "github.com/aksagenset/invoquot/internal/core/ports/repositories"
	"github.com/aksagenset/invoquot/internal/models"
	"github.com/aksagenset/invoquot/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProductRepository struct {
	pool *pgxpool.Pool
}

// newPgxProductRepository creates a new repository for catalog data.
func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{pool: pool}
}

// Ensure PgxProductRepository implements portsrepo.ProductRepositoryFacade
var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

const productColumns = `product_id, company_id, name, description, product_type, price, tax_rate, is_active, created_at, last_updated_at`

func scanProduct(row pgx.Row) (models.Product, error) {
	var m models.Product
	err := row.Scan(
		&m.ProductID,
		&m.CompanyID,
		&m.Name,
		&m.Description,
		&m.Type,
		&m.Price,
		&m.TaxRate,
		&m.IsActive,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// SaveProduct inserts a new catalog entry.
func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)

	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
		m.ProductID,
		m.CompanyID,
		m.Name,
		m.Description,
		m.Type,
		m.Price,
		m.TaxRate,
		m.IsActive,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: product with ID %s already exists", apperrors.ErrDuplicate, m.ProductID)
		}
		return fmt.Errorf("%w: failed to save product %s: %v", apperrors.ErrPersistence, m.ProductID, err)
	}
	return nil
}

// FindProductByID retrieves a product by its ID within the company scope.
func (r *PgxProductRepository) FindProductByID(ctx context.Context, companyID int64, productID string) (*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE company_id = $1 AND product_id = $2;
	`
	m, err := scanProduct(r.pool.QueryRow(ctx, query, companyID, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: failed to find product by ID %s: %v", apperrors.ErrPersistence, productID, err)
	}

	product := mapping.ToDomainProduct(m)
	return &product, nil
}

// ListProducts retrieves active products for a company, ordered by name.
func (r *PgxProductRepository) ListProducts(ctx context.Context, companyID int64) ([]domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE company_id = $1 AND is_active = TRUE
		ORDER BY name ASC;
	`
	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list products for company %d: %v", apperrors.ErrPersistence, companyID, err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan product row: %v", apperrors.ErrPersistence, err)
		}
		products = append(products, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating product rows: %v", apperrors.ErrPersistence, err)
	}

	return mapping.ToDomainProductSlice(products), nil
}
