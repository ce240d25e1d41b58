package pgsql

import (
	portsrepo "github.com/aksagenset/invoquot/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	clientRepo := newPgxClientRepository(dbPool)
	documentRepo := newPgxDocumentRepository(dbPool)
	paymentRepo := newPgxPaymentRepository(dbPool)
	productRepo := newPgxProductRepository(dbPool)

	return portsrepo.RepositoryProvider{
		ClientRepo:   clientRepo,
		DocumentRepo: documentRepo,
		PaymentRepo:  paymentRepo,
		ProductRepo:  productRepo,
	}
}
