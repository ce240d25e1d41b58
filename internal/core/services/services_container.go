package services

import (
	portsrepo "github.com/aksagenset/invoquot/internal/core/ports/repositories"
	portssvc "github.com/aksagenset/invoquot/internal/core/ports/services"
	"github.com/aksagenset/invoquot/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// The renderer is injected because it lives in an adapter package outside the core.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, renderer portssvc.DocumentRenderer) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Client = NewClientService(repos.ClientRepo)
	container.Product = NewProductService(repos.ProductRepo)

	// Documents validate their client against the same repository the client
	// service writes through.
	container.Document = NewDocumentService(repos.DocumentRepo, repos.ClientRepo, cfg.DefaultTaxRate, cfg.CurrencyCode)

	container.Payment = NewPaymentService(repos.PaymentRepo)
	container.Renderer = renderer

	return container
}

// Compile-time interface implementation checks.
var (
	_ portssvc.ClientSvcFacade   = (*ClientService)(nil)
	_ portssvc.ProductSvcFacade  = (*ProductService)(nil)
	_ portssvc.DocumentSvcFacade = (*DocumentService)(nil)
	_ portssvc.PaymentSvcFacade  = (*PaymentService)(nil)
)
