package services

import (
	"time"

	"github.com/stocknest/stocknest_app/internal/adapters/cache"
	portsrepo "github.com/stocknest/stocknest_app/internal/core/ports/repositories"
	portssvc "github.com/stocknest/stocknest_app/internal/core/ports/services"
)

// ContainerOptions carries the knobs the service layer needs beyond its
// repositories.
type ContainerOptions struct {
	JWTSecret string
	JWTExpiry time.Duration
	JWTIssuer string

	// DeleteItemsWithoutImages enables the legacy reverse-cascade behavior.
	DeleteItemsWithoutImages bool

	// SummaryCache may be nil; reporting then recomputes on every request.
	SummaryCache cache.SummaryCache
}

// NewServiceContainer wires every service onto the given storage backend.
// The image service delegates reference cleanup to the inventory service so
// image deletes cascade into item updates.
func NewServiceContainer(repos portsrepo.RepositoryProvider, opts ContainerOptions) *portssvc.ServiceContainer {
	inventorySvc := NewInventoryService(repos.InventoryRepo, repos.ImageRepo, repos.VocabularyRepo, opts.DeleteItemsWithoutImages)
	imageSvc := NewImageService(repos.ImageRepo, inventorySvc)
	transactionSvc := NewTransactionService(repos.TransactionRepo)
	reportingSvc := NewReportingService(repos.TransactionRepo, repos.InventoryRepo, opts.SummaryCache)
	authSvc := NewAuthService(repos.ProfileRepo, opts.JWTSecret, opts.JWTExpiry, opts.JWTIssuer)

	return &portssvc.ServiceContainer{
		Inventory:   inventorySvc,
		Image:       imageSvc,
		Transaction: transactionSvc,
		Reporting:   reportingSvc,
		Auth:        authSvc,
	}
}
