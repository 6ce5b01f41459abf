package services

import (
	"github.com/SscSPs/lease_management_app/internal/core/ports"
	portsrepo "github.com/SscSPs/lease_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/lease_management_app/internal/core/ports/services"
	"github.com/SscSPs/lease_management_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// publisher and metrics may be nil.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, publisher ports.ApprovalEventPublisher, metrics ports.WorkflowMetrics) *portssvc.ServiceContainer {
	deps := WorkflowDeps{Publisher: publisher, Metrics: metrics}

	container := &portssvc.ServiceContainer{}
	container.Lease = NewLeaseService(
		repos.LeaseRepo,
		WithEventPublisher(publisher),
		WithMetrics(metrics),
		WithLeaseRules(cfg.LeaseRules()),
		WithHybridPolicy(cfg.HybridRentPolicy),
		WithUnitRepository(repos.UnitRepo),
		WithCurrencyRepository(repos.CurrencyRepo),
	)
	container.Project = NewProjectService(repos.ProjectRepo, deps)
	container.Unit = NewUnitService(repos.UnitRepo, repos.ProjectRepo, deps)
	container.Party = NewPartyService(repos.PartyRepo, deps)
	container.Ownership = NewOwnershipService(repos.OwnershipRepo, repos.UnitRepo, repos.PartyRepo)
	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.User = NewUserService(repos.UserRepo)
	container.TokenService = NewTokenService(cfg)

	return container
}
