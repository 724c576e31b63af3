package services

import (
	portsrepo "github.com/salestrackhq/salestrack_app/internal/core/ports/repositories"
	portssvc "github.com/salestrackhq/salestrack_app/internal/core/ports/services"
	"github.com/salestrackhq/salestrack_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo, cfg.LoginMaxAttempts)

	// The record service provisions accounts through the account service
	// when batch entry meets an unknown name.
	container.Record = NewRecordService(
		repos.RecordRepo,
		container.Account,
		WithAdminRollup(cfg.EnableAdminRollup),
	)

	container.Reporting = NewReportingService(
		repos.RecordRepo,
		WithReportingAdminRollup(cfg.EnableAdminRollup),
	)

	return container
}
