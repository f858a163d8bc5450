package services

import (
	"log/slog"

	portsrepo "github.com/cpsys/crypto_payment_system/internal/core/ports/repositories"
	portssvc "github.com/cpsys/crypto_payment_system/internal/core/ports/services"
	"github.com/cpsys/crypto_payment_system/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, logger *slog.Logger) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Staff = NewStaffService(repos.StaffRepo)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.StaffRepo)
	container.Reconciler = NewPaymentReconciler(
		repos.InvoiceRepo,
		repos.ChainOracle,
		logger,
		cfg.ReconcileInterval,
		cfg.ReconcileBatchSize,
	)
	container.Receipt = NewReceiptService(repos.InvoiceRepo, repos.StaffRepo, repos.UserRepo)
	container.Reporting = NewReportingService(repos.InvoiceRepo, repos.StaffRepo, repos.UserRepo)

	return container
}
