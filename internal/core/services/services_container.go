package services

import (
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/platform/cache"
	"github.com/SscSPs/backoffice_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, reportCache cache.ReportCache) *portssvc.ServiceContainer {
	if reportCache == nil {
		reportCache = cache.NewNoopCache()
	}
	container := &portssvc.ServiceContainer{}

	container.Clients = NewClientService(repos.Clients, reportCache)
	container.Leads = NewCRUDService[domain.Lead]("lead", repos.Leads, reportCache)
	container.Partnerships = NewCRUDService[domain.Partnership]("partnership", repos.Partnerships, reportCache)
	container.Employees = NewCRUDService[domain.Employee]("employee", repos.Employees, reportCache)
	container.CurrentAssets = NewCRUDService[domain.CurrentAsset]("current asset", repos.CurrentAssets, reportCache)
	container.NonCurrentAssets = NewCRUDService[domain.NonCurrentAsset]("non-current asset", repos.NonCurrentAssets, reportCache)
	container.CurrentLiabilities = NewCRUDService[domain.Liability]("current liability", repos.CurrentLiabilities, reportCache)
	container.NonCurrentLiabilities = NewCRUDService[domain.Liability]("non-current liability", repos.NonCurrentLiabilities, reportCache)
	container.Accounts = NewCRUDService[domain.MonetaryAccount]("monetary account", repos.Accounts, reportCache)
	container.Events = NewCRUDService[domain.TeamEvent]("team event", repos.Events, reportCache)

	container.Ledger = NewLedgerService(
		repos.Ledger,
		WithSalespeople(cfg.Salespeople),
		WithLedgerReportCache(reportCache),
	)
	container.Payroll = NewPayrollService(
		repos.Payroll,
		WithEmployeeReader(repos.Employees),
		WithPayrollReportCache(reportCache),
	)
	container.ExchangeRate = NewExchangeRateService(
		repos.ExchangeRate,
		cfg.ReportingCurrency,
		cfg.SecondaryCurrency,
		reportCache,
	)
	container.Reporting = NewReportingService(ReportSources{
		Ledger:                repos.Ledger,
		Commissions:           repos.Ledger,
		Payroll:               repos.Payroll,
		Clients:               repos.Clients,
		CurrentAssets:         repos.CurrentAssets,
		NonCurrentAssets:      repos.NonCurrentAssets,
		CurrentLiabilities:    repos.CurrentLiabilities,
		NonCurrentLiabilities: repos.NonCurrentLiabilities,
		Accounts:              repos.Accounts,
		Rates:                 container.ExchangeRate,
	}, WithReportCache(reportCache))
	container.Notifications = NewNotificationService(repos.Clients, repos.Payroll)

	return container
}
