package repositories

import "github.com/SscSPs/backoffice_app/internal/core/domain"

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	Clients               CRUDRepository[domain.Client]
	Leads                 CRUDRepository[domain.Lead]
	Partnerships          CRUDRepository[domain.Partnership]
	Employees             CRUDRepository[domain.Employee]
	CurrentAssets         CRUDRepository[domain.CurrentAsset]
	NonCurrentAssets      CRUDRepository[domain.NonCurrentAsset]
	CurrentLiabilities    CRUDRepository[domain.Liability]
	NonCurrentLiabilities CRUDRepository[domain.Liability]
	Accounts              CRUDRepository[domain.MonetaryAccount]
	Events                CRUDRepository[domain.TeamEvent]
	Ledger                LedgerRepositoryFacade
	Payroll               PayrollRepositoryFacade
	ExchangeRate          ExchangeRateRepositoryFacade
}
