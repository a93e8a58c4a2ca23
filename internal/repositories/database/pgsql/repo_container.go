package pgsql

import (
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		Clients:               newClientRepository(dbPool),
		Leads:                 newLeadRepository(dbPool),
		Partnerships:          newPartnershipRepository(dbPool),
		Employees:             newEmployeeRepository(dbPool),
		CurrentAssets:         newCurrentAssetRepository(dbPool),
		NonCurrentAssets:      newNonCurrentAssetRepository(dbPool),
		CurrentLiabilities:    newLiabilityRepository(dbPool, "current_liabilities"),
		NonCurrentLiabilities: newLiabilityRepository(dbPool, "non_current_liabilities"),
		Accounts:              newAccountRepository(dbPool),
		Events:                newEventRepository(dbPool),
		Ledger:                newPgxLedgerRepository(dbPool),
		Payroll:               newPgxPayrollRepository(dbPool),
		ExchangeRate:          newPgxExchangeRateRepository(dbPool),
	}
}
