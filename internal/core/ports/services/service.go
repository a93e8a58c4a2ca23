package services

import "github.com/SscSPs/backoffice_app/internal/core/domain"

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Clients               ClientSvcFacade
	Leads                 CRUDService[domain.Lead]
	Partnerships          CRUDService[domain.Partnership]
	Employees             CRUDService[domain.Employee]
	CurrentAssets         CRUDService[domain.CurrentAsset]
	NonCurrentAssets      CRUDService[domain.NonCurrentAsset]
	CurrentLiabilities    CRUDService[domain.Liability]
	NonCurrentLiabilities CRUDService[domain.Liability]
	Accounts              CRUDService[domain.MonetaryAccount]
	Events                CRUDService[domain.TeamEvent]
	Ledger                LedgerSvcFacade
	Payroll               PayrollSvcFacade
	ExchangeRate          ExchangeRateSvcFacade
	Reporting             ReportingService
	Notifications         NotificationSvc
}
