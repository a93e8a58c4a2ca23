package pgsql

import "github.com/SscSPs/backoffice_app/internal/core/domain"

var clientSchema = entitySchema[domain.Client]{
	table:    "clients",
	idColumn: "client_id",
	columns:  []string{"name", "project", "email", "phone", "cost", "amount_paid", "debt", "payment_projections"},
	values: func(c *domain.Client) []any {
		return []any{c.Name, c.Project, c.Email, c.Phone, c.Cost, c.AmountPaid, c.Debt, c.PaymentProjections}
	},
	scanDest: func(c *domain.Client) []any {
		return []any{&c.Name, &c.Project, &c.Email, &c.Phone, &c.Cost, &c.AmountPaid, &c.Debt, &c.PaymentProjections}
	},
	dateColumn: "created_at",
	orderBy:    "name ASC, client_id ASC",
}

var leadSchema = entitySchema[domain.Lead]{
	table:    "leads",
	idColumn: "lead_id",
	columns:  []string{"name", "company", "email", "phone", "source", "status", "notes"},
	values: func(l *domain.Lead) []any {
		return []any{l.Name, l.Company, l.Email, l.Phone, l.Source, l.Status, l.Notes}
	},
	scanDest: func(l *domain.Lead) []any {
		return []any{&l.Name, &l.Company, &l.Email, &l.Phone, &l.Source, &l.Status, &l.Notes}
	},
	dateColumn: "created_at",
	orderBy:    "created_at DESC, lead_id ASC",
}

var partnershipSchema = entitySchema[domain.Partnership]{
	table:    "partnerships",
	idColumn: "partnership_id",
	columns:  []string{"name", "contact_name", "email", "agreement", "share_percent", "start_date"},
	values: func(p *domain.Partnership) []any {
		return []any{p.Name, p.ContactName, p.Email, p.Agreement, p.SharePercent, p.StartDate}
	},
	scanDest: func(p *domain.Partnership) []any {
		return []any{&p.Name, &p.ContactName, &p.Email, &p.Agreement, &p.SharePercent, &p.StartDate}
	},
	dateColumn: "start_date",
	orderBy:    "name ASC, partnership_id ASC",
}

var employeeSchema = entitySchema[domain.Employee]{
	table:    "employees",
	idColumn: "employee_id",
	columns:  []string{"full_name", "position", "email", "phone", "base_salary", "hired_on", "is_active"},
	values: func(e *domain.Employee) []any {
		return []any{e.FullName, e.Position, e.Email, e.Phone, e.BaseSalary, e.HiredOn, e.IsActive}
	},
	scanDest: func(e *domain.Employee) []any {
		return []any{&e.FullName, &e.Position, &e.Email, &e.Phone, &e.BaseSalary, &e.HiredOn, &e.IsActive}
	},
	dateColumn: "hired_on",
	orderBy:    "full_name ASC, employee_id ASC",
}

var currentAssetSchema = entitySchema[domain.CurrentAsset]{
	table:    "current_assets",
	idColumn: "asset_id",
	columns:  []string{"description", "value"},
	values: func(a *domain.CurrentAsset) []any {
		return []any{a.Description, a.Value}
	},
	scanDest: func(a *domain.CurrentAsset) []any {
		return []any{&a.Description, &a.Value}
	},
	dateColumn: "created_at",
	orderBy:    "created_at DESC, asset_id ASC",
}

var nonCurrentAssetSchema = entitySchema[domain.NonCurrentAsset]{
	table:    "non_current_assets",
	idColumn: "asset_id",
	columns:  []string{"description", "value", "depreciation", "net_value", "acquired_on"},
	values: func(a *domain.NonCurrentAsset) []any {
		return []any{a.Description, a.Value, a.Depreciation, a.NetValue, a.AcquiredOn}
	},
	scanDest: func(a *domain.NonCurrentAsset) []any {
		return []any{&a.Description, &a.Value, &a.Depreciation, &a.NetValue, &a.AcquiredOn}
	},
	dateColumn: "acquired_on",
	orderBy:    "created_at DESC, asset_id ASC",
}

func liabilitySchema(table string) entitySchema[domain.Liability] {
	return entitySchema[domain.Liability]{
		table:    table,
		idColumn: "liability_id",
		columns:  []string{"description", "amount_due", "balance", "due_date"},
		values: func(l *domain.Liability) []any {
			return []any{l.Description, l.AmountDue, l.Balance, l.DueDate}
		},
		scanDest: func(l *domain.Liability) []any {
			return []any{&l.Description, &l.AmountDue, &l.Balance, &l.DueDate}
		},
		dateColumn: "due_date",
		orderBy:    "due_date ASC NULLS LAST, liability_id ASC",
	}
}

var accountSchema = entitySchema[domain.MonetaryAccount]{
	table:    "monetary_accounts",
	idColumn: "account_id",
	columns:  []string{"name", "bank", "currency", "balance"},
	values: func(a *domain.MonetaryAccount) []any {
		return []any{a.Name, a.Bank, string(a.Currency), a.Balance}
	},
	scanDest: func(a *domain.MonetaryAccount) []any {
		return []any{&a.Name, &a.Bank, &a.Currency, &a.Balance}
	},
	dateColumn: "created_at",
	orderBy:    "name ASC, account_id ASC",
}

var eventSchema = entitySchema[domain.TeamEvent]{
	table:    "team_events",
	idColumn: "event_id",
	columns:  []string{"title", "description", "location", "starts_at", "ends_at", "attendees"},
	values: func(e *domain.TeamEvent) []any {
		return []any{e.Title, e.Description, e.Location, e.StartsAt, e.EndsAt, e.Attendees}
	},
	scanDest: func(e *domain.TeamEvent) []any {
		return []any{&e.Title, &e.Description, &e.Location, &e.StartsAt, &e.EndsAt, &e.Attendees}
	},
	dateColumn: "starts_at",
	orderBy:    "starts_at ASC, event_id ASC",
}

func newClientRepository(pool DBPool) *tableRepository[domain.Client, *domain.Client] {
	return newTableRepository[domain.Client, *domain.Client](pool, clientSchema)
}

func newLeadRepository(pool DBPool) *tableRepository[domain.Lead, *domain.Lead] {
	return newTableRepository[domain.Lead, *domain.Lead](pool, leadSchema)
}

func newPartnershipRepository(pool DBPool) *tableRepository[domain.Partnership, *domain.Partnership] {
	return newTableRepository[domain.Partnership, *domain.Partnership](pool, partnershipSchema)
}

func newEmployeeRepository(pool DBPool) *tableRepository[domain.Employee, *domain.Employee] {
	return newTableRepository[domain.Employee, *domain.Employee](pool, employeeSchema)
}

func newCurrentAssetRepository(pool DBPool) *tableRepository[domain.CurrentAsset, *domain.CurrentAsset] {
	return newTableRepository[domain.CurrentAsset, *domain.CurrentAsset](pool, currentAssetSchema)
}

func newNonCurrentAssetRepository(pool DBPool) *tableRepository[domain.NonCurrentAsset, *domain.NonCurrentAsset] {
	return newTableRepository[domain.NonCurrentAsset, *domain.NonCurrentAsset](pool, nonCurrentAssetSchema)
}

func newLiabilityRepository(pool DBPool, table string) *tableRepository[domain.Liability, *domain.Liability] {
	return newTableRepository[domain.Liability, *domain.Liability](pool, liabilitySchema(table))
}

func newAccountRepository(pool DBPool) *tableRepository[domain.MonetaryAccount, *domain.MonetaryAccount] {
	return newTableRepository[domain.MonetaryAccount, *domain.MonetaryAccount](pool, accountSchema)
}

func newEventRepository(pool DBPool) *tableRepository[domain.TeamEvent, *domain.TeamEvent] {
	return newTableRepository[domain.TeamEvent, *domain.TeamEvent](pool, eventSchema)
}
