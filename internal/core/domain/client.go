package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentProjection is an expected future payment from a client.
type PaymentProjection struct {
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Paid   bool            `json:"paid"`
}

// Client is a customer with a project and its billing position.
// Debt is derived from Cost and AmountPaid on every write.
type Client struct {
	ID                 string              `json:"id"`
	Name               string              `json:"name" validate:"required,max=160"`
	Project            string              `json:"project,omitempty" validate:"max=160"`
	Email              string              `json:"email,omitempty" validate:"omitempty,email"`
	Phone              string              `json:"phone,omitempty" validate:"max=40"`
	Cost               decimal.Decimal     `json:"cost"`
	AmountPaid         decimal.Decimal     `json:"amountPaid"`
	Debt               decimal.Decimal     `json:"debt"`
	PaymentProjections []PaymentProjection `json:"paymentProjections"`
	AuditFields
}

func (c *Client) EntityID() string      { return c.ID }
func (c *Client) SetEntityID(id string) { c.ID = id }

// Derive recomputes Debt as Cost minus AmountPaid.
func (c *Client) Derive() {
	c.Debt = c.ExpectedDebt()
	if c.PaymentProjections == nil {
		c.PaymentProjections = []PaymentProjection{}
	}
}

// ExpectedDebt is what Debt should be given Cost and AmountPaid.
func (c Client) ExpectedDebt() decimal.Decimal {
	return c.Cost.Sub(c.AmountPaid)
}

// Lead is a prospective client.
type Lead struct {
	ID      string `json:"id"`
	Name    string `json:"name" validate:"required,max=160"`
	Company string `json:"company,omitempty" validate:"max=160"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   string `json:"phone,omitempty" validate:"max=40"`
	Source  string `json:"source,omitempty" validate:"max=80"`
	Status  string `json:"status" validate:"omitempty,oneof=Nuevo Contactado Calificado Convertido Perdido"`
	Notes   string `json:"notes,omitempty"`
	AuditFields
}

func (l *Lead) EntityID() string      { return l.ID }
func (l *Lead) SetEntityID(id string) { l.ID = id }

// Derive defaults an empty status to Nuevo.
func (l *Lead) Derive() {
	if l.Status == "" {
		l.Status = "Nuevo"
	}
}

// Partnership is an agreement with a partner company.
type Partnership struct {
	ID           string          `json:"id"`
	Name         string          `json:"name" validate:"required,max=160"`
	ContactName  string          `json:"contactName,omitempty" validate:"max=160"`
	Email        string          `json:"email,omitempty" validate:"omitempty,email"`
	Agreement    string          `json:"agreement,omitempty"`
	SharePercent decimal.Decimal `json:"sharePercent"`
	StartDate    *time.Time      `json:"startDate,omitempty"`
	AuditFields
}

func (p *Partnership) EntityID() string      { return p.ID }
func (p *Partnership) SetEntityID(id string) { p.ID = id }

// TeamEvent is an entry on the shared team calendar.
type TeamEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title" validate:"required,max=200"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty" validate:"max=200"`
	StartsAt    time.Time `json:"startsAt" validate:"required"`
	EndsAt      time.Time `json:"endsAt" validate:"required,gtefield=StartsAt"`
	Attendees   []string  `json:"attendees"`
	AuditFields
}

func (e *TeamEvent) EntityID() string      { return e.ID }
func (e *TeamEvent) SetEntityID(id string) { e.ID = id }

// Derive normalises a nil attendee list.
func (e *TeamEvent) Derive() {
	if e.Attendees == nil {
		e.Attendees = []string{}
	}
}
