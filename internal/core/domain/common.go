package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // Subject of the token that created the row
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// Audit exposes the embedded audit fields so generic code can stamp them.
func (a *AuditFields) Audit() *AuditFields {
	return a
}

// Stamp sets the creation and update fields to the same instant and user.
func (a *AuditFields) Stamp(userID string, now time.Time) {
	a.CreatedAt = now
	a.CreatedBy = userID
	a.LastUpdatedAt = now
	a.LastUpdatedBy = userID
}

// Touch records an update.
func (a *AuditFields) Touch(userID string, now time.Time) {
	a.LastUpdatedAt = now
	a.LastUpdatedBy = userID
}

// Entity is implemented by every record managed through the generic CRUD stack.
type Entity interface {
	EntityID() string
	SetEntityID(id string)
	Audit() *AuditFields
}

// Record constrains a type parameter to a struct whose pointer is an Entity.
type Record[T any] interface {
	*T
	Entity
}

// Deriver is implemented by entities that carry fields computed from other fields.
// Derive is called before every write.
type Deriver interface {
	Derive()
}

// Period is an inclusive date range. A nil bound is open.
type Period struct {
	From *time.Time
	To   *time.Time
}

// Contains reports whether t falls inside the period.
func (p Period) Contains(t time.Time) bool {
	if p.From != nil && t.Before(*p.From) {
		return false
	}
	if p.To != nil && t.After(*p.To) {
		return false
	}
	return true
}

// ListOptions controls paging and date filtering for generic list queries.
type ListOptions struct {
	Limit  int
	Offset int
	Period Period
}
