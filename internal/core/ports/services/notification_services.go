package services

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// NotificationSvc surfaces items due soon.
type NotificationSvc interface {
	// Upcoming returns unpaid payment projections due within days and pending payroll
	// records whose period has ended, sorted by due date.
	Upcoming(ctx context.Context, days int) ([]domain.Notification, error)
}
