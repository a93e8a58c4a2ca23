package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
)

// MaxNotificationDays bounds the look-ahead window of Upcoming.
const MaxNotificationDays = 365

type notificationService struct {
	BaseService
	clients portsrepo.CRUDReader[domain.Client]
	payroll portsrepo.PayrollReader
}

// NewNotificationService creates the service behind the upcoming-items feed.
func NewNotificationService(clients portsrepo.CRUDReader[domain.Client], payroll portsrepo.PayrollReader) portssvc.NotificationSvc {
	return &notificationService{
		BaseService: newBaseService(nil),
		clients:     clients,
		payroll:     payroll,
	}
}

// Upcoming includes overdue projections as well: anything unpaid due on or before the horizon.
func (s *notificationService) Upcoming(ctx context.Context, days int) ([]domain.Notification, error) {
	if days < 0 || days > MaxNotificationDays {
		return nil, apperrors.NewValidationError(fmt.Sprintf("days must be between 0 and %d", MaxNotificationDays))
	}
	now := s.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	horizon := today.AddDate(0, 0, days+1).Add(-time.Nanosecond)

	clients, err := s.clients.List(ctx, domain.ListOptions{})
	if err != nil {
		return nil, apperrors.NewFetchError("clients", err)
	}
	pendingStatus := domain.PayrollPending
	pending, err := s.payroll.ListPayroll(ctx, domain.PayrollFilter{
		Status: &pendingStatus,
		Period: domain.Period{To: &now},
	})
	if err != nil {
		return nil, apperrors.NewFetchError("payroll records", err)
	}

	notes := []domain.Notification{}
	for _, c := range clients {
		for i, p := range c.PaymentProjections {
			if p.Paid || p.Date.After(horizon) {
				continue
			}
			index := i
			notes = append(notes, domain.Notification{
				Kind:        domain.NotifyPaymentDue,
				Title:       fmt.Sprintf("Pago esperado de %s", c.Name),
				DueDate:     p.Date,
				Amount:      p.Amount,
				ReferenceID: c.ID,
				Index:       &index,
			})
		}
	}
	for _, r := range pending {
		notes = append(notes, domain.Notification{
			Kind:        domain.NotifyPayrollPending,
			Title:       "Planilla pendiente de pago",
			DueDate:     r.PeriodEnd,
			Amount:      r.NetSalary,
			ReferenceID: r.PayrollID,
		})
	}

	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].DueDate.Before(notes[j].DueDate)
	})
	return notes, nil
}
