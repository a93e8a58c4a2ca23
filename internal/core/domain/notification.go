package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// NotificationKind tells the dashboard what an upcoming item refers to.
type NotificationKind string

const (
	NotifyPaymentDue     NotificationKind = "payment_projection"
	NotifyPayrollPending NotificationKind = "payroll_pending"
)

// Notification is an item needing attention soon: an unpaid client payment projection
// or a pending payroll whose period has ended.
type Notification struct {
	Kind        NotificationKind `json:"kind"`
	Title       string           `json:"title"`
	DueDate     time.Time        `json:"dueDate"`
	Amount      decimal.Decimal  `json:"amount"`
	ReferenceID string           `json:"referenceID"`
	Index       *int             `json:"index,omitempty"` // Projection index for payment notifications
}
