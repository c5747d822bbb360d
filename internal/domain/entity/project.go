package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project statuses.
const (
	ProjectStatusActive    = "active"
	ProjectStatusCompleted = "completed"
	ProjectStatusOnHold    = "on_hold"
	ProjectStatusCancelled = "cancelled"
)

// Project groups work for a client; invoices may reference one.
type Project struct {
	ID          string
	UserID      string
	Name        string
	Description string
	Status      string
	StartDate   *time.Time
	EndDate     *time.Time
	Budget      *decimal.Decimal
	ClientID    string // optional
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
