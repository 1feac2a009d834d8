package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type AppointmentStatus string

const (
	AppointmentStatusActive    AppointmentStatus = "active"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

type Appointment struct {
	bun.BaseModel `bun:"table:appointments"`

	ID              uuid.UUID         `bun:"id,pk,type:uuid"`
	ProviderID      uuid.UUID         `bun:"provider_id,notnull,type:uuid"`
	ServiceID       uuid.UUID         `bun:"service_id,notnull,type:uuid"`
	CustomerID      string            `bun:"customer_id,notnull"`
	StaffID         *string           `bun:"staff_id"`
	StartTime       time.Time         `bun:"start_time,notnull"`
	EndTime         time.Time         `bun:"end_time,notnull"`
	DurationMinutes int               `bun:"duration_minutes,notnull"`
	Status          AppointmentStatus `bun:"status,notnull"`
	CancelledAt     *time.Time        `bun:"cancelled_at"`
	CreatedAt       time.Time         `bun:"created_at,notnull"`
	UpdatedAt       time.Time         `bun:"updated_at,notnull"`
}

func (a *Appointment) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	return stampRow(query, &a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (a Appointment) Duration() time.Duration {
	return time.Duration(a.DurationMinutes) * time.Minute
}

func (a Appointment) IsActive() bool {
	return a.Status == AppointmentStatusActive
}

// SameBooking reports whether b requests the same booking as a: provider, service,
// customer, staff and start instant all match.
func (a Appointment) SameBooking(b Appointment) bool {
	if a.ProviderID != b.ProviderID ||
		a.ServiceID != b.ServiceID ||
		a.CustomerID != b.CustomerID ||
		!a.StartTime.Equal(b.StartTime) {
		return false
	}
	if (a.StaffID == nil) != (b.StaffID == nil) {
		return false
	}
	return a.StaffID == nil || *a.StaffID == *b.StaffID
}
