package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"salonbook/backend/internal/domain"
)

// ScheduleTx is the set of reads and writes the booking engine performs against one
// consistent view of a provider's schedule.
type ScheduleTx interface {
	GetProvider(ctx context.Context, providerID uuid.UUID) (domain.Provider, error)
	GetService(ctx context.Context, providerID, serviceID uuid.UUID) (domain.Service, error)

	ListWindows(ctx context.Context, providerID uuid.UUID) ([]domain.RecurringWindow, error)
	ReplaceWindows(ctx context.Context, providerID uuid.UUID, windows []domain.RecurringWindow) ([]domain.RecurringWindow, error)

	ListClosedDays(ctx context.Context, providerID uuid.UUID) ([]domain.ClosedDay, error)
	// ToggleClosedDay flips membership of dayOfWeek and reports whether it is now closed.
	ToggleClosedDay(ctx context.Context, providerID uuid.UUID, dayOfWeek int16) (bool, error)

	CreateBlockedSlot(ctx context.Context, slot domain.BlockedSlot) (domain.BlockedSlot, error)
	DeleteBlockedSlot(ctx context.Context, providerID, blockedSlotID uuid.UUID) error
	// ListBlockedSlots returns blocks with from <= date <= to, both civil dates.
	ListBlockedSlots(ctx context.Context, providerID uuid.UUID, from, to time.Time) ([]domain.BlockedSlot, error)

	// ListActiveAppointments returns active appointments intersecting [windowStart, windowEnd).
	ListActiveAppointments(ctx context.Context, providerID uuid.UUID, windowStart, windowEnd time.Time) ([]domain.Appointment, error)
	GetAppointmentForUpdate(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error)
	CreateAppointment(ctx context.Context, appt domain.Appointment) (domain.Appointment, error)
	UpdateAppointment(ctx context.Context, appt domain.Appointment) (domain.Appointment, error)

	AppendOutbox(ctx context.Context, evt domain.OutboxEvent) error
}

type ScheduleRepository interface {
	// InProviderTransaction runs fn in a transaction that holds the provider's schedule
	// lock until commit. Writers for the same provider are serialized.
	InProviderTransaction(ctx context.Context, providerID uuid.UUID, fn func(ctx context.Context, tx ScheduleTx) error) error
	// View runs fn in a read-only snapshot.
	View(ctx context.Context, fn func(ctx context.Context, tx ScheduleTx) error) error

	GetAppointment(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error)
	ListAppointments(ctx context.Context, providerID uuid.UUID, windowStart, windowEnd time.Time) ([]domain.Appointment, error)
}

// OutboxTx is used by the publisher to claim and acknowledge pending events.
type OutboxTx interface {
	FetchUnpublished(ctx context.Context, limit int) ([]domain.OutboxEvent, error)
	MarkPublished(ctx context.Context, ids []int64) error
}

type OutboxRepository interface {
	InOutboxTransaction(ctx context.Context, fn func(ctx context.Context, tx OutboxTx) error) error
}
