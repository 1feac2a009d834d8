package appointments

import (
	"context"
	"time"

	"github.com/google/uuid"

	"salonbook/backend/internal/domain"
	"salonbook/backend/internal/store"
)

type AvailabilityQuery struct {
	ProviderID uuid.UUID
	From       time.Time
	To         time.Time
	// ServiceID is optional; when set, conflicts are checked for that service's duration.
	ServiceID uuid.UUID
}

// GetAvailability resolves every date in [From, To]. Results are computed from the
// current schedule on each call.
func (s *Service) GetAvailability(ctx context.Context, q AvailabilityQuery) (out []domain.DayAvailability, err error) {
	ctx, span := s.startSpan(ctx, "GetAvailability", q.ProviderID)
	defer func() { endSpan(span, err) }()

	if q.ProviderID == uuid.Nil {
		return nil, validationError("provider_id is required")
	}
	from, to, err := s.dateRange(q.From, q.To)
	if err != nil {
		return nil, err
	}

	err = s.repo.View(ctx, func(ctx context.Context, tx store.ScheduleTx) error {
		_, loc, err := loadProvider(ctx, tx, q.ProviderID)
		if err != nil {
			return err
		}

		var duration time.Duration
		if q.ServiceID != uuid.Nil {
			svc, err := tx.GetService(ctx, q.ProviderID, q.ServiceID)
			if err != nil {
				return serviceLookup(err)
			}
			duration = svc.Duration()
		}

		snap, err := loadSnapshot(ctx, tx, q.ProviderID, loc, from, to, duration)
		if err != nil {
			return err
		}

		now := s.now()
		for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
			out = append(out, domain.ResolveDay(snap.input(d, duration, uuid.Nil, now)))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// snapshot is the schedule state read once for a date range.
type snapshot struct {
	loc          *time.Location
	windows      []domain.RecurringWindow
	closed       []domain.ClosedDay
	blocked      []domain.BlockedSlot
	appointments []domain.Appointment
}

func loadSnapshot(ctx context.Context, tx store.ScheduleTx, providerID uuid.UUID, loc *time.Location, from, to time.Time, duration time.Duration) (snapshot, error) {
	windows, err := tx.ListWindows(ctx, providerID)
	if err != nil {
		return snapshot{}, err
	}
	closed, err := tx.ListClosedDays(ctx, providerID)
	if err != nil {
		return snapshot{}, err
	}
	blocked, err := tx.ListBlockedSlots(ctx, providerID, from, to)
	if err != nil {
		return snapshot{}, err
	}

	if duration < domain.SlotGranularity*time.Minute {
		duration = domain.SlotGranularity * time.Minute
	}
	rangeStart := domain.Clock(0).On(from, loc)
	rangeEnd := domain.Clock(0).On(to.AddDate(0, 0, 1), loc).Add(duration)
	appts, err := tx.ListActiveAppointments(ctx, providerID, rangeStart, rangeEnd)
	if err != nil {
		return snapshot{}, err
	}

	return snapshot{
		loc:          loc,
		windows:      windows,
		closed:       closed,
		blocked:      blocked,
		appointments: appts,
	}, nil
}

func (s snapshot) input(date time.Time, duration time.Duration, exclude uuid.UUID, notBefore time.Time) domain.ResolveInput {
	return domain.ResolveInput{
		Date:                 date,
		Location:             s.loc,
		Windows:              s.windows,
		ClosedDays:           s.closed,
		Blocked:              s.blocked,
		Appointments:         s.appointments,
		Duration:             duration,
		ExcludeAppointmentID: exclude,
		NotBefore:            notBefore,
	}
}

// slotBookable re-resolves the local date of start and reports whether start is one of
// its bookable slots for the given duration.
func (s *Service) slotBookable(ctx context.Context, tx store.ScheduleTx, providerID uuid.UUID, loc *time.Location, start time.Time, duration time.Duration, exclude uuid.UUID) (bool, error) {
	local := start.In(loc)
	if local.Second() != 0 || local.Nanosecond() != 0 {
		return false, nil
	}
	date := domain.CivilDate(local)
	clock := domain.ClockOf(local)
	if canonical, ok := clock.Resolve(date, loc); !ok || !canonical.Equal(start) {
		return false, nil
	}

	snap, err := loadSnapshot(ctx, tx, providerID, loc, date, date, duration)
	if err != nil {
		return false, err
	}
	day := domain.ResolveDay(snap.input(date, duration, exclude, s.now()))
	return day.IsBookable(clock), nil
}
