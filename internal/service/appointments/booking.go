package appointments

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"salonbook/backend/internal/domain"
	"salonbook/backend/internal/store"
)

type CreateBookingInput struct {
	ProviderID uuid.UUID
	ServiceID  uuid.UUID
	CustomerID string
	StaffID    string
	StartTime  time.Time
	// IdempotencyKey makes retries of the same request return the original booking.
	IdempotencyKey string
}

func (s *Service) CreateBooking(ctx context.Context, in CreateBookingInput) (out domain.Appointment, err error) {
	ctx, span := s.startSpan(ctx, "CreateBooking", in.ProviderID)
	defer func() { endSpan(span, err) }()

	if in.ProviderID == uuid.Nil {
		return domain.Appointment{}, validationError("provider_id is required")
	}
	if in.ServiceID == uuid.Nil {
		return domain.Appointment{}, validationError("service_id is required")
	}
	customerID := strings.TrimSpace(in.CustomerID)
	if customerID == "" {
		return domain.Appointment{}, validationError("customer_id is required")
	}
	if in.StartTime.IsZero() {
		return domain.Appointment{}, validationError("start_time is required")
	}

	appt := domain.Appointment{
		ProviderID: in.ProviderID,
		ServiceID:  in.ServiceID,
		CustomerID: customerID,
		StartTime:  in.StartTime.UTC(),
		Status:     domain.AppointmentStatusActive,
	}
	if staff := strings.TrimSpace(in.StaffID); staff != "" {
		appt.StaffID = &staff
	}

	key := strings.TrimSpace(in.IdempotencyKey)
	if key != "" {
		if len(key) > maxIdempotencyKeyLen {
			return domain.Appointment{}, validationError("idempotency_key too long")
		}
		appt.ID = uuid.NewSHA1(uuid.NameSpaceOID, []byte("salonbook:create_booking:"+in.ProviderID.String()+":"+key))
	}

	err = s.repo.InProviderTransaction(ctx, in.ProviderID, func(ctx context.Context, tx store.ScheduleTx) error {
		_, loc, err := loadProvider(ctx, tx, in.ProviderID)
		if err != nil {
			return err
		}
		svc, err := tx.GetService(ctx, in.ProviderID, in.ServiceID)
		if err != nil {
			return serviceLookup(err)
		}

		appt.DurationMinutes = svc.DurationMinutes
		appt.EndTime = appt.StartTime.Add(svc.Duration())

		if appt.ID != uuid.Nil {
			existing, err := tx.GetAppointmentForUpdate(ctx, appt.ID)
			switch {
			case err == nil:
				if !existing.SameBooking(appt) {
					return store.ErrIdempotencyConflict
				}
				out = existing
				return nil
			case !errors.Is(err, store.ErrNotFound):
				return err
			}
		}

		ok, err := s.slotBookable(ctx, tx, in.ProviderID, loc, appt.StartTime, svc.Duration(), uuid.Nil)
		if err != nil {
			return err
		}
		if !ok {
			return ErrSlotUnavailable
		}

		created, err := tx.CreateAppointment(ctx, appt)
		if err != nil {
			return slotConflict(err)
		}
		if err := appendBookingEvent(ctx, tx, domain.EventBookingCreated, created, nil); err != nil {
			return err
		}
		out = created
		return nil
	})
	if err != nil {
		return domain.Appointment{}, err
	}
	return out, nil
}

type RescheduleBookingInput struct {
	AppointmentID uuid.UUID
	NewStartTime  time.Time
}

// RescheduleBooking moves an active appointment to a new start time, keeping its service
// and duration. The appointment's own interval does not block the move.
func (s *Service) RescheduleBooking(ctx context.Context, in RescheduleBookingInput) (out domain.Appointment, err error) {
	if in.AppointmentID == uuid.Nil {
		return domain.Appointment{}, validationError("appointment_id is required")
	}
	if in.NewStartTime.IsZero() {
		return domain.Appointment{}, validationError("new_start_time is required")
	}

	current, err := s.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return domain.Appointment{}, appointmentLookup(err)
	}

	ctx, span := s.startSpan(ctx, "RescheduleBooking", current.ProviderID)
	defer func() { endSpan(span, err) }()

	err = s.repo.InProviderTransaction(ctx, current.ProviderID, func(ctx context.Context, tx store.ScheduleTx) error {
		appt, err := tx.GetAppointmentForUpdate(ctx, in.AppointmentID)
		if err != nil {
			return appointmentLookup(err)
		}
		if !appt.IsActive() {
			return ErrAppointmentCancelled
		}
		_, loc, err := loadProvider(ctx, tx, appt.ProviderID)
		if err != nil {
			return err
		}

		newStart := in.NewStartTime.UTC()
		ok, err := s.slotBookable(ctx, tx, appt.ProviderID, loc, newStart, appt.Duration(), appt.ID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrSlotUnavailable
		}

		previous := appt.StartTime
		appt.StartTime = newStart
		appt.EndTime = newStart.Add(appt.Duration())

		updated, err := tx.UpdateAppointment(ctx, appt)
		if err != nil {
			return slotConflict(appointmentLookup(err))
		}
		if err := appendBookingEvent(ctx, tx, domain.EventBookingRescheduled, updated, &previous); err != nil {
			return err
		}
		out = updated
		return nil
	})
	if err != nil {
		return domain.Appointment{}, err
	}
	return out, nil
}

// CancelBooking marks an appointment cancelled, freeing its interval. Cancelling an
// already cancelled appointment returns it unchanged.
func (s *Service) CancelBooking(ctx context.Context, appointmentID uuid.UUID) (out domain.Appointment, err error) {
	if appointmentID == uuid.Nil {
		return domain.Appointment{}, validationError("appointment_id is required")
	}

	current, err := s.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return domain.Appointment{}, appointmentLookup(err)
	}

	ctx, span := s.startSpan(ctx, "CancelBooking", current.ProviderID)
	defer func() { endSpan(span, err) }()

	err = s.repo.InProviderTransaction(ctx, current.ProviderID, func(ctx context.Context, tx store.ScheduleTx) error {
		appt, err := tx.GetAppointmentForUpdate(ctx, appointmentID)
		if err != nil {
			return appointmentLookup(err)
		}
		if !appt.IsActive() {
			out = appt
			return nil
		}

		now := s.now().UTC()
		appt.Status = domain.AppointmentStatusCancelled
		appt.CancelledAt = &now

		updated, err := tx.UpdateAppointment(ctx, appt)
		if err != nil {
			return appointmentLookup(err)
		}
		if err := appendBookingEvent(ctx, tx, domain.EventBookingCancelled, updated, nil); err != nil {
			return err
		}
		out = updated
		return nil
	})
	if err != nil {
		return domain.Appointment{}, err
	}
	return out, nil
}

func (s *Service) GetAppointment(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error) {
	if appointmentID == uuid.Nil {
		return domain.Appointment{}, validationError("appointment_id is required")
	}
	appt, err := s.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return domain.Appointment{}, appointmentLookup(err)
	}
	return appt, nil
}

func (s *Service) ListAppointments(ctx context.Context, providerID uuid.UUID, windowStart, windowEnd time.Time) ([]domain.Appointment, error) {
	if providerID == uuid.Nil {
		return nil, validationError("provider_id is required")
	}

	start := windowStart.UTC()
	end := windowEnd.UTC()
	if end.Equal(start) || end.Before(start) {
		return nil, validationError("window_end must be after window_start")
	}
	if end.Sub(start) > time.Duration(s.maxRangeDays)*24*time.Hour {
		return nil, validationError("window too long")
	}

	return s.repo.ListAppointments(ctx, providerID, start, end)
}

// slotConflict maps a storage-level double booking to ErrSlotUnavailable.
func slotConflict(err error) error {
	if errors.Is(err, store.ErrConflict) {
		return ErrSlotUnavailable
	}
	return err
}
