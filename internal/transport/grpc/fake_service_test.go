package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"

	"salonbook/backend/internal/domain"
	"salonbook/backend/internal/service/appointments"
)

type fakeBookingService struct {
	getAvailabilityFn   func(ctx context.Context, q appointments.AvailabilityQuery) ([]domain.DayAvailability, error)
	replaceWindowsFn    func(ctx context.Context, providerID uuid.UUID, in []appointments.WindowInput) ([]domain.RecurringWindow, error)
	getScheduleFn       func(ctx context.Context, providerID uuid.UUID) (appointments.Schedule, error)
	toggleClosedDayFn   func(ctx context.Context, providerID uuid.UUID, dayOfWeek int) ([]int16, error)
	addBlockedSlotFn    func(ctx context.Context, in appointments.AddBlockedSlotInput) (domain.BlockedSlot, error)
	removeBlockedSlotFn func(ctx context.Context, providerID, blockedSlotID uuid.UUID) error
	listBlockedSlotsFn  func(ctx context.Context, providerID uuid.UUID, from, to time.Time) ([]domain.BlockedSlot, error)
	createBookingFn     func(ctx context.Context, in appointments.CreateBookingInput) (domain.Appointment, error)
	rescheduleFn        func(ctx context.Context, in appointments.RescheduleBookingInput) (domain.Appointment, error)
	cancelFn            func(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error)
	getAppointmentFn    func(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error)
	listAppointmentsFn  func(ctx context.Context, providerID uuid.UUID, windowStart, windowEnd time.Time) ([]domain.Appointment, error)
}

func (f *fakeBookingService) GetAvailability(ctx context.Context, q appointments.AvailabilityQuery) ([]domain.DayAvailability, error) {
	if f.getAvailabilityFn == nil {
		panic("GetAvailability not configured")
	}
	return f.getAvailabilityFn(ctx, q)
}

func (f *fakeBookingService) ReplaceWindows(ctx context.Context, providerID uuid.UUID, in []appointments.WindowInput) ([]domain.RecurringWindow, error) {
	if f.replaceWindowsFn == nil {
		panic("ReplaceWindows not configured")
	}
	return f.replaceWindowsFn(ctx, providerID, in)
}

func (f *fakeBookingService) GetSchedule(ctx context.Context, providerID uuid.UUID) (appointments.Schedule, error) {
	if f.getScheduleFn == nil {
		panic("GetSchedule not configured")
	}
	return f.getScheduleFn(ctx, providerID)
}

func (f *fakeBookingService) ToggleClosedDay(ctx context.Context, providerID uuid.UUID, dayOfWeek int) ([]int16, error) {
	if f.toggleClosedDayFn == nil {
		panic("ToggleClosedDay not configured")
	}
	return f.toggleClosedDayFn(ctx, providerID, dayOfWeek)
}

func (f *fakeBookingService) AddBlockedSlot(ctx context.Context, in appointments.AddBlockedSlotInput) (domain.BlockedSlot, error) {
	if f.addBlockedSlotFn == nil {
		panic("AddBlockedSlot not configured")
	}
	return f.addBlockedSlotFn(ctx, in)
}

func (f *fakeBookingService) RemoveBlockedSlot(ctx context.Context, providerID, blockedSlotID uuid.UUID) error {
	if f.removeBlockedSlotFn == nil {
		panic("RemoveBlockedSlot not configured")
	}
	return f.removeBlockedSlotFn(ctx, providerID, blockedSlotID)
}

func (f *fakeBookingService) ListBlockedSlots(ctx context.Context, providerID uuid.UUID, from, to time.Time) ([]domain.BlockedSlot, error) {
	if f.listBlockedSlotsFn == nil {
		panic("ListBlockedSlots not configured")
	}
	return f.listBlockedSlotsFn(ctx, providerID, from, to)
}

func (f *fakeBookingService) CreateBooking(ctx context.Context, in appointments.CreateBookingInput) (domain.Appointment, error) {
	if f.createBookingFn == nil {
		panic("CreateBooking not configured")
	}
	return f.createBookingFn(ctx, in)
}

func (f *fakeBookingService) RescheduleBooking(ctx context.Context, in appointments.RescheduleBookingInput) (domain.Appointment, error) {
	if f.rescheduleFn == nil {
		panic("RescheduleBooking not configured")
	}
	return f.rescheduleFn(ctx, in)
}

func (f *fakeBookingService) CancelBooking(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error) {
	if f.cancelFn == nil {
		panic("CancelBooking not configured")
	}
	return f.cancelFn(ctx, appointmentID)
}

func (f *fakeBookingService) GetAppointment(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error) {
	if f.getAppointmentFn == nil {
		panic("GetAppointment not configured")
	}
	return f.getAppointmentFn(ctx, appointmentID)
}

func (f *fakeBookingService) ListAppointments(ctx context.Context, providerID uuid.UUID, windowStart, windowEnd time.Time) ([]domain.Appointment, error) {
	if f.listAppointmentsFn == nil {
		panic("ListAppointments not configured")
	}
	return f.listAppointmentsFn(ctx, providerID, windowStart, windowEnd)
}
