package appointments

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/google/uuid"

	"salonbook/backend/internal/domain"
	"salonbook/backend/internal/store"
)

var (
	testProviderID = uuid.MustParse("00000000-0000-0000-0000-000000000101")
	testServiceID  = uuid.MustParse("00000000-0000-0000-0000-000000000201")
	testLongSvcID  = uuid.MustParse("00000000-0000-0000-0000-000000000202")

	// 2026-01-05 is a Monday.
	testMonday  = time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	testTuesday = time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC)
	testNow     = time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
)

func newTestService(t *testing.T) (*Service, *fakeStore) {
	t.Helper()
	fs := newFakeStore()
	fs.addProvider(testProviderID, "UTC")
	fs.addService(testProviderID, testServiceID, 30)
	fs.addService(testProviderID, testLongSvcID, 60)
	svc := NewService(fs, Config{Now: func() time.Time { return testNow }})
	return svc, fs
}

func mustReplaceWindows(t *testing.T, svc *Service, in ...WindowInput) {
	t.Helper()
	if _, err := svc.ReplaceWindows(context.Background(), testProviderID, in); err != nil {
		t.Fatalf("ReplaceWindows error: %v", err)
	}
}

func bookableOn(t *testing.T, svc *Service, date time.Time, serviceID uuid.UUID) []string {
	t.Helper()
	days, err := svc.GetAvailability(context.Background(), AvailabilityQuery{
		ProviderID: testProviderID,
		From:       date,
		To:         date,
		ServiceID:  serviceID,
	})
	if err != nil {
		t.Fatalf("GetAvailability error: %v", err)
	}
	if len(days) != 1 {
		t.Fatalf("len(days) = %d, want 1", len(days))
	}
	out := []string{}
	for _, c := range days[0].Bookable() {
		out = append(out, c.String())
	}
	return out
}

func at(date time.Time, hour, minute int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, time.UTC)
}

func TestService_BookRescheduleCancelRoundTrip(t *testing.T) {
	svc, fs := newTestService(t)
	ctx := context.Background()
	mustReplaceWindows(t, svc, WindowInput{DayOfWeek: 1, Start: "09:00", End: "12:00"})

	all := []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}
	if got := bookableOn(t, svc, testMonday, testServiceID); !reflect.DeepEqual(got, all) {
		t.Fatalf("initial bookable = %v, want %v", got, all)
	}

	appt, err := svc.CreateBooking(ctx, CreateBookingInput{
		ProviderID: testProviderID,
		ServiceID:  testServiceID,
		CustomerID: " c1 ",
		StartTime:  at(testMonday, 10, 0),
	})
	if err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}
	if appt.CustomerID != "c1" || appt.DurationMinutes != 30 || !appt.EndTime.Equal(at(testMonday, 10, 30)) {
		t.Fatalf("created appointment = %+v", appt)
	}

	want := []string{"09:00", "09:30", "10:30", "11:00", "11:30"}
	if got := bookableOn(t, svc, testMonday, testServiceID); !reflect.DeepEqual(got, want) {
		t.Fatalf("after booking = %v, want %v", got, want)
	}

	moved, err := svc.RescheduleBooking(ctx, RescheduleBookingInput{AppointmentID: appt.ID, NewStartTime: at(testMonday, 11, 0)})
	if err != nil {
		t.Fatalf("RescheduleBooking error: %v", err)
	}
	if moved.ID != appt.ID || !moved.EndTime.Equal(at(testMonday, 11, 30)) {
		t.Fatalf("moved appointment = %+v", moved)
	}

	want = []string{"09:00", "09:30", "10:00", "10:30", "11:30"}
	if got := bookableOn(t, svc, testMonday, testServiceID); !reflect.DeepEqual(got, want) {
		t.Fatalf("after reschedule = %v, want %v", got, want)
	}

	cancelled, err := svc.CancelBooking(ctx, appt.ID)
	if err != nil {
		t.Fatalf("CancelBooking error: %v", err)
	}
	if cancelled.Status != domain.AppointmentStatusCancelled || cancelled.CancelledAt == nil {
		t.Fatalf("cancelled appointment = %+v", cancelled)
	}
	if got := bookableOn(t, svc, testMonday, testServiceID); !reflect.DeepEqual(got, all) {
		t.Fatalf("after cancel = %v, want %v", got, all)
	}

	wantEvents := []string{domain.EventBookingCreated, domain.EventBookingRescheduled, domain.EventBookingCancelled}
	if got := fs.eventTypes(); !reflect.DeepEqual(got, wantEvents) {
		t.Fatalf("events = %v, want %v", got, wantEvents)
	}
}

func TestService_CreateBookingRejectsUnbookableTimes(t *testing.T) {
	svc, fs := newTestService(t)
	ctx := context.Background()
	mustReplaceWindows(t, svc,
		WindowInput{DayOfWeek: 1, Start: "09:00", End: "12:00"},
		WindowInput{DayOfWeek: 2, Start: "09:00", End: "13:00"},
	)
	if _, err := svc.AddBlockedSlot(ctx, AddBlockedSlotInput{ProviderID: testProviderID, Date: testTuesday, Hour: 11}); err != nil {
		t.Fatalf("AddBlockedSlot error: %v", err)
	}
	if _, err := svc.CreateBooking(ctx, CreateBookingInput{ProviderID: testProviderID, ServiceID: testServiceID, CustomerID: "c1", StartTime: at(testMonday, 9, 0)}); err != nil {
		t.Fatalf("seed booking error: %v", err)
	}

	tests := []struct {
		name  string
		start time.Time
	}{
		{name: "already booked", start: at(testMonday, 9, 0)},
		{name: "off grid", start: at(testMonday, 10, 15)},
		{name: "outside window", start: at(testMonday, 12, 0)},
		{name: "blocked hour first half", start: at(testTuesday, 11, 0)},
		{name: "blocked hour second half", start: at(testTuesday, 11, 30)},
		{name: "weekday without window", start: at(testMonday.AddDate(0, 0, 2), 10, 0)},
		{name: "in the past", start: time.Date(2025, 12, 29, 10, 0, 0, 0, time.UTC)},
		{name: "seconds set", start: at(testMonday, 10, 0).Add(time.Second)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateBooking(ctx, CreateBookingInput{
				ProviderID: testProviderID,
				ServiceID:  testServiceID,
				CustomerID: "c2",
				StartTime:  tt.start,
			})
			if !errors.Is(err, ErrSlotUnavailable) {
				t.Fatalf("err = %v, want %v", err, ErrSlotUnavailable)
			}
		})
	}

	if got := fs.eventTypes(); len(got) != 1 {
		t.Fatalf("events = %v, want only the seed booking", got)
	}
}

func TestService_ClosedDayBlocksBooking(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	mustReplaceWindows(t, svc, WindowInput{DayOfWeek: 0, Start: "09:00", End: "17:00"})

	closed, err := svc.ToggleClosedDay(ctx, testProviderID, 0)
	if err != nil {
		t.Fatalf("ToggleClosedDay error: %v", err)
	}
	if !reflect.DeepEqual(closed, []int16{0}) {
		t.Fatalf("closed = %v, want [0]", closed)
	}

	sunday := testMonday.AddDate(0, 0, -1)
	days, err := svc.GetAvailability(ctx, AvailabilityQuery{ProviderID: testProviderID, From: sunday, To: sunday})
	if err != nil {
		t.Fatalf("GetAvailability error: %v", err)
	}
	if !days[0].Closed || len(days[0].Slots) != 0 {
		t.Fatalf("sunday = %+v, want closed", days[0])
	}

	_, err = svc.CreateBooking(ctx, CreateBookingInput{ProviderID: testProviderID, ServiceID: testServiceID, CustomerID: "c1", StartTime: at(sunday, 10, 0)})
	if !errors.Is(err, ErrSlotUnavailable) {
		t.Fatalf("err = %v, want %v", err, ErrSlotUnavailable)
	}

	closed, err = svc.ToggleClosedDay(ctx, testProviderID, 0)
	if err != nil {
		t.Fatalf("ToggleClosedDay error: %v", err)
	}
	if len(closed) != 0 {
		t.Fatalf("closed = %v, want empty", closed)
	}
	if _, err := svc.CreateBooking(ctx, CreateBookingInput{ProviderID: testProviderID, ServiceID: testServiceID, CustomerID: "c1", StartTime: at(sunday, 10, 0)}); err != nil {
		t.Fatalf("CreateBooking after reopen error: %v", err)
	}
}

func TestService_CreateBookingNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	mustReplaceWindows(t, svc, WindowInput{DayOfWeek: 1, Start: "09:00", End: "12:00"})

	_, err := svc.CreateBooking(ctx, CreateBookingInput{ProviderID: uuid.New(), ServiceID: testServiceID, CustomerID: "c1", StartTime: at(testMonday, 9, 0)})
	if !errors.Is(err, ErrProviderNotFound) {
		t.Fatalf("err = %v, want %v", err, ErrProviderNotFound)
	}

	_, err = svc.CreateBooking(ctx, CreateBookingInput{ProviderID: testProviderID, ServiceID: uuid.New(), CustomerID: "c1", StartTime: at(testMonday, 9, 0)})
	if !errors.Is(err, ErrServiceNotFound) {
		t.Fatalf("err = %v, want %v", err, ErrServiceNotFound)
	}

	_, err = svc.GetAvailability(ctx, AvailabilityQuery{ProviderID: uuid.New(), From: testMonday, To: testMonday})
	if !errors.Is(err, ErrProviderNotFound) {
		t.Fatalf("availability err = %v, want %v", err, ErrProviderNotFound)
	}
	_, err = svc.GetAvailability(ctx, AvailabilityQuery{ProviderID: testProviderID, From: testMonday, To: testMonday, ServiceID: uuid.New()})
	if !errors.Is(err, ErrServiceNotFound) {
		t.Fatalf("availability err = %v, want %v", err, ErrServiceNotFound)
	}
}

func TestService_CreateBookingValidation(t *testing.T) {
	svc, _ := newTestService(t)

	tests := []struct {
		name string
		in   CreateBookingInput
		want string
	}{
		{name: "provider", in: CreateBookingInput{ServiceID: testServiceID, CustomerID: "c", StartTime: testMonday}, want: "provider_id is required"},
		{name: "service", in: CreateBookingInput{ProviderID: testProviderID, CustomerID: "c", StartTime: testMonday}, want: "service_id is required"},
		{name: "customer", in: CreateBookingInput{ProviderID: testProviderID, ServiceID: testServiceID, CustomerID: "  ", StartTime: testMonday}, want: "customer_id is required"},
		{name: "start", in: CreateBookingInput{ProviderID: testProviderID, ServiceID: testServiceID, CustomerID: "c"}, want: "start_time is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateBooking(context.Background(), tt.in)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("error type = %T, want *ValidationError", err)
			}
			if vErr.Error() != tt.want {
				t.Fatalf("error = %q, want %q", vErr.Error(), tt.want)
			}
		})
	}
}

func TestService_StorageConflictBecomesSlotUnavailable(t *testing.T) {
	svc, fs := newTestService(t)
	mustReplaceWindows(t, svc, WindowInput{DayOfWeek: 1, Start: "09:00", End: "12:00"})

	// A concurrent writer won the slot between the availability check and the insert.
	fs.createAppointmentFn = func(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
		return domain.Appointment{}, store.ErrConflict
	}

	_, err := svc.CreateBooking(context.Background(), CreateBookingInput{
		ProviderID: testProviderID,
		ServiceID:  testServiceID,
		CustomerID: "c1",
		StartTime:  at(testMonday, 9, 0),
	})
	if !errors.Is(err, ErrSlotUnavailable) {
		t.Fatalf("err = %v, want %v", err, ErrSlotUnavailable)
	}
	if got := fs.eventTypes(); len(got) != 0 {
		t.Fatalf("events = %v, want none", got)
	}
}

func TestService_DurationAwareAvailability(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	mustReplaceWindows(t, svc, WindowInput{DayOfWeek: 1, Start: "09:00", End: "12:00"})

	if _, err := svc.CreateBooking(ctx, CreateBookingInput{ProviderID: testProviderID, ServiceID: testServiceID, CustomerID: "c1", StartTime: at(testMonday, 10, 30)}); err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}

	want := []string{"09:00", "09:30", "11:00", "11:30"}
	if got := bookableOn(t, svc, testMonday, testLongSvcID); !reflect.DeepEqual(got, want) {
		t.Fatalf("60 minute bookable = %v, want %v", got, want)
	}

	_, err := svc.CreateBooking(ctx, CreateBookingInput{ProviderID: testProviderID, ServiceID: testLongSvcID, CustomerID: "c2", StartTime: at(testMonday, 10, 0)})
	if !errors.Is(err, ErrSlotUnavailable) {
		t.Fatalf("err = %v, want %v", err, ErrSlotUnavailable)
	}
}

func TestService_RescheduleExcludesItself(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	mustReplaceWindows(t, svc, WindowInput{DayOfWeek: 1, Start: "09:00", End: "12:00"})

	appt, err := svc.CreateBooking(ctx, CreateBookingInput{ProviderID: testProviderID, ServiceID: testLongSvcID, CustomerID: "c1", StartTime: at(testMonday, 10, 0)})
	if err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}

	moved, err := svc.RescheduleBooking(ctx, RescheduleBookingInput{AppointmentID: appt.ID, NewStartTime: at(testMonday, 10, 30)})
	if err != nil {
		t.Fatalf("RescheduleBooking overlapping own interval error: %v", err)
	}
	if moved.DurationMinutes != 60 || !moved.EndTime.Equal(at(testMonday, 11, 30)) {
		t.Fatalf("moved = %+v", moved)
	}

	other, err := svc.CreateBooking(ctx, CreateBookingInput{ProviderID: testProviderID, ServiceID: testServiceID, CustomerID: "c2", StartTime: at(testMonday, 9, 0)})
	if err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}
	_, err = svc.RescheduleBooking(ctx, RescheduleBookingInput{AppointmentID: other.ID, NewStartTime: at(testMonday, 11, 0)})
	if !errors.Is(err, ErrSlotUnavailable) {
		t.Fatalf("err = %v, want %v", err, ErrSlotUnavailable)
	}
}

func TestService_RescheduleAndCancelEdgeCases(t *testing.T) {
	svc, fs := newTestService(t)
	ctx := context.Background()
	mustReplaceWindows(t, svc, WindowInput{DayOfWeek: 1, Start: "09:00", End: "12:00"})

	_, err := svc.RescheduleBooking(ctx, RescheduleBookingInput{AppointmentID: uuid.New(), NewStartTime: at(testMonday, 9, 0)})
	if !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("reschedule missing err = %v, want %v", err, ErrAppointmentNotFound)
	}
	if _, err := svc.CancelBooking(ctx, uuid.New()); !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("cancel missing err = %v, want %v", err, ErrAppointmentNotFound)
	}

	appt, err := svc.CreateBooking(ctx, CreateBookingInput{ProviderID: testProviderID, ServiceID: testServiceID, CustomerID: "c1", StartTime: at(testMonday, 9, 0)})
	if err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}
	first, err := svc.CancelBooking(ctx, appt.ID)
	if err != nil {
		t.Fatalf("CancelBooking error: %v", err)
	}
	second, err := svc.CancelBooking(ctx, appt.ID)
	if err != nil {
		t.Fatalf("second CancelBooking error: %v", err)
	}
	if !second.CancelledAt.Equal(*first.CancelledAt) {
		t.Fatalf("second cancel changed cancelled_at")
	}

	_, err = svc.RescheduleBooking(ctx, RescheduleBookingInput{AppointmentID: appt.ID, NewStartTime: at(testMonday, 10, 0)})
	if !errors.Is(err, ErrAppointmentCancelled) {
		t.Fatalf("reschedule cancelled err = %v, want %v", err, ErrAppointmentCancelled)
	}

	want := []string{domain.EventBookingCreated, domain.EventBookingCancelled}
	if got := fs.eventTypes(); !reflect.DeepEqual(got, want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
}

func TestService_CreateBookingIdempotencyKey(t *testing.T) {
	svc, fs := newTestService(t)
	ctx := context.Background()
	mustReplaceWindows(t, svc, WindowInput{DayOfWeek: 1, Start: "09:00", End: "12:00"})

	in := CreateBookingInput{
		ProviderID:     testProviderID,
		ServiceID:      testServiceID,
		CustomerID:     "c1",
		StartTime:      at(testMonday, 9, 0),
		IdempotencyKey: "k1",
	}
	first, err := svc.CreateBooking(ctx, in)
	if err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}

	// A replay is answered from the row read under lock without another insert.
	inserts := 0
	fs.createAppointmentFn = func(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
		inserts++
		return domain.Appointment{}, errors.New("unexpected insert")
	}
	second, err := svc.CreateBooking(ctx, in)
	if err != nil {
		t.Fatalf("replay error: %v", err)
	}
	if first.ID != second.ID || !second.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("replay = %+v, want %+v", second, first)
	}
	if inserts != 0 {
		t.Fatalf("inserts on replay = %d, want 0", inserts)
	}

	in.CustomerID = "c2"
	if _, err := svc.CreateBooking(ctx, in); !errors.Is(err, store.ErrIdempotencyConflict) {
		t.Fatalf("err = %v, want %v", err, store.ErrIdempotencyConflict)
	}
	in.CustomerID = "c1"
	in.StaffID = "stylist-2"
	if _, err := svc.CreateBooking(ctx, in); !errors.Is(err, store.ErrIdempotencyConflict) {
		t.Fatalf("staff change err = %v, want %v", err, store.ErrIdempotencyConflict)
	}
	if inserts != 0 {
		t.Fatalf("inserts on conflicting replay = %d, want 0", inserts)
	}

	if got := fs.eventTypes(); len(got) != 1 {
		t.Fatalf("events = %v, want one", got)
	}
}

func TestService_ProviderTimeZone(t *testing.T) {
	fs := newFakeStore()
	fs.addProvider(testProviderID, "Europe/Berlin")
	fs.addService(testProviderID, testServiceID, 30)
	svc := NewService(fs, Config{Now: func() time.Time { return testNow }})
	mustReplaceWindows(t, svc, WindowInput{DayOfWeek: 1, Start: "09:00", End: "11:00"})

	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Fatalf("LoadLocation error: %v", err)
	}

	appt, err := svc.CreateBooking(context.Background(), CreateBookingInput{
		ProviderID: testProviderID,
		ServiceID:  testServiceID,
		CustomerID: "c1",
		StartTime:  time.Date(2026, 1, 5, 9, 30, 0, 0, loc),
	})
	if err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}
	if !appt.StartTime.Equal(time.Date(2026, 1, 5, 8, 30, 0, 0, time.UTC)) {
		t.Fatalf("start = %v, want 08:30 UTC", appt.StartTime)
	}

	want := []string{"09:00", "10:00", "10:30"}
	if got := bookableOn(t, svc, testMonday, testServiceID); !reflect.DeepEqual(got, want) {
		t.Fatalf("bookable = %v, want %v", got, want)
	}

	// 09:00 UTC is 10:00 in Berlin, inside the window.
	if _, err := svc.CreateBooking(context.Background(), CreateBookingInput{ProviderID: testProviderID, ServiceID: testServiceID, CustomerID: "c2", StartTime: at(testMonday, 9, 0)}); err != nil {
		t.Fatalf("CreateBooking UTC input error: %v", err)
	}
}

func TestService_DaylightSavingTransitions(t *testing.T) {
	fs := newFakeStore()
	fs.addProvider(testProviderID, "America/New_York")
	fs.addService(testProviderID, testServiceID, 30)
	svc := NewService(fs, Config{Now: func() time.Time { return testNow }})
	mustReplaceWindows(t, svc, WindowInput{DayOfWeek: 0, Start: "01:00", End: "04:00"})
	ctx := context.Background()

	springForward := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	want := []string{"01:00", "01:30", "03:00", "03:30"}
	if got := bookableOn(t, svc, springForward, testServiceID); !reflect.DeepEqual(got, want) {
		t.Fatalf("spring forward bookable = %v, want %v", got, want)
	}

	fallBack := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	// 01:30 EDT.
	appt, err := svc.CreateBooking(ctx, CreateBookingInput{ProviderID: testProviderID, ServiceID: testServiceID, CustomerID: "c1", StartTime: at(fallBack, 5, 30)})
	if err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}
	if !appt.StartTime.Equal(at(fallBack, 5, 30)) {
		t.Fatalf("start = %v, want 05:30 UTC", appt.StartTime)
	}

	// 01:00 EST is the repeated wall time, not a slot of its own.
	if _, err := svc.CreateBooking(ctx, CreateBookingInput{ProviderID: testProviderID, ServiceID: testServiceID, CustomerID: "c2", StartTime: at(fallBack, 6, 0)}); !errors.Is(err, ErrSlotUnavailable) {
		t.Fatalf("repeated hour err = %v, want %v", err, ErrSlotUnavailable)
	}
	if _, err := svc.CreateBooking(ctx, CreateBookingInput{ProviderID: testProviderID, ServiceID: testServiceID, CustomerID: "c3", StartTime: at(fallBack, 6, 30)}); !errors.Is(err, ErrSlotUnavailable) {
		t.Fatalf("repeated 01:30 err = %v, want %v", err, ErrSlotUnavailable)
	}

	want = []string{"01:00", "02:00", "02:30", "03:00", "03:30"}
	if got := bookableOn(t, svc, fallBack, testServiceID); !reflect.DeepEqual(got, want) {
		t.Fatalf("fall back bookable = %v, want %v", got, want)
	}
}

func TestService_ReplaceWindowsValidation(t *testing.T) {
	svc, _ := newTestService(t)

	tests := []struct {
		name string
		in   []WindowInput
	}{
		{name: "start equals end", in: []WindowInput{{DayOfWeek: 1, Start: "09:00", End: "09:00"}}},
		{name: "start after end", in: []WindowInput{{DayOfWeek: 1, Start: "12:00", End: "09:00"}}},
		{name: "duplicate weekday", in: []WindowInput{{DayOfWeek: 1, Start: "09:00", End: "10:00"}, {DayOfWeek: 1, Start: "11:00", End: "12:00"}}},
		{name: "weekday out of range", in: []WindowInput{{DayOfWeek: 7, Start: "09:00", End: "10:00"}}},
		{name: "bad clock", in: []WindowInput{{DayOfWeek: 1, Start: "9am", End: "10:00"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ReplaceWindows(context.Background(), testProviderID, tt.in)
			if !errors.Is(err, ErrInvalidWindow) {
				t.Fatalf("err = %v, want %v", err, ErrInvalidWindow)
			}
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("error type = %T, want *ValidationError", err)
			}
		})
	}
}

func TestService_ReplaceWindowsAndSchedule(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	got, err := svc.ReplaceWindows(ctx, testProviderID, []WindowInput{
		{DayOfWeek: 5, Start: "10:00", End: "20:00"},
		{DayOfWeek: 1, Start: "09:00", End: "17:00"},
	})
	if err != nil {
		t.Fatalf("ReplaceWindows error: %v", err)
	}
	if len(got) != 2 || got[0].DayOfWeek != 1 || got[1].DayOfWeek != 5 {
		t.Fatalf("windows = %+v", got)
	}

	if _, err := svc.ReplaceWindows(ctx, testProviderID, []WindowInput{{DayOfWeek: 3, Start: "08:00", End: "24:00"}}); err != nil {
		t.Fatalf("ReplaceWindows error: %v", err)
	}
	if _, err := svc.ToggleClosedDay(ctx, testProviderID, 6); err != nil {
		t.Fatalf("ToggleClosedDay error: %v", err)
	}

	sched, err := svc.GetSchedule(ctx, testProviderID)
	if err != nil {
		t.Fatalf("GetSchedule error: %v", err)
	}
	if len(sched.Windows) != 1 || sched.Windows[0].DayOfWeek != 3 || sched.Windows[0].EndMinute != domain.MinutesPerDay {
		t.Fatalf("windows = %+v", sched.Windows)
	}
	if !reflect.DeepEqual(sched.ClosedDays, []int16{6}) {
		t.Fatalf("closed = %v, want [6]", sched.ClosedDays)
	}

	if _, err := svc.ReplaceWindows(ctx, uuid.New(), nil); !errors.Is(err, ErrProviderNotFound) {
		t.Fatalf("err = %v, want %v", err, ErrProviderNotFound)
	}
}

func TestService_ReplaceWindowsIsIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	in := []WindowInput{
		{DayOfWeek: 1, Start: "09:00", End: "17:00"},
		{DayOfWeek: 3, Start: "12:00", End: "20:00"},
		{DayOfWeek: 5, Start: "08:30", End: "12:00"},
	}

	type span struct {
		day        int16
		start, end domain.Clock
	}
	replace := func() ([]span, []domain.DayAvailability) {
		t.Helper()
		windows, err := svc.ReplaceWindows(ctx, testProviderID, in)
		if err != nil {
			t.Fatalf("ReplaceWindows error: %v", err)
		}
		spans := make([]span, 0, len(windows))
		for _, w := range windows {
			spans = append(spans, span{day: w.DayOfWeek, start: w.StartMinute, end: w.EndMinute})
		}
		days, err := svc.GetAvailability(ctx, AvailabilityQuery{
			ProviderID: testProviderID,
			From:       testMonday,
			To:         testMonday.AddDate(0, 0, 6),
			ServiceID:  testServiceID,
		})
		if err != nil {
			t.Fatalf("GetAvailability error: %v", err)
		}
		return spans, days
	}

	firstSpans, firstDays := replace()
	secondSpans, secondDays := replace()

	if !reflect.DeepEqual(firstSpans, secondSpans) {
		t.Fatalf("windows after second replace = %+v, want %+v", secondSpans, firstSpans)
	}
	if !reflect.DeepEqual(firstDays, secondDays) {
		t.Fatalf("availability changed after identical replace:\nfirst  %+v\nsecond %+v", firstDays, secondDays)
	}

	sched, err := svc.GetSchedule(ctx, testProviderID)
	if err != nil {
		t.Fatalf("GetSchedule error: %v", err)
	}
	if len(sched.Windows) != len(in) {
		t.Fatalf("stored windows = %d, want %d", len(sched.Windows), len(in))
	}
}

func TestService_BlockedSlots(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	mustReplaceWindows(t, svc, WindowInput{DayOfWeek: 2, Start: "09:00", End: "13:00"})

	b, err := svc.AddBlockedSlot(ctx, AddBlockedSlotInput{
		ProviderID: testProviderID,
		Date:       at(testTuesday, 15, 45),
		Hour:       11,
		Reason:     "  staff training  ",
	})
	if err != nil {
		t.Fatalf("AddBlockedSlot error: %v", err)
	}
	if b.Reason != "staff training" || !b.Date.Equal(testTuesday) {
		t.Fatalf("blocked slot = %+v", b)
	}

	want := []string{"09:00", "09:30", "10:00", "10:30", "12:00", "12:30"}
	if got := bookableOn(t, svc, testTuesday, uuid.Nil); !reflect.DeepEqual(got, want) {
		t.Fatalf("bookable = %v, want %v", got, want)
	}

	listed, err := svc.ListBlockedSlots(ctx, testProviderID, testMonday, testTuesday)
	if err != nil {
		t.Fatalf("ListBlockedSlots error: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != b.ID {
		t.Fatalf("listed = %+v", listed)
	}

	if err := svc.RemoveBlockedSlot(ctx, testProviderID, b.ID); err != nil {
		t.Fatalf("RemoveBlockedSlot error: %v", err)
	}
	if err := svc.RemoveBlockedSlot(ctx, testProviderID, b.ID); !errors.Is(err, ErrBlockedSlotNotFound) {
		t.Fatalf("err = %v, want %v", err, ErrBlockedSlotNotFound)
	}
	if got := bookableOn(t, svc, testTuesday, uuid.Nil); len(got) != 8 {
		t.Fatalf("bookable after removal = %v", got)
	}

	_, err = svc.AddBlockedSlot(ctx, AddBlockedSlotInput{ProviderID: testProviderID, Date: testTuesday, Hour: 24})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
}

func TestService_GetAvailabilityRange(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	mustReplaceWindows(t, svc, WindowInput{DayOfWeek: 1, Start: "09:00", End: "12:00"})

	days, err := svc.GetAvailability(ctx, AvailabilityQuery{ProviderID: testProviderID, From: testMonday, To: testMonday.AddDate(0, 0, 6)})
	if err != nil {
		t.Fatalf("GetAvailability error: %v", err)
	}
	if len(days) != 7 {
		t.Fatalf("len(days) = %d, want 7", len(days))
	}
	for i, d := range days {
		wantClosed := i != 0
		if d.Closed != wantClosed {
			t.Fatalf("day %s closed = %v, want %v", d.Date.Format(domain.DateLayout), d.Closed, wantClosed)
		}
	}

	_, err = svc.GetAvailability(ctx, AvailabilityQuery{ProviderID: testProviderID, From: testTuesday, To: testMonday})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("reversed range error type = %T, want *ValidationError", err)
	}

	_, err = svc.GetAvailability(ctx, AvailabilityQuery{ProviderID: testProviderID, From: testMonday, To: testMonday.AddDate(0, 0, 31)})
	if !errors.As(err, &vErr) {
		t.Fatalf("long range error type = %T, want *ValidationError", err)
	}
}

func TestService_PastSlotsAreUnavailable(t *testing.T) {
	fs := newFakeStore()
	fs.addProvider(testProviderID, "UTC")
	fs.addService(testProviderID, testServiceID, 30)
	now := time.Date(2026, 1, 5, 10, 10, 0, 0, time.UTC)
	svc := NewService(fs, Config{Now: func() time.Time { return now }})
	mustReplaceWindows(t, svc, WindowInput{DayOfWeek: 1, Start: "09:00", End: "12:00"})

	want := []string{"10:30", "11:00", "11:30"}
	if got := bookableOn(t, svc, testMonday, testServiceID); !reflect.DeepEqual(got, want) {
		t.Fatalf("bookable = %v, want %v", got, want)
	}
}

func TestService_ListAppointments(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	mustReplaceWindows(t, svc, WindowInput{DayOfWeek: 1, Start: "09:00", End: "12:00"})

	a, err := svc.CreateBooking(ctx, CreateBookingInput{ProviderID: testProviderID, ServiceID: testServiceID, CustomerID: "c1", StartTime: at(testMonday, 9, 0)})
	if err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}

	rows, err := svc.ListAppointments(ctx, testProviderID, testMonday, testTuesday)
	if err != nil {
		t.Fatalf("ListAppointments error: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != a.ID {
		t.Fatalf("rows = %+v", rows)
	}

	got, err := svc.GetAppointment(ctx, a.ID)
	if err != nil {
		t.Fatalf("GetAppointment error: %v", err)
	}
	if got.ID != a.ID {
		t.Fatalf("id = %s, want %s", got.ID, a.ID)
	}

	if _, err := svc.ListAppointments(ctx, testProviderID, testTuesday, testMonday); err == nil {
		t.Fatalf("expected error for reversed window")
	}
}
