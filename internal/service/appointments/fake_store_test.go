package appointments

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"salonbook/backend/internal/domain"
	"salonbook/backend/internal/store"
)

// fakeStore is an in-memory ScheduleRepository that mimics the Postgres guards: one
// writer per provider, overlap rejection for active appointments and rollback on error.
type fakeStore struct {
	mu sync.Mutex

	providers    map[uuid.UUID]domain.Provider
	services     map[uuid.UUID]domain.Service
	windows      map[uuid.UUID][]domain.RecurringWindow
	closed       map[uuid.UUID]map[int16]bool
	blocked      []domain.BlockedSlot
	appointments map[uuid.UUID]domain.Appointment
	outbox       []domain.OutboxEvent

	// createAppointmentFn, when set, replaces the insert to simulate storage races.
	createAppointmentFn func(ctx context.Context, appt domain.Appointment) (domain.Appointment, error)
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		providers:    map[uuid.UUID]domain.Provider{},
		services:     map[uuid.UUID]domain.Service{},
		windows:      map[uuid.UUID][]domain.RecurringWindow{},
		closed:       map[uuid.UUID]map[int16]bool{},
		appointments: map[uuid.UUID]domain.Appointment{},
	}
}

func (f *fakeStore) addProvider(id uuid.UUID, tz string) {
	f.providers[id] = domain.Provider{ID: id, Name: "studio", TimeZone: tz}
}

func (f *fakeStore) addService(providerID, serviceID uuid.UUID, minutes int) {
	f.services[serviceID] = domain.Service{ID: serviceID, ProviderID: providerID, Name: "svc", DurationMinutes: minutes, IsActive: true}
}

func (f *fakeStore) eventTypes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.outbox))
	for _, e := range f.outbox {
		out = append(out, e.EventType)
	}
	return out
}

type fakeState struct {
	windows      map[uuid.UUID][]domain.RecurringWindow
	closed       map[uuid.UUID]map[int16]bool
	blocked      []domain.BlockedSlot
	appointments map[uuid.UUID]domain.Appointment
	outbox       []domain.OutboxEvent
}

func (f *fakeStore) save() fakeState {
	st := fakeState{
		windows:      map[uuid.UUID][]domain.RecurringWindow{},
		closed:       map[uuid.UUID]map[int16]bool{},
		blocked:      append([]domain.BlockedSlot(nil), f.blocked...),
		appointments: map[uuid.UUID]domain.Appointment{},
		outbox:       append([]domain.OutboxEvent(nil), f.outbox...),
	}
	for k, v := range f.windows {
		st.windows[k] = append([]domain.RecurringWindow(nil), v...)
	}
	for k, v := range f.closed {
		m := map[int16]bool{}
		for d, c := range v {
			m[d] = c
		}
		st.closed[k] = m
	}
	for k, v := range f.appointments {
		st.appointments[k] = v
	}
	return st
}

func (f *fakeStore) restore(st fakeState) {
	f.windows = st.windows
	f.closed = st.closed
	f.blocked = st.blocked
	f.appointments = st.appointments
	f.outbox = st.outbox
}

func (f *fakeStore) InProviderTransaction(ctx context.Context, providerID uuid.UUID, fn func(ctx context.Context, tx store.ScheduleTx) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	st := f.save()
	if err := fn(ctx, fakeTx{f: f}); err != nil {
		f.restore(st)
		return err
	}
	return nil
}

func (f *fakeStore) View(ctx context.Context, fn func(ctx context.Context, tx store.ScheduleTx) error) error {
	return f.InProviderTransaction(ctx, uuid.Nil, fn)
}

func (f *fakeStore) GetAppointment(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.appointments[appointmentID]
	if !ok {
		return domain.Appointment{}, store.ErrNotFound
	}
	return a, nil
}

func (f *fakeStore) ListAppointments(ctx context.Context, providerID uuid.UUID, windowStart, windowEnd time.Time) ([]domain.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listAppointments(providerID, windowStart, windowEnd, false), nil
}

func (f *fakeStore) listAppointments(providerID uuid.UUID, windowStart, windowEnd time.Time, activeOnly bool) []domain.Appointment {
	var out []domain.Appointment
	for _, a := range f.appointments {
		if a.ProviderID != providerID || (activeOnly && !a.IsActive()) {
			continue
		}
		if a.StartTime.Before(windowEnd) && a.EndTime.After(windowStart) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out
}

// fakeTx runs with fakeStore.mu held.
type fakeTx struct {
	f *fakeStore
}

func (t fakeTx) GetProvider(ctx context.Context, providerID uuid.UUID) (domain.Provider, error) {
	p, ok := t.f.providers[providerID]
	if !ok {
		return domain.Provider{}, store.ErrNotFound
	}
	return p, nil
}

func (t fakeTx) GetService(ctx context.Context, providerID, serviceID uuid.UUID) (domain.Service, error) {
	s, ok := t.f.services[serviceID]
	if !ok || s.ProviderID != providerID || !s.IsActive {
		return domain.Service{}, store.ErrNotFound
	}
	return s, nil
}

func (t fakeTx) ListWindows(ctx context.Context, providerID uuid.UUID) ([]domain.RecurringWindow, error) {
	return append([]domain.RecurringWindow(nil), t.f.windows[providerID]...), nil
}

func (t fakeTx) ReplaceWindows(ctx context.Context, providerID uuid.UUID, windows []domain.RecurringWindow) ([]domain.RecurringWindow, error) {
	rows := make([]domain.RecurringWindow, len(windows))
	for i, w := range windows {
		w.ID = uuid.New()
		w.ProviderID = providerID
		rows[i] = w
	}
	t.f.windows[providerID] = rows
	return append([]domain.RecurringWindow(nil), rows...), nil
}

func (t fakeTx) ListClosedDays(ctx context.Context, providerID uuid.UUID) ([]domain.ClosedDay, error) {
	var out []domain.ClosedDay
	for d, c := range t.f.closed[providerID] {
		if c {
			out = append(out, domain.ClosedDay{ProviderID: providerID, DayOfWeek: d})
		}
	}
	return out, nil
}

func (t fakeTx) ToggleClosedDay(ctx context.Context, providerID uuid.UUID, dayOfWeek int16) (bool, error) {
	m := t.f.closed[providerID]
	if m == nil {
		m = map[int16]bool{}
		t.f.closed[providerID] = m
	}
	m[dayOfWeek] = !m[dayOfWeek]
	return m[dayOfWeek], nil
}

func (t fakeTx) CreateBlockedSlot(ctx context.Context, slot domain.BlockedSlot) (domain.BlockedSlot, error) {
	slot.ID = uuid.New()
	slot.Date = domain.CivilDate(slot.Date)
	t.f.blocked = append(t.f.blocked, slot)
	return slot, nil
}

func (t fakeTx) DeleteBlockedSlot(ctx context.Context, providerID, blockedSlotID uuid.UUID) error {
	for i, b := range t.f.blocked {
		if b.ProviderID == providerID && b.ID == blockedSlotID {
			t.f.blocked = append(t.f.blocked[:i], t.f.blocked[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (t fakeTx) ListBlockedSlots(ctx context.Context, providerID uuid.UUID, from, to time.Time) ([]domain.BlockedSlot, error) {
	var out []domain.BlockedSlot
	for _, b := range t.f.blocked {
		if b.ProviderID == providerID && !b.Date.Before(from) && !b.Date.After(to) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (t fakeTx) ListActiveAppointments(ctx context.Context, providerID uuid.UUID, windowStart, windowEnd time.Time) ([]domain.Appointment, error) {
	return t.f.listAppointments(providerID, windowStart, windowEnd, true), nil
}

func (t fakeTx) GetAppointmentForUpdate(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error) {
	a, ok := t.f.appointments[appointmentID]
	if !ok {
		return domain.Appointment{}, store.ErrNotFound
	}
	return a, nil
}

func (t fakeTx) CreateAppointment(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
	if t.f.createAppointmentFn != nil {
		return t.f.createAppointmentFn(ctx, appt)
	}
	if existing, ok := t.f.appointments[appt.ID]; ok && appt.ID != uuid.Nil {
		if !existing.SameBooking(appt) {
			return domain.Appointment{}, store.ErrIdempotencyConflict
		}
		return existing, nil
	}
	if err := t.checkOverlap(appt); err != nil {
		return domain.Appointment{}, err
	}
	if appt.ID == uuid.Nil {
		appt.ID = uuid.New()
	}
	appt.CreatedAt = time.Now().UTC()
	appt.UpdatedAt = appt.CreatedAt
	t.f.appointments[appt.ID] = appt
	return appt, nil
}

func (t fakeTx) UpdateAppointment(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
	if _, ok := t.f.appointments[appt.ID]; !ok {
		return domain.Appointment{}, store.ErrNotFound
	}
	if appt.IsActive() {
		if err := t.checkOverlap(appt); err != nil {
			return domain.Appointment{}, err
		}
	}
	appt.UpdatedAt = time.Now().UTC()
	t.f.appointments[appt.ID] = appt
	return appt, nil
}

func (t fakeTx) checkOverlap(appt domain.Appointment) error {
	for _, a := range t.f.appointments {
		if a.ID == appt.ID || a.ProviderID != appt.ProviderID || !a.IsActive() {
			continue
		}
		if domain.Overlaps(appt.StartTime, appt.EndTime, a.StartTime, a.EndTime) {
			return store.ErrConflict
		}
	}
	return nil
}

func (t fakeTx) AppendOutbox(ctx context.Context, evt domain.OutboxEvent) error {
	evt.ID = int64(len(t.f.outbox) + 1)
	t.f.outbox = append(t.f.outbox, evt)
	return nil
}
