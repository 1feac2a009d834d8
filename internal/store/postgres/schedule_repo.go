package postgres

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"salonbook/backend/internal/domain"
	"salonbook/backend/internal/store"
	"salonbook/backend/internal/telemetry"
)

type ScheduleRepo struct {
	db *bun.DB
}

func NewScheduleRepo(db *bun.DB) *ScheduleRepo {
	return &ScheduleRepo{db: db}
}

var _ store.ScheduleRepository = (*ScheduleRepo)(nil)

type scheduleTx struct {
	tx bun.Tx
}

var _ store.ScheduleTx = scheduleTx{}

func (r *ScheduleRepo) InProviderTransaction(ctx context.Context, providerID uuid.UUID, fn func(ctx context.Context, tx store.ScheduleTx) error) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := lockProviderSchedule(ctx, tx, providerID); err != nil {
			return err
		}
		return fn(ctx, scheduleTx{tx: tx})
	})
}

func (r *ScheduleRepo) View(ctx context.Context, fn func(ctx context.Context, tx store.ScheduleTx) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
	return r.db.RunInTx(ctx, opts, func(ctx context.Context, tx bun.Tx) error {
		return fn(ctx, scheduleTx{tx: tx})
	})
}

func (r *ScheduleRepo) GetAppointment(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error) {
	var row domain.Appointment
	err := r.db.NewSelect().
		Model(&row).
		Where("id = ?", appointmentID).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return domain.Appointment{}, notFound(err)
	}
	return row, nil
}

func (r *ScheduleRepo) ListAppointments(ctx context.Context, providerID uuid.UUID, windowStart, windowEnd time.Time) ([]domain.Appointment, error) {
	var rows []domain.Appointment
	err := r.db.NewSelect().
		Model(&rows).
		Where("provider_id = ?", providerID).
		Where("start_time < ?", windowEnd).
		Where("end_time > ?", windowStart).
		OrderExpr("start_time ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// lockProviderSchedule serializes writers per provider until the transaction ends.
func lockProviderSchedule(ctx context.Context, tx bun.Tx, providerID uuid.UUID) error {
	_, err := tx.NewRaw("SELECT pg_advisory_xact_lock(hashtext(?))", providerID.String()).Exec(ctx)
	return err
}

func (r scheduleTx) GetProvider(ctx context.Context, providerID uuid.UUID) (domain.Provider, error) {
	var row domain.Provider
	err := r.tx.NewSelect().
		Model(&row).
		Where("id = ?", providerID).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return domain.Provider{}, notFound(err)
	}
	return row, nil
}

func (r scheduleTx) GetService(ctx context.Context, providerID, serviceID uuid.UUID) (domain.Service, error) {
	var row domain.Service
	err := r.tx.NewSelect().
		Model(&row).
		Where("id = ?", serviceID).
		Where("provider_id = ?", providerID).
		Where("is_active").
		Limit(1).
		Scan(ctx)
	if err != nil {
		return domain.Service{}, notFound(err)
	}
	return row, nil
}

func (r scheduleTx) ListWindows(ctx context.Context, providerID uuid.UUID) ([]domain.RecurringWindow, error) {
	var rows []domain.RecurringWindow
	err := r.tx.NewSelect().
		Model(&rows).
		Where("provider_id = ?", providerID).
		OrderExpr("day_of_week ASC, start_minute ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r scheduleTx) ReplaceWindows(ctx context.Context, providerID uuid.UUID, windows []domain.RecurringWindow) ([]domain.RecurringWindow, error) {
	_, err := r.tx.NewDelete().
		Model((*domain.RecurringWindow)(nil)).
		Where("provider_id = ?", providerID).
		Exec(ctx)
	if err != nil {
		return nil, err
	}
	if len(windows) == 0 {
		return []domain.RecurringWindow{}, nil
	}

	rows := make([]domain.RecurringWindow, len(windows))
	for i, w := range windows {
		rows[i] = domain.RecurringWindow{
			ProviderID:  providerID,
			DayOfWeek:   w.DayOfWeek,
			StartMinute: w.StartMinute,
			EndMinute:   w.EndMinute,
		}
	}
	if _, err := r.tx.NewInsert().Model(&rows).Exec(ctx); err != nil {
		return nil, translateWriteError(err)
	}

	sortWindows(rows)
	return rows, nil
}

func (r scheduleTx) ListClosedDays(ctx context.Context, providerID uuid.UUID) ([]domain.ClosedDay, error) {
	var rows []domain.ClosedDay
	err := r.tx.NewSelect().
		Model(&rows).
		Where("provider_id = ?", providerID).
		OrderExpr("day_of_week ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r scheduleTx) ToggleClosedDay(ctx context.Context, providerID uuid.UUID, dayOfWeek int16) (bool, error) {
	res, err := r.tx.NewDelete().
		Model((*domain.ClosedDay)(nil)).
		Where("provider_id = ?", providerID).
		Where("day_of_week = ?", dayOfWeek).
		Exec(ctx)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected > 0 {
		return false, nil
	}

	row := domain.ClosedDay{ProviderID: providerID, DayOfWeek: dayOfWeek}
	if _, err := r.tx.NewInsert().Model(&row).Exec(ctx); err != nil {
		return false, translateWriteError(err)
	}
	return true, nil
}

func (r scheduleTx) CreateBlockedSlot(ctx context.Context, slot domain.BlockedSlot) (domain.BlockedSlot, error) {
	m := domain.BlockedSlot{
		ID:         slot.ID,
		ProviderID: slot.ProviderID,
		Date:       domain.CivilDate(slot.Date),
		Hour:       slot.Hour,
		Reason:     slot.Reason,
		CreatedAt:  slot.CreatedAt,
	}
	if _, err := r.tx.NewInsert().Model(&m).Exec(ctx); err != nil {
		return domain.BlockedSlot{}, err
	}
	return m, nil
}

func (r scheduleTx) DeleteBlockedSlot(ctx context.Context, providerID, blockedSlotID uuid.UUID) error {
	res, err := r.tx.NewDelete().
		Model((*domain.BlockedSlot)(nil)).
		Where("provider_id = ?", providerID).
		Where("id = ?", blockedSlotID).
		Exec(ctx)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r scheduleTx) ListBlockedSlots(ctx context.Context, providerID uuid.UUID, from, to time.Time) ([]domain.BlockedSlot, error) {
	var rows []domain.BlockedSlot
	err := r.tx.NewSelect().
		Model(&rows).
		Where("provider_id = ?", providerID).
		Where("date >= ?::date", from.Format(domain.DateLayout)).
		Where("date <= ?::date", to.Format(domain.DateLayout)).
		OrderExpr("date ASC, hour ASC, created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Date = domain.CivilDate(rows[i].Date)
	}
	return rows, nil
}

func (r scheduleTx) ListActiveAppointments(ctx context.Context, providerID uuid.UUID, windowStart, windowEnd time.Time) ([]domain.Appointment, error) {
	var rows []domain.Appointment
	err := r.tx.NewSelect().
		Model(&rows).
		Where("provider_id = ?", providerID).
		Where("status = ?", domain.AppointmentStatusActive).
		Where("start_time < ?", windowEnd).
		Where("end_time > ?", windowStart).
		OrderExpr("start_time ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r scheduleTx) GetAppointmentForUpdate(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error) {
	var row domain.Appointment
	err := r.tx.NewSelect().
		Model(&row).
		Where("id = ?", appointmentID).
		For("UPDATE").
		Limit(1).
		Scan(ctx)
	if err != nil {
		return domain.Appointment{}, notFound(err)
	}
	return row, nil
}

// CreateAppointment inserts appt. When appt.ID is already taken, the stored row is returned
// if it describes the same booking and store.ErrIdempotencyConflict otherwise.
func (r scheduleTx) CreateAppointment(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
	if appt.ID != uuid.Nil {
		var existing domain.Appointment
		err := r.tx.NewSelect().
			Model(&existing).
			Where("id = ?", appt.ID).
			Limit(1).
			Scan(ctx)
		switch {
		case err == nil:
			if !existing.SameBooking(appt) {
				return domain.Appointment{}, store.ErrIdempotencyConflict
			}
			return existing, nil
		case notFound(err) != store.ErrNotFound:
			return domain.Appointment{}, err
		}
	}

	m := domain.Appointment{
		ID:              appt.ID,
		ProviderID:      appt.ProviderID,
		ServiceID:       appt.ServiceID,
		CustomerID:      appt.CustomerID,
		StaffID:         appt.StaffID,
		StartTime:       appt.StartTime.UTC(),
		EndTime:         appt.EndTime.UTC(),
		DurationMinutes: appt.DurationMinutes,
		Status:          appt.Status,
		CreatedAt:       appt.CreatedAt,
		UpdatedAt:       appt.UpdatedAt,
	}
	if m.Status == "" {
		m.Status = domain.AppointmentStatusActive
	}

	if _, err := r.tx.NewInsert().Model(&m).Exec(ctx); err != nil {
		return domain.Appointment{}, translateWriteError(err)
	}
	return m, nil
}

func (r scheduleTx) UpdateAppointment(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
	m := appt
	m.StartTime = appt.StartTime.UTC()
	m.EndTime = appt.EndTime.UTC()

	res, err := r.tx.NewUpdate().
		Model(&m).
		Column("start_time", "end_time", "status", "cancelled_at", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return domain.Appointment{}, translateWriteError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.Appointment{}, err
	}
	if affected == 0 {
		return domain.Appointment{}, store.ErrNotFound
	}
	return m, nil
}

func (r scheduleTx) AppendOutbox(ctx context.Context, evt domain.OutboxEvent) error {
	if evt.Traceparent == "" && evt.Tracestate == "" {
		evt.Traceparent, evt.Tracestate = telemetry.TraceContextStrings(ctx)
	}
	_, err := r.tx.NewInsert().Model(&evt).Exec(ctx)
	return err
}

func sortWindows(rows []domain.RecurringWindow) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].DayOfWeek != rows[j].DayOfWeek {
			return rows[i].DayOfWeek < rows[j].DayOfWeek
		}
		return rows[i].StartMinute < rows[j].StartMinute
	})
}
