package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// RecurringWindow is a weekly opening range for one weekday. A provider has at most one
// window per weekday; weekdays without a window are closed.
type RecurringWindow struct {
	bun.BaseModel `bun:"table:recurring_windows"`

	ID          uuid.UUID `bun:"id,pk,type:uuid"`
	ProviderID  uuid.UUID `bun:"provider_id,notnull,type:uuid"`
	DayOfWeek   int16     `bun:"day_of_week,notnull"`
	StartMinute Clock     `bun:"start_minute,notnull"`
	EndMinute   Clock     `bun:"end_minute,notnull"`
	CreatedAt   time.Time `bun:"created_at,notnull"`
	UpdatedAt   time.Time `bun:"updated_at,notnull"`
}

func (w *RecurringWindow) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	return stampRow(query, &w.ID, &w.CreatedAt, &w.UpdatedAt)
}

// Contains reports whether c lies in [StartMinute, EndMinute).
func (w RecurringWindow) Contains(c Clock) bool {
	return c >= w.StartMinute && c < w.EndMinute
}

// ClosedDay marks a weekday as never bookable, regardless of windows. It recurs every week
// and has no expiry; date-specific holidays would live in a separate table.
type ClosedDay struct {
	bun.BaseModel `bun:"table:closed_weekdays"`

	ProviderID uuid.UUID `bun:"provider_id,pk,type:uuid"`
	DayOfWeek  int16     `bun:"day_of_week,pk"`
	CreatedAt  time.Time `bun:"created_at,notnull"`
}

func (d *ClosedDay) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	if _, ok := query.(*bun.InsertQuery); ok && d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}
	return nil
}

// BlockedSlot removes every slot starting within Hour on Date. Date is a civil date
// (midnight UTC) interpreted in the provider's time zone.
type BlockedSlot struct {
	bun.BaseModel `bun:"table:blocked_slots"`

	ID         uuid.UUID `bun:"id,pk,type:uuid"`
	ProviderID uuid.UUID `bun:"provider_id,notnull,type:uuid"`
	Date       time.Time `bun:"date,notnull,type:date"`
	Hour       int16     `bun:"hour,notnull"`
	Reason     string    `bun:"reason,notnull"`
	CreatedAt  time.Time `bun:"created_at,notnull"`
}

func (b *BlockedSlot) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	var updated time.Time
	return stampRow(query, &b.ID, &b.CreatedAt, &updated)
}

func stampRow(query bun.Query, id *uuid.UUID, createdAt, updatedAt *time.Time) error {
	now := time.Now().UTC()
	switch query.(type) {
	case *bun.InsertQuery:
		if *id == uuid.Nil {
			v, err := uuid.NewV7()
			if err != nil {
				return err
			}
			*id = v
		}
		if createdAt.IsZero() {
			*createdAt = now
		}
		if updatedAt.IsZero() {
			*updatedAt = now
		}
	case *bun.UpdateQuery:
		*updatedAt = now
	}
	return nil
}
