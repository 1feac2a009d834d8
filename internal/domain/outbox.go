package domain

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

const (
	EventBookingCreated     = "booking.created.v1"
	EventBookingRescheduled = "booking.rescheduled.v1"
	EventBookingCancelled   = "booking.cancelled.v1"

	AggregateAppointment = "appointment"
)

// OutboxEvent is written in the same transaction as the change it describes and shipped
// to the broker later. The topic equals EventType.
type OutboxEvent struct {
	bun.BaseModel `bun:"table:outbox_events"`

	ID            int64           `bun:"id,pk,autoincrement"`
	EventID       uuid.UUID       `bun:"event_id,notnull,type:uuid"`
	AggregateType string          `bun:"aggregate_type,notnull"`
	AggregateID   string          `bun:"aggregate_id,notnull"`
	EventType     string          `bun:"event_type,notnull"`
	Payload       json.RawMessage `bun:"payload,notnull,type:jsonb"`
	Traceparent   string          `bun:"traceparent,notnull"`
	Tracestate    string          `bun:"tracestate,notnull"`
	CreatedAt     time.Time       `bun:"created_at,notnull"`
	PublishedAt   *time.Time      `bun:"published_at"`
}

func (e *OutboxEvent) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	if _, ok := query.(*bun.InsertQuery); !ok {
		return nil
	}
	if e.EventID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		e.EventID = id
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	return nil
}
