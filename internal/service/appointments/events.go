package appointments

import (
	"context"
	"encoding/json"
	"time"

	"salonbook/backend/internal/domain"
	"salonbook/backend/internal/store"
)

// BookingEvent is the JSON payload of every booking.*.v1 event.
type BookingEvent struct {
	AppointmentID     string     `json:"appointment_id"`
	ProviderID        string     `json:"provider_id"`
	ServiceID         string     `json:"service_id"`
	CustomerID        string     `json:"customer_id"`
	StaffID           *string    `json:"staff_id,omitempty"`
	StartTime         time.Time  `json:"start_time"`
	EndTime           time.Time  `json:"end_time"`
	Status            string     `json:"status"`
	PreviousStartTime *time.Time `json:"previous_start_time,omitempty"`
}

func appendBookingEvent(ctx context.Context, tx store.ScheduleTx, eventType string, appt domain.Appointment, previousStart *time.Time) error {
	payload, err := json.Marshal(BookingEvent{
		AppointmentID:     appt.ID.String(),
		ProviderID:        appt.ProviderID.String(),
		ServiceID:         appt.ServiceID.String(),
		CustomerID:        appt.CustomerID,
		StaffID:           appt.StaffID,
		StartTime:         appt.StartTime.UTC(),
		EndTime:           appt.EndTime.UTC(),
		Status:            string(appt.Status),
		PreviousStartTime: previousStart,
	})
	if err != nil {
		return err
	}
	return tx.AppendOutbox(ctx, domain.OutboxEvent{
		AggregateType: domain.AggregateAppointment,
		AggregateID:   appt.ID.String(),
		EventType:     eventType,
		Payload:       payload,
	})
}
