package grpc

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"salonbook/backend/internal/domain"
	salonbookv1 "salonbook/backend/internal/gen/proto/salonbook/v1"
	"salonbook/backend/internal/service/appointments"
	"salonbook/backend/internal/store"
)

type BookingServer struct {
	salonbookv1.UnimplementedBookingServiceServer

	svc bookingService
	log *slog.Logger
}

var _ salonbookv1.BookingServiceServer = (*BookingServer)(nil)

type bookingService interface {
	GetAvailability(ctx context.Context, q appointments.AvailabilityQuery) ([]domain.DayAvailability, error)
	ReplaceWindows(ctx context.Context, providerID uuid.UUID, in []appointments.WindowInput) ([]domain.RecurringWindow, error)
	GetSchedule(ctx context.Context, providerID uuid.UUID) (appointments.Schedule, error)
	ToggleClosedDay(ctx context.Context, providerID uuid.UUID, dayOfWeek int) ([]int16, error)
	AddBlockedSlot(ctx context.Context, in appointments.AddBlockedSlotInput) (domain.BlockedSlot, error)
	RemoveBlockedSlot(ctx context.Context, providerID, blockedSlotID uuid.UUID) error
	ListBlockedSlots(ctx context.Context, providerID uuid.UUID, from, to time.Time) ([]domain.BlockedSlot, error)
	CreateBooking(ctx context.Context, in appointments.CreateBookingInput) (domain.Appointment, error)
	RescheduleBooking(ctx context.Context, in appointments.RescheduleBookingInput) (domain.Appointment, error)
	CancelBooking(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error)
	GetAppointment(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error)
	ListAppointments(ctx context.Context, providerID uuid.UUID, windowStart, windowEnd time.Time) ([]domain.Appointment, error)
}

func NewBookingServer(svc bookingService, log *slog.Logger) *BookingServer {
	if log == nil {
		log = slog.Default()
	}
	return &BookingServer{
		svc: svc,
		log: log.With(slog.String("component", "grpc.booking")),
	}
}

func (s *BookingServer) GetAvailability(ctx context.Context, req *salonbookv1.GetAvailabilityRequest) (*salonbookv1.GetAvailabilityResponse, error) {
	log := s.log.With(slog.String("rpc", "GetAvailability"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	providerID, err := parseID(req.ProviderId, "provider_id")
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_uuid"))
		return nil, err
	}
	from, to, err := parseDateRange(req.From, req.To)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_date"), slog.String("provider_id", req.ProviderId))
		return nil, err
	}
	var serviceID uuid.UUID
	if strings.TrimSpace(req.ServiceId) != "" {
		if serviceID, err = parseID(req.ServiceId, "service_id"); err != nil {
			log.Warn("invalid request", slog.String("reason", "invalid_uuid"), slog.String("provider_id", req.ProviderId))
			return nil, err
		}
	}

	days, err := s.svc.GetAvailability(ctx, appointments.AvailabilityQuery{
		ProviderID: providerID,
		From:       from,
		To:         to,
		ServiceID:  serviceID,
	})
	if err != nil {
		return nil, s.toStatus(log, "availability lookup failed", err, slog.String("provider_id", req.ProviderId))
	}

	out := make([]*salonbookv1.DayAvailability, 0, len(days))
	for _, d := range days {
		out = append(out, toProtoDay(d))
	}

	log.Debug(
		"availability resolved",
		slog.String("provider_id", req.ProviderId),
		slog.String("from", req.From),
		slog.String("to", req.To),
		slog.Int("days", len(out)),
	)

	return &salonbookv1.GetAvailabilityResponse{Days: out}, nil
}

func (s *BookingServer) ReplaceWindows(ctx context.Context, req *salonbookv1.ReplaceWindowsRequest) (*salonbookv1.ReplaceWindowsResponse, error) {
	log := s.log.With(slog.String("rpc", "ReplaceWindows"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	providerID, err := parseID(req.ProviderId, "provider_id")
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_uuid"))
		return nil, err
	}

	in := make([]appointments.WindowInput, 0, len(req.Windows))
	for _, w := range req.Windows {
		in = append(in, appointments.WindowInput{DayOfWeek: int(w.GetDayOfWeek()), Start: w.GetStart(), End: w.GetEnd()})
	}

	windows, err := s.svc.ReplaceWindows(ctx, providerID, in)
	if err != nil {
		return nil, s.toStatus(log, "windows replace failed", err, slog.String("provider_id", req.ProviderId))
	}

	log.Info("windows replaced", slog.String("provider_id", req.ProviderId), slog.Int("count", len(windows)))
	return &salonbookv1.ReplaceWindowsResponse{Windows: toProtoWindows(windows)}, nil
}

func (s *BookingServer) GetSchedule(ctx context.Context, req *salonbookv1.GetScheduleRequest) (*salonbookv1.GetScheduleResponse, error) {
	log := s.log.With(slog.String("rpc", "GetSchedule"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	providerID, err := parseID(req.ProviderId, "provider_id")
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_uuid"))
		return nil, err
	}

	sched, err := s.svc.GetSchedule(ctx, providerID)
	if err != nil {
		return nil, s.toStatus(log, "schedule lookup failed", err, slog.String("provider_id", req.ProviderId))
	}

	return &salonbookv1.GetScheduleResponse{
		Windows:    toProtoWindows(sched.Windows),
		ClosedDays: toProtoWeekdays(sched.ClosedDays),
	}, nil
}

func (s *BookingServer) ToggleClosedDay(ctx context.Context, req *salonbookv1.ToggleClosedDayRequest) (*salonbookv1.ToggleClosedDayResponse, error) {
	log := s.log.With(slog.String("rpc", "ToggleClosedDay"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	providerID, err := parseID(req.ProviderId, "provider_id")
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_uuid"))
		return nil, err
	}

	closed, err := s.svc.ToggleClosedDay(ctx, providerID, int(req.DayOfWeek))
	if err != nil {
		return nil, s.toStatus(log, "closed day toggle failed", err, slog.String("provider_id", req.ProviderId))
	}

	log.Info("closed day toggled", slog.String("provider_id", req.ProviderId), slog.Int("day_of_week", int(req.DayOfWeek)))
	return &salonbookv1.ToggleClosedDayResponse{ClosedDays: toProtoWeekdays(closed)}, nil
}

func (s *BookingServer) AddBlockedSlot(ctx context.Context, req *salonbookv1.AddBlockedSlotRequest) (*salonbookv1.AddBlockedSlotResponse, error) {
	log := s.log.With(slog.String("rpc", "AddBlockedSlot"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	providerID, err := parseID(req.ProviderId, "provider_id")
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_uuid"))
		return nil, err
	}
	date, err := parseDate(req.Date, "date")
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_date"), slog.String("provider_id", req.ProviderId))
		return nil, err
	}

	b, err := s.svc.AddBlockedSlot(ctx, appointments.AddBlockedSlotInput{
		ProviderID: providerID,
		Date:       date,
		Hour:       int(req.Hour),
		Reason:     req.Reason,
	})
	if err != nil {
		return nil, s.toStatus(log, "blocked slot create failed", err, slog.String("provider_id", req.ProviderId))
	}

	log.Info(
		"blocked slot created",
		slog.String("blocked_slot_id", b.ID.String()),
		slog.String("provider_id", req.ProviderId),
		slog.String("date", req.Date),
		slog.Int("hour", int(req.Hour)),
	)
	return &salonbookv1.AddBlockedSlotResponse{BlockedSlot: toProtoBlockedSlot(b)}, nil
}

func (s *BookingServer) RemoveBlockedSlot(ctx context.Context, req *salonbookv1.RemoveBlockedSlotRequest) (*salonbookv1.RemoveBlockedSlotResponse, error) {
	log := s.log.With(slog.String("rpc", "RemoveBlockedSlot"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	providerID, err := parseID(req.ProviderId, "provider_id")
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_uuid"))
		return nil, err
	}
	blockedSlotID, err := parseID(req.BlockedSlotId, "blocked_slot_id")
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_uuid"), slog.String("provider_id", req.ProviderId))
		return nil, err
	}

	if err := s.svc.RemoveBlockedSlot(ctx, providerID, blockedSlotID); err != nil {
		return nil, s.toStatus(log, "blocked slot delete failed", err,
			slog.String("provider_id", req.ProviderId),
			slog.String("blocked_slot_id", req.BlockedSlotId),
		)
	}

	log.Info("blocked slot deleted", slog.String("provider_id", req.ProviderId), slog.String("blocked_slot_id", req.BlockedSlotId))
	return &salonbookv1.RemoveBlockedSlotResponse{}, nil
}

func (s *BookingServer) ListBlockedSlots(ctx context.Context, req *salonbookv1.ListBlockedSlotsRequest) (*salonbookv1.ListBlockedSlotsResponse, error) {
	log := s.log.With(slog.String("rpc", "ListBlockedSlots"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	providerID, err := parseID(req.ProviderId, "provider_id")
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_uuid"))
		return nil, err
	}
	from, to, err := parseDateRange(req.From, req.To)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_date"), slog.String("provider_id", req.ProviderId))
		return nil, err
	}

	rows, err := s.svc.ListBlockedSlots(ctx, providerID, from, to)
	if err != nil {
		return nil, s.toStatus(log, "blocked slots list failed", err, slog.String("provider_id", req.ProviderId))
	}

	out := make([]*salonbookv1.BlockedSlot, 0, len(rows))
	for _, b := range rows {
		out = append(out, toProtoBlockedSlot(b))
	}
	return &salonbookv1.ListBlockedSlotsResponse{BlockedSlots: out}, nil
}

func (s *BookingServer) CreateBooking(ctx context.Context, req *salonbookv1.CreateBookingRequest) (*salonbookv1.CreateBookingResponse, error) {
	log := s.log.With(slog.String("rpc", "CreateBooking"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	providerID, err := parseID(req.ProviderId, "provider_id")
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_uuid"))
		return nil, err
	}
	serviceID, err := parseID(req.ServiceId, "service_id")
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_uuid"), slog.String("provider_id", req.ProviderId))
		return nil, err
	}
	if req.StartTime == nil {
		log.Warn("invalid request", slog.String("reason", "missing_start_time"), slog.String("provider_id", req.ProviderId))
		return nil, status.Error(codes.InvalidArgument, "start_time is required")
	}

	appt, err := s.svc.CreateBooking(ctx, appointments.CreateBookingInput{
		ProviderID:     providerID,
		ServiceID:      serviceID,
		CustomerID:     req.CustomerId,
		StaffID:        req.StaffId,
		StartTime:      req.StartTime.AsTime(),
		IdempotencyKey: idempotencyKey(ctx),
	})
	if err != nil {
		return nil, s.toStatus(log, "booking create failed", err,
			slog.String("provider_id", req.ProviderId),
			slog.String("customer_id", req.CustomerId),
			slog.Time("start_time", req.StartTime.AsTime()),
		)
	}

	log.Info(
		"booking created",
		slog.String("appointment_id", appt.ID.String()),
		slog.String("provider_id", req.ProviderId),
		slog.String("customer_id", appt.CustomerID),
		slog.Time("start_time", appt.StartTime),
		slog.Time("end_time", appt.EndTime),
	)

	return &salonbookv1.CreateBookingResponse{Appointment: toProtoAppointment(appt)}, nil
}

func idempotencyKey(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get("idempotency-key")
	if len(values) == 0 {
		values = md.Get("x-idempotency-key")
	}
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0])
}

func (s *BookingServer) RescheduleBooking(ctx context.Context, req *salonbookv1.RescheduleBookingRequest) (*salonbookv1.RescheduleBookingResponse, error) {
	log := s.log.With(slog.String("rpc", "RescheduleBooking"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	id, err := parseID(req.AppointmentId, "appointment_id")
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_uuid"))
		return nil, err
	}
	if req.NewStartTime == nil {
		log.Warn("invalid request", slog.String("reason", "missing_start_time"), slog.String("appointment_id", req.AppointmentId))
		return nil, status.Error(codes.InvalidArgument, "new_start_time is required")
	}

	appt, err := s.svc.RescheduleBooking(ctx, appointments.RescheduleBookingInput{
		AppointmentID: id,
		NewStartTime:  req.NewStartTime.AsTime(),
	})
	if err != nil {
		return nil, s.toStatus(log, "booking reschedule failed", err,
			slog.String("appointment_id", req.AppointmentId),
			slog.Time("new_start_time", req.NewStartTime.AsTime()),
		)
	}

	log.Info(
		"booking rescheduled",
		slog.String("appointment_id", appt.ID.String()),
		slog.Time("start_time", appt.StartTime),
		slog.Time("end_time", appt.EndTime),
	)
	return &salonbookv1.RescheduleBookingResponse{Appointment: toProtoAppointment(appt)}, nil
}

func (s *BookingServer) CancelBooking(ctx context.Context, req *salonbookv1.CancelBookingRequest) (*salonbookv1.CancelBookingResponse, error) {
	log := s.log.With(slog.String("rpc", "CancelBooking"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	id, err := parseID(req.AppointmentId, "appointment_id")
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_uuid"))
		return nil, err
	}

	appt, err := s.svc.CancelBooking(ctx, id)
	if err != nil {
		return nil, s.toStatus(log, "booking cancel failed", err, slog.String("appointment_id", req.AppointmentId))
	}

	log.Info("booking cancelled", slog.String("appointment_id", appt.ID.String()))
	return &salonbookv1.CancelBookingResponse{Appointment: toProtoAppointment(appt)}, nil
}

func (s *BookingServer) GetAppointment(ctx context.Context, req *salonbookv1.GetAppointmentRequest) (*salonbookv1.GetAppointmentResponse, error) {
	log := s.log.With(slog.String("rpc", "GetAppointment"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	id, err := parseID(req.AppointmentId, "appointment_id")
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_uuid"))
		return nil, err
	}

	appt, err := s.svc.GetAppointment(ctx, id)
	if err != nil {
		return nil, s.toStatus(log, "appointment lookup failed", err, slog.String("appointment_id", req.AppointmentId))
	}
	return &salonbookv1.GetAppointmentResponse{Appointment: toProtoAppointment(appt)}, nil
}

func (s *BookingServer) ListAppointments(ctx context.Context, req *salonbookv1.ListAppointmentsRequest) (*salonbookv1.ListAppointmentsResponse, error) {
	log := s.log.With(slog.String("rpc", "ListAppointments"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	providerID, err := parseID(req.ProviderId, "provider_id")
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_uuid"))
		return nil, err
	}
	if req.WindowStart == nil || req.WindowEnd == nil {
		log.Warn("invalid request", slog.String("reason", "missing_window"), slog.String("provider_id", req.ProviderId))
		return nil, status.Error(codes.InvalidArgument, "window_start and window_end are required")
	}

	appts, err := s.svc.ListAppointments(ctx, providerID, req.WindowStart.AsTime(), req.WindowEnd.AsTime())
	if err != nil {
		return nil, s.toStatus(log, "appointments list failed", err, slog.String("provider_id", req.ProviderId))
	}

	out := make([]*salonbookv1.Appointment, 0, len(appts))
	for _, a := range appts {
		out = append(out, toProtoAppointment(a))
	}

	log.Debug(
		"appointments listed",
		slog.String("provider_id", req.ProviderId),
		slog.Int("count", len(out)),
		slog.Time("window_start", req.WindowStart.AsTime()),
		slog.Time("window_end", req.WindowEnd.AsTime()),
	)
	return &salonbookv1.ListAppointmentsResponse{Appointments: out}, nil
}

// toStatus logs err at the level its kind deserves and converts it to a gRPC status.
func (s *BookingServer) toStatus(log *slog.Logger, msg string, err error, attrs ...any) error {
	args := append([]any{slog.Any("err", err)}, attrs...)

	var vErr *appointments.ValidationError
	switch {
	case errors.As(err, &vErr):
		log.Warn("invalid request", args...)
		return status.Error(codes.InvalidArgument, vErr.Error())
	case errors.Is(err, appointments.ErrSlotUnavailable):
		log.Info("slot unavailable", args...)
		return status.Error(codes.FailedPrecondition, "That time is no longer available. Pick a different slot.")
	case errors.Is(err, appointments.ErrAppointmentCancelled):
		log.Info("appointment cancelled", args...)
		return status.Error(codes.FailedPrecondition, "This appointment has been cancelled.")
	case errors.Is(err, store.ErrIdempotencyConflict):
		log.Info("idempotency conflict", args...)
		return status.Error(codes.FailedPrecondition, "This request key was already used for a different booking. Try again.")
	case errors.Is(err, appointments.ErrProviderNotFound):
		log.Info("provider not found", args...)
		return status.Error(codes.NotFound, "provider not found")
	case errors.Is(err, appointments.ErrServiceNotFound):
		log.Info("service not found", args...)
		return status.Error(codes.NotFound, "service not found")
	case errors.Is(err, appointments.ErrAppointmentNotFound):
		log.Info("appointment not found", args...)
		return status.Error(codes.NotFound, "appointment not found")
	case errors.Is(err, appointments.ErrBlockedSlotNotFound):
		log.Info("blocked slot not found", args...)
		return status.Error(codes.NotFound, "blocked slot not found")
	case errors.Is(err, context.DeadlineExceeded):
		log.Warn(msg, args...)
		return status.Error(codes.DeadlineExceeded, "request timed out")
	case errors.Is(err, context.Canceled):
		log.Info(msg, args...)
		return status.Error(codes.Canceled, "request cancelled")
	}
	log.Error(msg, args...)
	return status.Error(codes.Internal, "internal error")
}

func parseID(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, field+" must be a UUID")
	}
	return id, nil
}

func parseDate(raw, field string) (time.Time, error) {
	d, err := domain.ParseDate(raw)
	if err != nil {
		return time.Time{}, status.Error(codes.InvalidArgument, field+" must be YYYY-MM-DD")
	}
	return d, nil
}

func parseDateRange(rawFrom, rawTo string) (time.Time, time.Time, error) {
	from, err := parseDate(rawFrom, "from")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if strings.TrimSpace(rawTo) == "" {
		return from, from, nil
	}
	to, err := parseDate(rawTo, "to")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}

func toProtoDay(d domain.DayAvailability) *salonbookv1.DayAvailability {
	out := &salonbookv1.DayAvailability{
		Date:     d.Date.Format(domain.DateLayout),
		Closed:   d.Closed,
		Slots:    make([]*salonbookv1.Slot, 0, len(d.Slots)),
		Bookable: make([]string, 0, len(d.Slots)),
	}
	for _, s := range d.Slots {
		out.Slots = append(out.Slots, &salonbookv1.Slot{Time: s.Time.String(), Available: s.Available})
		if s.Available {
			out.Bookable = append(out.Bookable, s.Time.String())
		}
	}
	return out
}

func toProtoWindows(rows []domain.RecurringWindow) []*salonbookv1.Window {
	out := make([]*salonbookv1.Window, 0, len(rows))
	for _, w := range rows {
		out = append(out, &salonbookv1.Window{
			Id:        w.ID.String(),
			DayOfWeek: int32(w.DayOfWeek),
			Start:     w.StartMinute.String(),
			End:       w.EndMinute.String(),
		})
	}
	return out
}

func toProtoWeekdays(days []int16) []int32 {
	out := make([]int32, 0, len(days))
	for _, d := range days {
		out = append(out, int32(d))
	}
	return out
}

func toProtoBlockedSlot(b domain.BlockedSlot) *salonbookv1.BlockedSlot {
	return &salonbookv1.BlockedSlot{
		Id:         b.ID.String(),
		ProviderId: b.ProviderID.String(),
		Date:       b.Date.Format(domain.DateLayout),
		Hour:       int32(b.Hour),
		Reason:     b.Reason,
		CreatedAt:  timestamppb.New(b.CreatedAt),
	}
}

func toProtoAppointment(a domain.Appointment) *salonbookv1.Appointment {
	out := &salonbookv1.Appointment{
		Id:              a.ID.String(),
		ProviderId:      a.ProviderID.String(),
		ServiceId:       a.ServiceID.String(),
		CustomerId:      a.CustomerID,
		StartTime:       timestamppb.New(a.StartTime),
		EndTime:         timestamppb.New(a.EndTime),
		DurationMinutes: int32(a.DurationMinutes),
		Status:          string(a.Status),
		CreatedAt:       timestamppb.New(a.CreatedAt),
		UpdatedAt:       timestamppb.New(a.UpdatedAt),
	}
	if a.StaffID != nil {
		out.StaffId = *a.StaffID
	}
	if a.CancelledAt != nil {
		out.CancelledAt = timestamppb.New(*a.CancelledAt)
	}
	return out
}
