package appointments

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"salonbook/backend/internal/domain"
	"salonbook/backend/internal/store"
	"salonbook/backend/internal/telemetry"
)

var (
	ErrProviderNotFound    = errors.New("provider not found")
	ErrServiceNotFound     = errors.New("service not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrBlockedSlotNotFound = errors.New("blocked slot not found")

	ErrInvalidWindow = errors.New("invalid window")
	// ErrSlotUnavailable is the expected outcome when a requested start time is not
	// bookable at commit time. Callers re-query availability and retry.
	ErrSlotUnavailable      = errors.New("slot unavailable")
	ErrAppointmentCancelled = errors.New("appointment is cancelled")
)

type ValidationError struct {
	msg string
	err error
}

func (e *ValidationError) Error() string {
	return e.msg
}

func (e *ValidationError) Unwrap() error {
	return e.err
}

func validationError(msg string) error {
	return &ValidationError{msg: msg}
}

func windowError(msg string) error {
	return &ValidationError{msg: msg, err: ErrInvalidWindow}
}

const (
	defaultMaxRangeDays  = 31
	maxIdempotencyKeyLen = 256
	maxReasonLen         = 500
)

type Config struct {
	// MaxRangeDays caps the number of dates one availability query may span.
	MaxRangeDays int
	Now          func() time.Time
}

type Service struct {
	repo         store.ScheduleRepository
	tracer       trace.Tracer
	now          func() time.Time
	maxRangeDays int
}

func NewService(repo store.ScheduleRepository, cfg Config) *Service {
	if cfg.MaxRangeDays <= 0 {
		cfg.MaxRangeDays = defaultMaxRangeDays
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Service{
		repo:         repo,
		tracer:       telemetry.Tracer("salonbook/appointments"),
		now:          cfg.Now,
		maxRangeDays: cfg.MaxRangeDays,
	}
}

func (s *Service) startSpan(ctx context.Context, name string, providerID uuid.UUID) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "appointments."+name, trace.WithAttributes(
		attribute.String("provider.id", providerID.String()),
	))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		var vErr *ValidationError
		if !errors.As(err, &vErr) && !errors.Is(err, ErrSlotUnavailable) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}
	span.End()
}

func providerLookup(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrProviderNotFound
	}
	return err
}

func serviceLookup(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrServiceNotFound
	}
	return err
}

func appointmentLookup(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrAppointmentNotFound
	}
	return err
}

// loadProvider returns the provider and its location.
func loadProvider(ctx context.Context, tx store.ScheduleTx, providerID uuid.UUID) (domain.Provider, *time.Location, error) {
	p, err := tx.GetProvider(ctx, providerID)
	if err != nil {
		return domain.Provider{}, nil, providerLookup(err)
	}
	loc, err := p.Location()
	if err != nil {
		return domain.Provider{}, nil, err
	}
	return p, loc, nil
}
