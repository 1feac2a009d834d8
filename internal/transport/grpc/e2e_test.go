package grpc

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/known/timestamppb"

	"salonbook/backend/internal/domain"
	salonbookv1 "salonbook/backend/internal/gen/proto/salonbook/v1"
	"salonbook/backend/internal/service/appointments"
)

func startBufServer(t *testing.T, svc bookingService) salonbookv1.BookingServiceClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		UnaryServerRequestIDInterceptor(),
		UnaryServerTimeoutInterceptor(5*time.Second),
		UnaryServerLoggingInterceptor(slog.Default()),
	))
	salonbookv1.RegisterBookingServiceServer(srv, NewBookingServer(svc, slog.Default()))
	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient(
		"passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("grpc.NewClient: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	return salonbookv1.NewBookingServiceClient(conn)
}

func TestBookingService_RoundTrip(t *testing.T) {
	start := time.Date(2026, 3, 2, 14, 30, 0, 0, time.UTC)
	var gotKey string

	client := startBufServer(t, &fakeBookingService{
		createBookingFn: func(ctx context.Context, in appointments.CreateBookingInput) (domain.Appointment, error) {
			gotKey = in.IdempotencyKey
			return domain.Appointment{
				ID:              uuid.MustParse(testAppointmentID),
				ProviderID:      in.ProviderID,
				ServiceID:       in.ServiceID,
				CustomerID:      in.CustomerID,
				StartTime:       in.StartTime,
				EndTime:         in.StartTime.Add(30 * time.Minute),
				DurationMinutes: 30,
				Status:          domain.AppointmentStatusActive,
				CreatedAt:       start.Add(-time.Hour),
				UpdatedAt:       start.Add(-time.Hour),
			}, nil
		},
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	ctx = metadata.AppendToOutgoingContext(ctx, "idempotency-key", "retry-1", RequestIDMetadataKey, "req-42")

	var header metadata.MD
	resp, err := client.CreateBooking(ctx, &salonbookv1.CreateBookingRequest{
		ProviderId: testProviderID,
		ServiceId:  testServiceID,
		CustomerId: "c1",
		StartTime:  timestamppb.New(start),
	}, grpc.Header(&header))
	if err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}

	if gotKey != "retry-1" {
		t.Fatalf("idempotency_key = %q, want %q", gotKey, "retry-1")
	}
	if ids := header.Get(RequestIDMetadataKey); len(ids) != 1 || ids[0] != "req-42" {
		t.Fatalf("request id header = %v", ids)
	}
	appt := resp.Appointment
	if appt.Id != testAppointmentID || appt.CustomerId != "c1" || appt.Status != "active" {
		t.Fatalf("appointment = %+v", appt)
	}
	if !appt.StartTime.AsTime().Equal(start) || !appt.EndTime.AsTime().Equal(start.Add(30*time.Minute)) {
		t.Fatalf("times = %s..%s", appt.StartTime.AsTime(), appt.EndTime.AsTime())
	}

	body, err := protojson.Marshal(appt)
	if err != nil {
		t.Fatalf("protojson.Marshal: %v", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if fields["startTime"] != "2026-03-02T14:30:00Z" || fields["durationMinutes"] != float64(30) {
		t.Fatalf("json = %s", body)
	}
}

func TestBookingService_DescriptorRegistered(t *testing.T) {
	desc, err := protoregistry.GlobalFiles.FindDescriptorByName("salonbook.v1.BookingService")
	if err != nil {
		t.Fatalf("FindDescriptorByName: %v", err)
	}
	svc, ok := desc.(protoreflect.ServiceDescriptor)
	if !ok {
		t.Fatalf("descriptor = %T, want service", desc)
	}
	if svc.Methods().Len() != 12 {
		t.Fatalf("methods = %d, want 12", svc.Methods().Len())
	}
	if got := svc.ParentFile().Path(); got != salonbookv1.BookingService_ServiceDesc.Metadata {
		t.Fatalf("file = %q, want %q", got, salonbookv1.BookingService_ServiceDesc.Metadata)
	}
	create := svc.Methods().ByName("CreateBooking")
	if create == nil || create.Input().FullName() != "salonbook.v1.CreateBookingRequest" {
		t.Fatalf("CreateBooking = %v", create)
	}
	if f := create.Input().Fields().ByName("start_time"); f == nil || f.Message().FullName() != "google.protobuf.Timestamp" {
		t.Fatalf("start_time field = %v", f)
	}
}

func TestBookingService_StatusCrossesTheWire(t *testing.T) {
	client := startBufServer(t, &fakeBookingService{
		rescheduleFn: func(ctx context.Context, in appointments.RescheduleBookingInput) (domain.Appointment, error) {
			return domain.Appointment{}, appointments.ErrSlotUnavailable
		},
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := client.RescheduleBooking(ctx, &salonbookv1.RescheduleBookingRequest{
		AppointmentId: testAppointmentID,
		NewStartTime:  timestamppb.New(time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC)),
	})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("code = %s, want %s", status.Code(err), codes.FailedPrecondition)
	}
}
