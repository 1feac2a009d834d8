package grpc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	salonbookv1 "salonbook/backend/internal/gen/proto/salonbook/v1"
)

var testInfo = &grpc.UnaryServerInfo{FullMethod: salonbookv1.BookingService_CreateBooking_FullMethodName}

func okHandler(ctx context.Context, req any) (any, error) {
	return "ok", nil
}

func peerContext(ip string) context.Context {
	return peer.NewContext(context.Background(), &peer.Peer{
		Addr: &net.TCPAddr{IP: net.ParseIP(ip), Port: 52000},
	})
}

func forwardedContext(ip, forwardedFor string) context.Context {
	return metadata.NewIncomingContext(peerContext(ip), metadata.Pairs("x-forwarded-for", forwardedFor))
}

func countingLimiter(limit int, key ClientKeyFunc) (*RedisRateLimiter, map[string]int64) {
	counts := map[string]int64{}
	return &RedisRateLimiter{
		limit:  limit,
		window: time.Minute,
		prefix: "test:rl",
		key:    key,
		incr: func(ctx context.Context, key string) (int64, error) {
			counts[key]++
			return counts[key], nil
		},
	}, counts
}

func TestRateLimiter_RejectsAfterLimit(t *testing.T) {
	rl, counts := countingLimiter(2, ClientKey(false))
	intercept := rl.UnaryServerInterceptor(slog.Default(), false)
	ctx := peerContext("10.0.0.1")

	for i := 0; i < 2; i++ {
		if _, err := intercept(ctx, nil, testInfo, okHandler); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}
	_, err := intercept(ctx, nil, testInfo, okHandler)
	if status.Code(err) != codes.ResourceExhausted {
		t.Fatalf("code = %s, want %s", status.Code(err), codes.ResourceExhausted)
	}
	if counts["test:rl:10.0.0.1"] != 3 {
		t.Fatalf("counts = %v", counts)
	}

	// other clients have their own window
	if _, err := intercept(peerContext("10.0.0.2"), nil, testInfo, okHandler); err != nil {
		t.Fatalf("second client: %v", err)
	}
}

func TestRateLimiter_IgnoresForwardedForByDefault(t *testing.T) {
	rl, counts := countingLimiter(2, ClientKey(false))
	intercept := rl.UnaryServerInterceptor(slog.Default(), false)

	admitted := 0
	for i := 0; i < 1000; i++ {
		ctx := forwardedContext("10.0.0.1", fmt.Sprintf("198.51.100.%d", i%250))
		if _, err := intercept(ctx, nil, testInfo, okHandler); err == nil {
			admitted++
		}
	}
	if admitted != 2 {
		t.Fatalf("admitted = %d, want 2", admitted)
	}
	if len(counts) != 1 || counts["test:rl:10.0.0.1"] != 1000 {
		t.Fatalf("counts = %v", counts)
	}
}

func TestRateLimiter_TrustedForwardedFor(t *testing.T) {
	rl, counts := countingLimiter(5, ClientKey(true))
	intercept := rl.UnaryServerInterceptor(slog.Default(), false)

	if _, err := intercept(forwardedContext("10.0.0.1", "203.0.113.9, 10.0.0.1"), nil, testInfo, okHandler); err != nil {
		t.Fatalf("intercept: %v", err)
	}
	if _, err := intercept(peerContext("10.0.0.1"), nil, testInfo, okHandler); err != nil {
		t.Fatalf("intercept without header: %v", err)
	}
	if counts["test:rl:203.0.113.9"] != 1 || counts["test:rl:10.0.0.1"] != 1 {
		t.Fatalf("counts = %v", counts)
	}
}

func TestRateLimiter_RedisFailure(t *testing.T) {
	rl := &RedisRateLimiter{
		limit:  1,
		prefix: "test:rl",
		key:    ClientKey(false),
		incr: func(ctx context.Context, key string) (int64, error) {
			return 0, errors.New("dial tcp: connection refused")
		},
	}

	resp, err := rl.UnaryServerInterceptor(slog.Default(), true)(peerContext("10.0.0.1"), nil, testInfo, okHandler)
	if err != nil || resp != "ok" {
		t.Fatalf("fail open: resp=%v err=%v", resp, err)
	}

	_, err = rl.UnaryServerInterceptor(slog.Default(), false)(peerContext("10.0.0.1"), nil, testInfo, okHandler)
	if status.Code(err) != codes.Unavailable {
		t.Fatalf("code = %s, want %s", status.Code(err), codes.Unavailable)
	}
}

func TestScriptCount(t *testing.T) {
	for _, in := range []any{int64(3), 3, "3"} {
		n, err := scriptCount(in)
		if err != nil || n != 3 {
			t.Fatalf("scriptCount(%#v) = %d, %v", in, n, err)
		}
	}
	if _, err := scriptCount([]byte("3")); err == nil {
		t.Fatalf("expected error for unexpected type")
	}
}

func TestRequestIDInterceptor(t *testing.T) {
	intercept := UnaryServerRequestIDInterceptor()

	var seen string
	handler := func(ctx context.Context, req any) (any, error) {
		seen = RequestIDFromContext(ctx)
		return nil, nil
	}

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(RequestIDMetadataKey, "req-1"))
	if _, err := intercept(ctx, nil, testInfo, handler); err != nil {
		t.Fatalf("intercept: %v", err)
	}
	if seen != "req-1" {
		t.Fatalf("request id = %q, want %q", seen, "req-1")
	}

	if _, err := intercept(context.Background(), nil, testInfo, handler); err != nil {
		t.Fatalf("intercept: %v", err)
	}
	if len(seen) != 32 {
		t.Fatalf("generated request id = %q, want 32 hex chars", seen)
	}
}

func TestTimeoutInterceptor(t *testing.T) {
	intercept := UnaryServerTimeoutInterceptor(time.Second)

	var deadline time.Time
	handler := func(ctx context.Context, req any) (any, error) {
		deadline, _ = ctx.Deadline()
		return nil, nil
	}

	if _, err := intercept(context.Background(), nil, testInfo, handler); err != nil {
		t.Fatalf("intercept: %v", err)
	}
	if deadline.IsZero() || time.Until(deadline) > time.Second {
		t.Fatalf("deadline = %v, want within 1s", deadline)
	}

	want := time.Now().Add(time.Hour)
	ctx, cancel := context.WithDeadline(context.Background(), want)
	defer cancel()
	if _, err := intercept(ctx, nil, testInfo, handler); err != nil {
		t.Fatalf("intercept: %v", err)
	}
	if !deadline.Equal(want) {
		t.Fatalf("deadline = %v, want caller deadline %v", deadline, want)
	}
}

func TestMemoryRateLimiter_PerClientBurst(t *testing.T) {
	intercept := NewMemoryRateLimiter(2, time.Hour, nil).UnaryServerInterceptor()
	ctx := peerContext("10.0.0.1")

	for i := 0; i < 2; i++ {
		if _, err := intercept(ctx, nil, testInfo, okHandler); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}
	_, err := intercept(ctx, nil, testInfo, okHandler)
	if status.Code(err) != codes.ResourceExhausted {
		t.Fatalf("code = %s, want %s", status.Code(err), codes.ResourceExhausted)
	}
	if _, err := intercept(peerContext("10.0.0.2"), nil, testInfo, okHandler); err != nil {
		t.Fatalf("second client: %v", err)
	}
}

func TestMemoryRateLimiter_SpoofedForwardedForSharesPeerBucket(t *testing.T) {
	rl := NewMemoryRateLimiter(2, time.Minute, ClientKey(false))
	intercept := rl.UnaryServerInterceptor()

	admitted := 0
	for i := 0; i < 1000; i++ {
		ctx := forwardedContext("10.0.0.1", fmt.Sprintf("198.51.100.%d, 10.0.0.1", i%250))
		if _, err := intercept(ctx, nil, testInfo, okHandler); err == nil {
			admitted++
		}
	}
	if admitted != 2 {
		t.Fatalf("admitted = %d, want 2", admitted)
	}
	if len(rl.clients) != 1 {
		t.Fatalf("clients = %d, want 1", len(rl.clients))
	}
}

func TestMemoryRateLimiter_EvictsIdleClients(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	rl := NewMemoryRateLimiter(2, time.Minute, nil)
	rl.now = func() time.Time { return now }
	intercept := rl.UnaryServerInterceptor()

	for i := 0; i < 50; i++ {
		if _, err := intercept(peerContext(fmt.Sprintf("10.0.1.%d", i)), nil, testInfo, okHandler); err != nil {
			t.Fatalf("client %d: %v", i, err)
		}
	}
	if len(rl.clients) != 50 {
		t.Fatalf("clients = %d, want 50", len(rl.clients))
	}

	now = now.Add(time.Minute)
	if _, err := intercept(peerContext("10.0.2.1"), nil, testInfo, okHandler); err != nil {
		t.Fatalf("after window: %v", err)
	}
	if len(rl.clients) != 1 {
		t.Fatalf("clients after sweep = %d, want 1", len(rl.clients))
	}
}

func TestMemoryRateLimiter_CapsClients(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	rl := NewMemoryRateLimiter(2, time.Hour, nil)
	rl.maxClients = 3
	rl.now = func() time.Time { return now }
	intercept := rl.UnaryServerInterceptor()

	for i := 0; i < 10; i++ {
		now = now.Add(time.Second)
		if _, err := intercept(peerContext(fmt.Sprintf("10.0.1.%d", i)), nil, testInfo, okHandler); err != nil {
			t.Fatalf("client %d: %v", i, err)
		}
		if len(rl.clients) > 3 {
			t.Fatalf("clients = %d, want at most 3", len(rl.clients))
		}
	}
	if _, ok := rl.clients["10.0.1.9"]; !ok {
		t.Fatalf("most recent client evicted: %v", rl.clients)
	}
	if _, ok := rl.clients["10.0.1.0"]; ok {
		t.Fatalf("oldest client kept")
	}
}
