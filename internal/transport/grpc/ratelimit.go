package grpc

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

// ClientKeyFunc picks the rate limit bucket for a call.
type ClientKeyFunc func(ctx context.Context) string

// ClientKey keys calls on the transport peer. With trustForwarded set, the first
// x-forwarded-for entry wins instead; only enable that behind a proxy that overwrites the header.
func ClientKey(trustForwarded bool) ClientKeyFunc {
	if trustForwarded {
		return forwardedKey
	}
	return peerKey
}

func peerKey(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return "unknown"
	}
	addr := p.Addr.String()
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}

func forwardedKey(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if vals := md.Get("x-forwarded-for"); len(vals) > 0 {
			if first := strings.TrimSpace(strings.Split(vals[0], ",")[0]); first != "" {
				return first
			}
		}
	}
	return peerKey(ctx)
}

// RedisRateLimiter is a fixed-window limiter shared by every server instance through Redis.
type RedisRateLimiter struct {
	limit  int
	window time.Duration
	prefix string
	key    ClientKeyFunc
	incr   func(ctx context.Context, key string) (int64, error)
}

var redisFixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

func NewRedisRateLimiter(rdb redis.Scripter, limit int, window time.Duration, prefix string, key ClientKeyFunc) *RedisRateLimiter {
	if limit <= 0 {
		limit = 60
	}
	if window <= 0 {
		window = time.Minute
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "salonbook:rl"
	}
	if key == nil {
		key = peerKey
	}
	rl := &RedisRateLimiter{limit: limit, window: window, prefix: prefix, key: key}
	rl.incr = func(ctx context.Context, key string) (int64, error) {
		res, err := redisFixedWindowScript.Run(ctx, rdb, []string{key}, rl.window.Milliseconds()).Result()
		if err != nil {
			return 0, err
		}
		return scriptCount(res)
	}
	return rl
}

func scriptCount(res any) (int64, error) {
	switch v := res.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, err
		}
		return n, nil
	default:
		return 0, fmt.Errorf("unexpected redis script result type %T", res)
	}
}

// UnaryServerInterceptor rejects calls beyond the limit with ResourceExhausted. When Redis
// fails, calls pass through if failOpen is set and get Unavailable otherwise.
func (rl *RedisRateLimiter) UnaryServerInterceptor(logger *slog.Logger, failOpen bool) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		key := rl.prefix + ":" + rl.key(ctx)
		count, err := rl.incr(ctx, key)
		if err != nil {
			if logger != nil {
				logger.Warn("redis rate limiter error", slog.Any("err", err), slog.String("method", info.FullMethod))
			}
			if failOpen {
				return handler(ctx, req)
			}
			return nil, status.Error(codes.Unavailable, "rate limiter unavailable")
		}
		if count > int64(rl.limit) {
			return nil, status.Error(codes.ResourceExhausted, "rate limit exceeded")
		}
		return handler(ctx, req)
	}
}

const defaultMaxClients = 10000

// MemoryRateLimiter is the single-instance fallback used when Redis is not configured.
// Each client gets a token bucket refilled at limit per window. A bucket idle for a
// whole window is full again, so it is dropped and recreated on the next call.
type MemoryRateLimiter struct {
	mu         sync.Mutex
	clients    map[string]*memoryClient
	every      rate.Limit
	burst      int
	idle       time.Duration
	maxClients int
	lastSweep  time.Time
	key        ClientKeyFunc
	now        func() time.Time
}

type memoryClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewMemoryRateLimiter(limit int, window time.Duration, key ClientKeyFunc) *MemoryRateLimiter {
	if limit <= 0 {
		limit = 60
	}
	if window <= 0 {
		window = time.Minute
	}
	if key == nil {
		key = peerKey
	}
	return &MemoryRateLimiter{
		clients:    map[string]*memoryClient{},
		every:      rate.Every(window / time.Duration(limit)),
		burst:      limit,
		idle:       window,
		maxClients: defaultMaxClients,
		key:        key,
		now:        time.Now,
	}
}

func (rl *MemoryRateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastSweep) >= rl.idle || len(rl.clients) >= rl.maxClients {
		rl.sweep(now)
	}

	c, ok := rl.clients[key]
	if !ok {
		c = &memoryClient{limiter: rate.NewLimiter(rl.every, rl.burst)}
		rl.clients[key] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

// sweep drops idle buckets. If the map is still full, the least recently seen bucket goes.
func (rl *MemoryRateLimiter) sweep(now time.Time) {
	rl.lastSweep = now
	for k, c := range rl.clients {
		if now.Sub(c.lastSeen) >= rl.idle {
			delete(rl.clients, k)
		}
	}
	for len(rl.clients) >= rl.maxClients {
		var oldest string
		var oldestSeen time.Time
		first := true
		for k, c := range rl.clients {
			if first || c.lastSeen.Before(oldestSeen) {
				oldest, oldestSeen, first = k, c.lastSeen, false
			}
		}
		delete(rl.clients, oldest)
	}
}

func (rl *MemoryRateLimiter) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if !rl.allow(rl.key(ctx)) {
			return nil, status.Error(codes.ResourceExhausted, "rate limit exceeded")
		}
		return handler(ctx, req)
	}
}
