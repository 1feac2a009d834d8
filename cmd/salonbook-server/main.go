package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"salonbook/backend/internal/config"
	"salonbook/backend/internal/events"
	salonbookv1 "salonbook/backend/internal/gen/proto/salonbook/v1"
	"salonbook/backend/internal/service/appointments"
	"salonbook/backend/internal/store/postgres"
	"salonbook/backend/internal/telemetry"
	grpcTransport "salonbook/backend/internal/transport/grpc"
)

const serviceName = "salonbook-server"

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})).With(
		slog.String("service", serviceName),
	)
	slog.SetDefault(log)

	cfg, err := config.Load()
	if err != nil {
		log.Error("config load failed", slog.Any("err", err))
		os.Exit(1)
	}

	log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)})).With(
		slog.String("service", serviceName),
	)
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	log.Info("starting", slog.String("grpc_addr", cfg.GRPCAddr()), slog.String("log_level", cfg.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		Enabled:     cfg.OTelEnabled,
		ServiceName: serviceName,
		Endpoint:    cfg.OTelEndpoint,
		SampleRatio: cfg.OTelSamplingRatio,
	})
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Warn("tracer shutdown failed", slog.Any("err", err))
		}
	}()

	log.Info("connecting to database", databaseLogArgs(cfg.DatabaseURL)...)
	dialCtx, cancelDial := context.WithTimeout(ctx, 10*time.Second)
	db, err := postgres.Open(dialCtx, cfg.DatabaseURL, postgres.PoolConfig{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
		ConnMaxIdleTime: cfg.DBConnMaxIdleTime,
	})
	cancelDial()
	if err != nil {
		args := append([]any{slog.Any("err", err)}, databaseLogArgs(cfg.DatabaseURL)...)
		log.Error("database connection failed", args...)
		return err
	}
	defer func() {
		if err := postgres.Close(db); err != nil {
			log.Warn("database close failed", slog.Any("err", err))
		}
	}()

	svc := appointments.NewService(postgres.NewScheduleRepo(db), appointments.Config{
		MaxRangeDays: cfg.BookingMaxRangeDays,
	})

	interceptors := []grpc.UnaryServerInterceptor{
		grpcTransport.UnaryServerRequestIDInterceptor(),
		grpcTransport.UnaryServerLoggingInterceptor(log),
		grpcTransport.UnaryServerTimeoutInterceptor(cfg.GRPCRequestTimeout),
	}
	clientKey := grpcTransport.ClientKey(cfg.RateLimitTrustForwarded)
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer func() { _ = rdb.Close() }()

		rl := grpcTransport.NewRedisRateLimiter(rdb, cfg.RateLimitLimit, cfg.RateLimitWindow, "salonbook:rl", clientKey)
		interceptors = append(interceptors, rl.UnaryServerInterceptor(log, cfg.RateLimitFailOpen))
		log.Info("rate limiting enabled (redis)",
			slog.Int("limit", cfg.RateLimitLimit),
			slog.Duration("window", cfg.RateLimitWindow),
			slog.String("redis_addr", cfg.RedisAddr),
			slog.Bool("trust_forwarded", cfg.RateLimitTrustForwarded),
		)
	} else {
		rl := grpcTransport.NewMemoryRateLimiter(cfg.RateLimitLimit, cfg.RateLimitWindow, clientKey)
		interceptors = append(interceptors, rl.UnaryServerInterceptor())
		log.Info("rate limiting enabled (in-memory)",
			slog.Int("limit", cfg.RateLimitLimit),
			slog.Duration("window", cfg.RateLimitWindow),
			slog.Bool("trust_forwarded", cfg.RateLimitTrustForwarded),
		)
	}

	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(interceptors...),
	)
	salonbookv1.RegisterBookingServiceServer(grpcServer, grpcTransport.NewBookingServer(svc, log))
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.GRPCAddr())
	if err != nil {
		log.Error("grpc listen failed", slog.Any("err", err), slog.String("grpc_addr", cfg.GRPCAddr()))
		return err
	}

	publisher := events.NewPublisher(postgres.NewOutboxRepo(db), log, events.PublisherConfig{
		Brokers:   cfg.KafkaBrokers,
		PollEvery: cfg.OutboxPollInterval,
		BatchSize: cfg.OutboxBatchSize,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("grpc server started", slog.String("grpc_addr", cfg.GRPCAddr()))
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return publisher.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		if ctx.Err() != nil {
			log.Info("shutdown signal received")
		}
		shutdown(log, grpcServer, cfg.ShutdownTimeout)
		return nil
	})

	return g.Wait()
}

func shutdown(log *slog.Logger, s *grpc.Server, timeout time.Duration) {
	log.Info("shutting down grpc server", slog.Duration("timeout", timeout))

	done := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(done)
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-done:
		log.Info("grpc server stopped")
	case <-timer.C:
		log.Warn("grpc graceful shutdown timed out; forcing stop")
		s.Stop()
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func databaseLogArgs(databaseURL string) []any {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return []any{slog.String("db_url", "invalid")}
	}
	name := strings.TrimPrefix(u.Path, "/")
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "default"
	}
	if host == "" {
		host = "unknown"
	}
	if name == "" {
		name = "unknown"
	}
	return []any{
		slog.String("db_host", host),
		slog.String("db_port", port),
		slog.String("db_name", name),
	}
}
