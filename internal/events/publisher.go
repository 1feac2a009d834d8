package events

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"salonbook/backend/internal/domain"
	"salonbook/backend/internal/store"
	"salonbook/backend/internal/telemetry"
)

// Publisher relays committed outbox events to Kafka. Delivery is at least once: a batch
// is marked published only after the broker acknowledged every message in it.
type Publisher struct {
	repo      store.OutboxRepository
	log       *slog.Logger
	brokers   []string
	pollEvery time.Duration
	batchSize int

	newWriter func(brokers []string) messageWriter
}

type PublisherConfig struct {
	Brokers   string
	PollEvery time.Duration
	BatchSize int
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

func NewPublisher(repo store.OutboxRepository, log *slog.Logger, cfg PublisherConfig) *Publisher {
	if log == nil {
		log = slog.Default()
	}
	if cfg.PollEvery <= 0 {
		cfg.PollEvery = 2 * time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	return &Publisher{
		repo:      repo,
		log:       log.With(slog.String("component", "outbox.publisher")),
		brokers:   SplitBrokers(cfg.Brokers),
		pollEvery: cfg.PollEvery,
		batchSize: cfg.BatchSize,
		newWriter: func(brokers []string) messageWriter {
			return &kafka.Writer{
				Addr:         kafka.TCP(brokers...),
				Balancer:     &kafka.Hash{},
				RequiredAcks: kafka.RequireAll,
			}
		},
	}
}

// Run polls until ctx is done. It returns immediately when no brokers are configured.
func (p *Publisher) Run(ctx context.Context) error {
	if len(p.brokers) == 0 {
		p.log.Warn("outbox publisher disabled (no kafka brokers configured)")
		return nil
	}

	writer := p.newWriter(p.brokers)
	defer func() {
		if err := writer.Close(); err != nil {
			p.log.Warn("kafka writer close failed", slog.Any("err", err))
		}
	}()

	p.log.Info("outbox publisher started", slog.Any("brokers", p.brokers), slog.Duration("poll_every", p.pollEvery))

	ticker := time.NewTicker(p.pollEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			n, err := p.PublishBatch(ctx, writer)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				p.log.Error("outbox publish failed", slog.Any("err", err))
				continue
			}
			if n > 0 {
				p.log.Debug("outbox batch published", slog.Int("count", n))
			}
		}
	}
}

// PublishBatch ships one batch and returns how many events it marked published.
func (p *Publisher) PublishBatch(ctx context.Context, writer messageWriter) (int, error) {
	var published int
	err := p.repo.InOutboxTransaction(ctx, func(ctx context.Context, tx store.OutboxTx) error {
		rows, err := tx.FetchUnpublished(ctx, p.batchSize)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}

		msgs := make([]kafka.Message, 0, len(rows))
		ids := make([]int64, 0, len(rows))
		for _, r := range rows {
			msgs = append(msgs, buildMessage(ctx, r))
			ids = append(ids, r.ID)
		}
		if err := writer.WriteMessages(ctx, msgs...); err != nil {
			return err
		}
		if err := tx.MarkPublished(ctx, ids); err != nil {
			return err
		}
		published = len(ids)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return published, nil
}

func buildMessage(ctx context.Context, r domain.OutboxEvent) kafka.Message {
	msg := kafka.Message{
		Topic: r.EventType,
		Key:   []byte(r.AggregateID),
		Value: r.Payload,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(r.EventID.String())},
			{Key: "event_type", Value: []byte(r.EventType)},
		},
	}
	msgCtx := telemetry.ContextWithTraceContext(ctx, r.Traceparent, r.Tracestate)
	msg.Headers = InjectTraceHeaders(msgCtx, msg.Headers)
	return msg
}

// InjectTraceHeaders appends W3C trace context headers to Kafka headers.
func InjectTraceHeaders(ctx context.Context, headers []kafka.Header) []kafka.Header {
	carrier := &headerCarrier{headers: headers}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	return carrier.headers
}

// HeaderValue returns the first header named key.
func HeaderValue(headers []kafka.Header, key string) string {
	for _, h := range headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

type headerCarrier struct {
	headers []kafka.Header
}

var _ propagation.TextMapCarrier = (*headerCarrier)(nil)

func (c *headerCarrier) Get(key string) string {
	return HeaderValue(c.headers, key)
}

func (c *headerCarrier) Keys() []string {
	keys := make([]string, 0, len(c.headers))
	for _, h := range c.headers {
		keys = append(keys, h.Key)
	}
	return keys
}

func (c *headerCarrier) Set(key, value string) {
	for i := range c.headers {
		if c.headers[i].Key == key {
			c.headers[i].Value = []byte(value)
			return
		}
	}
	c.headers = append(c.headers, kafka.Header{Key: key, Value: []byte(value)})
}

func SplitBrokers(raw string) []string {
	var brokers []string
	for _, b := range strings.Split(raw, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
