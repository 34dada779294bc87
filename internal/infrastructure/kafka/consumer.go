package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Kunalk/spring-kafka-pubsub/internal/domain"
	"github.com/Kunalk/spring-kafka-pubsub/internal/pkg/metrics"
	"github.com/Kunalk/spring-kafka-pubsub/internal/ports"
)

// HandlerConfig — повторы обработки одного сообщения. Переменные: CONSUMER_HANDLER_MAX_ATTEMPTS, CONSUMER_HANDLER_BACKOFF.
type HandlerConfig struct {
	MaxAttempts int           `split_words:"true" default:"3"`
	Backoff     time.Duration `split_words:"true" default:"500ms"`
}

// messageReader — то, что Consumer использует у kafka.Reader.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Consumer — обёртка над kafka.Reader, декодирует сообщения в domain.Delivery и вызывает use case.
type Consumer struct {
	r       messageReader
	uc      ports.IReceiverUseCase
	dlq     ports.IProducer
	handler HandlerConfig
	log     *slog.Logger
	now     func() time.Time
}

// NewConsumer создаёт консьюмера по конфигу, use case и логгеру. dlq может быть nil. После использования вызови Close().
func NewConsumer(cfg *Config, hcfg HandlerConfig, uc ports.IReceiverUseCase, dlq ports.IProducer, log *slog.Logger) *Consumer {
	if log == nil {
		log = slog.Default()
	}
	return newConsumer(New(cfg).Reader(log), hcfg, uc, dlq, log)
}

func newConsumer(r messageReader, hcfg HandlerConfig, uc ports.IReceiverUseCase, dlq ports.IProducer, log *slog.Logger) *Consumer {
	if hcfg.MaxAttempts < 1 {
		hcfg.MaxAttempts = 1
	}
	if log == nil {
		log = slog.Default()
	}
	return &Consumer{r: r, uc: uc, dlq: dlq, handler: hcfg, log: log, now: time.Now}
}

// Message — сообщение из Kafka (ключ, тело, топик, партиция, offset).
type Message = kafka.Message

// Run в цикле читает сообщения, декодирует JSON в domain.WorkUnit, вызывает uc.HandleDelivery и коммитит.
// Битые сообщения и сообщения, не обработанные за MaxAttempts попыток, уходят в DLQ (если задан) и коммитятся.
// Выход по отмене ctx или при ошибке чтения/коммита.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		msg, err := c.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("kafka consumer stopped", "error", err)
			return err
		}

		d, err := decodeDelivery(msg, c.now())
		if err != nil {
			c.log.Warn("kafka unmarshal error, skip", "error", err, "topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset)
			metrics.WorkUnitsConsumed.WithLabelValues(metrics.ResultMalformed).Inc()
			c.deadLetter(ctx, msg)
		} else if err := c.handle(ctx, d); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("kafka handle failed, giving up", "error", err, "id", d.WorkUnit.ID, "topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset)
			metrics.WorkUnitsConsumed.WithLabelValues(metrics.ResultFailed).Inc()
			c.deadLetter(ctx, msg)
		} else {
			metrics.WorkUnitsConsumed.WithLabelValues(metrics.ResultOK).Inc()
		}

		if err := c.CommitMessage(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("kafka consumer stopped (commit)", "error", err)
			return err
		}
	}
}

// handle вызывает use case до MaxAttempts раз с линейно растущей паузой.
func (c *Consumer) handle(ctx context.Context, d domain.Delivery) error {
	var err error
	for attempt := 1; attempt <= c.handler.MaxAttempts; attempt++ {
		if err = c.uc.HandleDelivery(ctx, d); err == nil {
			return nil
		}
		if attempt == c.handler.MaxAttempts {
			break
		}
		c.log.Warn("kafka handle error, will retry", "error", err, "id", d.WorkUnit.ID, "attempt", attempt)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.handler.Backoff * time.Duration(attempt)):
		}
	}
	return fmt.Errorf("handle %s after %d attempts: %w", d.WorkUnit.ID, c.handler.MaxAttempts, err)
}

// deadLetter пересылает исходное сообщение в DLQ. Ошибка отправки только логируется.
func (c *Consumer) deadLetter(ctx context.Context, msg kafka.Message) {
	if c.dlq == nil {
		return
	}
	if err := c.dlq.Send(ctx, msg.Key, msg.Value); err != nil {
		c.log.Error("dead letter send failed", "error", err, "topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset)
		return
	}
	metrics.WorkUnitsConsumed.WithLabelValues(metrics.ResultDeadLetter).Inc()
	c.log.Info("message sent to dead letter topic", "topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset)
}

// decodeDelivery разбирает тело сообщения в WorkUnit и добавляет координаты Kafka.
func decodeDelivery(msg kafka.Message, receivedAt time.Time) (domain.Delivery, error) {
	var wu domain.WorkUnit
	if err := json.Unmarshal(msg.Value, &wu); err != nil {
		return domain.Delivery{}, fmt.Errorf("%w: %v", domain.ErrMalformedPayload, err)
	}
	if err := wu.Validate(); err != nil {
		return domain.Delivery{}, fmt.Errorf("%w: %w", domain.ErrMalformedPayload, err)
	}
	return domain.Delivery{
		WorkUnit:   wu,
		Topic:      msg.Topic,
		Partition:  msg.Partition,
		Offset:     msg.Offset,
		Key:        string(msg.Key),
		ReceivedAt: receivedAt,
	}, nil
}

// FetchMessage блокируется до появления следующего сообщения; сообщение не коммитится до вызова CommitMessage.
func (c *Consumer) FetchMessage(ctx context.Context) (kafka.Message, error) {
	return c.r.FetchMessage(ctx)
}

// CommitMessage помечает сообщение как обработанное (для consumer group).
func (c *Consumer) CommitMessage(ctx context.Context, msg kafka.Message) error {
	return c.r.CommitMessages(ctx, msg)
}

// Close закрывает консьюмера.
func (c *Consumer) Close() error {
	return c.r.Close()
}
