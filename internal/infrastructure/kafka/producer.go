package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Kunalk/spring-kafka-pubsub/internal/domain"
)

const contentTypeJSON = "application/json"

// Producer — обёртка над kafka.Writer для отправки сообщений в топик.
type Producer struct {
	w       *kafka.Writer
	brokers []string
	timeout time.Duration
}

var _ Publisher = (*Producer)(nil)

// NewProducer создаёт продюсера по конфигу. После использования вызови Close().
func NewProducer(cfg *Config) *Producer {
	return New(cfg).Producer()
}

// Send отправляет одно сообщение и ждёт подтверждения брокера (RequiredAcks из конфига).
func (p *Producer) Send(ctx context.Context, key, value []byte) error {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	err := p.w.WriteMessages(ctx, kafka.Message{
		Key:     key,
		Value:   value,
		Headers: []kafka.Header{{Key: "content-type", Value: []byte(contentTypeJSON)}},
	})
	if err != nil {
		return fmt.Errorf("%w: topic %s: %w", domain.ErrPublishFailed, p.w.Topic, err)
	}
	return nil
}

// Ping проверяет, что хотя бы один брокер доступен (для readiness).
func (p *Producer) Ping(ctx context.Context) error {
	return pingBrokers(ctx, p.brokers)
}

// Close закрывает продюсера.
func (p *Producer) Close() error {
	return p.w.Close()
}
