package kafka

import (
	"context"
	"fmt"

	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/Kunalk/spring-kafka-pubsub/internal/domain"
)

// FranzProducer — продюсер на franz-go (драйвер "franz"). Контракт тот же, что у Producer.
type FranzProducer struct {
	cl    *kgo.Client
	topic string
}

var _ Publisher = (*FranzProducer)(nil)

// franzAcks переводит REQUIRED_ACKS в kgo.Acks. Идемпотентная запись допустима только с acks=all.
func franzAcks(acks int) (kgo.Acks, bool) {
	switch acks {
	case 0:
		return kgo.NoAck(), false
	case 1:
		return kgo.LeaderAck(), false
	default:
		return kgo.AllISRAcks(), true
	}
}

// NewFranzProducer создаёт kgo.Client для отправки в topic. После использования вызови Close().
func NewFranzProducer(cfg *Config, topic string) (*FranzProducer, error) {
	if topic == "" {
		return nil, fmt.Errorf("franz producer: topic is empty")
	}
	acks, idempotent := franzAcks(cfg.RequiredAcks)
	opts := []kgo.Opt{
		kgo.SeedBrokers(cfg.brokersSlice()...),
		kgo.DefaultProduceTopic(topic),
		kgo.RequiredAcks(acks),
		kgo.RecordPartitioner(kgo.StickyKeyPartitioner(nil)),
	}
	if !idempotent {
		opts = append(opts, kgo.DisableIdempotentWrite())
	}
	if cfg.ClientID != "" {
		opts = append(opts, kgo.ClientID(cfg.ClientID))
	}
	if cfg.MaxAttempts > 0 {
		opts = append(opts, kgo.RecordRetries(cfg.MaxAttempts))
	}
	if cfg.WriteTimeout > 0 {
		opts = append(opts, kgo.RecordDeliveryTimeout(cfg.WriteTimeout))
	}
	cl, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("franz client init: %w", err)
	}
	return &FranzProducer{cl: cl, topic: topic}, nil
}

// Send отправляет запись синхронно (ProduceSync) и возвращает первую ошибку.
func (p *FranzProducer) Send(ctx context.Context, key, value []byte) error {
	rec := &kgo.Record{
		Topic:   p.topic,
		Key:     key,
		Value:   value,
		Headers: []kgo.RecordHeader{{Key: "content-type", Value: []byte(contentTypeJSON)}},
	}
	if err := p.cl.ProduceSync(ctx, rec).FirstErr(); err != nil {
		return fmt.Errorf("%w: topic %s: %w", domain.ErrPublishFailed, p.topic, err)
	}
	return nil
}

// Ping проверяет соединение с кластером (для readiness).
func (p *FranzProducer) Ping(ctx context.Context) error {
	if err := p.cl.Ping(ctx); err != nil {
		return fmt.Errorf("kafka ping: %w", err)
	}
	return nil
}

// Close закрывает клиента, дожидаясь отправки буфера.
func (p *FranzProducer) Close() error {
	p.cl.Close()
	return nil
}
