package kafka

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Kunalk/spring-kafka-pubsub/internal/ports"
)

// Драйверы клиента Kafka для продюсера.
const (
	DriverKafkaGo = "kafkago"
	DriverFranz   = "franz"
)

// Config — настройки Kafka. Переменные: <APP>_KAFKA_BROKERS, <APP>_KAFKA_TOPIC, <APP>_KAFKA_GROUP_ID и т.д.
type Config struct {
	Brokers         string        `split_words:"true" default:"localhost:9092"` // через запятую, если несколько
	Topic           string        `split_words:"true" default:"work-units"`
	GroupID         string        `split_words:"true" default:"work-units-consumer"` // для consumer group
	Driver          string        `split_words:"true" default:"kafkago"`
	ClientID        string        `split_words:"true" default:"spring-kafka-pubsub"`
	RequiredAcks    int           `split_words:"true" default:"-1"` // -1 все ISR, 0 без подтверждения, 1 лидер
	MaxAttempts     int           `split_words:"true" default:"3"`
	WriteTimeout    time.Duration `split_words:"true" default:"10s"`
	DeadLetterTopic string        `split_words:"true" default:""`
}

// brokersSlice возвращает список брокеров из строки (через запятую).
func (c *Config) brokersSlice() []string {
	if c == nil || c.Brokers == "" {
		return []string{"localhost:9092"}
	}
	parts := strings.Split(c.Brokers, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"localhost:9092"}
	}
	return out
}

// Publisher — продюсер, которого отдаёт Client: отправка, проверка брокера, закрытие.
type Publisher interface {
	ports.IProducer
	ports.IHealthChecker
	io.Closer
}

// Client — конфиг и фабрики продюсера/консьюмера. Подключение к брокеру при создании Writer/Reader.
type Client struct {
	cfg *Config
}

// New создаёт клиент по конфигу. Само подключение к Kafka — при первой отправке или чтении через Writer/Reader.
func New(cfg *Config) *Client {
	if cfg == nil {
		cfg = &Config{}
	}
	return &Client{cfg: cfg}
}

// Publisher создаёт продюсера выбранного драйвера (kafkago или franz). После использования вызови Close().
func (c *Client) Publisher() (Publisher, error) {
	switch c.cfg.Driver {
	case "", DriverKafkaGo:
		return c.Producer(), nil
	case DriverFranz:
		return NewFranzProducer(c.cfg, c.cfg.Topic)
	default:
		return nil, fmt.Errorf("kafka: unknown driver %q", c.cfg.Driver)
	}
}

// Producer создаёт продюсера kafka-go для отправки сообщений в основной топик.
func (c *Client) Producer() *Producer {
	return c.producerFor(c.cfg.Topic)
}

// DeadLetterProducer создаёт продюсера в топик недоставленных сообщений. nil, если топик не задан.
func (c *Client) DeadLetterProducer() *Producer {
	if c.cfg.DeadLetterTopic == "" {
		return nil
	}
	return c.producerFor(c.cfg.DeadLetterTopic)
}

// syncBatchTimeout — верхняя граница ожидания батча для синхронной отправки.
const syncBatchTimeout = 5 * time.Millisecond

func (c *Client) producerFor(topic string) *Producer {
	w := &kafka.Writer{
		Addr:         kafka.TCP(c.cfg.brokersSlice()...),
		Topic:        topic,
		Balancer:     &kafka.Hash{}, // одинаковый id — одна партиция
		RequiredAcks: kafka.RequiredAcks(c.cfg.RequiredAcks),
		MaxAttempts:  c.cfg.MaxAttempts,
		WriteTimeout: c.cfg.WriteTimeout,
		// Send синхронный и пишет по одному сообщению: ждать добора батча (по умолчанию 1s) нельзя.
		BatchSize:    1,
		BatchTimeout: syncBatchTimeout,
	}
	return &Producer{w: w, brokers: c.cfg.brokersSlice(), timeout: c.cfg.WriteTimeout}
}

// Reader создаёт kafka.Reader для чтения из топика (consumer group). Ошибки клиента пишутся в log.
func (c *Client) Reader(log *slog.Logger) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:     c.cfg.brokersSlice(),
		Topic:       c.cfg.Topic,
		GroupID:     c.cfg.GroupID,
		StartOffset: kafka.FirstOffset,
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			log.Error("kafka reader", "error", fmt.Sprintf(msg, args...))
		}),
	})
}

// Ping проверяет, что хотя бы один брокер из конфига доступен (readiness консьюмера).
func (c *Client) Ping(ctx context.Context) error {
	return pingBrokers(ctx, c.cfg.brokersSlice())
}

// pingBrokers по очереди открывает TCP-соединение с брокерами, успех — хотя бы один ответил.
func pingBrokers(ctx context.Context, brokers []string) error {
	var lastErr error
	for _, b := range brokers {
		conn, err := kafka.DialContext(ctx, "tcp", b)
		if err != nil {
			lastErr = err
			continue
		}
		_ = conn.Close()
		return nil
	}
	return fmt.Errorf("kafka ping: %w", lastErr)
}
