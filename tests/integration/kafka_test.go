package integration

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kunalk/spring-kafka-pubsub/internal/domain"
	"github.com/Kunalk/spring-kafka-pubsub/internal/infrastructure/kafka"
	"github.com/Kunalk/spring-kafka-pubsub/internal/infrastructure/pg"
	"github.com/Kunalk/spring-kafka-pubsub/internal/infrastructure/redis"
	"github.com/Kunalk/spring-kafka-pubsub/internal/ports"
	"github.com/Kunalk/spring-kafka-pubsub/internal/usecase/dispatcher"
	"github.com/Kunalk/spring-kafka-pubsub/internal/usecase/receiver"
	"github.com/Kunalk/spring-kafka-pubsub/tests/integration/testutil"
)

// kafkaContainer — контейнер Kafka, инициализируется в TestMain.
var kafkaContainer *testutil.KafkaContainer

// recordingReceiver передаёт доставку дальше (если next задан) и сообщает о ней в канал.
type recordingReceiver struct {
	next ports.IReceiverUseCase
	got  chan domain.Delivery
}

func newRecordingReceiver(next ports.IReceiverUseCase) *recordingReceiver {
	return &recordingReceiver{next: next, got: make(chan domain.Delivery, 16)}
}

func (r *recordingReceiver) HandleDelivery(ctx context.Context, d domain.Delivery) error {
	var err error
	if r.next != nil {
		err = r.next.HandleDelivery(ctx, d)
	}
	r.got <- d
	return err
}

func (r *recordingReceiver) History(ctx context.Context, limit int) ([]domain.Delivery, error) {
	return r.next.History(ctx, limit)
}

// wait ждёт n доставок или падает по таймауту.
func (r *recordingReceiver) wait(t *testing.T, n int, timeout time.Duration) []domain.Delivery {
	t.Helper()
	deadline := time.After(timeout)
	var out []domain.Delivery
	for len(out) < n {
		select {
		case d := <-r.got:
			out = append(out, d)
		case <-deadline:
			t.Fatalf("получено %d доставок из %d за %s", len(out), n, timeout)
		}
	}
	return out
}

// setupTopic создаёт уникальный топик с одной партицией и возвращает конфиг клиента.
func setupTopic(t *testing.T, driver string) *kafka.Config {
	t.Helper()

	suffix := uuid.NewString()[:8]
	topic := "work-units-" + suffix

	conn, err := kafkago.DialContext(context.Background(), "tcp", kafkaContainer.Brokers[0])
	require.NoError(t, err, "не удалось подключиться к Kafka")
	defer conn.Close()

	err = conn.CreateTopics(kafkago.TopicConfig{Topic: topic, NumPartitions: 1, ReplicationFactor: 1})
	require.NoError(t, err, "не удалось создать топик")

	return &kafka.Config{
		Brokers:      kafkaContainer.BrokerList(),
		Topic:        topic,
		GroupID:      "it-" + suffix,
		Driver:       driver,
		ClientID:     "it",
		RequiredAcks: -1,
		MaxAttempts:  5,
		WriteTimeout: 10 * time.Second,
	}
}

// runConsumer запускает цикл чтения до конца теста.
func runConsumer(t *testing.T, cfg *kafka.Config, uc ports.IReceiverUseCase) {
	t.Helper()

	consumer := kafka.NewConsumer(cfg, kafka.HandlerConfig{MaxAttempts: 1, Backoff: 10 * time.Millisecond}, uc, nil, newTestLogger())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = consumer.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
		consumer.Close()
	})
}

// =============================================================================
// Тесты Kafka: диспетчер → топик → консьюмер
// =============================================================================

func TestKafka_DispatchAndConsume(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	for _, driver := range []string{kafka.DriverKafkaGo, kafka.DriverFranz} {
		t.Run(driver, func(t *testing.T) {
			cfg := setupTopic(t, driver)

			pub, err := kafka.New(cfg).Publisher()
			require.NoError(t, err)
			t.Cleanup(func() { pub.Close() })

			require.NoError(t, pub.Ping(context.Background()), "брокер должен быть доступен")

			uc := dispatcher.New(pub, newTestLogger())
			ok := uc.Dispatch(context.Background(), domain.WorkUnit{ID: "wu-1", Definition: "resize image"})
			require.True(t, ok, "Dispatch должен вернуть true при успешной публикации")

			// Первая отправка прогревает метаданные; следующая не должна ждать добора батча.
			start := time.Now()
			require.True(t, uc.Dispatch(context.Background(), domain.WorkUnit{ID: "wu-2", Definition: "crop image"}))
			assert.Less(t, time.Since(start), 500*time.Millisecond, "одиночная отправка ждёт батч")

			rec := newRecordingReceiver(nil)
			runConsumer(t, cfg, rec)

			got := rec.wait(t, 2, time.Minute)
			byID := make(map[string]domain.Delivery, len(got))
			for _, d := range got {
				byID[d.WorkUnit.ID] = d
			}
			require.Contains(t, byID, "wu-1")
			first := byID["wu-1"]
			assert.Equal(t, "resize image", first.WorkUnit.Definition)
			assert.Equal(t, "wu-1", first.Key, "ключ сообщения — id")
			assert.Equal(t, cfg.Topic, first.Topic)
			assert.Contains(t, byID, "wu-2")
		})
	}
}

func TestKafka_DispatchUnreachableBroker(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	pub, err := kafka.New(&kafka.Config{
		Brokers:      "127.0.0.1:1",
		Topic:        "work-units",
		Driver:       kafka.DriverKafkaGo,
		RequiredAcks: -1,
		MaxAttempts:  1,
		WriteTimeout: 2 * time.Second,
	}).Publisher()
	require.NoError(t, err)
	t.Cleanup(func() { pub.Close() })

	uc := dispatcher.New(pub, newTestLogger())
	ok := uc.Dispatch(context.Background(), domain.WorkUnit{ID: "wu-1", Definition: "x"})
	assert.False(t, ok, "недоступный брокер — Dispatch возвращает false")
}

// TestPipeline_DispatchToPostgres проверяет всю цепочку: публикация, чтение,
// дедупликация в Redis и сохранение в PostgreSQL.
func TestPipeline_DispatchToPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	log := newTestLogger()
	cfg := setupTopic(t, kafka.DriverKafkaGo)
	db := setupPgDB(t)
	repo := pg.NewWorkUnitRepo(db, log)
	cache := redis.NewCache(setupRedis(t), time.Hour, log)

	pub, err := kafka.New(cfg).Publisher()
	require.NoError(t, err)
	t.Cleanup(func() { pub.Close() })

	ctx := context.Background()
	uc := dispatcher.New(pub, log)
	require.True(t, uc.Dispatch(ctx, domain.WorkUnit{ID: "wu-1", Definition: "first"}))
	require.True(t, uc.Dispatch(ctx, domain.WorkUnit{ID: "wu-1", Definition: "first again"}))
	require.True(t, uc.Dispatch(ctx, domain.WorkUnit{ID: "wu-2", Definition: "second"}))

	rec := newRecordingReceiver(receiver.New(repo, cache, nil, log))
	runConsumer(t, cfg, rec)
	rec.wait(t, 3, time.Minute)

	history, err := rec.History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, history, 2, "id — идентичность WorkUnit: повтор с тем же id отбрасывается дедупликацией")

	ids := []string{history[0].WorkUnit.ID, history[1].WorkUnit.ID}
	assert.ElementsMatch(t, []string{"wu-1", "wu-2"}, ids)
	for _, d := range history {
		if d.WorkUnit.ID == "wu-1" {
			assert.Equal(t, "first", d.WorkUnit.Definition, "сохраняется первая доставка")
		}
	}
}
