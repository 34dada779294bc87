package app

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProducerCfg_Defaults(t *testing.T) {
	t.Setenv("ENV_FILE", "testdata/missing.env")

	cfg, err := LoadProducerCfg()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "9090", cfg.Grpc.Port)
	assert.Equal(t, "localhost:9092", cfg.Kafka.Brokers)
	assert.Equal(t, "work-units", cfg.Kafka.Topic)
	assert.Equal(t, "kafkago", cfg.Kafka.Driver)
	assert.Equal(t, -1, cfg.Kafka.RequiredAcks)
	assert.Equal(t, 10*time.Second, cfg.Kafka.WriteTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadProducerCfg_FromEnv(t *testing.T) {
	t.Setenv("ENV_FILE", "testdata/missing.env")
	t.Setenv("PRODUCER_SERVER_PORT", "18080")
	t.Setenv("PRODUCER_KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("PRODUCER_KAFKA_TOPIC", "jobs")
	t.Setenv("PRODUCER_KAFKA_DRIVER", "franz")
	t.Setenv("PRODUCER_KAFKA_WRITE_TIMEOUT", "3s")
	t.Setenv("PRODUCER_LOG_FORMAT", "json")

	cfg, err := LoadProducerCfg()
	require.NoError(t, err)

	assert.Equal(t, "18080", cfg.Server.Port)
	assert.Equal(t, "k1:9092,k2:9092", cfg.Kafka.Brokers)
	assert.Equal(t, "jobs", cfg.Kafka.Topic)
	assert.Equal(t, "franz", cfg.Kafka.Driver)
	assert.Equal(t, 3*time.Second, cfg.Kafka.WriteTimeout)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadProducerCfg_DotEnv(t *testing.T) {
	t.Setenv("ENV_FILE", "testdata/producer.env")
	// godotenv не перезаписывает уже выставленные переменные; t.Setenv восстановит их после теста
	t.Setenv("PRODUCER_KAFKA_TOPIC", "")
	t.Cleanup(func() { os.Unsetenv("PRODUCER_KAFKA_CLIENT_ID") })

	_, err := LoadProducerCfg()
	require.Error(t, err, "пустой топик из окружения имеет приоритет над .env")

	t.Setenv("PRODUCER_KAFKA_TOPIC", "from-env")
	cfg, err := LoadProducerCfg()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Kafka.Topic)
	assert.Equal(t, "dotenv-client", cfg.Kafka.ClientID)
}

func TestLoadProducerCfg_UnknownDriver(t *testing.T) {
	t.Setenv("ENV_FILE", "testdata/missing.env")
	t.Setenv("PRODUCER_KAFKA_DRIVER", "sarama")

	_, err := LoadProducerCfg()
	assert.Error(t, err)
}

func TestLoadConsumerCfg_Defaults(t *testing.T) {
	t.Setenv("ENV_FILE", "testdata/missing.env")

	cfg, err := LoadConsumerCfg()
	require.NoError(t, err)

	assert.Equal(t, "work-units-consumer", cfg.Kafka.GroupID)
	assert.Equal(t, StoreDriverPG, cfg.StoreDriver)
	assert.Equal(t, 3, cfg.Handler.MaxAttempts)
	assert.Equal(t, 500*time.Millisecond, cfg.Handler.Backoff)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 24*time.Hour, cfg.Redis.DedupTTL)
	assert.False(t, cfg.ClickHouse.Enabled)
}

func TestLoadConsumerCfg_Validation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "неизвестное хранилище", env: map[string]string{"CONSUMER_STORE_DRIVER": "sqlite"}},
		{name: "пустая группа", env: map[string]string{"CONSUMER_KAFKA_GROUP_ID": ""}},
		{name: "DLQ совпадает с топиком", env: map[string]string{"CONSUMER_KAFKA_DEAD_LETTER_TOPIC": "work-units"}},
		{name: "битая длительность", env: map[string]string{"CONSUMER_HANDLER_BACKOFF": "soon"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ENV_FILE", "testdata/missing.env")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadConsumerCfg()
			assert.Error(t, err)
		})
	}
}

// Общие переменные окружения (USER, PORT, HOST, ...) не должны попадать в конфиг: читаются только ключи с префиксом.
func TestLoadConsumerCfg_IgnoresUnprefixedEnv(t *testing.T) {
	t.Setenv("ENV_FILE", "testdata/missing.env")
	t.Setenv("USER", "alice")
	t.Setenv("PORT", "3000")
	t.Setenv("HOST", "example.org")
	t.Setenv("TOPIC", "other")
	t.Setenv("PASSWORD", "secret")
	t.Setenv("STORE_DRIVER", "mongo")

	cfg, err := LoadConsumerCfg()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.DB.User)
	assert.Equal(t, "postgres", cfg.DB.Password)
	assert.Equal(t, "5432", cfg.DB.Port)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, "6379", cfg.Redis.Port)
	assert.Equal(t, "9000", cfg.ClickHouse.Port)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "work-units", cfg.Kafka.Topic)
	assert.Equal(t, StoreDriverPG, cfg.StoreDriver)
}

func TestLoadConsumerCfg_SplitWordsKeys(t *testing.T) {
	t.Setenv("ENV_FILE", "testdata/missing.env")
	t.Setenv("CONSUMER_DB_NAME", "jobs")
	t.Setenv("CONSUMER_DB_SSL_MODE", "require")
	t.Setenv("CONSUMER_DB_MAX_OPEN_CONNS", "20")
	t.Setenv("CONSUMER_REDIS_DEDUP_TTL", "1h")
	t.Setenv("CONSUMER_CLICKHOUSE_MAX_OPEN_CONNS", "7")
	t.Setenv("CONSUMER_KAFKA_GROUP_ID", "g1")

	cfg, err := LoadConsumerCfg()
	require.NoError(t, err)

	assert.Equal(t, "jobs", cfg.DB.Name)
	assert.Equal(t, "require", cfg.DB.SSLMode)
	assert.Equal(t, 20, cfg.DB.MaxOpenConns)
	assert.Equal(t, time.Hour, cfg.Redis.DedupTTL)
	assert.Equal(t, 7, cfg.ClickHouse.MaxOpenConns)
	assert.Equal(t, "g1", cfg.Kafka.GroupID)
}

func TestLoadProducerCfg_IgnoresUnprefixedEnv(t *testing.T) {
	t.Setenv("ENV_FILE", "testdata/missing.env")
	t.Setenv("PORT", "3000")
	t.Setenv("BROKERS", "elsewhere:9092")
	t.Setenv("DRIVER", "sarama")

	cfg, err := LoadProducerCfg()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "9090", cfg.Grpc.Port)
	assert.Equal(t, "localhost:9092", cfg.Kafka.Brokers)
	assert.Equal(t, "kafkago", cfg.Kafka.Driver)
}
