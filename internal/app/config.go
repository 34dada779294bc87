package app

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	apigrpc "github.com/Kunalk/spring-kafka-pubsub/internal/api/grpc"
	"github.com/Kunalk/spring-kafka-pubsub/internal/api/http"
	"github.com/Kunalk/spring-kafka-pubsub/internal/infrastructure/click"
	"github.com/Kunalk/spring-kafka-pubsub/internal/infrastructure/kafka"
	"github.com/Kunalk/spring-kafka-pubsub/internal/infrastructure/mongo"
	"github.com/Kunalk/spring-kafka-pubsub/internal/infrastructure/pg"
	"github.com/Kunalk/spring-kafka-pubsub/internal/infrastructure/redis"
	"github.com/Kunalk/spring-kafka-pubsub/internal/pkg/logger"
)

// Префиксы переменных окружения.
const (
	ProducerAppName = "PRODUCER"
	ConsumerAppName = "CONSUMER"
)

// Хранилища консьюмера.
const (
	StoreDriverPG    = "pg"
	StoreDriverMongo = "mongo"
)

// ProducerConfig — конфиг продюсера. Заполняется через envconfig с префиксом PRODUCER.
type ProducerConfig struct {
	Log    logger.Config     `envconfig:"LOG"`
	Server http.ServerConfig `envconfig:"SERVER"`
	Grpc   apigrpc.Config    `envconfig:"GRPC"`
	Kafka  kafka.Config      `envconfig:"KAFKA"`
}

// ConsumerConfig — конфиг консьюмера. Заполняется через envconfig с префиксом CONSUMER.
type ConsumerConfig struct {
	Log         logger.Config       `envconfig:"LOG"`
	Server      http.ServerConfig   `envconfig:"SERVER"`
	Kafka       kafka.Config        `envconfig:"KAFKA"`
	Handler     kafka.HandlerConfig `envconfig:"HANDLER"`
	StoreDriver string              `split_words:"true" default:"pg"`
	DB          pg.Config           `envconfig:"DB"`
	Mongo       mongo.Config        `envconfig:"MONGO"`
	Redis       redis.Config        `envconfig:"REDIS"`
	ClickHouse  click.Config        `envconfig:"CLICKHOUSE"`
}

// loadDotEnv подтягивает .env (или файл из ENV_FILE) в окружение. Отсутствие файла — не ошибка.
func loadDotEnv() {
	name := os.Getenv("ENV_FILE")
	if name == "" {
		name = ".env"
	}
	if err := godotenv.Load(name); err != nil {
		log.Printf("config: %s не найден, используем окружение: %v", name, err)
	}
}

// LoadProducerCfg загружает конфиг продюсера: .env (godotenv), затем окружение (envconfig).
func LoadProducerCfg() (ProducerConfig, error) {
	loadDotEnv()

	var cfg ProducerConfig
	if err := envconfig.Process(ProducerAppName, &cfg); err != nil {
		return ProducerConfig{}, err
	}
	if err := cfg.validate(); err != nil {
		return ProducerConfig{}, err
	}
	return cfg, nil
}

// LoadConsumerCfg загружает конфиг консьюмера: .env (godotenv), затем окружение (envconfig).
func LoadConsumerCfg() (ConsumerConfig, error) {
	loadDotEnv()

	var cfg ConsumerConfig
	if err := envconfig.Process(ConsumerAppName, &cfg); err != nil {
		return ConsumerConfig{}, err
	}
	if err := cfg.validate(); err != nil {
		return ConsumerConfig{}, err
	}
	return cfg, nil
}

func (c ProducerConfig) validate() error {
	if c.Kafka.Topic == "" {
		return fmt.Errorf("config: %s_KAFKA_TOPIC is empty", ProducerAppName)
	}
	switch c.Kafka.Driver {
	case kafka.DriverKafkaGo, kafka.DriverFranz:
	default:
		return fmt.Errorf("config: unknown %s_KAFKA_DRIVER %q", ProducerAppName, c.Kafka.Driver)
	}
	return nil
}

func (c ConsumerConfig) validate() error {
	if c.Kafka.Topic == "" {
		return fmt.Errorf("config: %s_KAFKA_TOPIC is empty", ConsumerAppName)
	}
	if c.Kafka.GroupID == "" {
		return fmt.Errorf("config: %s_KAFKA_GROUP_ID is empty", ConsumerAppName)
	}
	if c.Kafka.DeadLetterTopic != "" && c.Kafka.DeadLetterTopic == c.Kafka.Topic {
		return fmt.Errorf("config: dead letter topic must differ from %q", c.Kafka.Topic)
	}
	switch c.StoreDriver {
	case StoreDriverPG, StoreDriverMongo:
	default:
		return fmt.Errorf("config: unknown %s_STORE_DRIVER %q", ConsumerAppName, c.StoreDriver)
	}
	return nil
}
