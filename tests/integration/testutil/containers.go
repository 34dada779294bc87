// Package testutil поднимает инфраструктуру для интеграционных тестов в Docker (testcontainers).
package testutil

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/clickhouse"
	"github.com/testcontainers/testcontainers-go/modules/kafka"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Образы, на которых гоняются тесты.
const (
	KafkaImage      = "confluentinc/confluent-local:7.5.0"
	PostgresImage   = "postgres:16-alpine"
	RedisImage      = "redis:7-alpine"
	MongoImage      = "mongo:7"
	ClickHouseImage = "clickhouse/clickhouse-server:24-alpine"
)

// Endpoint — адрес проброшенного порта контейнера.
type Endpoint struct {
	Host string
	Port string
}

// Addr возвращает "host:port".
func (e Endpoint) Addr() string {
	return e.Host + ":" + e.Port
}

// endpoint узнаёт хост и проброшенный порт контейнера.
func endpoint(ctx context.Context, c testcontainers.Container, port nat.Port) (Endpoint, error) {
	host, err := c.Host(ctx)
	if err != nil {
		return Endpoint{}, fmt.Errorf("host: %w", err)
	}
	mapped, err := c.MappedPort(ctx, port)
	if err != nil {
		return Endpoint{}, fmt.Errorf("port %s: %w", port, err)
	}
	return Endpoint{Host: host, Port: mapped.Port()}, nil
}

// =============================================================================
// Kafka
// =============================================================================

// KafkaContainer — один брокер Kafka в режиме KRaft.
type KafkaContainer struct {
	*kafka.KafkaContainer
	Brokers []string
}

// NewKafkaContainer поднимает Kafka и возвращает адреса брокеров.
func NewKafkaContainer(ctx context.Context) (*KafkaContainer, error) {
	container, err := kafka.Run(ctx, KafkaImage, kafka.WithClusterID("work-units-it"))
	if err != nil {
		return nil, fmt.Errorf("kafka container: %w", err)
	}
	brokers, err := container.Brokers(ctx)
	if err != nil {
		return nil, fmt.Errorf("kafka brokers: %w", err)
	}
	return &KafkaContainer{KafkaContainer: container, Brokers: brokers}, nil
}

// BrokerList возвращает брокеров через запятую (формат KAFKA_BROKERS).
func (c *KafkaContainer) BrokerList() string {
	return strings.Join(c.Brokers, ",")
}

// =============================================================================
// PostgreSQL
// =============================================================================

// PostgresContainer — PostgreSQL с тестовой базой.
type PostgresContainer struct {
	*postgres.PostgresContainer
	Endpoint
	User     string
	Password string
	DBName   string
}

// NewPostgresContainer поднимает PostgreSQL и ждёт готовности.
func NewPostgresContainer(ctx context.Context) (*PostgresContainer, error) {
	const (
		user     = "test"
		password = "test"
		dbName   = "workunits_test"
	)

	container, err := postgres.Run(ctx,
		PostgresImage,
		postgres.WithDatabase(dbName),
		postgres.WithUsername(user),
		postgres.WithPassword(password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("postgres container: %w", err)
	}
	ep, err := endpoint(ctx, container, "5432/tcp")
	if err != nil {
		return nil, fmt.Errorf("postgres %w", err)
	}
	return &PostgresContainer{
		PostgresContainer: container,
		Endpoint:          ep,
		User:              user,
		Password:          password,
		DBName:            dbName,
	}, nil
}

// =============================================================================
// Redis
// =============================================================================

// RedisContainer — Redis для кэша дедупликации.
type RedisContainer struct {
	*redis.RedisContainer
	Endpoint
}

// NewRedisContainer поднимает Redis и ждёт готовности.
func NewRedisContainer(ctx context.Context) (*RedisContainer, error) {
	container, err := redis.Run(ctx,
		RedisImage,
		testcontainers.WithWaitStrategy(
			wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("redis container: %w", err)
	}
	ep, err := endpoint(ctx, container, "6379/tcp")
	if err != nil {
		return nil, fmt.Errorf("redis %w", err)
	}
	return &RedisContainer{RedisContainer: container, Endpoint: ep}, nil
}

// =============================================================================
// MongoDB
// =============================================================================

// MongoContainer — одиночный mongod.
type MongoContainer struct {
	*mongodb.MongoDBContainer
	Endpoint
}

// NewMongoContainer поднимает MongoDB и ждёт готовности.
func NewMongoContainer(ctx context.Context) (*MongoContainer, error) {
	container, err := mongodb.Run(ctx,
		MongoImage,
		testcontainers.WithWaitStrategy(
			wait.ForLog("Waiting for connections").
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("mongo container: %w", err)
	}
	ep, err := endpoint(ctx, container, "27017/tcp")
	if err != nil {
		return nil, fmt.Errorf("mongo %w", err)
	}
	return &MongoContainer{MongoDBContainer: container, Endpoint: ep}, nil
}

// URI возвращает строку подключения для mongo-driver.
func (c *MongoContainer) URI() string {
	return "mongodb://" + c.Addr()
}

// =============================================================================
// ClickHouse
// =============================================================================

// ClickHouseContainer — ClickHouse с нативным портом наружу.
type ClickHouseContainer struct {
	*clickhouse.ClickHouseContainer
	Endpoint
	User     string
	Password string
	Database string
}

// NewClickHouseContainer поднимает ClickHouse и ждёт готовности.
func NewClickHouseContainer(ctx context.Context) (*ClickHouseContainer, error) {
	const (
		user     = "default"
		password = ""
		database = "default"
	)

	container, err := clickhouse.Run(ctx,
		ClickHouseImage,
		clickhouse.WithUsername(user),
		clickhouse.WithPassword(password),
		clickhouse.WithDatabase(database),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse container: %w", err)
	}
	ep, err := endpoint(ctx, container, "9000/tcp")
	if err != nil {
		return nil, fmt.Errorf("clickhouse %w", err)
	}
	return &ClickHouseContainer{
		ClickHouseContainer: container,
		Endpoint:            ep,
		User:                user,
		Password:            password,
		Database:            database,
	}, nil
}
