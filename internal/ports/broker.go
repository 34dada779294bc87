package ports

//go:generate mockgen -source=broker.go -destination=../mocks/broker_mock.go -package=mocks

import "context"

// IProducer — контракт отправки сообщений в брокер (Kafka). Топик задаётся при создании реализации (конфиг).
// Диспетчер вызывает Send один раз на каждый WorkUnit.
type IProducer interface {
	Send(ctx context.Context, key, value []byte) error
}

// IHealthChecker — проверка доступности зависимости (брокер, БД) для readiness.
type IHealthChecker interface {
	Ping(ctx context.Context) error
}
