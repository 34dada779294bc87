package ports

//go:generate mockgen -source=analytics.go -destination=../mocks/analytics_mock.go -package=mocks

import (
	"context"

	"github.com/Kunalk/spring-kafka-pubsub/internal/domain"
)

// IWorkUnitAnalytics — запись доставок в хранилище для аналитики (ClickHouse).
type IWorkUnitAnalytics interface {
	WriteDelivery(ctx context.Context, d domain.Delivery) error
}
