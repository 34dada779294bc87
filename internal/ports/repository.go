package ports

//go:generate mockgen -source=repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/Kunalk/spring-kafka-pubsub/internal/domain"
)

// IWorkUnitRepository — контракт сохранения и чтения полученных WorkUnit.
type IWorkUnitRepository interface {
	SaveDelivery(ctx context.Context, d domain.Delivery) error
	GetHistory(ctx context.Context, limit int) ([]domain.Delivery, error)
	Ping(ctx context.Context) error
}
