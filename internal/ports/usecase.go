package ports

//go:generate mockgen -source=usecase.go -destination=../mocks/usecase_mock.go -package=mocks

import (
	"context"

	"github.com/Kunalk/spring-kafka-pubsub/internal/domain"
)

// IDispatcher — отправка WorkUnit в брокер. true — клиент брокера подтвердил запись.
type IDispatcher interface {
	Dispatch(ctx context.Context, wu domain.WorkUnit) bool
}

// IReceiverUseCase — обработка WorkUnit, пришедших из топика, и история обработанных.
type IReceiverUseCase interface {
	HandleDelivery(ctx context.Context, d domain.Delivery) error
	History(ctx context.Context, limit int) ([]domain.Delivery, error)
}
