package ports

//go:generate mockgen -source=cache.go -destination=../mocks/cache_mock.go -package=mocks

import "context"

// ICache — контракт дедупликации доставок по id WorkUnit.
// MarkProcessed возвращает first == true, если id встретился впервые.
type ICache interface {
	MarkProcessed(ctx context.Context, id string) (first bool, err error)
	Forget(ctx context.Context, id string) error
}
