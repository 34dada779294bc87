package dispatcher

import (
	"log/slog"

	"github.com/Kunalk/spring-kafka-pubsub/internal/ports"
)

var _ ports.IDispatcher = (*UseCase)(nil)

// UseCase — отправка WorkUnit в брокер.
type UseCase struct {
	broker ports.IProducer
	log    *slog.Logger
}

// New создаёт диспетчер. broker разделяется с другими компонентами и закрывается владельцем.
func New(broker ports.IProducer, log *slog.Logger) *UseCase {
	if log == nil {
		log = slog.Default()
	}
	return &UseCase{broker: broker, log: log}
}
