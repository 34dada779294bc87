package receiver

import (
	"log/slog"
	"time"

	"github.com/Kunalk/spring-kafka-pubsub/internal/ports"
)

// Ограничения истории.
const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 500
)

// ForgetTimeout — сколько ждать Redis при снятии метки дедупликации.
const ForgetTimeout = time.Second

var _ ports.IReceiverUseCase = (*UseCase)(nil)

// UseCase — обработка WorkUnit, полученных из топика.
type UseCase struct {
	repo      ports.IWorkUnitRepository
	cache     ports.ICache
	analytics ports.IWorkUnitAnalytics
	log       *slog.Logger
}

// New создаёт юзкейс. cache и analytics могут быть nil (дедупликация и аналитика выключены).
func New(repo ports.IWorkUnitRepository, cache ports.ICache, analytics ports.IWorkUnitAnalytics, log *slog.Logger) *UseCase {
	if log == nil {
		log = slog.Default()
	}
	return &UseCase{repo: repo, cache: cache, analytics: analytics, log: log}
}
