package dispatcher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Kunalk/spring-kafka-pubsub/internal/domain"
	"github.com/Kunalk/spring-kafka-pubsub/internal/pkg/metrics"
)

// Dispatch сериализует WorkUnit в JSON и делает одну попытку отправки (ключ — id).
// Ошибки клиента брокера не пробрасываются: логируются и превращаются в false.
func (u *UseCase) Dispatch(ctx context.Context, wu domain.WorkUnit) bool {
	value, err := json.Marshal(wu)
	if err != nil {
		u.log.Error("work unit marshal", "id", wu.ID, "error", err)
		metrics.WorkUnitsDispatched.WithLabelValues(metrics.ResultFailed).Inc()
		return false
	}

	start := time.Now()
	err = u.broker.Send(ctx, []byte(wu.ID), value)
	metrics.DispatchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		u.log.Warn("broker send", "id", wu.ID, "error", err)
		metrics.WorkUnitsDispatched.WithLabelValues(metrics.ResultFailed).Inc()
		return false
	}

	u.log.Info("work unit dispatched", "id", wu.ID, "definition", wu.Definition)
	metrics.WorkUnitsDispatched.WithLabelValues(metrics.ResultOK).Inc()
	return true
}
