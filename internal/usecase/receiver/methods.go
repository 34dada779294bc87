package receiver

import (
	"context"
	"fmt"

	"github.com/Kunalk/spring-kafka-pubsub/internal/domain"
	"github.com/Kunalk/spring-kafka-pubsub/internal/pkg/metrics"
)

// HandleDelivery вызывается консьюмером на каждое сообщение из топика:
// дедупликация по id → сохранение в БД → запись в аналитику.
func (u *UseCase) HandleDelivery(ctx context.Context, d domain.Delivery) error {
	id := d.WorkUnit.ID
	marked := false
	if u.cache != nil {
		first, err := u.cache.MarkProcessed(ctx, id)
		switch {
		case err != nil:
			// кэш недоступен — обрабатываем без дедупликации
			u.log.Warn("dedup mark failed, processing anyway", "id", id, "error", err)
		case !first:
			u.log.Info("duplicate work unit, skip", "id", id, "topic", d.Topic, "partition", d.Partition, "offset", d.Offset)
			metrics.WorkUnitsConsumed.WithLabelValues(metrics.ResultDuplicate).Inc()
			return nil
		default:
			marked = true
		}
	}

	if err := u.repo.SaveDelivery(ctx, d); err != nil {
		if marked {
			u.releaseMark(ctx, id)
		}
		return fmt.Errorf("save delivery %s: %w", id, err)
	}
	u.log.Info("work unit received", "id", id, "definition", d.WorkUnit.Definition, "topic", d.Topic, "partition", d.Partition, "offset", d.Offset)

	if u.analytics != nil {
		if err := u.analytics.WriteDelivery(ctx, d); err != nil {
			u.log.Warn("analytics write", "id", id, "error", err)
		}
	}
	return nil
}

// releaseMark снимает метку после неудачного сохранения, чтобы повтор не посчитался дубликатом.
// Контекст доставки при остановке уже отменён, поэтому Forget идёт с отвязанным контекстом и своим таймаутом.
func (u *UseCase) releaseMark(ctx context.Context, id string) {
	fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ForgetTimeout)
	defer cancel()
	if err := u.cache.Forget(fctx, id); err != nil {
		u.log.Error("dedup forget failed, redelivery will be skipped until the mark expires", "id", id, "error", err)
	}
}

// History — последние обработанные WorkUnit. limit <= 0 — значение по умолчанию, сверху ограничен MaxHistoryLimit.
func (u *UseCase) History(ctx context.Context, limit int) ([]domain.Delivery, error) {
	return u.repo.GetHistory(ctx, clampLimit(limit))
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		return MaxHistoryLimit
	default:
		return limit
	}
}
