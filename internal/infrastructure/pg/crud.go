package pg

import (
	"context"
	"log/slog"

	"github.com/Kunalk/spring-kafka-pubsub/internal/domain"
	"github.com/Kunalk/spring-kafka-pubsub/internal/ports"
)

var _ ports.IWorkUnitRepository = (*WorkUnitRepo)(nil)

// WorkUnitRepo реализует ports.IWorkUnitRepository для PostgreSQL.
type WorkUnitRepo struct {
	db  *DB
	log *slog.Logger
}

// NewWorkUnitRepo возвращает репозиторий полученных WorkUnit.
func NewWorkUnitRepo(db *DB, log *slog.Logger) *WorkUnitRepo {
	return &WorkUnitRepo{db: db, log: log}
}

// SaveDelivery сохраняет доставку. Повторная доставка того же offset игнорируется.
func (r *WorkUnitRepo) SaveDelivery(ctx context.Context, d domain.Delivery) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO work_units (work_unit_id, definition, topic, partition_no, kafka_offset, message_key, received_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (topic, partition_no, kafka_offset) DO NOTHING`,
		d.WorkUnit.ID, d.WorkUnit.Definition, d.Topic, d.Partition, d.Offset, d.Key, d.ReceivedAt)
	if err != nil {
		r.log.Debug("SaveDelivery failed", "error", err)
		return err
	}
	return nil
}

// GetHistory возвращает последние limit доставок (последние сначала).
func (r *WorkUnitRepo) GetHistory(ctx context.Context, limit int) ([]domain.Delivery, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT work_unit_id, definition, topic, partition_no, kafka_offset, message_key, received_at
		 FROM work_units ORDER BY received_at DESC, id DESC LIMIT $1`, limit)
	if err != nil {
		r.log.Debug("GetHistory failed", "error", err)
		return nil, err
	}
	defer rows.Close()
	var list []domain.Delivery
	for rows.Next() {
		var d domain.Delivery
		err := rows.Scan(&d.WorkUnit.ID, &d.WorkUnit.Definition, &d.Topic, &d.Partition, &d.Offset, &d.Key, &d.ReceivedAt)
		if err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// Ping проверяет доступность БД (readiness).
func (r *WorkUnitRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
