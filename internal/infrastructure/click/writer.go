package click

import (
	"context"
	"fmt"

	"github.com/Kunalk/spring-kafka-pubsub/internal/domain"
	"github.com/Kunalk/spring-kafka-pubsub/internal/ports"
)

// WorkUnitsAnalyticsTable — таблица доставок для аналитики.
const WorkUnitsAnalyticsTable = "default.work_units_analytics"

var _ ports.IWorkUnitAnalytics = (*DeliveryWriter)(nil)

// DeliveryWriter пишет доставки в ClickHouse (задержка по партициям, объём по времени и т.д.).
type DeliveryWriter struct {
	db *Client
}

// NewDeliveryWriter создаёт писатель доставок для аналитики.
func NewDeliveryWriter(db *Client) *DeliveryWriter {
	return &DeliveryWriter{db: db}
}

// EnsureTable создаёт таблицу, если её ещё нет. Вызови один раз при старте приложения.
func (w *DeliveryWriter) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			work_unit_id String,
			definition String,
			topic LowCardinality(String),
			partition Int32,
			offset Int64,
			received_at DateTime64(3)
		) ENGINE = MergeTree()
		ORDER BY (received_at, topic, partition)
		PARTITION BY toYYYYMM(received_at)`,
		WorkUnitsAnalyticsTable,
	)
	_, err := w.db.DB().ExecContext(ctx, query)
	return err
}

// WriteDelivery реализует ports.IWorkUnitAnalytics: пишет одну доставку.
func (w *DeliveryWriter) WriteDelivery(ctx context.Context, d domain.Delivery) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (work_unit_id, definition, topic, partition, offset, received_at) VALUES (?, ?, ?, ?, ?, ?)",
		WorkUnitsAnalyticsTable,
	)
	_, err := w.db.DB().ExecContext(ctx, query,
		d.WorkUnit.ID, d.WorkUnit.Definition, d.Topic, int32(d.Partition), d.Offset, d.ReceivedAt)
	if err != nil {
		return fmt.Errorf("insert delivery: %w", err)
	}
	return nil
}
