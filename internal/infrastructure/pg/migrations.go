package pg

import (
	"context"
)

const createWorkUnitsTable = `
CREATE TABLE IF NOT EXISTS work_units (
	id           SERIAL PRIMARY KEY,
	work_unit_id TEXT NOT NULL,
	definition   TEXT NOT NULL,
	topic        TEXT NOT NULL,
	partition_no INTEGER NOT NULL,
	kafka_offset BIGINT NOT NULL,
	message_key  TEXT NOT NULL DEFAULT '',
	received_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (topic, partition_no, kafka_offset)
);
CREATE INDEX IF NOT EXISTS work_units_received_at_idx ON work_units (received_at DESC);
`

// Migrate создаёт таблицу work_units, если её ещё нет.
func Migrate(ctx context.Context, db *DB) error {
	_, err := db.ExecContext(ctx, createWorkUnitsTable)
	return err
}
