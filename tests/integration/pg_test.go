package integration

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kunalk/spring-kafka-pubsub/internal/domain"
	"github.com/Kunalk/spring-kafka-pubsub/internal/infrastructure/pg"
	"github.com/Kunalk/spring-kafka-pubsub/tests/integration/testutil"
)

// pgContainer — контейнер PostgreSQL, поднимается один раз для всех тестов пакета.
// Инициализируется в TestMain (main_test.go).
var pgContainer *testutil.PostgresContainer

// newTestLogger создаёт логгер для тестов.
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// newDelivery собирает доставку с заданным offset и временем получения.
func newDelivery(id string, offset int64, receivedAt time.Time) domain.Delivery {
	return domain.Delivery{
		WorkUnit:   domain.WorkUnit{ID: id, Definition: "def-" + id},
		Topic:      "work-units",
		Partition:  0,
		Offset:     offset,
		Key:        id,
		ReceivedAt: receivedAt.UTC().Truncate(time.Millisecond),
	}
}

// setupPgDB подключается к тестовой БД, прогоняет миграцию и очищает таблицу.
func setupPgDB(t *testing.T) *pg.DB {
	t.Helper()

	db, err := pg.New(context.Background(), &pg.Config{
		Host:     pgContainer.Host,
		Port:     pgContainer.Port,
		User:     pgContainer.User,
		Password: pgContainer.Password,
		Name:     pgContainer.DBName,
		SSLMode:  "disable",
	})
	require.NoError(t, err, "не удалось создать pg.DB")

	ctx := context.Background()
	require.NoError(t, pg.Migrate(ctx, db), "миграция не прошла")
	// Повторная миграция не должна падать
	require.NoError(t, pg.Migrate(ctx, db), "миграция должна быть идемпотентной")

	_, err = db.ExecContext(ctx, "TRUNCATE TABLE work_units RESTART IDENTITY")
	require.NoError(t, err, "не удалось очистить таблицу work_units")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// =============================================================================
// Тесты PostgreSQL репозитория
// =============================================================================

func TestPgRepo_SaveDelivery(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	db := setupPgDB(t)
	repo := pg.NewWorkUnitRepo(db, newTestLogger())
	ctx := context.Background()

	err := repo.SaveDelivery(ctx, newDelivery("wu-1", 0, time.Now()))
	require.NoError(t, err, "SaveDelivery должен успешно сохранить")

	var count int
	err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM work_units").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "в таблице должна быть 1 запись")
}

func TestPgRepo_SaveDelivery_SameOffsetIgnored(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	db := setupPgDB(t)
	repo := pg.NewWorkUnitRepo(db, newTestLogger())
	ctx := context.Background()

	d := newDelivery("wu-1", 7, time.Now())
	require.NoError(t, repo.SaveDelivery(ctx, d))
	require.NoError(t, repo.SaveDelivery(ctx, d), "повторная доставка того же offset — не ошибка")

	history, err := repo.GetHistory(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestPgRepo_GetHistory(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	db := setupPgDB(t)
	repo := pg.NewWorkUnitRepo(db, newTestLogger())
	ctx := context.Background()

	now := time.Now()
	deliveries := []domain.Delivery{
		newDelivery("wu-1", 0, now.Add(-2*time.Second)),
		newDelivery("wu-2", 1, now.Add(-1*time.Second)),
		newDelivery("wu-3", 2, now),
	}
	for _, d := range deliveries {
		require.NoError(t, repo.SaveDelivery(ctx, d))
	}

	history, err := repo.GetHistory(ctx, 10)
	require.NoError(t, err, "GetHistory должен успешно вернуть данные")
	require.Len(t, history, 3, "должно быть 3 записи")

	// Последние сначала
	assert.Equal(t, "wu-3", history[0].WorkUnit.ID, "первая запись — самая новая")
	assert.Equal(t, "wu-2", history[1].WorkUnit.ID)
	assert.Equal(t, "wu-1", history[2].WorkUnit.ID, "последняя запись — самая старая")

	assert.Equal(t, "def-wu-3", history[0].WorkUnit.Definition)
	assert.Equal(t, int64(2), history[0].Offset)
	assert.Equal(t, "wu-3", history[0].Key)
	assert.WithinDuration(t, deliveries[2].ReceivedAt, history[0].ReceivedAt, time.Millisecond)

	limited, err := repo.GetHistory(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2, "limit должен ограничивать выборку")
}

func TestPgRepo_GetHistory_Empty(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	db := setupPgDB(t)
	repo := pg.NewWorkUnitRepo(db, newTestLogger())

	history, err := repo.GetHistory(context.Background(), 10)
	require.NoError(t, err, "GetHistory на пустой таблице не должен возвращать ошибку")
	assert.Empty(t, history, "история должна быть пустой")
}

func TestPgRepo_Ping(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	db := setupPgDB(t)
	repo := pg.NewWorkUnitRepo(db, newTestLogger())

	err := repo.Ping(context.Background())
	assert.NoError(t, err, "Ping должен успешно проверить соединение")
}
