package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	apihttp "github.com/Kunalk/spring-kafka-pubsub/internal/api/http"
	"github.com/Kunalk/spring-kafka-pubsub/internal/api/http/controllers/history"
	"github.com/Kunalk/spring-kafka-pubsub/internal/api/http/controllers/system"
	"github.com/Kunalk/spring-kafka-pubsub/internal/infrastructure/click"
	"github.com/Kunalk/spring-kafka-pubsub/internal/infrastructure/kafka"
	"github.com/Kunalk/spring-kafka-pubsub/internal/infrastructure/mongo"
	"github.com/Kunalk/spring-kafka-pubsub/internal/infrastructure/pg"
	"github.com/Kunalk/spring-kafka-pubsub/internal/infrastructure/redis"
	"github.com/Kunalk/spring-kafka-pubsub/internal/pkg/logger"
	"github.com/Kunalk/spring-kafka-pubsub/internal/ports"
	"github.com/Kunalk/spring-kafka-pubsub/internal/usecase/receiver"
)

// Consumer — процесс консьюмера, хранит только конфиг.
type Consumer struct {
	cfg ConsumerConfig
}

// NewConsumer создаёт консьюмера с конфигом (хранилища подключаются в Run).
func NewConsumer(cfg ConsumerConfig) *Consumer {
	return &Consumer{cfg: cfg}
}

// Run подключается к хранилищам, подписывается на топик и поднимает HTTP (блокирующий вызов).
func (a *Consumer) Run() error {
	log := logger.New(a.cfg.Log)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := a.openRepository(ctx, log)
	if err != nil {
		return err
	}
	defer closeRepo()

	checks := []system.Check{
		{Name: "store", Checker: repo},
		{Name: "kafka", Checker: kafka.New(&a.cfg.Kafka)},
	}

	var cache ports.ICache
	if a.cfg.Redis.Enabled {
		rdb, err := redis.New(ctx, &a.cfg.Redis)
		if err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		defer rdb.Close()
		rc := redis.NewCache(rdb, a.cfg.Redis.DedupTTL, log)
		checks = append(checks, system.Check{Name: "redis", Checker: rc})
		cache = rc
	}

	var analytics ports.IWorkUnitAnalytics
	if a.cfg.ClickHouse.Enabled {
		ch, err := click.New(ctx, &a.cfg.ClickHouse)
		if err != nil {
			return fmt.Errorf("clickhouse: %w", err)
		}
		defer ch.Close()
		writer := click.NewDeliveryWriter(ch)
		if err := writer.EnsureTable(ctx); err != nil {
			return fmt.Errorf("clickhouse ensure table: %w", err)
		}
		analytics = writer
	}

	uc := receiver.New(repo, cache, analytics, log)

	var dlq ports.IProducer
	if p := kafka.New(&a.cfg.Kafka).DeadLetterProducer(); p != nil {
		defer p.Close()
		dlq = p
	}
	consumer := kafka.NewConsumer(&a.cfg.Kafka, a.cfg.Handler, uc, dlq, log)
	defer consumer.Close()

	srv := apihttp.NewServer(a.cfg.Server)
	srv.AddController(
		system.New(log, checks...),
		history.New(uc, log))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return consumer.Run(gctx)
	})
	g.Go(func() error {
		return srv.Start(gctx)
	})

	slog.Info("consumer started",
		"http", a.cfg.Server.Addr(),
		"topic", a.cfg.Kafka.Topic,
		"group", a.cfg.Kafka.GroupID,
		"store", a.cfg.StoreDriver,
		"dedup", cache != nil,
		"analytics", analytics != nil)

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	slog.Info("consumer stopped")
	return nil
}

// openRepository подключает хранилище по STORE_DRIVER и возвращает функцию закрытия.
func (a *Consumer) openRepository(ctx context.Context, log *slog.Logger) (ports.IWorkUnitRepository, func(), error) {
	switch a.cfg.StoreDriver {
	case StoreDriverMongo:
		client, err := mongo.New(ctx, &a.cfg.Mongo)
		if err != nil {
			return nil, nil, fmt.Errorf("mongo: %w", err)
		}
		if err := client.EnsureIndexes(ctx); err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return mongo.NewWorkUnitRepo(client, log), func() { _ = client.Close() }, nil
	default:
		db, err := pg.New(ctx, &a.cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("db: %w", err)
		}
		if err := pg.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		return pg.NewWorkUnitRepo(db, log), func() { _ = db.Close() }, nil
	}
}
