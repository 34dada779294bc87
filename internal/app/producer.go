package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	apigrpc "github.com/Kunalk/spring-kafka-pubsub/internal/api/grpc"
	apihttp "github.com/Kunalk/spring-kafka-pubsub/internal/api/http"
	"github.com/Kunalk/spring-kafka-pubsub/internal/api/http/controllers/system"
	"github.com/Kunalk/spring-kafka-pubsub/internal/api/http/controllers/workunit"
	"github.com/Kunalk/spring-kafka-pubsub/internal/infrastructure/kafka"
	"github.com/Kunalk/spring-kafka-pubsub/internal/pkg/logger"
	"github.com/Kunalk/spring-kafka-pubsub/internal/usecase/dispatcher"
)

const shutdownTimeout = 10 * time.Second

// Producer — процесс продюсера, хранит только конфиг.
type Producer struct {
	cfg ProducerConfig
}

// NewProducer создаёт продюсера с конфигом (Kafka подключается в Run).
func NewProducer(cfg ProducerConfig) *Producer {
	return &Producer{cfg: cfg}
}

// Run создаёт клиента Kafka, диспетчер, поднимает HTTP и gRPC и блокируется до SIGINT/SIGTERM.
func (a *Producer) Run() error {
	log := logger.New(a.cfg.Log)
	slog.SetDefault(log)

	broker, err := kafka.New(&a.cfg.Kafka).Publisher()
	if err != nil {
		return fmt.Errorf("kafka: %w", err)
	}
	defer broker.Close()

	uc := dispatcher.New(broker, log)

	grpcSrv := apigrpc.NewServer(a.cfg.Grpc.Addr(), log)
	if err := grpcSrv.Listen(); err != nil {
		return fmt.Errorf("grpc listen: %w", err)
	}

	srv := apihttp.NewServer(a.cfg.Server)
	srv.AddController(
		system.New(log, system.Check{Name: "kafka", Checker: broker}),
		workunit.New(uc, log))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(grpcSrv.Start)
	g.Go(func() error {
		return srv.Start(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return grpcSrv.Stop(shutdownCtx)
	})

	grpcSrv.SetServing(true)
	slog.Info("producer started",
		"http", a.cfg.Server.Addr(),
		"grpc", grpcSrv.Addr(),
		"topic", a.cfg.Kafka.Topic,
		"driver", a.cfg.Kafka.Driver)

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	slog.Info("producer stopped")
	return nil
}
