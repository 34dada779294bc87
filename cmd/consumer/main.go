package main

import (
	"log/slog"
	"os"

	"github.com/Kunalk/spring-kafka-pubsub/internal/app"
)

func main() {
	cfg, err := app.LoadConsumerCfg()
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}

	a := app.NewConsumer(cfg)
	if err := a.Run(); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}
