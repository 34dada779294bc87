package redis

import (
	"context"
	"log/slog"
	"time"

	"github.com/Kunalk/spring-kafka-pubsub/internal/ports"
)

const keyPrefix = "workunit:processed:"

var _ ports.ICache = (*Cache)(nil)

// Cache реализует ports.ICache через Redis: ключ workunit:processed:<id> живёт ttl.
type Cache struct {
	cli *Client
	ttl time.Duration
	log *slog.Logger
}

// NewCache возвращает кэш дедупликации. ttl == 0 — ключи без срока жизни.
func NewCache(cli *Client, ttl time.Duration, log *slog.Logger) *Cache {
	return &Cache{cli: cli, ttl: ttl, log: log}
}

// MarkProcessed ставит метку через SETNX. first == false, если метка уже стояла.
func (c *Cache) MarkProcessed(ctx context.Context, id string) (bool, error) {
	first, err := c.cli.SetNX(ctx, keyPrefix+id, time.Now().UTC().Format(time.RFC3339Nano), c.ttl).Result()
	if err != nil {
		c.log.Debug("cache setnx failed", "id", id, "error", err)
		return false, err
	}
	return first, nil
}

// Forget снимает метку, чтобы повторная доставка была обработана.
func (c *Cache) Forget(ctx context.Context, id string) error {
	if err := c.cli.Del(ctx, keyPrefix+id).Err(); err != nil {
		c.log.Debug("cache del failed", "id", id, "error", err)
		return err
	}
	return nil
}

// Ping проверяет соединение с Redis (readiness).
func (c *Cache) Ping(ctx context.Context) error {
	return c.cli.Ping(ctx).Err()
}
