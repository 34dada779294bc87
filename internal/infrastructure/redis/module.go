package redis

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config — подключение к Redis и TTL меток дедупликации. Переменные: CONSUMER_REDIS_*.
type Config struct {
	Enabled     bool          `split_words:"true" default:"true"` // выключено — без дедупликации
	Host        string        `split_words:"true" default:"localhost"`
	Port        string        `split_words:"true" default:"6379"`
	Password    string        `split_words:"true" default:""`
	DB          int           `split_words:"true" default:"0"`
	PoolSize    int           `split_words:"true" default:"10"`
	DialTimeout time.Duration `split_words:"true" default:"5s"`
	OpTimeout   time.Duration `split_words:"true" default:"1s"`  // чтение и запись; кэш не должен тормозить консьюмер
	DedupTTL    time.Duration `split_words:"true" default:"24h"` // сколько помнить обработанный id
}

// Addr возвращает адрес "host:port".
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Client — клиент go-redis с настройками из Config.
type Client struct {
	*redis.Client
}

// New подключается к Redis и проверяет пингом в пределах DialTimeout.
func New(ctx context.Context, cfg *Config) (*Client, error) {
	cli := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.OpTimeout,
		WriteTimeout: cfg.OpTimeout,
	})
	if cfg.DialTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
	}
	if err := cli.Ping(ctx).Err(); err != nil {
		_ = cli.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr(), err)
	}
	return &Client{Client: cli}, nil
}
