package click

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// Config — ClickHouse для аналитики доставок. Переменные: CONSUMER_CLICKHOUSE_*.
// Выключен по умолчанию: консьюмер работает и без аналитики.
type Config struct {
	Enabled      bool          `split_words:"true" default:"false"`
	Host         string        `split_words:"true" default:"localhost"`
	Port         string        `split_words:"true" default:"9000"`
	Database     string        `split_words:"true" default:"default"`
	Username     string        `split_words:"true" default:"default"`
	Password     string        `split_words:"true" default:""`
	DialTimeout  time.Duration `split_words:"true" default:"5s"`
	MaxOpenConns int           `split_words:"true" default:"5"`
}

// Addr возвращает адрес "host:port" для нативного протокола.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Client — sql.DB поверх нативного протокола ClickHouse (LZ4).
type Client struct {
	db *sql.DB
}

// New открывает соединение и проверяет его пингом. После использования вызови Close().
func New(ctx context.Context, cfg *Config) (*Client, error) {
	db := clickhouse.OpenDB(&clickhouse.Options{
		Addr: []string{cfg.Addr()},
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.Username,
			Password: cfg.Password,
		},
		DialTimeout: cfg.DialTimeout,
		Compression: &clickhouse.Compression{Method: clickhouse.CompressionLZ4},
	})
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxOpenConns)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("clickhouse ping %s: %w", cfg.Addr(), err)
	}
	return &Client{db: db}, nil
}

// DB возвращает *sql.DB для запросов.
func (c *Client) DB() *sql.DB {
	return c.db
}

// Close закрывает соединение с ClickHouse.
func (c *Client) Close() error {
	return c.db.Close()
}
