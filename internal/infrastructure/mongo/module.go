package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Config — настройки подключения к MongoDB. Переменные: CONSUMER_MONGO_*.
type Config struct {
	URI            string        `split_words:"true" default:"mongodb://localhost:27017"`
	Database       string        `split_words:"true" default:"workunits"`
	Collection     string        `split_words:"true" default:"work_units"`
	ConnectTimeout time.Duration `split_words:"true" default:"10s"`
	MaxPoolSize    uint64        `split_words:"true" default:"20"`
}

// Client — mongo.Client, привязанный к базе и коллекции доставок.
type Client struct {
	*mongo.Client
	coll *mongo.Collection
}

// New подключается к MongoDB и ждёт ответа primary не дольше ConnectTimeout.
func New(ctx context.Context, cfg *Config) (*Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName("work-units-consumer")
	if cfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(cfg.ConnectTimeout).SetServerSelectionTimeout(cfg.ConnectTimeout)
	}
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}
	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return &Client{
		Client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// Coll возвращает коллекцию доставок.
func (c *Client) Coll() *mongo.Collection {
	return c.coll
}

// EnsureIndexes создаёт индекс по received_at (история, последние сначала). Повторный вызов безопасен.
func (c *Client) EnsureIndexes(ctx context.Context) error {
	_, err := c.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "received_at", Value: -1}},
		Options: options.Index().SetName("received_at_desc"),
	})
	if err != nil {
		return fmt.Errorf("mongo ensure indexes: %w", err)
	}
	return nil
}

// Close отключается от MongoDB.
func (c *Client) Close() error {
	return c.Disconnect(context.Background())
}
