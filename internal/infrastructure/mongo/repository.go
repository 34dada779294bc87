package mongo

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Kunalk/spring-kafka-pubsub/internal/domain"
	"github.com/Kunalk/spring-kafka-pubsub/internal/ports"
)

var _ ports.IWorkUnitRepository = (*WorkUnitRepo)(nil)

// deliveryDoc — документ в коллекции work_units. _id собран из координат Kafka, поэтому повтор не дублируется.
type deliveryDoc struct {
	ID         string    `bson:"_id"`
	WorkUnitID string    `bson:"work_unit_id"`
	Definition string    `bson:"definition"`
	Topic      string    `bson:"topic"`
	Partition  int       `bson:"partition"`
	Offset     int64     `bson:"offset"`
	Key        string    `bson:"key"`
	ReceivedAt time.Time `bson:"received_at"`
}

// WorkUnitRepo реализует ports.IWorkUnitRepository для MongoDB.
type WorkUnitRepo struct {
	client *Client
	log    *slog.Logger
}

// NewWorkUnitRepo возвращает репозиторий полученных WorkUnit.
func NewWorkUnitRepo(client *Client, log *slog.Logger) *WorkUnitRepo {
	return &WorkUnitRepo{client: client, log: log}
}

// SaveDelivery сохраняет доставку в коллекцию. Повторная доставка того же offset игнорируется.
func (r *WorkUnitRepo) SaveDelivery(ctx context.Context, d domain.Delivery) error {
	doc := deliveryDoc{
		ID:         docID(d),
		WorkUnitID: d.WorkUnit.ID,
		Definition: d.WorkUnit.Definition,
		Topic:      d.Topic,
		Partition:  d.Partition,
		Offset:     d.Offset,
		Key:        d.Key,
		ReceivedAt: d.ReceivedAt,
	}
	_, err := r.client.Coll().InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		r.log.Debug("SaveDelivery failed", "error", err)
		return err
	}
	return nil
}

// GetHistory возвращает последние limit доставок (последние сначала).
func (r *WorkUnitRepo) GetHistory(ctx context.Context, limit int) ([]domain.Delivery, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "received_at", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := r.client.Coll().Find(ctx, bson.M{}, opts)
	if err != nil {
		r.log.Debug("GetHistory failed", "error", err)
		return nil, err
	}
	defer cursor.Close(ctx)
	var docs []deliveryDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	list := make([]domain.Delivery, 0, len(docs))
	for _, doc := range docs {
		list = append(list, domain.Delivery{
			WorkUnit:   domain.WorkUnit{ID: doc.WorkUnitID, Definition: doc.Definition},
			Topic:      doc.Topic,
			Partition:  doc.Partition,
			Offset:     doc.Offset,
			Key:        doc.Key,
			ReceivedAt: doc.ReceivedAt,
		})
	}
	return list, nil
}

// Ping проверяет доступность БД.
func (r *WorkUnitRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, nil)
}

// docID — "topic/partition/offset".
func docID(d domain.Delivery) string {
	return d.Topic + "/" + strconv.Itoa(d.Partition) + "/" + strconv.FormatInt(d.Offset, 10)
}
