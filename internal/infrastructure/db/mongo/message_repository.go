package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/homefinder/realtor-api/internal/core/domain"
)

const collectionMessages = "messages"

// MessageRepository implements ports.MessageRepository using MongoDB.
type MessageRepository struct {
	col *mongo.Collection
	ids sequence
}

func NewMessageRepository(db *mongo.Database) *MessageRepository {
	return &MessageRepository{
		col: db.Collection(collectionMessages),
		ids: newSequence(db, collectionMessages),
	}
}

func (r *MessageRepository) Create(ctx context.Context, m *domain.Message) (*domain.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.ids.next(ctx)
	if err != nil {
		return nil, err
	}

	doc := *m
	doc.ID = id
	if _, err := r.col.InsertOne(ctx, &doc); err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}
	return &doc, nil
}

// ListByHome returns the inquiries for a home, oldest first.
func (r *MessageRepository) ListByHome(ctx context.Context, homeID int64) ([]*domain.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx,
		bson.M{"home_id": homeID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("find messages: %w", err)
	}
	defer cur.Close(ctx)

	msgs := make([]*domain.Message, 0)
	if err := cur.All(ctx, &msgs); err != nil {
		return nil, fmt.Errorf("decode messages: %w", err)
	}
	return msgs, nil
}

// DeleteByHome drops every inquiry attached to a home.
func (r *MessageRepository) DeleteByHome(ctx context.Context, homeID int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.DeleteMany(ctx, bson.M{"home_id": homeID})
	return err
}

func (r *MessageRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "home_id", Value: 1}, {Key: "created_at", Value: 1}},
	})
	return err
}
