package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/homefinder/realtor-api/internal/core/domain"
	"github.com/homefinder/realtor-api/internal/core/ports"
)

const collectionHomes = "homes"

type HomeRepository struct {
	col *mongo.Collection
	ids sequence
}

func NewHomeRepository(db *mongo.Database) *HomeRepository {
	return &HomeRepository{
		col: db.Collection(collectionHomes),
		ids: newSequence(db, collectionHomes),
	}
}

// Create inserts a new home together with its images.
func (r *HomeRepository) Create(ctx context.Context, h *domain.Home) (*domain.Home, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.ids.next(ctx)
	if err != nil {
		return nil, err
	}

	doc := *h
	doc.ID = id
	if doc.Images == nil {
		doc.Images = []domain.Image{}
	}
	if _, err := r.col.InsertOne(ctx, &doc); err != nil {
		return nil, fmt.Errorf("insert home: %w", err)
	}
	return &doc, nil
}

func (r *HomeRepository) FindByID(ctx context.Context, id int64) (*domain.Home, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var h domain.Home
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&h); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrHomeNotFound
		}
		return nil, err
	}
	return &h, nil
}

// List returns the homes matching f ordered by id.
func (r *HomeRepository) List(ctx context.Context, f ports.HomeFilter) ([]*domain.Home, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, homeFilter(f), options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find homes: %w", err)
	}
	defer cur.Close(ctx)

	homes := make([]*domain.Home, 0)
	if err := cur.All(ctx, &homes); err != nil {
		return nil, fmt.Errorf("decode homes: %w", err)
	}
	return homes, nil
}

func homeFilter(f ports.HomeFilter) bson.M {
	filter := bson.M{}
	if f.City != "" {
		filter["city"] = f.City
	}
	if f.PropertyType != "" {
		filter["property_type"] = string(f.PropertyType)
	}
	price := bson.M{}
	if f.MinPrice > 0 {
		price["$gte"] = f.MinPrice
	}
	if f.MaxPrice > 0 {
		price["$lte"] = f.MaxPrice
	}
	if len(price) > 0 {
		filter["price"] = price
	}
	return filter
}

// Update applies the non-nil fields of p and returns the stored home.
func (r *HomeRepository) Update(ctx context.Context, id int64, p domain.HomePatch) (*domain.Home, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if p.Address != nil {
		set["address"] = *p.Address
	}
	if p.City != nil {
		set["city"] = *p.City
	}
	if p.Price != nil {
		set["price"] = *p.Price
	}
	if p.LandSize != nil {
		set["land_size"] = *p.LandSize
	}
	if p.PropertyType != nil {
		set["property_type"] = string(*p.PropertyType)
	}
	if p.NumberOfBedrooms != nil {
		set["number_of_bedrooms"] = *p.NumberOfBedrooms
	}
	if p.NumberOfBathrooms != nil {
		set["number_of_bathrooms"] = *p.NumberOfBathrooms
	}

	var h domain.Home
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&h)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrHomeNotFound
		}
		return nil, fmt.Errorf("update home: %w", err)
	}
	return &h, nil
}

func (r *HomeRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete home: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrHomeNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes used by listing search.
func (r *HomeRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "city", Value: 1}, {Key: "price", Value: 1}}},
		{Keys: bson.D{{Key: "property_type", Value: 1}}},
		{Keys: bson.D{{Key: "realtor_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
