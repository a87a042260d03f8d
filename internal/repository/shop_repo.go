package repository

import (
	"context"
	"fmt"

	"github.com/naik-shashank/AgriMart/internal/domain"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoShopRepository struct {
	collection *mongo.Collection
	log        *logrus.Logger
}

func NewMongoShopRepository(db *mongo.Database, logger *logrus.Logger) domain.ShopRepository {
	return &mongoShopRepository{
		collection: db.Collection("shops"),
		log:        logger,
	}
}

// FindNearby relies on the 2dsphere index on address.coordinates; $near
// sorts results nearest first.
func (r *mongoShopRepository) FindNearby(ctx context.Context, point domain.GeoPoint, maxDistance int) ([]domain.Shop, error) {
	filter := bson.M{
		"address.coordinates": bson.M{
			"$near": bson.M{
				"$geometry": bson.M{
					"type":        point.Type,
					"coordinates": point.Coordinates,
				},
				"$maxDistance": maxDistance,
			},
		},
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		r.log.Errorf("Failed to query nearby shops: %v", err)
		return nil, fmt.Errorf("could not query nearby shops: %w", err)
	}
	defer cursor.Close(ctx)

	shops := []domain.Shop{}
	if err := cursor.All(ctx, &shops); err != nil {
		return nil, fmt.Errorf("could not decode shops: %w", err)
	}
	return shops, nil
}

// EnsureShopIndexes creates the geospatial index the $near query requires.
func EnsureShopIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("shops").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "address.coordinates", Value: "2dsphere"}},
		Options: options.Index(),
	})
	if err != nil {
		return fmt.Errorf("failed to create shop indexes: %w", err)
	}
	return nil
}
