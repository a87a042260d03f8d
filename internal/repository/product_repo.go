package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/naik-shashank/AgriMart/internal/domain"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoProductRepository struct {
	collection *mongo.Collection
	log        *logrus.Logger
}

func NewMongoProductRepository(db *mongo.Database, logger *logrus.Logger) domain.ProductRepository {
	return &mongoProductRepository{
		collection: db.Collection("products"),
		log:        logger,
	}
}

func (r *mongoProductRepository) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, product)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			r.log.Warnf("Attempted to create duplicate product '%s'", product.Name)
			return nil, domain.ErrProductExists
		}
		r.log.Errorf("Failed to create product '%s': %v", product.Name, err)
		return nil, fmt.Errorf("could not create product: %w", err)
	}

	product.ID = result.InsertedID.(primitive.ObjectID)
	r.log.Infof("Product created successfully with ID %s, Name %s", product.ID.Hex(), product.Name)
	return product, nil
}

func (r *mongoProductRepository) ListProducts(ctx context.Context, filter domain.ProductFilter, limit, offset int) ([]domain.Product, error) {
	opts := options.Find().
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, productQuery(filter), opts)
	if err != nil {
		r.log.Errorf("Failed to list products: %v", err)
		return nil, fmt.Errorf("could not list products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []domain.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("could not decode products: %w", err)
	}
	return products, nil
}

func (r *mongoProductRepository) CountProducts(ctx context.Context, filter domain.ProductFilter) (int64, error) {
	total, err := r.collection.CountDocuments(ctx, productQuery(filter))
	if err != nil {
		r.log.Errorf("Failed to count products: %v", err)
		return 0, fmt.Errorf("could not count products: %w", err)
	}
	return total, nil
}

// productQuery builds the bson filter; absent fields impose no constraint.
func productQuery(filter domain.ProductFilter) bson.M {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.OutletID != nil {
		query["outletId"] = *filter.OutletID
	}
	return query
}

// EnsureProductIndexes creates the unique index backing duplicate-name
// detection.
func EnsureProductIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("products").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create product indexes: %w", err)
	}
	return nil
}
