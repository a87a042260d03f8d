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

type mongoOrderRepository struct {
	collection *mongo.Collection
	log        *logrus.Logger
}

func NewMongoOrderRepository(db *mongo.Database, logger *logrus.Logger) domain.OrderRepository {
	return &mongoOrderRepository{
		collection: db.Collection("orders"),
		log:        logger,
	}
}

func (r *mongoOrderRepository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, order)
	if err != nil {
		r.log.Errorf("Failed to create order for customer %s: %v", order.CustomerID.Hex(), err)
		return nil, fmt.Errorf("could not create order: %w", err)
	}

	order.ID = result.InsertedID.(primitive.ObjectID)
	r.log.Infof("Order created successfully with ID %s for customer %s", order.ID.Hex(), order.CustomerID.Hex())
	return order, nil
}

func (r *mongoOrderRepository) ListOrders(ctx context.Context, filter domain.OrderFilter, limit, offset int) ([]domain.Order, error) {
	opts := options.Find().
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, orderQuery(filter), opts)
	if err != nil {
		r.log.Errorf("Failed to list orders: %v", err)
		return nil, fmt.Errorf("could not list orders: %w", err)
	}
	defer cursor.Close(ctx)

	orders := []domain.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("could not decode orders: %w", err)
	}
	return orders, nil
}

func (r *mongoOrderRepository) CountOrders(ctx context.Context, filter domain.OrderFilter) (int64, error) {
	total, err := r.collection.CountDocuments(ctx, orderQuery(filter))
	if err != nil {
		r.log.Errorf("Failed to count orders: %v", err)
		return 0, fmt.Errorf("could not count orders: %w", err)
	}
	return total, nil
}

func orderQuery(filter domain.OrderFilter) bson.M {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.CustomerID != nil {
		query["customerId"] = *filter.CustomerID
	}
	return query
}
