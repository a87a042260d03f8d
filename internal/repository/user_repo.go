package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/naik-shashank/AgriMart/internal/domain"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoUserRepository struct {
	collection *mongo.Collection
	log        *logrus.Logger
}

func NewMongoUserRepository(db *mongo.Database, logger *logrus.Logger) domain.UserRepository {
	return &mongoUserRepository{
		collection: db.Collection("users"),
		log:        logger,
	}
}

func (r *mongoUserRepository) GetUserByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	var user domain.User

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.log.Warnf("User with ID %s not found", id.Hex())
			return nil, fmt.Errorf("user %s: %w", id.Hex(), domain.ErrNotFound)
		}
		r.log.Errorf("Failed to get user by ID %s: %v", id.Hex(), err)
		return nil, fmt.Errorf("could not get user by id: %w", err)
	}

	return &user, nil
}
