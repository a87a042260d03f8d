package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name"`
	Email    string             `json:"email" bson:"email"`
	OutletID primitive.ObjectID `json:"outletId,omitempty" bson:"outletId,omitempty"`
	Address  Address            `json:"address,omitempty" bson:"address,omitempty"`
}

type UserRepository interface {
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*User, error)
}
