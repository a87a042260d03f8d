package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Category    string             `json:"category" bson:"category"`
	Price       float64            `json:"price" bson:"price"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Img         string             `json:"img" bson:"img"`
	OutletID    primitive.ObjectID `json:"outletId" bson:"outletId"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// ProductFilter carries the optional list filters; nil/empty fields
// impose no constraint.
type ProductFilter struct {
	Category string
	OutletID *primitive.ObjectID
}

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *Product) (*Product, error)
	ListProducts(ctx context.Context, filter ProductFilter, limit, offset int) ([]Product, error)
	CountProducts(ctx context.Context, filter ProductFilter) (int64, error)
}
