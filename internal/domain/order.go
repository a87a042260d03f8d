package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CustomerID primitive.ObjectID `json:"customerId" bson:"customerId"`
	OutletID   primitive.ObjectID `json:"outletId" bson:"outletId"`
	StoreID    string             `json:"storeId,omitempty" bson:"storeId,omitempty"`
	Lines      []OrderLine        `json:"orders" bson:"orders"`
	TotalPrice float64            `json:"totalPrice" bson:"totalPrice"`
	Status     OrderStatus        `json:"status" bson:"status"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at" bson:"updated_at"`
}

type OrderLine struct {
	ProductID string  `json:"productId" bson:"productId"`
	Name      string  `json:"name,omitempty" bson:"name,omitempty"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	Price     float64 `json:"price" bson:"price"`
}

// OrderFilter carries the optional list filters; nil/empty fields
// impose no constraint.
type OrderFilter struct {
	Status     string
	CustomerID *primitive.ObjectID
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *Order) (*Order, error)
	ListOrders(ctx context.Context, filter OrderFilter, limit, offset int) ([]Order, error)
	CountOrders(ctx context.Context, filter OrderFilter) (int64, error)
}

func IsValidStatus(status OrderStatus) bool {
	switch status {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}
