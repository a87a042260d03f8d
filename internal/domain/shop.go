package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GeoPoint is a GeoJSON point. Coordinates are [longitude, latitude],
// the order Mongo's 2dsphere index expects.
type GeoPoint struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

func NewGeoPoint(lng, lat float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: []float64{lng, lat}}
}

// Valid reports whether the point carries a usable coordinate pair.
func (p GeoPoint) Valid() bool {
	return p.Type == "Point" && len(p.Coordinates) == 2
}

type Address struct {
	Street      string   `json:"street,omitempty" bson:"street,omitempty"`
	City        string   `json:"city,omitempty" bson:"city,omitempty"`
	Coordinates GeoPoint `json:"coordinates" bson:"coordinates"`
}

type Shop struct {
	ID      primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name    string             `json:"name" bson:"name"`
	Address Address            `json:"address" bson:"address"`
}

type ShopRepository interface {
	// FindNearby returns shops within maxDistance meters of the given
	// point, nearest first.
	FindNearby(ctx context.Context, point GeoPoint, maxDistance int) ([]Shop, error)
}
