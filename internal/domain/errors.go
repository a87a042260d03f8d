package domain

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrValidation covers missing or malformed request fields.
	ErrValidation = errors.New("validation failed")

	// ErrProductExists is returned on a unique-index violation for the product name.
	ErrProductExists = errors.New("product with this name already exists")

	// ErrInvalidReference is returned when a client-supplied identifier
	// cannot be parsed into a store reference.
	ErrInvalidReference = errors.New("invalid reference identifier")

	// ErrDecode is returned when an encoded payload cannot be parsed.
	ErrDecode = errors.New("failed to decode payload")

	ErrNotFound = errors.New("not found")
)

// ParseRef converts a client-supplied identifier string into an ObjectID.
// All reference coercion happens through here so that a bad identifier
// surfaces as ErrInvalidReference instead of an opaque driver error.
func ParseRef(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidReference, id)
	}
	return oid, nil
}
