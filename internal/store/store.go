// Package store defines the document store boundary the application runs on.
// Drivers exist for Cloud Firestore, Postgres (JSONB) and an in-memory map.
package store

import (
	"context"
	"errors"
)

var (
	ErrNotFound    = errors.New("document not found")
	ErrUnavailable = errors.New("store unavailable")
)

// Operator is a query predicate operator.
type Operator string

const (
	OpEqual         Operator = "=="
	OpArrayContains Operator = "array-contains"
)

// Predicate is a single field condition. Predicates in a query are ANDed.
type Predicate struct {
	Field string
	Op    Operator
	Value interface{}
}

// Document is a stored record: an id plus its field map.
type Document struct {
	ID   string
	Data map[string]interface{}
}

// Store is a collection-scoped document store.
type Store interface {
	// Get returns the document with the given id, or ErrNotFound.
	Get(ctx context.Context, collection, id string) (Document, error)

	// Query returns all documents matching every predicate.
	Query(ctx context.Context, collection string, preds []Predicate) ([]Document, error)

	// Insert stores data under a store-generated id and returns it.
	Insert(ctx context.Context, collection string, data map[string]interface{}) (string, error)

	// Set stores data under a caller-chosen id, overwriting any existing document.
	Set(ctx context.Context, collection, id string, data map[string]interface{}) error

	// Update rewrites only the given fields of an existing document.
	// Returns ErrNotFound if the document does not exist.
	Update(ctx context.Context, collection, id string, fields map[string]interface{}) error

	// Delete removes the document. Deleting a missing document is not an error.
	Delete(ctx context.Context, collection, id string) error
}

// Eq builds an equality predicate.
func Eq(field string, value interface{}) Predicate {
	return Predicate{Field: field, Op: OpEqual, Value: value}
}

// ArrayContains builds an array membership predicate.
func ArrayContains(field string, value interface{}) Predicate {
	return Predicate{Field: field, Op: OpArrayContains, Value: value}
}
