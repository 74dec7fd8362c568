// Package storage is the persistence gateway: a generic insert-one /
// find-many pair parameterized by logical collection name, backed by
// MongoDB in production and by an in-memory store in tests.
package storage

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// Collection names, one per entity.
const (
	CollectionSite     = "site"
	CollectionAsset    = "asset"
	CollectionJob      = "job"
	CollectionInvoice  = "invoice"
	CollectionFeedback = "feedback"
	CollectionUser     = "user"
)

// CollectionNames lists the entity collections in declaration order.
var CollectionNames = []string{
	CollectionSite,
	CollectionAsset,
	CollectionJob,
	CollectionInvoice,
	CollectionFeedback,
}

// ErrNotConfigured is returned by every operation when no store backend
// is configured.
var ErrNotConfigured = errors.New("database not configured")

// Store abstracts the document store. Every operation is a single
// independent read or write; there is no transactional grouping.
type Store interface {
	// InsertOne writes a single document and returns the generated
	// identifier as a hex string.
	InsertOne(ctx context.Context, collection string, doc any) (string, error)

	// Find returns up to limit documents matching an equality filter,
	// in storage-default order. An empty filter matches everything.
	Find(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error)

	// ListCollections names the collections present in the store.
	ListCollections(ctx context.Context) ([]string, error)

	// Ping verifies connectivity.
	Ping(ctx context.Context) error
}
