/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/financeapi/storagemodels"
)

// DataStore is the document-store contract the resource services depend on.
// Implementations must be safe for concurrent use by multiple in-flight
// requests; the services hold one long-lived handle per container.
type DataStore[T any] interface {
	// GetOne performs a point lookup by document id and partition key.
	// It returns (nil, nil) when no document exists at that key.
	GetOne(ctx context.Context, id, partitionKey string) (*T, error)

	// Upsert writes the entity, replacing any document at the same key.
	Upsert(ctx context.Context, entity T) error

	// Query executes a parameterized search and returns the matching
	// entities. An empty result is not an error.
	Query(ctx context.Context, query *storagemodels.Query) ([]T, error)

	// Delete removes the document at the given key.
	Delete(ctx context.Context, id, partitionKey string) error
}
