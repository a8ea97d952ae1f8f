/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of the DataStore
// interface for testing
package mock

import (
	"context"
	"sync"

	"github.com/suparena/financeapi/storagemodels"
)

// DataStore is an in-memory implementation of datastore.DataStore[T]. It is
// seedable, records upserts so tests can assert an operation never wrote,
// and supports per-operation error injection.
type DataStore[T any] struct {
	mu        sync.RWMutex
	data      map[string]T
	upserts   []T
	keyFunc   func(entity T) (id string, partitionKey string)
	queryFunc func(ctx context.Context, query *storagemodels.Query) ([]T, error)
	getErr    error
	upsertErr error
	queryErr  error
	deleteErr error
}

// New creates a mock DataStore. keyFunc extracts the storage key from an
// entity so Upsert can place it for later GetOne calls.
func New[T any](keyFunc func(entity T) (id string, partitionKey string)) *DataStore[T] {
	return &DataStore[T]{
		data:    make(map[string]T),
		keyFunc: keyFunc,
	}
}

// WithQueryFunc sets the behavior of Query.
func (m *DataStore[T]) WithQueryFunc(f func(ctx context.Context, query *storagemodels.Query) ([]T, error)) *DataStore[T] {
	m.queryFunc = f
	return m
}

// WithGetError makes GetOne return an error.
func (m *DataStore[T]) WithGetError(err error) *DataStore[T] {
	m.getErr = err
	return m
}

// WithUpsertError makes Upsert return an error.
func (m *DataStore[T]) WithUpsertError(err error) *DataStore[T] {
	m.upsertErr = err
	return m
}

// WithQueryError makes Query return an error.
func (m *DataStore[T]) WithQueryError(err error) *DataStore[T] {
	m.queryErr = err
	return m
}

// WithDeleteError makes Delete return an error.
func (m *DataStore[T]) WithDeleteError(err error) *DataStore[T] {
	m.deleteErr = err
	return m
}

// Seed stores entities directly, bypassing upsert recording.
func (m *DataStore[T]) Seed(entities ...T) *DataStore[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range entities {
		id, pk := m.keyFunc(e)
		m.data[compositeKey(id, pk)] = e
	}
	return m
}

// Upserts returns every entity written through Upsert, in order.
func (m *DataStore[T]) Upserts() []T {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]T, len(m.upserts))
	copy(out, m.upserts)
	return out
}

// GetOne retrieves an entity by id and partition key, (nil, nil) when absent.
func (m *DataStore[T]) GetOne(ctx context.Context, id, partitionKey string) (*T, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if entity, exists := m.data[compositeKey(id, partitionKey)]; exists {
		return &entity, nil
	}
	return nil, nil
}

// Upsert stores an entity and records the call.
func (m *DataStore[T]) Upsert(ctx context.Context, entity T) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id, pk := m.keyFunc(entity)
	m.data[compositeKey(id, pk)] = entity
	m.upserts = append(m.upserts, entity)
	return nil
}

// Query delegates to the configured query func; with none configured it
// returns an empty result.
func (m *DataStore[T]) Query(ctx context.Context, query *storagemodels.Query) ([]T, error) {
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	if m.queryFunc != nil {
		return m.queryFunc(ctx, query)
	}
	return nil, nil
}

// Delete removes an entity by id and partition key.
func (m *DataStore[T]) Delete(ctx context.Context, id, partitionKey string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, compositeKey(id, partitionKey))
	return nil
}

func compositeKey(id, partitionKey string) string {
	return id + "|" + partitionKey
}
