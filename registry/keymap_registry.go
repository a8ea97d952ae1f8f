/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"reflect"
	"sync"
)

// KeyMap describes how an entity type is keyed in its container: which table
// attributes hold the document id and partition key, and how to derive both
// values from an entity instance when persisting it.
type KeyMap struct {
	// IDAttr is the table attribute holding the composite document id.
	IDAttr string
	// PartitionAttr is the table attribute holding the partition key.
	PartitionAttr string
	// Key extracts the document id and partition key from an entity.
	Key func(entity any) (id string, partitionKey string, err error)
}

var (
	keyMapRegistry = make(map[reflect.Type]KeyMap)
	mu             sync.RWMutex
)

// Register associates a Go type T with its container key schema. Registering
// a type twice panics to prevent accidental overrides.
func Register[T any](km KeyMap) {
	var zero T
	t := reflect.TypeOf(zero)

	mu.Lock()
	defer mu.Unlock()
	if _, exists := keyMapRegistry[t]; exists {
		panic(fmt.Sprintf("keymap registry: type %v already registered", t))
	}
	keyMapRegistry[t] = km
}

// KeyMapFor retrieves the key schema for type T, if any.
func KeyMapFor[T any]() (KeyMap, bool) {
	var zero T
	t := reflect.TypeOf(zero)

	mu.RLock()
	defer mu.RUnlock()
	km, ok := keyMapRegistry[t]
	return km, ok
}

// Reset clears all registrations. Test helper.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	keyMapRegistry = make(map[reflect.Type]KeyMap)
}
