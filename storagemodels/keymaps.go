/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"fmt"
	"sync"

	"github.com/suparena/financeapi/entity"
	"github.com/suparena/financeapi/registry"
)

var registerOnce sync.Once

// RegisterKeyMaps registers the key schemas for every entity kind this
// service stores. Both containers key documents by composite id plus the
// partition key embedded in it. Safe to call more than once.
func RegisterKeyMaps() {
	registerOnce.Do(func() {
		registry.Register[Account](registry.KeyMap{
			IDAttr:        "id",
			PartitionAttr: "partition_key",
			Key: func(e any) (string, string, error) {
				a, ok := e.(Account)
				if !ok {
					return "", "", fmt.Errorf("expected storagemodels.Account, got %T", e)
				}
				return a.ID, entity.PartitionKey(a.ID), nil
			},
		})

		registry.Register[User](registry.KeyMap{
			IDAttr:        "id",
			PartitionAttr: "partition_key",
			Key: func(e any) (string, string, error) {
				u, ok := e.(User)
				if !ok {
					return "", "", fmt.Errorf("expected storagemodels.User, got %T", e)
				}
				return u.ID, entity.PartitionKey(u.ID), nil
			},
		})
	})
}
