/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package entity derives and validates the composite document ids used as
// store keys. An id is "{collection}::{normalized natural id}", where
// normalization strips all whitespace and lower-cases the natural id, so the
// same logical account always maps to the same document.
package entity

import (
	"strings"

	"github.com/suparena/financeapi/errors"
)

// Separator joins the collection name and the normalized natural id.
const Separator = "::"

// Collection names for the entity kinds this service stores.
const (
	AccountCollection = "account"
	UserCollection    = "user"
)

// DeriveID builds the composite document id for a natural id within a
// collection. The natural id must contain at least one non-whitespace
// character; the derived id is deterministic for any casing or spacing of
// the same natural id.
func DeriveID(collection, naturalID string) (string, error) {
	if strings.TrimSpace(naturalID) == "" {
		return "", errors.NewInvalidParameterError("id", "identifier must be defined (did you pass only spaces?)")
	}

	normalized := strings.ToLower(strings.Join(strings.Fields(naturalID), ""))
	return collection + Separator + normalized, nil
}

// ValidateID checks that a caller-supplied id is well formed for the given
// collection. Malformed ids are rejected as invalid input rather than being
// passed through to the store.
func ValidateID(collection, id string) error {
	prefix := collection + Separator
	if !strings.HasPrefix(id, prefix) || len(id) == len(prefix) {
		return errors.NewInvalidParameterError("id", "id must be of the form '"+prefix+"<identifier>'")
	}
	return nil
}

// PartitionKey returns the portion of a composite id after the separator,
// which the store uses to route point lookups.
func PartitionKey(id string) string {
	if i := strings.Index(id, Separator); i >= 0 {
		return id[i+len(Separator):]
	}
	return id
}
