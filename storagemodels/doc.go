/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package storagemodels holds the storage entities persisted by the document
// store and the Query value the datastore drivers execute. These types are
// transient; only their serialized form lives in the store.
package storagemodels
