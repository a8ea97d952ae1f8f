/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package accounts implements the account resource: wire models, the query
// builder for filtered searches, and the service enforcing validation and
// business invariants (uniqueness on create, partial update semantics).
//
// The create-time conflict check is read-then-write and therefore not
// atomic; concurrent creates of the same account can both pass it, and the
// store resolves the race last-writer-wins on the shared id. The id acting
// as the store's logical primary key keeps this from corrupting documents.
package accounts
