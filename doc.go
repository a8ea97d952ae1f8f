/*
Package financeapi is a finance account service exposing CRUD operations over
bearer-token-authenticated HTTP, backed by a document store.

The service is organized in layers:
  - httpd: router, middleware and the error-to-status mapping
  - accounts: resource validation, query building and persistence flow
  - auth: token issue/decode and the registered-user gate
  - datastore: the generic DataStore interface with DynamoDB and mock
    implementations
  - entity/storagemodels/registry: identity derivation, stored models and
    the per-type key schema registry

Account records are addressed by a derived identity of the form
"account::{normalized id}", where normalization strips whitespace and
lowercases the natural id. The portion after the separator doubles as the
partition key.

Key Features:
  - Type-safe storage operations using Go generics
  - Named-parameter query dialect translated to PartiQL at the driver
  - Semantic error types mapped to HTTP status codes in one place
  - Seedable mock datastore for testing every layer above the driver

Basic Usage:

	store, _ := ddb.New[storagemodels.Account](client, "finance.accounts")
	svc := accounts.NewService(store, cfg, log)
	result, err := svc.Get(ctx, accounts.GetParams{AccountID: "1234", Page: 1, ResultsPerPage: 10})
*/
package financeapi
