/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package ddb implements the DataStore interface on AWS DynamoDB. Point
// lookups use GetItem against the registered key schema; searches are
// translated from the service's named-parameter dialect into PartiQL and
// executed via ExecuteStatement.
package ddb
