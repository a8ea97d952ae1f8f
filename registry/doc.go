/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package registry maps entity types to their container key schemas. The
// DynamoDB driver consults it when persisting entities and when building
// point-lookup keys, keeping key layout out of the resource services.
package registry
