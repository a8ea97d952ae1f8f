/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package datastore defines the generic DataStore interface the resource
// services are written against. Subpackage ddb implements it on DynamoDB;
// subpackage mock provides an in-memory implementation for tests.
package datastore
