/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package errors defines the error taxonomy shared by the accounts service,
// the access gate and the HTTP boundary.
//
// Every category has a package-level sentinel plus a typed error carrying
// contextual fields. Typed errors implement Is, so callers can match a
// category with errors.Is regardless of which constructor produced it:
//
//	if errors.Is(err, errors.ErrNoResultsFound) { ... }
//
// Translation of categories to HTTP status codes happens in one place, at the
// transport boundary; nothing in this package knows about HTTP.
package errors
