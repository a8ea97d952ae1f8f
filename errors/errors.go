/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrInvalidParameter is returned when caller-supplied input fails validation
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrNoResultsFound is returned when a lookup or query legitimately returns nothing
	ErrNoResultsFound = errors.New("no results found")

	// ErrObjectConflict is returned when a create targets an id that already exists
	ErrObjectConflict = errors.New("object already exists")

	// ErrUnauthorized is returned when an authenticated subject has no matching user record
	ErrUnauthorized = errors.New("unauthorized")

	// ErrTokenProcessing is returned when a bearer token cannot be parsed, verified or decoded
	ErrTokenProcessing = errors.New("token cannot be processed")
)

// InvalidParameterError represents a caller-supplied input that failed a
// syntactic or semantic check.
type InvalidParameterError struct {
	Param   string
	Message string
}

func (e *InvalidParameterError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("parameter %q is invalid: %s", e.Param, e.Message)
	}
	return fmt.Sprintf("invalid parameter: %s", e.Message)
}

func (e *InvalidParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

// NoResultsFoundError represents a lookup or query that returned nothing.
type NoResultsFoundError struct {
	Type string
	Key  string
}

func (e *NoResultsFoundError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("no %s found for key %q", e.Type, e.Key)
	}
	return fmt.Sprintf("no %s found for the given search parameters", e.Type)
}

func (e *NoResultsFoundError) Is(target error) bool {
	return target == ErrNoResultsFound
}

// ObjectConflictError represents a create request targeting an id that
// already exists in the store.
type ObjectConflictError struct {
	Type string
	Key  string
}

func (e *ObjectConflictError) Error() string {
	return fmt.Sprintf("%s with key %q already exists", e.Type, e.Key)
}

func (e *ObjectConflictError) Is(target error) bool {
	return target == ErrObjectConflict
}

// UnauthorizedError represents a subject with no corresponding active user record.
type UnauthorizedError struct {
	Subject string
}

func (e *UnauthorizedError) Error() string {
	if e.Subject != "" {
		return fmt.Sprintf("subject %q is not authorized", e.Subject)
	}
	return "subject is not authorized"
}

func (e *UnauthorizedError) Is(target error) bool {
	return target == ErrUnauthorized
}

// TokenProcessingError represents a bearer token that is missing, malformed,
// expired or fails signature verification. It wraps the underlying decode error.
type TokenProcessingError struct {
	Reason string
	Err    error
}

func (e *TokenProcessingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("token cannot be processed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("token cannot be processed: %s", e.Reason)
}

func (e *TokenProcessingError) Is(target error) bool {
	return target == ErrTokenProcessing
}

func (e *TokenProcessingError) Unwrap() error {
	return e.Err
}

// Helper functions for creating errors

// NewInvalidParameterError creates a new InvalidParameterError
func NewInvalidParameterError(param, message string) error {
	return &InvalidParameterError{Param: param, Message: message}
}

// NewNoResultsFoundError creates a new NoResultsFoundError
func NewNoResultsFoundError(entityType, key string) error {
	return &NoResultsFoundError{Type: entityType, Key: key}
}

// NewObjectConflictError creates a new ObjectConflictError
func NewObjectConflictError(entityType, key string) error {
	return &ObjectConflictError{Type: entityType, Key: key}
}

// NewUnauthorizedError creates a new UnauthorizedError
func NewUnauthorizedError(subject string) error {
	return &UnauthorizedError{Subject: subject}
}

// NewTokenProcessingError creates a new TokenProcessingError
func NewTokenProcessingError(reason string, err error) error {
	return &TokenProcessingError{Reason: reason, Err: err}
}

// IsInvalidParameter checks if an error is an invalid parameter error
func IsInvalidParameter(err error) bool {
	return errors.Is(err, ErrInvalidParameter)
}

// IsNoResultsFound checks if an error is a no results found error
func IsNoResultsFound(err error) bool {
	return errors.Is(err, ErrNoResultsFound)
}

// IsObjectConflict checks if an error is an object conflict error
func IsObjectConflict(err error) bool {
	return errors.Is(err, ErrObjectConflict)
}

// IsUnauthorized checks if an error is an unauthorized error
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsTokenProcessing checks if an error is a token processing error
func IsTokenProcessing(err error) bool {
	return errors.Is(err, ErrTokenProcessing)
}
