/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"fmt"
	"strings"
)

// WhereParam is a single named query parameter. Parameters are carried as an
// ordered slice rather than a map so the rendered statement is deterministic
// and comparable in tests.
type WhereParam struct {
	Name  string
	Value string
}

// Query describes a parameterized search against a document container.
//
// QueryStr is written in the service's document-SQL dialect, for example:
//
//	SELECT * FROM accounts WHERE accounts.account_type = @account_type OFFSET 0 LIMIT 10
//
// Literal values never appear in QueryStr; every value is carried in
// WhereParams and referenced by an @name placeholder. QueryStr must reference
// every placeholder present in WhereParams.
type Query struct {
	QueryStr             string
	WhereParams          []WhereParam
	EnableCrossPartition bool
}

// NewQuery constructs a Query with cross-partition execution enabled, which
// is the right default for containers partitioned on the natural id.
func NewQuery(queryStr string, whereParams []WhereParam) (*Query, error) {
	if strings.TrimSpace(queryStr) == "" {
		return nil, fmt.Errorf("queryStr must be defined")
	}

	q := &Query{
		QueryStr:             queryStr,
		WhereParams:          whereParams,
		EnableCrossPartition: true,
	}
	if err := q.validateParams(); err != nil {
		return nil, err
	}
	return q, nil
}

// Param returns the value for a placeholder name and whether it is present.
func (q *Query) Param(name string) (string, bool) {
	for _, p := range q.WhereParams {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// validateParams enforces the invariant that the statement references every
// parameter it is handed.
func (q *Query) validateParams() error {
	for _, p := range q.WhereParams {
		if !strings.Contains(q.QueryStr, p.Name) {
			return fmt.Errorf("query string does not reference parameter %q", p.Name)
		}
	}
	return nil
}

// String renders the query for logging. Parameter values are included; they
// are search filters, not secrets.
func (q *Query) String() string {
	var b strings.Builder
	b.WriteString("'queryStr': '")
	b.WriteString(q.QueryStr)
	b.WriteString("' | 'whereParams': ")
	if len(q.WhereParams) == 0 {
		b.WriteString("none")
	} else {
		for i, p := range q.WhereParams {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%q", p.Name, p.Value)
		}
	}
	fmt.Fprintf(&b, " | 'enableCrossPartition': %t", q.EnableCrossPartition)
	return b.String()
}
