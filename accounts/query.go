/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package accounts

import (
	"fmt"
	"strings"

	"github.com/suparena/financeapi/storagemodels"
)

// queryBuilder translates the soft search filters plus pagination into a
// parameterized Query. Predicates join conjunctively; absent filters
// contribute nothing. Values only ever travel as @name parameters, never
// spliced into the statement.
type queryBuilder struct {
	container string
	// maxPageSize caps results_per_page and, under legacyOffsets, scales
	// the page offset the way the previous service did.
	maxPageSize   int
	legacyOffsets bool
}

// filter is one predicate contribution: a clause referencing a placeholder
// and the placeholder's value.
type filter struct {
	clause string
	param  storagemodels.WhereParam
}

// Build produces the query for the given soft filters and page window.
// Parameters appear in a fixed field order so the emitted statement is
// deterministic.
func (b *queryBuilder) Build(p GetParams) (*storagemodels.Query, error) {
	var filters []filter

	if p.AccountName != "" {
		filters = append(filters, filter{
			clause: fmt.Sprintf("%s.account_name LIKE @account_name", b.container),
			param:  storagemodels.WhereParam{Name: "@account_name", Value: "%" + p.AccountName + "%"},
		})
	}
	if p.AccountType != "" {
		filters = append(filters, filter{
			clause: fmt.Sprintf("%s.account_type = @account_type", b.container),
			param:  storagemodels.WhereParam{Name: "@account_type", Value: p.AccountType},
		})
	}
	if p.AccountInstitution != "" {
		filters = append(filters, filter{
			clause: fmt.Sprintf("%s.account_institution = @account_institution", b.container),
			param:  storagemodels.WhereParam{Name: "@account_institution", Value: p.AccountInstitution},
		})
	}
	if p.Balance != "" {
		// Equality against the stored 2dp string representation.
		filters = append(filters, filter{
			clause: fmt.Sprintf("%s.balance = @balance", b.container),
			param:  storagemodels.WhereParam{Name: "@balance", Value: p.Balance},
		})
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT * FROM %s", b.container)

	params := make([]storagemodels.WhereParam, 0, len(filters))
	for i, f := range filters {
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		sb.WriteString(f.clause)
		params = append(params, f.param)
	}

	fmt.Fprintf(&sb, " OFFSET %d LIMIT %d", b.offset(p), p.ResultsPerPage)

	return storagemodels.NewQuery(sb.String(), params)
}

// offset computes the page offset. The historical behavior scaled by the
// configured maximum page size rather than the caller's page size, which
// breaks sequential paging whenever the two differ; it survives behind the
// legacy flag for compatibility with stored clients of the old service.
func (b *queryBuilder) offset(p GetParams) int {
	if b.legacyOffsets {
		return (p.Page - 1) * b.maxPageSize
	}
	return (p.Page - 1) * p.ResultsPerPage
}
