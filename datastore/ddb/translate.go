/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/financeapi/storagemodels"
)

// The services emit queries in a small document-SQL dialect: a container
// alias qualifies attributes, values are @name placeholders, and windowing
// is a trailing OFFSET/LIMIT pair. PartiQL wants bare quoted attributes,
// positional parameters and no OFFSET clause, so the driver rewrites the
// statement and applies the window over the paged result set.

var (
	offsetLimitPattern = regexp.MustCompile(`\s+OFFSET\s+(\d+)\s+LIMIT\s+(\d+)\s*$`)
	fromPattern        = regexp.MustCompile(`\bFROM\s+(\w+)`)
	predicatePattern   = regexp.MustCompile(`(\w+)\.(\w+)\s+(LIKE|=)\s*@(\w+)`)
	placeholderPattern = regexp.MustCompile(`@\w+`)
)

// translated is the PartiQL form of a dialect query.
type translated struct {
	statement string
	params    []types.AttributeValue
	offset    int
	limit     int
}

// translate rewrites a dialect query against the given table into PartiQL.
// It fails if a placeholder has no value, a supplied parameter goes unused,
// or a predicate survives that the rewrite does not understand.
func translate(q *storagemodels.Query, table string) (*translated, error) {
	stmt := q.QueryStr

	out := &translated{}
	if m := offsetLimitPattern.FindStringSubmatch(stmt); m != nil {
		out.offset, _ = strconv.Atoi(m[1])
		out.limit, _ = strconv.Atoi(m[2])
		stmt = offsetLimitPattern.ReplaceAllString(stmt, "")
	}

	fm := fromPattern.FindStringSubmatch(stmt)
	if fm == nil {
		return nil, fmt.Errorf("statement has no FROM clause: %q", q.QueryStr)
	}
	alias := fm[1]
	stmt = fromPattern.ReplaceAllString(stmt, `FROM "`+table+`"`)

	used := make(map[string]bool, len(q.WhereParams))
	var translateErr error
	stmt = predicatePattern.ReplaceAllStringFunc(stmt, func(match string) string {
		m := predicatePattern.FindStringSubmatch(match)
		if m[1] != alias {
			translateErr = fmt.Errorf("predicate references unknown alias %q", m[1])
			return match
		}

		name := "@" + m[4]
		value, ok := q.Param(name)
		if !ok {
			translateErr = fmt.Errorf("no value supplied for placeholder %q", name)
			return match
		}
		used[name] = true

		if m[3] == "LIKE" {
			// The dialect carries a %-wrapped contains value; PartiQL
			// expresses the same predicate with contains().
			out.params = append(out.params, &types.AttributeValueMemberS{
				Value: strings.Trim(value, "%"),
			})
			return fmt.Sprintf("contains(%q, ?)", m[2])
		}

		out.params = append(out.params, &types.AttributeValueMemberS{Value: value})
		return fmt.Sprintf("%q = ?", m[2])
	})
	if translateErr != nil {
		return nil, translateErr
	}

	if left := placeholderPattern.FindString(stmt); left != "" {
		return nil, fmt.Errorf("unsupported predicate around placeholder %q", left)
	}
	for _, p := range q.WhereParams {
		if !used[p.Name] {
			return nil, fmt.Errorf("parameter %q is not referenced by the statement", p.Name)
		}
	}

	out.statement = stmt
	return out, nil
}
