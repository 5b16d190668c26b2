// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"strconv"
	"strings"
)

// Filter appends optional equality predicates to a base SELECT. Values are
// always bound as numbered parameters; a predicate is only added when its
// value is non-empty.
type Filter struct {
	base    string
	clauses []string
	args    []any
	orderBy string
}

// NewFilter starts a filter over base, which must not contain a WHERE clause.
func NewFilter(base string) *Filter {
	return &Filter{base: base}
}

// Equal adds "column = $N" when value is not empty.
func (f *Filter) Equal(column, value string) *Filter {
	if value == "" {
		return f
	}
	f.args = append(f.args, value)
	f.clauses = append(f.clauses, column+" = $"+strconv.Itoa(len(f.args)))
	return f
}

// OrderBy sets the ORDER BY expression.
func (f *Filter) OrderBy(expr string) *Filter {
	f.orderBy = expr
	return f
}

// Build returns the statement and its arguments in placeholder order.
func (f *Filter) Build() (string, []any) {
	var b strings.Builder
	b.WriteString(strings.TrimRight(f.base, " \t\n"))
	if len(f.clauses) > 0 {
		b.WriteString("\nWHERE ")
		b.WriteString(strings.Join(f.clauses, " AND "))
	}
	if f.orderBy != "" {
		b.WriteString("\nORDER BY ")
		b.WriteString(f.orderBy)
	}

	args := make([]any, len(f.args))
	copy(args, f.args)
	return b.String(), args
}
