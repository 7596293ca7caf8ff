// Package query builds parameterized Postgres SELECT statements from a
// projection of Go field names onto table columns.
package query

import (
	"fmt"
	"strings"
)

// ProjectionMap maps field names to qualified columns of one table.
type ProjectionMap struct {
	schema  string
	table   string
	alias   string
	fields  []string
	columns map[string]string
}

// NewProjectionMap starts a projection over schema.table aliased as alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema:  schema,
		table:   table,
		alias:   alias,
		columns: make(map[string]string),
	}
}

// Project maps field to column and adds it to the select list.
func (p *ProjectionMap) Project(column, field string) *ProjectionMap {
	if _, ok := p.columns[field]; !ok {
		p.fields = append(p.fields, field)
	}
	p.columns[field] = p.alias + "." + column
	return p
}

// Table returns the FROM clause target.
func (p *ProjectionMap) Table() string {
	return fmt.Sprintf("%s.%s %s", p.schema, p.table, p.alias)
}

// Column returns the qualified column for field. Unknown fields panic.
func (p *ProjectionMap) Column(field string) string {
	col, ok := p.columns[field]
	if !ok {
		panic(fmt.Sprintf("query: field %q not projected on %s", field, p.table))
	}
	return col
}

// Columns returns the select list in projection order.
func (p *ProjectionMap) Columns() string {
	cols := make([]string, len(p.fields))
	for i, f := range p.fields {
		cols[i] = p.columns[f]
	}
	return strings.Join(cols, ", ")
}
