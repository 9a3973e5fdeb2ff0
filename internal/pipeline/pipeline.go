// Package pipeline composes the conversion stages: normalize, order,
// derive lineage, synthesize DDL, render the summary.
package pipeline

import (
	"mapdoc/internal/ddl"
	"mapdoc/internal/dialect"
	"mapdoc/internal/lineage"
	"mapdoc/internal/mapping"
	"mapdoc/internal/report"
)

// Options selects the target dialect and carries the branding pass-through.
type Options struct {
	Dialect string
	Brand   report.Brand
}

// Result is everything one conversion produces.
type Result struct {
	Tables  mapping.Tables
	Meta    mapping.Meta
	Dialect dialect.Dialect
	DDL     string
	Summary string
}

// Run converts one mapping document. Like every stage it composes, it is a
// total function: unreadable input comes back as empty tables, a comment
// DDL and a summary full of "(none found)".
func Run(data []byte, opts Options) *Result {
	parsed := mapping.Parse(data)
	parsed.Tables.Connectors = lineage.Order(parsed.Tables.Connectors)
	parsed.Tables.Lineage = lineage.Derive(parsed.Tables.Connectors, parsed.Meta.TargetName)

	d := dialect.Get(opts.Dialect)
	return &Result{
		Tables:  parsed.Tables,
		Meta:    parsed.Meta,
		Dialect: d,
		DDL:     ddl.Build(parsed.Meta, parsed.Tables.TargetFields, d),
		Summary: report.Render(parsed.Meta, &parsed.Tables, opts.Brand),
	}
}
