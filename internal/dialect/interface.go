package dialect

// Dialect abstracts one target database's type vocabulary and DDL
// capabilities. Implementations are pure lookup/formatting, no state.
type Dialect interface {
	// Name is the canonical dialect selector string ("oracle", "mysql", ...).
	Name() string

	// TypeFor maps a PowerCenter field datatype plus its precision/scale
	// strings to this dialect's column type literal. Precision and scale
	// count as present only when entirely decimal digits; anything else
	// (blank, non-numeric, null markers) falls back to dialect defaults.
	// An unrecognized datatype maps to the dialect's default bounded
	// character type.
	TypeFor(datatype, precision, scale string) string

	// SupportsAlterConstraint reports whether the dialect accepts
	// ALTER TABLE ... ADD CONSTRAINT ... PRIMARY KEY. Dialects that do not
	// get their primary key emitted as a comment instead.
	SupportsAlterConstraint() bool

	// DriverName is the database/sql driver registered for this dialect,
	// or "" when no driver ships with the tool.
	DriverName() string
}
