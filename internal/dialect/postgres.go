package dialect

type PostgresDialect struct{}

func (d *PostgresDialect) Name() string { return "postgres" }

func (d *PostgresDialect) TypeFor(datatype, precision, scale string) string {
	dt := upper(datatype)
	switch {
	case isVarcharFamily(dt):
		return charType("VARCHAR", precision, 255)
	case isCharFamily(dt):
		return charType("CHAR", precision, 1)
	case isDecimalFamily(dt):
		return decimalType("NUMERIC", precision, scale, "NUMERIC")
	case isIntegerFamily(dt):
		return "INTEGER"
	case dt == "DATE":
		return "DATE"
	case isTimestamp(dt):
		return "TIMESTAMP"
	}
	return "VARCHAR(255)"
}

func (d *PostgresDialect) SupportsAlterConstraint() bool { return true }

func (d *PostgresDialect) DriverName() string { return "postgres" }
