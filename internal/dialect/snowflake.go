package dialect

type SnowflakeDialect struct{}

func (d *SnowflakeDialect) Name() string { return "snowflake" }

func (d *SnowflakeDialect) TypeFor(datatype, precision, scale string) string {
	dt := upper(datatype)
	switch {
	case isVarcharFamily(dt):
		return charType("VARCHAR", precision, 255)
	case isCharFamily(dt):
		return charType("CHAR", precision, 1)
	case isDecimalFamily(dt):
		return decimalType("NUMBER", precision, scale, "NUMBER(38,0)")
	case isIntegerFamily(dt):
		return "NUMBER(38,0)"
	case dt == "DATE":
		return "DATE"
	case isTimestamp(dt):
		// Warehouse loads are wall-clock; the no-timezone variant avoids
		// surprise session-timezone shifts.
		return "TIMESTAMP_NTZ"
	}
	return "VARCHAR(255)"
}

// Snowflake accepts the ALTER form even though primary keys are
// informational only.
func (d *SnowflakeDialect) SupportsAlterConstraint() bool { return true }

// No Snowflake driver ships with the tool; deploy refuses this dialect.
func (d *SnowflakeDialect) DriverName() string { return "" }
