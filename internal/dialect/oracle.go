package dialect

type OracleDialect struct{}

func (d *OracleDialect) Name() string { return "oracle" }

func (d *OracleDialect) TypeFor(datatype, precision, scale string) string {
	dt := upper(datatype)
	switch {
	case isVarcharFamily(dt):
		return charType("VARCHAR2", precision, 255)
	case isCharFamily(dt):
		return charType("CHAR", precision, 1)
	case isDecimalFamily(dt):
		return decimalType("NUMBER", precision, scale, "NUMBER")
	case isIntegerFamily(dt):
		// Oracle has no native integer storage type; convention is a
		// bounded NUMBER.
		return "NUMBER(10)"
	case dt == "DATE":
		return "DATE"
	case isTimestamp(dt):
		return "TIMESTAMP"
	}
	return "VARCHAR2(255)"
}

func (d *OracleDialect) SupportsAlterConstraint() bool { return true }

func (d *OracleDialect) DriverName() string { return "oracle" }
