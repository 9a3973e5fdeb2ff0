package dialect

type MysqlDialect struct{}

func (d *MysqlDialect) Name() string { return "mysql" }

func (d *MysqlDialect) TypeFor(datatype, precision, scale string) string {
	dt := upper(datatype)
	switch {
	case isVarcharFamily(dt):
		return charType("VARCHAR", precision, 255)
	case isCharFamily(dt):
		return charType("CHAR", precision, 1)
	case isDecimalFamily(dt):
		return decimalType("DECIMAL", precision, scale, "DECIMAL(10,0)")
	case isIntegerFamily(dt):
		return "INT"
	case dt == "DATE":
		return "DATE"
	case isTimestamp(dt):
		// MySQL TIMESTAMP tops out at 2038; DATETIME is the safe default.
		return "DATETIME"
	}
	return "VARCHAR(255)"
}

func (d *MysqlDialect) SupportsAlterConstraint() bool { return true }

func (d *MysqlDialect) DriverName() string { return "mysql" }
