package dialect

type MSSQLDialect struct{}

func (d *MSSQLDialect) Name() string { return "sqlserver" }

func (d *MSSQLDialect) TypeFor(datatype, precision, scale string) string {
	dt := upper(datatype)
	switch {
	case isVarcharFamily(dt):
		return charType("NVARCHAR", precision, 255)
	case isCharFamily(dt):
		return charType("NCHAR", precision, 1)
	case isDecimalFamily(dt):
		return decimalType("DECIMAL", precision, scale, "DECIMAL(18,0)")
	case isIntegerFamily(dt):
		return "INT"
	case dt == "DATE":
		return "DATE"
	case isTimestamp(dt):
		return "DATETIME2"
	}
	return "NVARCHAR(255)"
}

func (d *MSSQLDialect) SupportsAlterConstraint() bool { return true }

func (d *MSSQLDialect) DriverName() string { return "sqlserver" }
