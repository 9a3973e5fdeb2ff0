package dialect

// Names lists the supported dialect selectors, first entry is the default.
var Names = []string{"oracle", "sqlserver", "postgres", "mysql", "snowflake"}

// Get returns the Dialect for a selector string. Unrecognized selectors
// fall back to Oracle, the first-listed dialect.
func Get(name string) Dialect {
	switch name {
	case "sqlserver", "mssql":
		return &MSSQLDialect{}
	case "postgres", "postgresql":
		return &PostgresDialect{}
	case "mysql":
		return &MysqlDialect{}
	case "snowflake":
		return &SnowflakeDialect{}
	default:
		return &OracleDialect{}
	}
}

// Ensure interface implementation
var _ Dialect = (*OracleDialect)(nil)
var _ Dialect = (*MSSQLDialect)(nil)
var _ Dialect = (*PostgresDialect)(nil)
var _ Dialect = (*MysqlDialect)(nil)
var _ Dialect = (*SnowflakeDialect)(nil)
