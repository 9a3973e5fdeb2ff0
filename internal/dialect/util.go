package dialect

import (
	"fmt"
	"strings"
)

// IsDigits reports whether s is non-empty and composed entirely of decimal
// digits. This is the only form of precision/scale the mapper trusts;
// everything else counts as absent.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// charType formats a bounded character type, falling back to defWidth when
// the precision is absent or not a digit string.
func charType(kind, precision string, defWidth int) string {
	if IsDigits(precision) {
		return fmt.Sprintf("%s(%s)", kind, precision)
	}
	return fmt.Sprintf("%s(%d)", kind, defWidth)
}

// decimalType formats a decimal type: (p,s) when both are valid, (p) when
// only precision is, otherwise the dialect's unparameterized fallback.
func decimalType(kind, precision, scale, fallback string) string {
	if !IsDigits(precision) {
		return fallback
	}
	if IsDigits(scale) {
		return fmt.Sprintf("%s(%s,%s)", kind, precision, scale)
	}
	return fmt.Sprintf("%s(%s)", kind, precision)
}

// Datatype family predicates, shared across dialects. The vocabulary is the
// one PowerCenter exports use in SOURCEFIELD/TARGETFIELD DATATYPE attributes.

func isVarcharFamily(dt string) bool {
	switch dt {
	case "VARCHAR", "VARCHAR2", "NVARCHAR", "NVARCHAR2", "STRING", "TEXT":
		return true
	}
	return false
}

func isCharFamily(dt string) bool {
	return dt == "CHAR" || dt == "NCHAR"
}

func isDecimalFamily(dt string) bool {
	switch dt {
	case "NUMBER", "DECIMAL", "NUMERIC", "DOUBLE", "FLOAT", "REAL", "MONEY":
		return true
	}
	return false
}

func isIntegerFamily(dt string) bool {
	switch dt {
	case "INTEGER", "INT", "SMALLINT", "TINYINT", "BIGINT":
		return true
	}
	return false
}

func isTimestamp(dt string) bool {
	return strings.HasPrefix(dt, "TIMESTAMP") || dt == "DATETIME" || dt == "DATE/TIME"
}

func upper(datatype string) string {
	return strings.ToUpper(strings.TrimSpace(datatype))
}
