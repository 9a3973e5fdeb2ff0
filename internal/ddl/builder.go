// Package ddl synthesizes table-creation scripts from normalized target
// field rows.
package ddl

import (
	"fmt"
	"strings"

	"mapdoc/internal/dialect"
	"mapdoc/internal/mapping"
)

// Build produces the complete creation script for the canonical target.
// An empty field list yields a single explanatory comment naming the
// intended table rather than an empty script.
func Build(meta mapping.Meta, fields []mapping.TargetField, d dialect.Dialect) string {
	tname := meta.TargetName
	if tname == "" {
		tname = mapping.DefaultTargetName
	}
	if len(fields) == 0 {
		return fmt.Sprintf("/* No target found in XML; create your table manually: %s */", tname)
	}

	cols := make([]string, 0, len(fields))
	var pkCols []string
	for _, f := range fields {
		notNull := ""
		if strings.EqualFold(f.Nullable, "NOTNULL") {
			notNull = " NOT NULL"
		}
		cols = append(cols, fmt.Sprintf("  %s %s%s", f.Column, d.TypeFor(f.Datatype, f.Precision, f.Scale), notNull))
		if strings.EqualFold(f.KeyType, "PRIMARY KEY") {
			pkCols = append(pkCols, f.Column)
		}
	}

	lines := []string{
		fmt.Sprintf("CREATE TABLE %s", tname),
		"(",
		strings.Join(cols, ",\n"),
		");",
	}
	if len(pkCols) > 0 {
		pk := strings.Join(pkCols, ", ")
		if d.SupportsAlterConstraint() {
			lines = append(lines, fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT PK_%s PRIMARY KEY (%s);", tname, tname, pk))
		} else {
			lines = append(lines, fmt.Sprintf("-- primary key (%s) not enforced: %s does not support ALTER ... ADD CONSTRAINT", pk, d.Name()))
		}
	}
	return strings.Join(lines, "\n")
}
