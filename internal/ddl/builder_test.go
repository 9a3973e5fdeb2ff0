package ddl_test

import (
	"strings"
	"testing"

	"mapdoc/internal/ddl"
	"mapdoc/internal/dialect"
	"mapdoc/internal/mapping"
)

func TestBuild_CreateWithPrimaryKey(t *testing.T) {
	meta := mapping.Meta{TargetName: "TGT_CUSTOMERS"}
	fields := []mapping.TargetField{
		{Column: "CUST_ID", Datatype: "VARCHAR", Precision: "10", KeyType: "PRIMARY KEY", Nullable: "NOTNULL"},
		{Column: "CUST_NAME", Datatype: "VARCHAR", Precision: "50", KeyType: "NOT A KEY", Nullable: "NULL"},
	}
	got := ddl.Build(meta, fields, dialect.Get("oracle"))

	want := "CREATE TABLE TGT_CUSTOMERS\n" +
		"(\n" +
		"  CUST_ID VARCHAR2(10) NOT NULL,\n" +
		"  CUST_NAME VARCHAR2(50)\n" +
		");\n" +
		"ALTER TABLE TGT_CUSTOMERS ADD CONSTRAINT PK_TGT_CUSTOMERS PRIMARY KEY (CUST_ID);"
	if got != want {
		t.Errorf("unexpected script:\n%s\nwant:\n%s", got, want)
	}
}

func TestBuild_NullabilityAndKeyMarkersCaseInsensitive(t *testing.T) {
	meta := mapping.Meta{TargetName: "T"}
	fields := []mapping.TargetField{
		{Column: "A", Datatype: "NUMBER", Precision: "5", KeyType: "primary key", Nullable: "notnull"},
	}
	got := ddl.Build(meta, fields, dialect.Get("oracle"))
	if !strings.Contains(got, "A NUMBER(5) NOT NULL") {
		t.Errorf("lowercase NOTNULL not honored:\n%s", got)
	}
	if !strings.Contains(got, "PRIMARY KEY (A)") {
		t.Errorf("lowercase key type not honored:\n%s", got)
	}
}

func TestBuild_UnknownNullabilityTreatedAsNullable(t *testing.T) {
	meta := mapping.Meta{TargetName: "T"}
	for _, nullable := range []string{"", "NULL", "YES", "whatever"} {
		fields := []mapping.TargetField{{Column: "A", Datatype: "VARCHAR", Precision: "5", Nullable: nullable}}
		got := ddl.Build(meta, fields, dialect.Get("oracle"))
		if strings.Contains(got, "NOT NULL") {
			t.Errorf("nullable %q produced NOT NULL:\n%s", nullable, got)
		}
	}
}

func TestBuild_EmptyTargetYieldsComment(t *testing.T) {
	got := ddl.Build(mapping.Meta{TargetName: "TGT_X"}, nil, dialect.Get("oracle"))
	if !strings.HasPrefix(got, "/*") || !strings.Contains(got, "TGT_X") {
		t.Errorf("expected explanatory comment naming the table, got %q", got)
	}

	// Missing target name falls back to the sentinel.
	got = ddl.Build(mapping.Meta{}, nil, dialect.Get("oracle"))
	if !strings.Contains(got, mapping.DefaultTargetName) {
		t.Errorf("expected sentinel table name, got %q", got)
	}
}

func TestBuild_PrimaryKeyOrderFollowsTableOrder(t *testing.T) {
	meta := mapping.Meta{TargetName: "T"}
	fields := []mapping.TargetField{
		{Column: "B", Datatype: "VARCHAR", Precision: "5", KeyType: "PRIMARY KEY"},
		{Column: "C", Datatype: "VARCHAR", Precision: "5"},
		{Column: "A", Datatype: "VARCHAR", Precision: "5", KeyType: "PRIMARY KEY"},
	}
	got := ddl.Build(meta, fields, dialect.Get("postgres"))
	if !strings.Contains(got, "PRIMARY KEY (B, A)") {
		t.Errorf("pk columns not in table order:\n%s", got)
	}
}
