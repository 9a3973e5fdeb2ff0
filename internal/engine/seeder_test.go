package engine_test

import (
	"strconv"
	"strings"
	"testing"

	"mapdoc/internal/engine"
	"mapdoc/internal/mapping"
)

func TestSampleValue_CharRespectsPrecision(t *testing.T) {
	f := mapping.TargetField{Column: "CUST_CD", Datatype: "VARCHAR", Precision: "5"}
	for i := 0; i < 20; i++ {
		v := engine.SampleValue(f)
		if !strings.HasPrefix(v, "'") || !strings.HasSuffix(v, "'") {
			t.Fatalf("char value not quoted: %s", v)
		}
		inner := strings.TrimSuffix(strings.TrimPrefix(v, "'"), "'")
		if len([]rune(inner)) > 5 {
			t.Errorf("value %q exceeds precision 5", inner)
		}
	}
}

func TestSampleValue_IntegerBoundedByPrecision(t *testing.T) {
	f := mapping.TargetField{Column: "QTY", Datatype: "INTEGER", Precision: "2"}
	for i := 0; i < 20; i++ {
		v := engine.SampleValue(f)
		n, err := strconv.Atoi(v)
		if err != nil {
			t.Fatalf("integer value not numeric: %s", v)
		}
		if n < 1 || n > 99 {
			t.Errorf("value %d outside 2-digit bound", n)
		}
	}
}

func TestSampleValue_DateFormats(t *testing.T) {
	d := engine.SampleValue(mapping.TargetField{Column: "LOAD_DT", Datatype: "DATE"})
	if len(d) != len("'2006-01-02'") {
		t.Errorf("unexpected DATE literal: %s", d)
	}
	ts := engine.SampleValue(mapping.TargetField{Column: "LOAD_TS", Datatype: "TIMESTAMP"})
	if len(ts) != len("'2006-01-02 15:04:05'") {
		t.Errorf("unexpected TIMESTAMP literal: %s", ts)
	}
}

func TestBuildInsertScript(t *testing.T) {
	meta := mapping.Meta{TargetName: "TGT_CUSTOMERS"}
	fields := []mapping.TargetField{
		{Column: "CUST_ID", Datatype: "NUMBER", Precision: "10"},
		{Column: "CUST_EMAIL", Datatype: "VARCHAR", Precision: "50"},
	}

	calls := 0
	script := engine.BuildInsertScript(meta, fields, 5, func() { calls++ })
	if calls != 5 {
		t.Errorf("expected 5 progress calls, got %d", calls)
	}

	lines := strings.Split(strings.TrimSpace(script), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 statements, got %d", len(lines))
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "INSERT INTO TGT_CUSTOMERS (CUST_ID, CUST_EMAIL) VALUES (") {
			t.Errorf("unexpected statement: %s", line)
		}
		if !strings.HasSuffix(line, ");") {
			t.Errorf("statement not terminated: %s", line)
		}
	}
}

func TestBuildInsertScript_NoTarget(t *testing.T) {
	script := engine.BuildInsertScript(mapping.Meta{}, nil, 5, nil)
	if !strings.HasPrefix(script, "/*") || !strings.Contains(script, mapping.DefaultTargetName) {
		t.Errorf("expected explanatory comment, got %q", script)
	}
}

func TestSplitStatements(t *testing.T) {
	script := "CREATE TABLE T\n(\n  A NUMBER\n);\nALTER TABLE T ADD CONSTRAINT PK_T PRIMARY KEY (A);\n"
	stmts := engine.SplitStatements(script)
	if len(stmts) != 2 {
		t.Fatalf("expected 2 statements, got %d: %v", len(stmts), stmts)
	}
	if !strings.HasPrefix(stmts[0], "CREATE TABLE") || !strings.HasPrefix(stmts[1], "ALTER TABLE") {
		t.Errorf("unexpected statements: %v", stmts)
	}
}

func TestSplitStatements_CommentOnlyScript(t *testing.T) {
	script := "/* No target found in XML; create your table manually: TARGET_TABLE */"
	if stmts := engine.SplitStatements(script); len(stmts) != 0 {
		t.Errorf("comment-only script produced statements: %v", stmts)
	}
}
