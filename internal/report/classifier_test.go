package report_test

import (
	"strings"
	"testing"

	"mapdoc/internal/mapping"
	"mapdoc/internal/report"
)

func row(tname, port, expr string) mapping.TransformField {
	return mapping.TransformField{Transformation: tname, PortName: port, Expression: expr}
}

func TestClassify_FirstMatchWins(t *testing.T) {
	// Trim precedes Uppercase in the bank, so a combined expression is
	// labeled as a trim only.
	rows := []mapping.TransformField{row("EXP", "OUT_NAME", "UPPER(TRIM(CUST_NAME))")}
	lines := report.Classify(rows, 10)
	if len(lines) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Trim:") {
		t.Errorf("expected Trim label, got %q", lines[0])
	}
	if strings.Contains(lines[0], "Uppercase") {
		t.Errorf("expression labeled twice: %q", lines[0])
	}
}

func TestClassify_FindingFormat(t *testing.T) {
	rows := []mapping.TransformField{row("EXP_CLEAN", "OUT_ID", "IIF(ISNULL(ID), -1, ID)")}
	lines := report.Classify(rows, 10)
	if len(lines) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(lines))
	}
	want := "Null check: EXP_CLEAN.OUT_ID → IIF(ISNULL(ID), -1, ID)"
	if lines[0] != want {
		t.Errorf("got %q, want %q", lines[0], want)
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	rows := []mapping.TransformField{row("E", "P", "to_date(d, 'YYYY-MM-DD')")}
	lines := report.Classify(rows, 10)
	if len(lines) != 1 || !strings.HasPrefix(lines[0], "To Date:") {
		t.Errorf("lowercase function not matched: %v", lines)
	}
}

func TestClassify_CapHaltsScan(t *testing.T) {
	var rows []mapping.TransformField
	for i := 0; i < 10; i++ {
		rows = append(rows, row("E", "P", "TRIM(X)"))
	}
	lines := report.Classify(rows, 3)
	if len(lines) != 3 {
		t.Errorf("expected 3 findings, got %d", len(lines))
	}
}

func TestClassify_UnmatchedAndEmptySkipped(t *testing.T) {
	rows := []mapping.TransformField{
		row("E", "P1", ""),
		row("E", "P2", "PLAIN_PORT_REFERENCE"),
		row("E", "P3", "TRIM(X)"),
	}
	lines := report.Classify(rows, 10)
	if len(lines) != 1 {
		t.Fatalf("expected 1 finding, got %d: %v", len(lines), lines)
	}
	if !strings.Contains(lines[0], "P3") {
		t.Errorf("wrong row matched: %q", lines[0])
	}
}

func TestClassify_LongExpressionTruncated(t *testing.T) {
	expr := "TRIM(" + strings.Repeat("A", 200) + ")"
	lines := report.Classify([]mapping.TransformField{row("E", "P", expr)}, 10)
	if len(lines) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(lines))
	}
	if !strings.HasSuffix(lines[0], "...") {
		t.Errorf("expected trailing ellipsis: %q", lines[0])
	}
	if strings.Contains(lines[0], expr) {
		t.Error("expression was not truncated")
	}
}

func TestClassify_DefaultNames(t *testing.T) {
	lines := report.Classify([]mapping.TransformField{row("", "", "TRIM(X)")}, 10)
	if len(lines) != 1 || !strings.Contains(lines[0], "Transformation.Port") {
		t.Errorf("expected default names, got %v", lines)
	}
}

func TestClassify_ConcatenationOperator(t *testing.T) {
	lines := report.Classify([]mapping.TransformField{row("E", "P", "FIRST || ' ' || LAST")}, 10)
	if len(lines) != 1 || !strings.HasPrefix(lines[0], "Concatenation:") {
		t.Errorf("|| operator not detected: %v", lines)
	}
}
