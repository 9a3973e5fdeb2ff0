package lineage_test

import (
	"reflect"
	"testing"

	"mapdoc/internal/lineage"
	"mapdoc/internal/mapping"
)

func conn(fromInst, fromType, fromField, toInst, toType, toField string) mapping.Connector {
	return mapping.Connector{
		FromInstance: fromInst, FromType: fromType, FromField: fromField,
		ToInstance: toInst, ToType: toType, ToField: toField,
	}
}

func TestOrder_SourceFirstTargetLast(t *testing.T) {
	in := []mapping.Connector{
		conn("EXP", "Expression", "A", "TGT", "Target Definition", "A"),
		conn("SRC", "Source Definition", "A", "SQ", "Source Qualifier", "A"),
		conn("SQ", "Source Qualifier", "A", "EXP", "Expression", "A"),
	}
	out := lineage.Order(in)
	if out[0].FromType != "Source Definition" {
		t.Errorf("expected source edge first, got %+v", out[0])
	}
	if out[len(out)-1].ToType != "Target Definition" {
		t.Errorf("expected target edge last, got %+v", out[len(out)-1])
	}
}

func TestOrder_UnknownTypeStaysMidRange(t *testing.T) {
	in := []mapping.Connector{
		conn("TGT", "Target Definition", "A", "TGT2", "Target Definition", "A"),
		conn("X", "Mystery Widget", "A", "Y", "Mystery Widget", "A"),
		conn("SRC", "Source Definition", "A", "SQ", "Source Qualifier", "A"),
	}
	out := lineage.Order(in)
	if out[0].FromType != "Source Definition" {
		t.Errorf("unknown type jumped ahead of source: %+v", out[0])
	}
	if out[1].FromType != "Mystery Widget" {
		t.Errorf("expected unknown type in the middle, got %+v", out[1])
	}
	if out[2].FromType != "Target Definition" {
		t.Errorf("unknown type sorted after target: %+v", out[2])
	}
}

func TestOrder_Deterministic(t *testing.T) {
	// Same rank key, distinct fields: the fixed secondary ordering decides.
	in := []mapping.Connector{
		conn("EXP", "Expression", "B", "TGT", "Target Definition", "B"),
		conn("EXP", "Expression", "A", "TGT", "Target Definition", "A"),
	}
	first := lineage.Order(in)
	for i := 0; i < 10; i++ {
		again := lineage.Order(in)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d produced different order", i)
		}
	}
	if first[0].FromField != "A" {
		t.Errorf("expected secondary ordering by field, got %+v", first[0])
	}
}

func TestOrder_StableForIdenticalKeys(t *testing.T) {
	// Fully identical connectors must keep their original relative order;
	// mostly this asserts the sort does not panic or drop duplicates.
	in := []mapping.Connector{
		conn("EXP", "Expression", "A", "TGT", "Target Definition", "A"),
		conn("EXP", "Expression", "A", "TGT", "Target Definition", "A"),
	}
	out := lineage.Order(in)
	if len(out) != 2 {
		t.Fatalf("expected 2 connectors, got %d", len(out))
	}
}

func TestOrder_EmptyInput(t *testing.T) {
	if out := lineage.Order(nil); out != nil {
		t.Errorf("expected nil for empty input, got %v", out)
	}
}

func TestOrder_DoesNotMutateInput(t *testing.T) {
	in := []mapping.Connector{
		conn("TGT", "Target Definition", "A", "X", "Expression", "A"),
		conn("SRC", "Source Definition", "A", "SQ", "Source Qualifier", "A"),
	}
	orig := make([]mapping.Connector, len(in))
	copy(orig, in)
	lineage.Order(in)
	if !reflect.DeepEqual(in, orig) {
		t.Error("Order mutated its input slice")
	}
}

func TestDerive_TargetEdgesOnly(t *testing.T) {
	ordered := []mapping.Connector{
		conn("SRC", "Source Definition", "CUST_ID", "EXP", "Expression", "CUST_ID"),
		conn("EXP", "Expression", "OUT_NAME", "TGT", "Target Definition", "CUST_NAME"),
		conn("EXP", "Expression", "OUT_ID", "TGT", "Target Definition", "CUST_ID"),
	}
	recs := lineage.Derive(ordered, "TGT_CUSTOMERS")
	if len(recs) != 2 {
		t.Fatalf("expected 2 lineage records, got %d", len(recs))
	}
	want := mapping.LineageRecord{
		TargetTable:  "TGT_CUSTOMERS",
		TargetColumn: "CUST_NAME",
		FromInstance: "EXP",
		FromField:    "OUT_NAME",
	}
	if recs[0] != want {
		t.Errorf("unexpected first record: %+v", recs[0])
	}
}

func TestDerive_EmptyInput(t *testing.T) {
	if recs := lineage.Derive(nil, "TGT"); len(recs) != 0 {
		t.Errorf("expected no records, got %v", recs)
	}
}
