// Package lineage orders data-flow edges into a report-friendly
// source → transform → target sequence and derives column-level lineage
// for the canonical target.
package lineage

import (
	"sort"

	"mapdoc/internal/mapping"
)

// targetDefinition is the instance type marking a mapping target endpoint.
const targetDefinition = "Target Definition"

// defaultRank is assigned to instance types missing from typeRank, so an
// unrecognized transform sorts between the known transforms rather than
// jumping to the front or the back.
const defaultRank = 50

// typeRank approximates each instance type's position in a left-to-right
// data flow. Ranks are spread apart on purpose: new transform types land
// between source and target without touching the sort itself.
var typeRank = map[string]int{
	"Source Definition":    0,
	"Source Qualifier":     10,
	"Expression":           20,
	"Aggregator":           25,
	"Joiner":               30,
	"Lookup Procedure":     35,
	"Filter":               40,
	"Router":               45,
	"Update Strategy":      55,
	"Sorter":               60,
	"Rank":                 65,
	"Normalizer":           70,
	"Union Transformation": 75,
	"Sequence":             80,
	targetDefinition:       99,
}

func rankOf(instanceType string) int {
	if r, ok := typeRank[instanceType]; ok {
		return r
	}
	return defaultRank
}

// sortKey is the primary ordering for a connector. Edges leaving earlier
// stages come first; among those, edges arriving at earlier stages come first.
func sortKey(c mapping.Connector) int {
	return rankOf(c.FromType)*100 + rankOf(c.ToType)
}

// less is the fixed secondary ordering applied when two connectors share a
// rank key, keeping the output fully deterministic across runs.
func less(a, b mapping.Connector) bool {
	if a.FromType != b.FromType {
		return a.FromType < b.FromType
	}
	if a.FromInstance != b.FromInstance {
		return a.FromInstance < b.FromInstance
	}
	if a.ToType != b.ToType {
		return a.ToType < b.ToType
	}
	if a.ToInstance != b.ToInstance {
		return a.ToInstance < b.ToInstance
	}
	if a.FromField != b.FromField {
		return a.FromField < b.FromField
	}
	return a.ToField < b.ToField
}

// Order returns a new connector slice sorted into approximate execution
// order. This is deliberately not a topological sort: the edge list may
// contain cycles and fan-in that a real toposort would have to resolve,
// and for reporting purposes the rank approximation reads just as well.
// The sort is stable, so connectors with identical keys keep their
// original relative order.
func Order(connectors []mapping.Connector) []mapping.Connector {
	if len(connectors) == 0 {
		return nil
	}
	out := make([]mapping.Connector, len(connectors))
	copy(out, connectors)
	sort.SliceStable(out, func(i, j int) bool {
		ki, kj := sortKey(out[i]), sortKey(out[j])
		if ki != kj {
			return ki < kj
		}
		return less(out[i], out[j])
	})
	return out
}

// Derive projects every connector terminating at a target definition into
// a lineage record against the canonical target. One hop only: the record
// names the immediate upstream instance and field, not the origin source.
func Derive(ordered []mapping.Connector, targetName string) []mapping.LineageRecord {
	var out []mapping.LineageRecord
	for _, c := range ordered {
		if c.ToType != targetDefinition {
			continue
		}
		out = append(out, mapping.LineageRecord{
			TargetTable:  targetName,
			TargetColumn: c.ToField,
			FromInstance: c.FromInstance,
			FromField:    c.FromField,
		})
	}
	return out
}
