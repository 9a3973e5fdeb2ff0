// Package report detects business logic in transformation expressions and
// renders the human-readable conversion summary.
package report

import (
	"fmt"
	"regexp"

	"mapdoc/internal/mapping"
)

// maxExprDisplay bounds how much of an expression a finding shows before
// cutting it off with an ellipsis.
const maxExprDisplay = 120

// Rule pairs a human-readable label with the pattern that detects it.
type Rule struct {
	Label   string
	Pattern *regexp.Regexp
}

func rule(label, expr string) Rule {
	return Rule{Label: label, Pattern: regexp.MustCompile(`(?i)` + expr)}
}

// Rules is the ordered pattern bank. Order matters: the first matching rule
// labels the expression, so the more specific readings come before the
// generic ones (TRIM before UPPER keeps "UPPER(TRIM(x))" reported as a
// trim, which is what the reader cares about).
var Rules = []Rule{
	rule("Trim", `\bTRIM\s*\(`),
	rule("Trim (one-sided)", `\b[LR]TRIM\s*\(`),
	rule("Uppercase", `\bUPPER\s*\(`),
	rule("Lowercase", `\bLOWER\s*\(`),
	rule("Padding", `\b[LR]PAD\s*\(`),
	rule("Substring", `\bSUBSTR\s*\(`),
	rule("String search", `\bINSTR\s*\(`),
	rule("Replace", `\bREPLACE(?:STR|CHR)\s*\(`),
	rule("Length check", `\bLENGTH\s*\(`),
	rule("Rounding", `\bROUND\s*\(`),
	rule("Truncation", `\bTRUNC\s*\(`),
	rule("Absolute value", `\bABS\s*\(`),
	rule("Modulus", `\bMOD\s*\(`),
	rule("Null handling (NVL)", `\bNVL\s*\(`),
	rule("Null check", `\bISNULL\s*\(`),
	rule("Coalesce", `\bCOALESCE\s*\(`),
	rule("Conditional (IIF)", `\bIIF\s*\(`),
	rule("Decode", `\bDECODE\s*\(`),
	rule("To Date", `\bTO_DATE\s*\(`),
	rule("To Char", `\bTO_CHAR\s*\(`),
	rule("To Number", `\bTO_(?:INTEGER|DECIMAL|FLOAT)\s*\(`),
	rule("Date arithmetic", `\b(?:ADD_TO_DATE|DATE_DIFF|LAST_DAY|GET_DATE_PART|SET_DATE_PART)\s*\(`),
	rule("System timestamp", `\b(?:SYSDATE|SESSSTARTTIME|SYSTIMESTAMP)\b`),
	rule("Moving window", `\bMOVING(?:SUM|AVG)\s*\(`),
	rule("Aggregation", `\b(?:SUM|AVG|MIN|MAX|COUNT|MEDIAN|STDDEV|VARIANCE)\s*\(`),
	rule("Regex", `\bREGEXP_[A-Z_]+\s*\(`),
	rule("Concatenation", `\|\|`),
}

// Classify scans the transformation rows in table order and returns at most
// maxLines findings, one per non-empty expression. Scanning halts once the
// cap is reached; later rows are not examined. Expressions matching no rule
// contribute nothing.
func Classify(rows []mapping.TransformField, maxLines int) []string {
	var lines []string
	for _, row := range rows {
		if len(lines) >= maxLines {
			break
		}
		expr := row.Expression
		if expr == "" {
			continue
		}
		tname := row.Transformation
		if tname == "" {
			tname = "Transformation"
		}
		port := row.PortName
		if port == "" {
			port = "Port"
		}
		for _, r := range Rules {
			if !r.Pattern.MatchString(expr) {
				continue
			}
			shown := expr
			if runes := []rune(shown); len(runes) > maxExprDisplay {
				shown = string(runes[:maxExprDisplay-3]) + "..."
			}
			lines = append(lines, fmt.Sprintf("%s: %s.%s → %s", r.Label, tname, port, shown))
			break
		}
	}
	return lines
}
