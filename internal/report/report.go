package report

import (
	"fmt"
	"strconv"
	"strings"

	"mapdoc/internal/mapping"
)

// maxLogicLines caps the detected-logic section of the summary.
const maxLogicLines = 24

// Brand carries the pass-through branding configuration.
type Brand struct {
	Name    string
	Tagline string
	Hex     string
}

// RGB is a parsed accent color.
type RGB struct {
	R, G, B uint8
}

// CSS renders the color as an rgb() literal for the web UI.
func (c RGB) CSS() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// defaultAccent is the fallback when the configured hex is malformed.
var defaultAccent = RGB{R: 138, G: 30, B: 2}

// ParseHexColor parses a 3- or 6-digit hex color, with or without a
// leading '#'. Anything malformed yields the fixed default accent.
func ParseHexColor(hex string) RGB {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return defaultAccent
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return defaultAccent
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

func orNA(s string) string {
	if s == "" {
		return "(n/a)"
	}
	return s
}

func orNone(items []string) string {
	if len(items) == 0 {
		return "(none found)"
	}
	return strings.Join(items, ", ")
}

// Render produces the plain-text business summary for one conversion:
// brand header, mapping overview, source/target quick facts and the
// detected transformation logic bullets.
func Render(meta mapping.Meta, tables *mapping.Tables, brand Brand) string {
	var tgtCols []string
	for _, f := range tables.TargetFields {
		tgtCols = append(tgtCols, f.Column)
	}
	logic := Classify(tables.Transformations, maxLogicLines)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n\n", brand.Name, brand.Tagline)
	b.WriteString("Informatica Mapping — Business Summary\n")
	b.WriteString(strings.Repeat("=", 38) + "\n\n")

	b.WriteString("Overview\n")
	fmt.Fprintf(&b, "  Mapping:  %s\n", orNA(meta.MappingName))
	fmt.Fprintf(&b, "  Workflow: %s\n\n", orNA(meta.WorkflowName))

	b.WriteString("Source & Target\n")
	fmt.Fprintf(&b, "  Source headers: %s\n", orNone(meta.SourceHeaders))
	fmt.Fprintf(&b, "  Target table:   %s\n", orNA(meta.TargetName))
	fmt.Fprintf(&b, "  Target columns: %s\n\n", orNone(tgtCols))

	b.WriteString("Detected Transformation Logic\n")
	if len(logic) == 0 {
		b.WriteString("  • No specific transformation expressions detected.\n")
	} else {
		for _, line := range logic {
			fmt.Fprintf(&b, "  • %s\n", line)
		}
	}

	fmt.Fprintf(&b, "\nAuto-generated from Informatica XML — %s\n", brand.Name)
	return b.String()
}
