// Package bundle packs one conversion's artifacts into a zip: one CSV per
// non-empty entity table, the DDL script, and the business summary.
package bundle

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"mapdoc/internal/mapping"
)

// BaseName strips the directory and extension from an input filename,
// defaulting to "mapping" when nothing usable remains.
func BaseName(filename string) string {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." {
		return "mapping"
	}
	return base
}

func sheetCSV(s mapping.Sheet) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(s.Header); err != nil {
		return nil, err
	}
	if err := w.WriteAll(s.Rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Build assembles the zip. Empty sheets are skipped, matching how the
// original workbook omitted empty tabs.
func Build(base string, sheets []mapping.Sheet, ddlText, summary string) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, s := range sheets {
		if s.Empty() {
			continue
		}
		data, err := sheetCSV(s)
		if err != nil {
			return nil, fmt.Errorf("failed to render sheet %q: %w", s.Name, err)
		}
		f, err := zw.Create(fmt.Sprintf("%s_tables/%s.csv", base, s.Name))
		if err != nil {
			return nil, err
		}
		if _, err := f.Write(data); err != nil {
			return nil, err
		}
	}

	sqlFile, err := zw.Create(base + ".sql")
	if err != nil {
		return nil, err
	}
	if _, err := sqlFile.Write([]byte(ddlText)); err != nil {
		return nil, err
	}

	txtFile, err := zw.Create(base + ".txt")
	if err != nil {
		return nil, err
	}
	if _, err := txtFile.Write([]byte(summary)); err != nil {
		return nil, err
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
