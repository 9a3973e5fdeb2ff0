// Package engine generates sample data scripts for converted targets and
// executes SQL scripts against live databases.
package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"mapdoc/internal/mapping"
)

// abbreviations decodes the column-name shorthand common in warehouse
// models, so NM/ADDR/TEL style columns get plausible sample values.
var abbreviations = map[string]string{
	"nm": "name", "nme": "name", "fname": "name", "lname": "name",
	"addr": "address", "tel": "phone", "ph": "phone", "hp": "phone",
	"eml": "email", "mail": "email",
	"dt": "date", "dte": "date", "ts": "date",
	"amt": "amount", "qty": "quantity", "cnt": "quantity",
	"zip": "zipcode", "post": "zipcode",
	"cd": "code", "no": "code", "num": "code",
	"yn": "flag", "flg": "flag", "ind": "flag",
	"desc": "text", "txt": "text", "cmt": "text",
	"cty": "city", "ctry": "country",
}

// columnMeaning derives a semantic hint from a column name: direct keyword
// first, then underscore-part abbreviation decoding.
func columnMeaning(colName string) string {
	n := strings.ToLower(colName)
	for _, kw := range []string{"email", "phone", "name", "address", "city", "country", "zip", "date", "flag", "amount", "price", "quantity"} {
		if strings.Contains(n, kw) {
			return kw
		}
	}
	var decoded []string
	for _, part := range strings.Split(n, "_") {
		if full, ok := abbreviations[part]; ok {
			decoded = append(decoded, full)
		} else {
			decoded = append(decoded, part)
		}
	}
	return strings.Join(decoded, " ")
}

func truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) > limit {
		return string(runes[:limit])
	}
	return s
}

// quote formats a string as a SQL literal, doubling embedded quotes.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// SampleValue synthesizes one SQL literal for a target column, keyed on
// the declared datatype with semantic column-name hints for strings.
func SampleValue(f mapping.TargetField) string {
	dt := strings.ToUpper(strings.TrimSpace(f.Datatype))
	length := 0
	if n, err := strconv.Atoi(f.Precision); err == nil {
		length = n
	}

	switch {
	case strings.Contains(dt, "CHAR") || strings.Contains(dt, "STRING") || strings.Contains(dt, "TEXT"):
		meaning := columnMeaning(f.Column)
		switch {
		case strings.Contains(meaning, "email"):
			return quote(truncate(gofakeit.Email(), length))
		case strings.Contains(meaning, "phone"):
			return quote(truncate(gofakeit.Phone(), length))
		case strings.Contains(meaning, "name"):
			return quote(truncate(gofakeit.Name(), length))
		case strings.Contains(meaning, "address"):
			return quote(truncate(gofakeit.Street(), length))
		case strings.Contains(meaning, "city"):
			return quote(truncate(gofakeit.City(), length))
		case strings.Contains(meaning, "country"):
			return quote(truncate(gofakeit.Country(), length))
		case strings.Contains(meaning, "zip"):
			return quote(truncate(gofakeit.Zip(), length))
		case strings.Contains(meaning, "flag"):
			return quote(gofakeit.RandomString([]string{"Y", "N"}))
		default:
			if length > 0 && length < 8 {
				return quote(gofakeit.LetterN(uint(length)))
			}
			return quote(truncate(gofakeit.Word(), length))
		}

	case strings.Contains(dt, "INT"):
		max := 50000
		if length > 0 && length < 10 {
			limit := 1
			for i := 0; i < length; i++ {
				limit *= 10
			}
			if limit-1 < max {
				max = limit - 1
			}
			if max < 1 {
				max = 9
			}
		}
		return strconv.Itoa(gofakeit.Number(1, max))

	case strings.Contains(dt, "NUMBER") || strings.Contains(dt, "DECIMAL") ||
		strings.Contains(dt, "NUMERIC") || strings.Contains(dt, "FLOAT") ||
		strings.Contains(dt, "DOUBLE"):
		return fmt.Sprintf("%.2f", gofakeit.Price(0.99, 9999.99))

	case dt == "DATE":
		v := gofakeit.DateRange(time.Now().AddDate(-1, 0, 0), time.Now())
		return quote(v.Format("2006-01-02"))

	case strings.Contains(dt, "TIMESTAMP") || strings.Contains(dt, "DATETIME"):
		v := gofakeit.DateRange(time.Now().AddDate(-1, 0, 0), time.Now())
		return quote(v.Format("2006-01-02 15:04:05"))
	}

	return quote(truncate(gofakeit.Word(), length))
}

// BuildInsertScript emits rows INSERT statements for the canonical target.
// progress, when non-nil, is called once per generated row. With no target
// fields the script degrades to an explanatory comment, mirroring the DDL
// builder's contract.
func BuildInsertScript(meta mapping.Meta, fields []mapping.TargetField, rows int, progress func()) string {
	tname := meta.TargetName
	if tname == "" {
		tname = mapping.DefaultTargetName
	}
	if len(fields) == 0 {
		return fmt.Sprintf("/* No target found in XML; nothing to seed for: %s */", tname)
	}

	cols := make([]string, len(fields))
	for i, f := range fields {
		cols[i] = f.Column
	}
	head := fmt.Sprintf("INSERT INTO %s (%s) VALUES ", tname, strings.Join(cols, ", "))

	var b strings.Builder
	for i := 0; i < rows; i++ {
		vals := make([]string, len(fields))
		for j, f := range fields {
			vals[j] = SampleValue(f)
		}
		b.WriteString(head)
		b.WriteString("(" + strings.Join(vals, ", ") + ");\n")
		if progress != nil {
			progress()
		}
	}
	return b.String()
}
