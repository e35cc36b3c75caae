package common

import "strings"

// ColumnType is the SQL type label emitted in CREATE TABLE.
type ColumnType string

const (
	TypeDate    ColumnType = "DATE"
	TypeInt     ColumnType = "INT"
	TypeDecimal ColumnType = "DECIMAL(10,2)"
	TypeVarchar ColumnType = "VARCHAR(255)"
)

// InferColumnType picks one type for a column from its name and all of its
// values (header excluded). The first matching rule wins:
//
//  1. name contains "date" or "time"                      -> DATE
//  2. name contains "id" or "num" and every value is digits -> INT
//  3. any value contains "."                              -> DECIMAL(10,2)
//  4. otherwise                                           -> VARCHAR(255)
//
// Name matching is case-insensitive. Values are not parsed as numbers.
func InferColumnType(name string, values []string) ColumnType {
	lower := strings.ToLower(name)

	if strings.Contains(lower, "date") || strings.Contains(lower, "time") {
		return TypeDate
	}

	if (strings.Contains(lower, "id") || strings.Contains(lower, "num")) && allDigits(values) {
		return TypeInt
	}

	for _, v := range values {
		if strings.Contains(v, ".") {
			return TypeDecimal
		}
	}

	return TypeVarchar
}

// InferColumnTypes returns one type per column of t.
func InferColumnTypes(t *Table) []ColumnType {
	types := make([]ColumnType, len(t.Columns))
	for i, name := range t.Columns {
		types[i] = InferColumnType(name, t.Values(i))
	}
	return types
}

// allDigits reports whether every value is a non-empty run of ASCII digits.
// It is true for an empty slice.
func allDigits(values []string) bool {
	for _, v := range values {
		if !isDigits(v) {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
