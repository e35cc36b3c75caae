package common

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	TBPRE = "tb"
	CLPRE = "cl"
)

var (
	space   = regexp.MustCompile(`\s+`)
	reg     = regexp.MustCompile(`[^a-zA-Z0-9 _]+`)
	numeric = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)$`)
)

// nullTokens are compared case-insensitively.
var nullTokens = map[string]struct{}{
	"":     {},
	"null": {},
	"na":   {},
	"n/a":  {},
}

/*
	GenCompliantNames generates names that are safe as SQL identifiers.

The rules for column names and table names are so similar there is one function
that takes a prefix as input. lower case, snake case, strip disallowed characters.
Keywords get a trailing underscore.
If a standardized name results in an unusable result then the name is {prefix}{idx}
*/
func GenCompliantNames(rawnames []string, prefix string) []string {
	gorgeous := make([]string, len(rawnames))

	counter := map[string]int{}
	for idx, item := range rawnames {
		item = strings.TrimSpace(item)
		item = reg.ReplaceAllString(item, "")
		item = space.ReplaceAllString(item, "_")
		item = strings.ToLower(item)

		// If stripping non-compliant chars leaves us with nothing, give it a default index name
		if len(item) == 0 {
			item = fmt.Sprintf("%s%d", prefix, idx)
		}

		if _, ok := keywords[item]; ok {
			item += "_"
		}

		// identifiers cannot start with a number
		if item[0] >= '0' && item[0] <= '9' {
			item = fmt.Sprintf("%s%d%s", prefix, idx, item)
		}

		counter[item]++
		if counter[item] == 1 {
			gorgeous[idx] = item
		} else {
			// use counter to avoid collision
			gorgeous[idx] = fmt.Sprintf("%s%d", item, counter[item])
		}
	}
	return gorgeous
}

// GenColumnNames generates sanitized SQL column names from raw headers
// if columns are complete junk it will return cl0, cl1, cl2, etc.
func GenColumnNames(rawheaders []string) []string {
	return GenCompliantNames(rawheaders, CLPRE)
}

// GenTableNames generates sanitized SQL table names from raw table names.
// if table names are complete junk it will return tb0, tb1, tb2, etc.
func GenTableNames(rawtables []string) []string {
	return GenCompliantNames(rawtables, TBPRE)
}

// SanitizeTable rewrites the table and column names in place.
func SanitizeTable(t *Table) {
	t.Name = GenTableNames([]string{t.Name})[0]
	t.Columns = GenColumnNames(t.Columns)
}

// QuoteIdent wraps name in backticks when quote is set. Embedded backticks
// are left as is.
func QuoteIdent(name string, quote bool) string {
	if !quote {
		return name
	}
	return "`" + name + "`"
}

// IsNullToken reports whether v stands for a missing value.
func IsNullToken(v string) bool {
	_, ok := nullTokens[strings.ToLower(v)]
	return ok
}

// IsNumericLiteral reports whether v is an optionally negative run of digits
// with at most one decimal point.
func IsNumericLiteral(v string) bool {
	return numeric.MatchString(v)
}

// FormatValue renders a field as a SQL literal: null tokens become NULL,
// numeric literals pass through unquoted and everything else is wrapped in
// single quotes. Embedded quotes are doubled only when escape is set.
func FormatValue(v string, escape bool) string {
	if IsNullToken(v) {
		return "NULL"
	}
	if IsNumericLiteral(v) {
		return v
	}
	if escape {
		v = strings.ReplaceAll(v, "'", "''")
	}
	return "'" + v + "'"
}

// GenCreateTableSQL generates a CREATE TABLE statement terminated by ";\n".
func GenCreateTableSQL(t *Table, colTypes []ColumnType, config *ConversionConfig) string {
	config = config.Clone()

	var builder strings.Builder
	builder.Grow(len(t.Name) + len(t.Columns)*24) // Heuristic pre-allocation

	builder.WriteString("CREATE TABLE ")
	builder.WriteString(QuoteIdent(t.Name, config.QuoteIdentifier))
	builder.WriteString(" (\n")
	for i, name := range t.Columns {
		builder.WriteString("  ")
		builder.WriteString(QuoteIdent(name, config.QuoteIdentifier))
		builder.WriteByte(' ')
		builder.WriteString(string(colTypes[i]))
		if i < len(t.Columns)-1 {
			builder.WriteByte(',')
		}
		builder.WriteByte('\n')
	}
	builder.WriteString(");\n")
	return builder.String()
}

// GenInsertSQL generates one multi-row INSERT statement terminated by ";\n".
// It returns ErrNoDataRows for a header-only table.
func GenInsertSQL(t *Table, config *ConversionConfig) (string, error) {
	if len(t.Rows) == 0 {
		return "", ErrNoDataRows
	}
	config = config.Clone()

	cols := make([]string, len(t.Columns))
	for i, name := range t.Columns {
		cols[i] = QuoteIdent(name, config.QuoteIdentifier)
	}

	var builder strings.Builder
	fmt.Fprintf(&builder, "INSERT INTO %s (%s) VALUES\n",
		QuoteIdent(t.Name, config.QuoteIdentifier), strings.Join(cols, ","))

	for r, row := range t.Rows {
		builder.WriteByte('(')
		for i, val := range row {
			if i > 0 {
				builder.WriteByte(',')
			}
			builder.WriteString(FormatValue(val, config.EscapeQuotes))
		}
		builder.WriteByte(')')
		if r < len(t.Rows)-1 {
			builder.WriteString(",\n")
		}
	}
	builder.WriteString(";\n")
	return builder.String(), nil
}

// GenTableSQL renders the CREATE statement followed, when the table has
// data, by a blank line and the INSERT statement.
func GenTableSQL(t *Table, config *ConversionConfig) string {
	create := GenCreateTableSQL(t, InferColumnTypes(t), config)
	insert, err := GenInsertSQL(t, config)
	if err != nil {
		return create
	}
	return create + "\n" + insert
}

// keywords holds SQL keywords that get a trailing underscore when names are
// sanitized. Based on https://sqlite.org/lang_keywords.html.
var keywords = func() map[string]struct{} {
	m := make(map[string]struct{}, len(KEYWORDS_LOWER))
	for _, k := range KEYWORDS_LOWER {
		m[k] = struct{}{}
	}
	return m
}()

// KEYWORDS_LOWER is the lowercase SQLite keyword list.
var KEYWORDS_LOWER = []string{
	"abort", "action", "add", "after", "all", "alter", "always", "analyze", "and", "as",
	"asc", "attach", "autoincrement", "before", "begin", "between", "by", "cascade", "case", "cast",
	"check", "collate", "column", "commit", "conflict", "constraint", "create", "cross", "current", "current_date",
	"current_time", "current_timestamp", "database", "default", "deferrable", "deferred", "delete", "desc", "detach", "distinct",
	"do", "drop", "each", "else", "end", "escape", "except", "exclude", "exclusive", "exists",
	"explain", "fail", "filter", "first", "following", "for", "foreign", "from", "full", "generated",
	"glob", "group", "groups", "having", "if", "ignore", "immediate", "in", "index", "indexed",
	"initially", "inner", "insert", "instead", "intersect", "into", "is", "isnull", "join", "key",
	"last", "left", "like", "limit", "match", "materialized", "natural", "no", "not", "nothing",
	"notnull", "null", "nulls", "of", "offset", "on", "or", "order", "others", "outer",
	"over", "partition", "plan", "pragma", "preceding", "primary", "query", "raise", "range", "recursive",
	"references", "regexp", "reindex", "release", "rename", "replace", "restrict", "returning", "right", "rollback",
	"row", "rows", "savepoint", "select", "set", "table", "temp", "temporary", "then", "ties",
	"to", "transaction", "trigger", "unbounded", "union", "unique", "update", "using", "vacuum", "values",
	"view", "virtual", "when", "where", "window", "with", "without",
}
