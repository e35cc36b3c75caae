package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenTablesNames(t *testing.T) {
	rawnames := []string{"Organized", "Timeline", "Raw Content", ""}
	expected := []string{"organized", "timeline", "raw_content", "tb3"}
	clean := GenTableNames(rawnames)
	t.Logf("Input: %v", rawnames)
	t.Logf("Output: %v", clean)
	for i, v := range clean {
		if v != expected[i] {
			t.Errorf("at index %d: got %s, want %s", i, v, expected[i])
		}
	}
}

func TestGenCompliantNamesDigits(t *testing.T) {
	rawnames := []string{"4658.25", "123", "abc"}
	// idx 0: "4658.25" -> "465825" -> starts with digit -> prefix "cl" + idx 0 + "465825" -> "cl0465825"
	// idx 1: "123" -> "123" -> starts with digit -> prefix "cl" + idx 1 + "123" -> "cl1123"
	// idx 2: "abc" -> "abc"
	expected := []string{"cl0465825", "cl1123", "abc"}
	clean := GenCompliantNames(rawnames, "cl")
	for i, v := range clean {
		if v != expected[i] {
			t.Errorf("at index %d: got %s, want %s", i, v, expected[i])
		}
	}
}

func TestGenCompliantNamesKeywords(t *testing.T) {
	rawnames := []string{"group", "order", "select", "table", "where"}
	expected := []string{"group_", "order_", "select_", "table_", "where_"}
	clean := GenCompliantNames(rawnames, "cl")
	for i, v := range clean {
		if v != expected[i] {
			t.Errorf("at index %d: got %s, want %s", i, v, expected[i])
		}
	}
}

func TestGenCompliantNamesDuplicates(t *testing.T) {
	clean := GenColumnNames([]string{"Name", "name", " NAME "})
	assert.Equal(t, []string{"name", "name2", "name3"}, clean)
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in     string
		escape bool
		want   string
	}{
		{"", false, "NULL"},
		{"null", false, "NULL"},
		{"NULL", false, "NULL"},
		{"NA", false, "NULL"},
		{"n/a", false, "NULL"},
		{"N/A", false, "NULL"},
		{"42", false, "42"},
		{"-42", false, "-42"},
		{"3.14", false, "3.14"},
		{"-0.5", false, "-0.5"},
		{".5", false, ".5"},
		{"007", false, "007"},
		{"1.2.3", false, "'1.2.3'"},
		{"-", false, "'-'"},
		{".", false, "'.'"},
		{"+1", false, "'+1'"},
		{"1e5", false, "'1e5'"},
		{" 1", false, "' 1'"},
		{"Alice", false, "'Alice'"},
		{"2024-01-01", false, "'2024-01-01'"},
		{"O'Connor", false, "'O'Connor'"},
		{"O'Connor", true, "'O''Connor'"},
		{"none", false, "'none'"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.in, tt.escape))
		})
	}
}

func TestFormatValueRoundTrip(t *testing.T) {
	for _, v := range []string{"Alice", "a,b", `say "hi"`, "O'Connor", "2024-02-02", "line\nbreak"} {
		got := FormatValue(v, false)
		require.True(t, strings.HasPrefix(got, "'") && strings.HasSuffix(got, "'"), got)
		assert.Equal(t, v, got[1:len(got)-1])
	}
}

func TestQuoteIdent(t *testing.T) {
	assert.Equal(t, "`users`", QuoteIdent("users", true))
	assert.Equal(t, "users", QuoteIdent("users", false))
}

func usersTable() *Table {
	return &Table{
		Name:    "users",
		Columns: []string{"id", "name", "signup_date"},
		Rows: [][]string{
			{"1", "Alice", "2024-01-01"},
			{"2", "Bob", "2024-02-02"},
		},
	}
}

func TestGenCreateTableSQL(t *testing.T) {
	table := usersTable()
	got := GenCreateTableSQL(table, InferColumnTypes(table), nil)
	want := "CREATE TABLE `users` (\n" +
		"  `id` INT,\n" +
		"  `name` VARCHAR(255),\n" +
		"  `signup_date` DATE\n" +
		");\n"
	assert.Equal(t, want, got)
}

func TestGenCreateTableSQLUnquoted(t *testing.T) {
	table := &Table{Name: "t", Columns: []string{"a"}}
	cfg := &ConversionConfig{}
	got := GenCreateTableSQL(table, []ColumnType{TypeVarchar}, cfg)
	assert.Equal(t, "CREATE TABLE t (\n  a VARCHAR(255)\n);\n", got)
}

func TestGenInsertSQL(t *testing.T) {
	got, err := GenInsertSQL(usersTable(), nil)
	require.NoError(t, err)
	want := "INSERT INTO `users` (`id`,`name`,`signup_date`) VALUES\n" +
		"(1,'Alice','2024-01-01'),\n" +
		"(2,'Bob','2024-02-02');\n"
	assert.Equal(t, want, got)
}

func TestGenInsertSQLNoRows(t *testing.T) {
	table := &Table{Name: "empty", Columns: []string{"id"}}
	_, err := GenInsertSQL(table, nil)
	assert.ErrorIs(t, err, ErrNoDataRows)

	assert.Equal(t, "CREATE TABLE `empty` (\n  `id` INT\n);\n", GenTableSQL(table, nil))
}

func TestGenInsertSQLTupleShape(t *testing.T) {
	table := &Table{Name: "grid", Columns: []string{"a", "b", "c", "d"}}
	for r := 0; r < 7; r++ {
		table.Rows = append(table.Rows, []string{"1", "x", "", "2.5"})
	}

	got, err := GenInsertSQL(table, nil)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(got, ";\n"), "\n")
	tuples := lines[1:]
	require.Len(t, tuples, len(table.Rows))
	for _, tuple := range tuples {
		tuple = strings.TrimSuffix(tuple, ",")
		require.True(t, strings.HasPrefix(tuple, "(") && strings.HasSuffix(tuple, ")"), tuple)
		assert.Len(t, strings.Split(tuple[1:len(tuple)-1], ","), len(table.Columns))
	}
}

func TestGenTableSQL(t *testing.T) {
	got := GenTableSQL(usersTable(), nil)
	assert.True(t, strings.HasPrefix(got, "CREATE TABLE `users` (\n"))
	assert.Contains(t, got, ");\n\nINSERT INTO `users`")
	assert.True(t, strings.HasSuffix(got, "(2,'Bob','2024-02-02');\n"))
}

func TestSanitizeTable(t *testing.T) {
	table := &Table{Name: "My Users", Columns: []string{"User ID", "order", ""}}
	SanitizeTable(table)
	assert.Equal(t, "my_users", table.Name)
	assert.Equal(t, []string{"user_id", "order_", "cl2"}, table.Columns)
}

func TestNewTablePadsAndTruncates(t *testing.T) {
	table, err := NewTable("t", [][]string{
		{"a", "b", "c"},
		{"1"},
		{"1", "2", "3"},
		{"1", "2", "3", "4"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, table.Reshaped)
	assert.Equal(t, [][]string{{"1", "", ""}, {"1", "2", "3"}, {"1", "2", "3"}}, table.Rows)

	insert, err := GenInsertSQL(table, nil)
	require.NoError(t, err)
	assert.Contains(t, insert, "(1,NULL,NULL)")
}

func TestNewTableEmpty(t *testing.T) {
	_, err := NewTable("t", nil)
	assert.ErrorIs(t, err, ErrEmptyFile)
}
