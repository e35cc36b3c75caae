package csv

import (
	"strings"
	"testing"

	"github.com/darianmavgo/csvtosql/converters/common"
)

func TestCSVDelimiterDetection(t *testing.T) {
	tests := []struct {
		name    string
		content string
		cols    int
	}{
		{
			name:    "Comma",
			content: "col1,col2,col3\nval1,val2,val3",
			cols:    3,
		},
		{
			name:    "Tab",
			content: "col1\tcol2\tcol3\nval1\tval2\tval3",
			cols:    3,
		},
		{
			name:    "Pipe",
			content: "col1|col2|col3\nval1|val2|val3",
			cols:    3,
		},
		{
			name:    "Semicolon",
			content: "col1;col2;col3\nval1;val2;val3",
			cols:    3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := common.DefaultConversionConfig()
			config.AutoDelimiter = true

			table, err := ReadTable(strings.NewReader(tt.content), "t", config)
			if err != nil {
				t.Fatalf("Failed to read table: %v", err)
			}

			if len(table.Columns) != tt.cols {
				t.Errorf("Detected %d headers, want %d", len(table.Columns), tt.cols)
			}
			if len(table.Rows) != 1 || len(table.Rows[0]) != tt.cols {
				t.Errorf("Unexpected rows: %v", table.Rows)
			}
		})
	}
}

func TestCSVDefaultDelimiterIsComma(t *testing.T) {
	table, err := ReadTable(strings.NewReader("a;b\n1;2\n"), "t", nil)
	if err != nil {
		t.Fatalf("Failed to read table: %v", err)
	}
	if len(table.Columns) != 1 || table.Columns[0] != "a;b" {
		t.Errorf("expected a single column %q, got %v", "a;b", table.Columns)
	}
}

func TestCSVExplicitDelimiter(t *testing.T) {
	config := common.DefaultConversionConfig()
	config.Delimiter = ';'

	table, err := ReadTable(strings.NewReader("a;b\n1;2\n"), "t", config)
	if err != nil {
		t.Fatalf("Failed to read table: %v", err)
	}
	if len(table.Columns) != 2 {
		t.Errorf("expected 2 columns, got %v", table.Columns)
	}
}
