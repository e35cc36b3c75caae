package common

import "io"

// Table is one loaded input: the header defines the column count and every
// row has been padded or truncated to that length.
type Table struct {
	Name     string
	Columns  []string
	Rows     [][]string
	Reshaped int // rows whose original length differed from the header
}

// Values returns the values of column i across all rows.
func (t *Table) Values(i int) []string {
	values := make([]string, len(t.Rows))
	for r, row := range t.Rows {
		values[r] = row[i]
	}
	return values
}

// Driver defines the interface that must be implemented by a loader package.
type Driver interface {
	// Open reads every table from source. name is the input file name
	// without directory or extensions and is used for table naming.
	Open(source io.Reader, name string, config *ConversionConfig) ([]*Table, error)
}

// NewTable builds a Table from raw records, the first being the header.
// Rows are padded with empty fields or truncated to the header length.
func NewTable(name string, records [][]string) (*Table, error) {
	if len(records) == 0 || len(records[0]) == 0 {
		return nil, ErrEmptyFile
	}

	header := records[0]
	t := &Table{
		Name:    name,
		Columns: header,
		Rows:    make([][]string, 0, len(records)-1),
	}
	for _, row := range records[1:] {
		if len(row) != len(header) {
			t.Reshaped++
			row = PadRow(row, len(header))
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

var emptyPadding = make([]string, 1024)

// PadRow pads or truncates the row to match the target length.
func PadRow(row []string, targetLen int) []string {
	if len(row) < targetLen {
		needed := targetLen - len(row)
		padded := make([]string, len(row), targetLen)
		copy(padded, row)
		if needed <= len(emptyPadding) {
			return append(padded, emptyPadding[:needed]...)
		}
		return append(padded, make([]string, needed)...)
	} else if len(row) > targetLen {
		return row[:targetLen]
	}
	return row
}
