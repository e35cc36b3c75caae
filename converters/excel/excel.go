package excel

import (
	"fmt"
	"io"

	"github.com/darianmavgo/csvtosql/converters"
	"github.com/darianmavgo/csvtosql/converters/common"

	"github.com/xuri/excelize/v2"
)

func init() {
	converters.Register("excel", &excelDriver{}, ".xlsx", ".xlsm")
}

type excelDriver struct{}

func (d *excelDriver) Open(source io.Reader, name string, config *common.ConversionConfig) ([]*common.Table, error) {
	return ReadTables(source, name, config)
}

// ReadTables reads every sheet of a workbook that has a header row. A
// workbook with one such sheet yields a table called name; otherwise each
// table is called name_sheet.
func ReadTables(r io.Reader, name string, _ *common.ConversionConfig) ([]*common.Table, error) {
	// Open Excel stream
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open Excel stream: %w", common.ErrFileNotReadable, err)
	}
	defer f.Close()

	var tables []*common.Table
	for _, sheetName := range f.GetSheetList() {
		records, err := readSheet(f, sheetName)
		if err != nil {
			return nil, err
		}

		t, err := common.NewTable(sheetName, records)
		if err != nil {
			// Sheets without a header row are skipped.
			continue
		}
		tables = append(tables, t)
	}

	if len(tables) == 0 {
		return nil, common.ErrEmptyFile
	}

	for _, t := range tables {
		if len(tables) == 1 {
			t.Name = name
		} else {
			t.Name = name + "_" + t.Name
		}
	}
	return tables, nil
}

// readSheet returns the rows of a sheet starting at its first non-empty row.
func readSheet(f *excelize.File, sheetName string) ([][]string, error) {
	rows, err := f.Rows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows iterator for sheet %s: %w", sheetName, err)
	}
	defer rows.Close()

	var records [][]string
	for rows.Next() {
		cols, err := rows.Columns()
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read row for sheet %s: %w", common.ErrFileNotReadable, sheetName, err)
		}
		if len(records) == 0 && len(cols) == 0 {
			continue
		}
		records = append(records, cols)
	}
	return records, nil
}
