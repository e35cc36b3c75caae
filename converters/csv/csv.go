package csv

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/darianmavgo/csvtosql/converters"
	"github.com/darianmavgo/csvtosql/converters/common"
)

func init() {
	converters.Register("csv", &csvDriver{delimiter: ','}, ".csv")
	converters.Register("tsv", &csvDriver{delimiter: '\t'}, ".tsv")
}

// csvDriver reads delimited text. delimiter applies when the config
// leaves it unset.
type csvDriver struct {
	delimiter rune
}

func (d *csvDriver) Open(source io.Reader, name string, config *common.ConversionConfig) ([]*common.Table, error) {
	config = config.Clone()
	if config.Delimiter == 0 {
		config.Delimiter = d.delimiter
	}
	t, err := ReadTable(source, name, config)
	if err != nil {
		return nil, err
	}
	return []*common.Table{t}, nil
}

const bom = "\ufeff"

// ReadTable parses delimited text from r into a Table. The first record is
// the header; the remaining records are padded or truncated to its length.
// An unset delimiter means comma.
func ReadTable(r io.Reader, name string, config *common.ConversionConfig) (*common.Table, error) {
	config = config.Clone()
	if config.Delimiter == 0 {
		config.Delimiter = ','
	}

	br := bufio.NewReaderSize(r, 65536)

	if config.AutoDelimiter {
		peekBytes, _ := br.Peek(2048)
		sample := string(peekBytes)
		if idx := strings.IndexAny(sample, "\r\n"); idx != -1 {
			sample = sample[:idx]
		}
		config.Delimiter = common.DetectDelimiter(sample)
	}

	records, err := ReadRecords(br, config.Delimiter)
	if err != nil {
		return nil, err
	}

	if len(records) > 0 && len(records[0]) > 0 {
		records[0][0] = strings.TrimPrefix(records[0][0], bom)
	}

	return common.NewTable(name, records)
}

// ReadRecords reads every record from r. Records may have a variable
// number of fields and quotes are parsed leniently.
func ReadRecords(r io.Reader, delimiter rune) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	var records [][]string
	for {
		row, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("%w: failed to read CSV row: %w", common.ErrFileNotReadable, err)
		}
		records = append(records, row)
	}
	return records, nil
}
