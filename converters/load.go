package converters

import (
	"fmt"
	"os"

	"github.com/darianmavgo/csvtosql/converters/common"
)

// LoadFile reads every table from the file at path. The driver is chosen by
// extension and compressed inputs are unwrapped first. A missing or
// unreadable file returns an error wrapping common.ErrFileNotReadable.
func LoadFile(path string, config *common.ConversionConfig) ([]*common.Table, error) {
	driverName, err := DriverName(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrFileNotReadable, err)
	}
	defer file.Close()

	reader, closeFn, err := NewDecompressReader(file, DetectCompression(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", common.ErrFileNotReadable, path, err)
	}
	defer closeFn()

	tables, err := Open(driverName, reader, BaseName(path), config)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return tables, nil
}
