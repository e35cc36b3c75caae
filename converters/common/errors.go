package common

import "errors"

var (
	// ErrFileNotReadable wraps a missing input or an I/O failure while reading it.
	ErrFileNotReadable = errors.New("file not readable")

	// ErrEmptyFile indicates an input without a header row.
	ErrEmptyFile = errors.New("file has no header row")

	// ErrNoDataRows indicates a header-only table; the INSERT statement is skipped.
	ErrNoDataRows = errors.New("table has no data rows")

	// ErrUnsupportedFormat indicates no driver is registered for the file extension.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)
