package converters

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/darianmavgo/csvtosql/converters/common"
)

// DefaultPatterns are the file name patterns scanned when none are given.
var DefaultPatterns = []string{"*.csv"}

// Options defines configuration for a directory conversion.
type Options struct {
	InputDir  string   // Directory to scan (non-recursive); defaults to "."
	OutputDir string   // Directory for .sql files; defaults to the input file's directory
	Patterns  []string // filepath.Match patterns; defaults to DefaultPatterns
	Append    bool     // Append to existing output files instead of overwriting
	Verify    bool     // Execute the generated SQL against in-memory SQLite
	Config    *common.ConversionConfig
	Logger    *common.Logger
}

// FileResult describes the conversion of one input file.
type FileResult struct {
	Input     string
	Output    string
	Tables    int
	Rows      int
	Bytes     int64
	Err       error // reason the file was skipped
	VerifyErr error // set when Verify is enabled and the generated SQL failed
}

// Summary collects the results of a directory conversion.
type Summary struct {
	Converted []FileResult
	Skipped   []FileResult
}

func (o *Options) withDefaults() *Options {
	cp := *o
	if cp.InputDir == "" {
		cp.InputDir = "."
	}
	if len(cp.Patterns) == 0 {
		cp.Patterns = DefaultPatterns
	}
	cp.Config = cp.Config.Clone()
	return &cp
}

// MatchFiles lists the regular files in dir whose names match any pattern,
// sorted by name.
func MatchFiles(dir string, patterns []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var matches []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		for _, pattern := range patterns {
			ok, err := filepath.Match(pattern, entry.Name())
			if err != nil {
				return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
			}
			if ok {
				matches = append(matches, filepath.Join(dir, entry.Name()))
				break
			}
		}
	}
	return matches, nil
}

// OutputPath returns the .sql path for an input: extensions stripped, ".sql" appended.
func OutputPath(inputPath, outputDir string) string {
	if outputDir == "" {
		outputDir = filepath.Dir(inputPath)
	}
	return filepath.Join(outputDir, BaseName(inputPath)+".sql")
}

// ConvertDir converts every matching file in opts.InputDir. Files that
// cannot be loaded are logged and skipped; only a failure to list the
// directory or a cancelled context is returned as an error.
func ConvertDir(ctx context.Context, opts *Options) (*Summary, error) {
	opts = opts.withDefaults()
	log := opts.Logger

	files, err := MatchFiles(opts.InputDir, opts.Patterns)
	if err != nil {
		return nil, err
	}
	log.Verbose("Found %d files in %s matching %v", len(files), opts.InputDir, opts.Patterns)

	summary := &Summary{}
	written := make(map[string]bool)
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		// Two inputs sharing a base name append to the same output in one run.
		fileOpts := *opts
		out := OutputPath(path, opts.OutputDir)
		if written[out] {
			fileOpts.Append = true
		}

		result, err := ConvertFile(ctx, path, &fileOpts)
		if err != nil {
			if IsSkippable(err) {
				log.Info("Skipping %s: %v", path, err)
			} else {
				log.Error("Skipping %s: %v", path, err)
			}
			summary.Skipped = append(summary.Skipped, *result)
			continue
		}
		written[out] = true
		summary.Converted = append(summary.Converted, *result)
	}
	return summary, nil
}

// ConvertFile converts one input file and writes its .sql output. On error
// the returned result carries the same error and no output is touched.
func ConvertFile(ctx context.Context, inputPath string, opts *Options) (*FileResult, error) {
	opts = opts.withDefaults()
	log := opts.Logger
	result := &FileResult{
		Input:  inputPath,
		Output: OutputPath(inputPath, opts.OutputDir),
	}

	tables, err := LoadFile(inputPath, opts.Config)
	if err != nil {
		result.Err = err
		return result, err
	}

	blocks := make([]string, 0, len(tables))
	for _, t := range tables {
		if opts.Config.SanitizeNames {
			common.SanitizeTable(t)
		}
		if t.Reshaped > 0 {
			log.Verbose("%s: table %s has %d rows not matching %d header columns (padded/truncated)",
				inputPath, t.Name, t.Reshaped, len(t.Columns))
		}
		if len(t.Rows) == 0 {
			log.Info("%s: table %s: %v, INSERT skipped", inputPath, t.Name, common.ErrNoDataRows)
		}
		blocks = append(blocks, common.GenTableSQL(t, opts.Config))
		result.Tables++
		result.Rows += len(t.Rows)
	}
	script := strings.Join(blocks, "\n")

	if opts.Verify {
		if err := Verify(ctx, script, tables); err != nil {
			result.VerifyErr = err
			log.Error("Verification of %s failed: %v", inputPath, err)
		} else {
			log.Verbose("Verified %s against SQLite", inputPath)
		}
	}

	n, err := writeOutput(result.Output, script, opts.Append)
	if err != nil {
		result.Err = err
		return result, err
	}
	result.Bytes = n

	log.Info("Converted %s -> %s (%d tables, %d rows, %s)",
		inputPath, result.Output, result.Tables, result.Rows, humanize.Bytes(uint64(n)))
	return result, nil
}

// writeOutput overwrites or appends script to path. Appended blocks are
// separated from existing content by a blank line.
func writeOutput(path, script string, appendMode bool) (int64, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return 0, fmt.Errorf("failed to create output directory: %w", err)
	}

	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if appendMode {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return 0, fmt.Errorf("failed to open output file: %w", err)
	}

	if appendMode {
		if info, err := f.Stat(); err == nil && info.Size() > 0 {
			script = "\n" + script
		}
	}

	n, err := f.WriteString(script)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return int64(n), fmt.Errorf("failed to write output file: %w", err)
	}
	return int64(n), nil
}

// IsSkippable reports whether err is a per-file failure that a directory
// scan logs and moves past.
func IsSkippable(err error) bool {
	return errors.Is(err, common.ErrFileNotReadable) ||
		errors.Is(err, common.ErrEmptyFile) ||
		errors.Is(err, common.ErrUnsupportedFormat)
}
