package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/darianmavgo/csvtosql/config"
	"github.com/darianmavgo/csvtosql/converters"
	_ "github.com/darianmavgo/csvtosql/converters/all"
	"github.com/darianmavgo/csvtosql/converters/common"
)

type rootFlags struct {
	configPath    string
	outputDir     string
	patterns      []string
	delimiter     string
	appendMode    bool
	verify        bool
	escapeQuotes  bool
	sanitizeNames bool
	verbose       bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "csvtosql [dir]",
		Short: "Convert CSV files into CREATE TABLE and INSERT statements",
		Long: `csvtosql scans a directory (the current directory by default) for CSV
files and writes one .sql file per input, containing a CREATE TABLE statement
with inferred column types followed by a multi-row INSERT.

Files that cannot be read, or that are empty, are reported and skipped.
The exit code is 0 even when individual files are skipped.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags, args)
			if err != nil {
				return err
			}
			return runConvert(cmd, cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.configPath, "config", "c", "", "HCL configuration file")
	f.StringVarP(&flags.outputDir, "output-dir", "o", "", "directory for .sql files (default: next to each input)")
	f.StringArrayVarP(&flags.patterns, "pattern", "p", nil, "file name pattern to convert, repeatable (default \"*.csv\")")
	f.StringVarP(&flags.delimiter, "delimiter", "d", "", "field delimiter: a single character, \"tab\" or \"auto\" (default: comma, tab for .tsv)")
	f.BoolVar(&flags.appendMode, "append", false, "append to existing .sql files instead of overwriting")
	f.BoolVar(&flags.verify, "verify", false, "execute the generated SQL against in-memory SQLite")
	f.BoolVar(&flags.escapeQuotes, "escape-quotes", false, "double single quotes inside values")
	f.BoolVar(&flags.sanitizeNames, "sanitize-names", false, "rewrite table and column names into SQL-compliant identifiers")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose output")

	cmd.AddCommand(newConfigCmd())
	return cmd
}

// resolveConfig layers defaults, the optional config file and explicitly
// set flags, in that order.
func resolveConfig(cmd *cobra.Command, flags *rootFlags, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	changed := cmd.Flags().Changed
	if len(args) == 1 {
		cfg.InputDir = args[0]
	}
	if changed("output-dir") {
		cfg.OutputDir = flags.outputDir
	}
	if changed("pattern") {
		cfg.Patterns = flags.patterns
	}
	if changed("delimiter") {
		cfg.Delimiter = flags.delimiter
	}
	if changed("append") {
		cfg.Append = flags.appendMode
	}
	if changed("verify") {
		cfg.Verify = flags.verify
	}
	if changed("escape-quotes") {
		cfg.EscapeQuotes = flags.escapeQuotes
	}
	if changed("sanitize-names") {
		cfg.SanitizeNames = flags.sanitizeNames
	}
	if changed("verbose") {
		cfg.Verbose = flags.verbose
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runConvert(cmd *cobra.Command, cfg *config.Config) error {
	out := cmd.OutOrStdout()
	logger := common.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)

	fmt.Fprintf(out, "Converting CSV files in %s\n", cfg.InputDir)
	summary, err := converters.ConvertDir(cmd.Context(), cfg.Options(logger))
	if err != nil {
		return err
	}

	verifyFailures := 0
	for _, r := range summary.Converted {
		if r.VerifyErr != nil {
			verifyFailures++
		}
	}
	if cfg.Verify && verifyFailures > 0 {
		fmt.Fprintf(out, "Done: %d converted, %d skipped, %d failed verification\n",
			len(summary.Converted), len(summary.Skipped), verifyFailures)
		return nil
	}
	fmt.Fprintf(out, "Done: %d converted, %d skipped\n", len(summary.Converted), len(summary.Skipped))
	return nil
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage csvtosql configuration files",
	}
	cmd.AddCommand(&cobra.Command{
		Use:          "export <path>",
		Short:        "Write the default configuration as HCL",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Export(args[0], config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", args[0])
			return nil
		},
	})
	return cmd
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return 1
}
