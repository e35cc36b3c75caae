package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"

	"github.com/darianmavgo/csvtosql/converters"
	"github.com/darianmavgo/csvtosql/converters/common"
)

// Config represents the application configuration.
// Files ending in .yaml or .yml are read as YAML, everything else as HCL.
type Config struct {
	InputDir      string   `hcl:"input_dir,optional" yaml:"input_dir"`
	OutputDir     string   `hcl:"output_dir,optional" yaml:"output_dir"`
	Patterns      []string `hcl:"patterns,optional" yaml:"patterns"`
	Append        bool     `hcl:"append,optional" yaml:"append"`
	Verify        bool     `hcl:"verify,optional" yaml:"verify"`
	EscapeQuotes  bool     `hcl:"escape_quotes,optional" yaml:"escape_quotes"`
	SanitizeNames bool     `hcl:"sanitize_names,optional" yaml:"sanitize_names"`
	Delimiter     string   `hcl:"delimiter,optional" yaml:"delimiter"`
	Verbose       bool     `hcl:"verbose,optional" yaml:"verbose"`
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		InputDir: ".",
		Patterns: append([]string(nil), converters.DefaultPatterns...),
	}
}

// Load reads the configuration from the given file. Attributes missing
// from the file keep their defaults.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if isYAML(path) {
		err = decodeYAML(content, cfg)
	} else {
		err = decodeHCL(content, path, cfg)
	}
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeHCL(content []byte, filename string, cfg *Config) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(content, filename)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse config file: %s", diags.Error())
	}

	diags = gohcl.DecodeBody(file.Body, nil, cfg)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode config: %s", diags.Error())
	}
	return nil
}

func decodeYAML(content []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to decode config: %w", err)
	}
	return nil
}

// Validate checks values that decoding alone does not.
func (c *Config) Validate() error {
	if _, _, ok := common.ParseDelimiter(c.Delimiter); !ok {
		return fmt.Errorf("invalid delimiter %q: want a single character, \"tab\" or \"auto\"", c.Delimiter)
	}
	if len(c.Patterns) == 0 {
		return fmt.Errorf("patterns must not be empty")
	}
	return nil
}

// ConversionConfig returns the loader and renderer settings.
func (c *Config) ConversionConfig() *common.ConversionConfig {
	delim, auto, _ := common.ParseDelimiter(c.Delimiter)
	cc := common.DefaultConversionConfig()
	cc.Delimiter = delim
	cc.AutoDelimiter = auto
	cc.EscapeQuotes = c.EscapeQuotes
	cc.SanitizeNames = c.SanitizeNames
	return cc
}

// Options returns directory conversion options for this configuration.
func (c *Config) Options(logger *common.Logger) *converters.Options {
	return &converters.Options{
		InputDir:  c.InputDir,
		OutputDir: c.OutputDir,
		Patterns:  c.Patterns,
		Append:    c.Append,
		Verify:    c.Verify,
		Config:    c.ConversionConfig(),
		Logger:    logger,
	}
}

// Export writes the configuration to the specified file, in YAML when the
// path ends in .yaml or .yml and in HCL otherwise.
func Export(path string, cfg *Config) error {
	content := encodeHCL(cfg)
	if isYAML(path) {
		var err error
		content, err = yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	_, err = file.Write(content)
	if err != nil {
		return fmt.Errorf("failed to write config to file: %w", err)
	}

	return nil
}

func encodeHCL(cfg *Config) []byte {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	patterns := cty.ListValEmpty(cty.String)
	if len(cfg.Patterns) > 0 {
		vals := make([]cty.Value, len(cfg.Patterns))
		for i, p := range cfg.Patterns {
			vals[i] = cty.StringVal(p)
		}
		patterns = cty.ListVal(vals)
	}

	root.SetAttributeValue("input_dir", cty.StringVal(cfg.InputDir))
	root.SetAttributeValue("output_dir", cty.StringVal(cfg.OutputDir))
	root.SetAttributeValue("patterns", patterns)
	root.SetAttributeValue("delimiter", cty.StringVal(cfg.Delimiter))
	root.AppendNewline()
	root.SetAttributeValue("append", cty.BoolVal(cfg.Append))
	root.SetAttributeValue("verify", cty.BoolVal(cfg.Verify))
	root.SetAttributeValue("escape_quotes", cty.BoolVal(cfg.EscapeQuotes))
	root.SetAttributeValue("sanitize_names", cty.BoolVal(cfg.SanitizeNames))
	root.SetAttributeValue("verbose", cty.BoolVal(cfg.Verbose))

	return f.Bytes()
}
