package common

// ConversionConfig stores configuration options for the conversion process.
type ConversionConfig struct {
	Delimiter       rune // Field delimiter; 0 selects the format default (comma, tab for .tsv)
	AutoDelimiter   bool // Detect the delimiter from the first line instead of using Delimiter
	SanitizeNames   bool // Rewrite table and column names with GenCompliantNames
	EscapeQuotes    bool // Double embedded single quotes in string literals
	QuoteIdentifier bool // Wrap table and column names in backticks
}

// DefaultConversionConfig returns the configuration used when none is given:
// format default delimiter, backtick identifiers, no escaping.
func DefaultConversionConfig() *ConversionConfig {
	return &ConversionConfig{
		QuoteIdentifier: true,
	}
}

// Clone returns a copy so drivers can fill in defaults without touching the caller's value.
func (c *ConversionConfig) Clone() *ConversionConfig {
	if c == nil {
		return DefaultConversionConfig()
	}
	cp := *c
	return &cp
}
