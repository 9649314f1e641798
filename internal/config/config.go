// =============================================================================
// CSV to vCard Converter - Configuration Module
// =============================================================================
//
// This module is responsible for loading and managing the application
// configuration. The configuration file is optional: when it is absent, the
// built-in defaults apply.
//
// CONFIGURATION FILE (config.yaml):
//   output_path: contact_file.vcf
//   on_invalid: include_with_warning   # skip | include_with_warning | fail
//   anchor_patterns: false
//   escape_values: true
//   force_overwrite: false
//   csv_settings:
//     delimiter: ","
//
// ARCHITECTURE:
//   The configuration system is designed to be:
//   - Optional: a missing file yields the built-in defaults
//   - Validated: all configurations are validated on load
//   - Overridable: CLI flags take precedence over file values
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// INVALID-RECORD POLICIES
// =============================================================================

// Valid values for the on_invalid setting. The policy controls what happens
// to a record whose phone or email fails its pattern check.
const (
	// OnInvalidSkip drops the flagged record from the output document.
	OnInvalidSkip = "skip"

	// OnInvalidInclude keeps the flagged record in the output document and
	// only prints a warning. This is the historical behavior and the default.
	OnInvalidInclude = "include_with_warning"

	// OnInvalidFail aborts the run on the first flagged record, before any
	// output touches disk.
	OnInvalidFail = "fail"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// OutputPath is the default destination for the generated vCard file.
	// Must end with ".vcf". Overridden by the --output flag.
	// Default: "contact_file.vcf"
	OutputPath string `yaml:"output_path"`

	// OnInvalid controls how records failing validation are handled.
	// Valid values: "skip", "include_with_warning", "fail".
	// Default: "include_with_warning"
	OnInvalid string `yaml:"on_invalid"`

	// AnchorPatterns anchors the validation patterns to the full field value
	// instead of matching them as substring searches.
	// Default: false (preserves the historical loose matching)
	AnchorPatterns bool `yaml:"anchor_patterns"`

	// EscapeValues escapes vCard-reserved characters (backslash, comma,
	// semicolon, newline) in field values before rendering.
	// Default: true
	EscapeValues bool `yaml:"escape_values"`

	// ForceOverwrite suppresses the interactive overwrite prompt and always
	// overwrites an existing output file. Overridden by the --force flag.
	// Default: false
	ForceOverwrite bool `yaml:"force_overwrite"`

	// CSVSettings contains settings for parsing the input CSV file.
	CSVSettings CSVSettings `yaml:"csv_settings"`
}

// CSVSettings contains settings for parsing CSV files.
type CSVSettings struct {
	// Delimiter is the character used to separate fields in the CSV.
	// Common values: "," (comma), "|" (pipe), "\t" (tab)
	// Default: ","
	Delimiter string `yaml:"delimiter"`

	// TrimLeadingSpace trims leading whitespace from each field.
	// Default: true
	TrimLeadingSpace *bool `yaml:"trim_leading_space"`

	// LazyQuotes allows quotes that don't follow strict CSV rules.
	// Default: true
	LazyQuotes *bool `yaml:"lazy_quotes"`
}

// =============================================================================
// CONFIGURATION LOADING
// =============================================================================

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{EscapeValues: true}
	applyDefaults(cfg)
	return cfg
}

// Load loads the configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the configuration file. If the file does not
//     exist, the built-in defaults are returned without error.
//
// RETURNS:
//   - A pointer to the Config struct.
//   - An error if the file exists but cannot be read or parsed.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// The zero value of bool cannot distinguish "unset" from "false", so
	// escape_values is seeded before decoding; yaml leaves fields untouched
	// when their key is absent.
	cfg := Config{EscapeValues: true}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.OutputPath == "" {
		cfg.OutputPath = "contact_file.vcf"
	}
	if cfg.OnInvalid == "" {
		cfg.OnInvalid = OnInvalidInclude
	}
	if cfg.CSVSettings.Delimiter == "" {
		cfg.CSVSettings.Delimiter = ","
	}
	if cfg.CSVSettings.TrimLeadingSpace == nil {
		cfg.CSVSettings.TrimLeadingSpace = boolPtr(true)
	}
	if cfg.CSVSettings.LazyQuotes == nil {
		cfg.CSVSettings.LazyQuotes = boolPtr(true)
	}
}

// Validate validates the configuration values.
func Validate(cfg *Config) error {
	switch cfg.OnInvalid {
	case OnInvalidSkip, OnInvalidInclude, OnInvalidFail:
	default:
		return fmt.Errorf("on_invalid must be one of %q, %q, %q (got %q)",
			OnInvalidSkip, OnInvalidInclude, OnInvalidFail, cfg.OnInvalid)
	}

	if len(cfg.CSVSettings.Delimiter) == 0 {
		return fmt.Errorf("csv_settings.delimiter must not be empty")
	}

	return nil
}

// =============================================================================
// HELPERS
// =============================================================================

func boolPtr(b bool) *bool {
	return &b
}
