// =============================================================================
// CSV to vCard Converter - Convert Command
// =============================================================================
//
// This file defines the 'convert' command, which runs the full conversion
// pipeline: load the contact table, validate it, render the vCard document,
// and write the output file.
//
// COMMAND USAGE:
//   csv-to-vcard convert --input <path> [flags]
//
// FLAGS:
//   --input       : Path to the input table (.csv or .xlsx); required
//   --output      : Destination path; must end in .vcf (default contact_file.vcf)
//   --force       : Overwrite an existing output file without prompting
//   --on-invalid  : skip | include_with_warning | fail
//   --dry-run     : Run the pipeline without writing the output file
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/contactforge/csv-to-vcard/internal/config"
	"github.com/contactforge/csv-to-vcard/internal/converter"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// inputPath is the path to the input table file.
var inputPath string

// outputPath is the destination path; empty means the configured default.
var outputPath string

// forceOverwrite suppresses the interactive overwrite prompt.
var forceOverwrite bool

// onInvalid overrides the configured invalid-record policy.
var onInvalid string

// dryRun simulates processing without writing the output file.
var dryRun bool

// =============================================================================
// CONVERT COMMAND DEFINITION
// =============================================================================

// convertCmd represents the 'convert' command.
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a contact table to a vCard file",
	Long: `The convert command reads a contact table from a CSV or XLSX file, checks
that the required columns (first name, last name, email, phone) are present,
validates each record's phone and email, and writes one vCard block per
contact to the output file, in input row order.

Records failing validation are reported on the console. What happens to them
is controlled by --on-invalid:
  include_with_warning  keep the record in the output (default)
  skip                  drop the record from the output
  fail                  abort the run before anything is written

If the output file already exists you are asked before it is overwritten,
unless --force is given.`,

	// RunE is like Run but returns an error. This is preferred for commands
	// that can fail, as it allows Cobra to handle the error gracefully.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert()
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the convert command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(
		&inputPath,
		"input",
		"i",
		"",
		"Path to the input table file (.csv or .xlsx)",
	)
	convertCmd.MarkFlagRequired("input")

	convertCmd.Flags().StringVarP(
		&outputPath,
		"output",
		"o",
		"",
		"Destination path for the vCard file; must end in .vcf (default contact_file.vcf)",
	)

	convertCmd.Flags().BoolVar(
		&forceOverwrite,
		"force",
		false,
		"Overwrite an existing output file without prompting",
	)

	convertCmd.Flags().StringVar(
		&onInvalid,
		"on-invalid",
		"",
		"Handling of records failing validation: skip, include_with_warning, or fail",
	)

	convertCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Run the pipeline without writing the output file",
	)
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runConvert loads the configuration, applies flag overrides, and runs the
// conversion pipeline.
func runConvert() error {
	cfg, err := loadConfigWithOverrides()
	if err != nil {
		return err
	}

	destination := outputPath
	if destination == "" {
		destination = cfg.OutputPath
	}

	conv := converter.New(inputPath, destination, cfg)
	conv.DryRun = dryRun
	conv.Logger = converter.NewLogger(verbose)

	result := conv.Run()
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// loadConfigWithOverrides loads the configuration file and applies the
// command-line flag overrides on top of it.
func loadConfigWithOverrides() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if forceOverwrite {
		cfg.ForceOverwrite = true
	}
	if onInvalid != "" {
		cfg.OnInvalid = onInvalid
		if err := config.Validate(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}
