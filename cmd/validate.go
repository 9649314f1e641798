// =============================================================================
// CSV to vCard Converter - Validate Command
// =============================================================================
//
// This file defines the 'validate' command, which runs every pre-processing
// check of the pipeline (paths, extensions, required columns, per-record
// phone/email validation) without rendering or writing anything. Useful as a
// pre-flight step in automation, or to review validation warnings before
// committing to an output file.
//
// COMMAND USAGE:
//   csv-to-vcard validate --input <path> [--output <path>]
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/contactforge/csv-to-vcard/internal/converter"
)

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a contact table without writing any output",
	Long: `The validate command runs the same checks as 'convert' - input path and
extension, output extension, required columns, and per-record phone/email
patterns - but stops before rendering. Nothing is written to disk.

The exit status is non-zero for the same fatal conditions that would abort a
conversion. Records failing only the pattern checks are reported as warnings
and do not affect the exit status (they would not abort a conversion under
the default policy either).`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate()
	},
}

// init registers the validate command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(
		&inputPath,
		"input",
		"i",
		"",
		"Path to the input table file (.csv or .xlsx)",
	)
	validateCmd.MarkFlagRequired("input")

	validateCmd.Flags().StringVarP(
		&outputPath,
		"output",
		"o",
		"",
		"Destination path the conversion would use; must end in .vcf",
	)
}

// runValidate runs the pre-processing checks and prints a summary.
func runValidate() error {
	cfg, err := loadConfigWithOverrides()
	if err != nil {
		return err
	}

	destination := outputPath
	if destination == "" {
		destination = cfg.OutputPath
	}

	conv := converter.New(inputPath, destination, cfg)
	conv.Logger = converter.NewLogger(verbose)

	result := conv.Check()
	if result.Error != nil {
		return result.Error
	}

	fmt.Printf("%s: OK (%d rows, %d with validation warnings)\n",
		inputPath, result.Stats.RowsProcessed, result.Stats.InvalidRecords)
	return nil
}
