// =============================================================================
// CSV to vCard Converter - Converter Module
// =============================================================================
//
// This module contains the core conversion logic. It orchestrates the entire
// pipeline for a single run, from table loading to writing the .vcf file.
//
// CONVERSION PIPELINE:
//   1. Check the input path (must exist, must be .csv or .xlsx)
//   2. Check the output path (must end in .vcf)
//   3. Load the contact table with the matching loader
//   4. Validate the table schema (required columns present)
//   5. Validate each record's phone and email patterns
//   6. Apply the invalid-record policy (skip / include with warning / fail)
//   7. Render the vCard document
//   8. Confirm overwrite if the destination exists, then write
//
// All fatal conditions are detected before any output touches disk; the only
// errors that can surface later are filesystem errors during the write
// itself. There are no retries anywhere. Re-running the tool is the recovery
// mechanism.
//
// =============================================================================

package converter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/contactforge/csv-to-vcard/internal/config"
	"github.com/contactforge/csv-to-vcard/internal/contact"
	"github.com/contactforge/csv-to-vcard/internal/csvparser"
	"github.com/contactforge/csv-to-vcard/internal/validation"
	"github.com/contactforge/csv-to-vcard/internal/vcard"
	"github.com/contactforge/csv-to-vcard/internal/xlsxparser"
	"github.com/contactforge/csv-to-vcard/pkg/utils"
)

// ErrRecordValidation is returned when the on_invalid policy is "fail" and
// at least one record fails its pattern checks.
var ErrRecordValidation = errors.New("record validation failed")

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of a conversion run.
type Result struct {
	// InputFile is the path to the input table that was processed.
	InputFile string

	// OutputFile is the destination path for the vCard document.
	OutputFile string

	// Success indicates whether the run completed without a fatal error.
	Success bool

	// Written indicates whether the document was persisted to disk. It is
	// false on a dry run and when the overwrite prompt is declined.
	Written bool

	// Error contains the fatal error if the run failed.
	Error error

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// ProcessingStats contains statistics about a run.
type ProcessingStats struct {
	// RowsProcessed is the number of table rows read.
	RowsProcessed int

	// CardsEmitted is the number of card blocks in the document.
	CardsEmitted int

	// InvalidRecords is the number of records with a failed pattern check.
	InvalidRecords int

	// RecordsSkipped is the number of flagged records dropped from the
	// document (only non-zero under the "skip" policy).
	RecordsSkipped int

	// ProcessingTime is the time taken by the run.
	ProcessingTime time.Duration
}

// =============================================================================
// LOGGER
// =============================================================================

// Logger is the console surface of the pipeline. The default implementation
// writes to stdout; tests substitute their own.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// defaultLogger prints messages to stdout. Debug output is gated behind the
// verbose flag.
type defaultLogger struct {
	verbose bool
}

func (l *defaultLogger) Debug(format string, args ...interface{}) {
	if l.verbose {
		fmt.Printf(format+"\n", args...)
	}
}

func (l *defaultLogger) Info(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}

func (l *defaultLogger) Warn(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}

func (l *defaultLogger) Error(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// NewLogger returns the default stdout logger.
func NewLogger(verbose bool) Logger {
	return &defaultLogger{verbose: verbose}
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Converter handles the conversion of a single contact table to a vCard file.
type Converter struct {
	// inputPath is the path to the input table file.
	inputPath string

	// outputPath is the destination path for the vCard document.
	outputPath string

	// cfg is the application configuration.
	cfg *config.Config

	// DryRun simulates processing without writing the output file.
	DryRun bool

	// PromptIn and PromptOut carry the overwrite confirmation dialogue.
	// They default to os.Stdin and os.Stdout.
	PromptIn  io.Reader
	PromptOut io.Writer

	// Logger receives all console output of the pipeline.
	Logger Logger
}

// New creates a new Converter instance.
//
// PARAMETERS:
//   - inputPath: The path to the input table file.
//   - outputPath: The destination path for the vCard document.
//   - cfg: The application configuration.
//
// RETURNS:
//   - A new Converter instance wired to stdin/stdout.
func New(inputPath, outputPath string, cfg *config.Config) *Converter {
	return &Converter{
		inputPath:  inputPath,
		outputPath: outputPath,
		cfg:        cfg,
		PromptIn:   os.Stdin,
		PromptOut:  os.Stdout,
		Logger:     NewLogger(false),
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the conversion pipeline.
func (c *Converter) Run() Result {
	startTime := time.Now()
	result := Result{
		InputFile:  c.inputPath,
		OutputFile: c.outputPath,
	}

	emitted, err := c.prepare(&result)
	if err != nil {
		result.Error = err
		result.Stats.ProcessingTime = time.Since(startTime)
		return result
	}

	// =========================================================================
	// RENDER THE DOCUMENT
	// =========================================================================

	document := vcard.GenerateWithOptions(emitted, vcard.GenerateOptions{
		EscapeValues: c.cfg.EscapeValues,
	})
	result.Stats.CardsEmitted = len(emitted)

	c.Logger.Info("Successfully generated contact file for %d people", len(emitted))

	// =========================================================================
	// CONFIRM AND WRITE
	// =========================================================================

	if c.DryRun {
		c.Logger.Info("Dry run: results not written to file")
		result.Success = true
		result.Stats.ProcessingTime = time.Since(startTime)
		return result
	}

	if utils.FileExists(c.outputPath) && !c.cfg.ForceOverwrite {
		if !utils.ConfirmOverwrite(c.PromptIn, c.PromptOut, c.outputPath) {
			c.Logger.Info("Results not written to file")
			result.Success = true
			result.Stats.ProcessingTime = time.Since(startTime)
			return result
		}
	}

	if err := utils.WriteDocument(c.outputPath, document); err != nil {
		result.Error = err
		result.Stats.ProcessingTime = time.Since(startTime)
		return result
	}

	c.Logger.Info("%d contacts successfully published to file %s", len(emitted), c.outputPath)

	result.Success = true
	result.Written = true
	result.Stats.ProcessingTime = time.Since(startTime)
	return result
}

// Check runs every pre-processing stage (path checks, table load, schema
// check, record validation) without rendering or writing anything. Used by
// the validate command.
func (c *Converter) Check() Result {
	startTime := time.Now()
	result := Result{
		InputFile:  c.inputPath,
		OutputFile: c.outputPath,
	}

	if _, err := c.prepare(&result); err != nil {
		result.Error = err
	} else {
		result.Success = true
	}

	result.Stats.ProcessingTime = time.Since(startTime)
	return result
}

// =============================================================================
// PIPELINE STAGES
// =============================================================================

// prepare runs the fatal pre-processing stages in order and returns the
// records to emit after applying the invalid-record policy.
func (c *Converter) prepare(result *Result) ([]contact.Record, error) {
	// =========================================================================
	// STAGE 1: PATH CHECKS
	// =========================================================================
	// Every fatal extension/path condition is raised here, before any
	// parsing work begins.

	loader, err := c.resolveLoader()
	if err != nil {
		return nil, err
	}

	if !utils.HasExtension(c.outputPath, vcard.Extension) {
		return nil, fmt.Errorf("%w: output file must end with %q (got %q)",
			contact.ErrInvalidOutputPath, vcard.Extension, c.outputPath)
	}

	// =========================================================================
	// STAGE 2: LOAD THE TABLE
	// =========================================================================

	table, err := loader()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", c.inputPath, err)
	}

	result.Stats.RowsProcessed = len(table.Records)
	c.Logger.Debug("Parsed %d rows from %s", len(table.Records), c.inputPath)

	// =========================================================================
	// STAGE 3: SCHEMA VALIDATION
	// =========================================================================

	if err := table.ValidateSchema(); err != nil {
		return nil, err
	}

	// =========================================================================
	// STAGE 4: RECORD VALIDATION
	// =========================================================================

	validator := validation.NewValidatorWithOptions(validation.Options{
		AnchorPatterns: c.cfg.AnchorPatterns,
	})
	vres := validator.ValidateTable(table)
	result.Stats.InvalidRecords = vres.InvalidCount

	for _, warning := range vres.Warnings() {
		c.Logger.Warn("%s", warning.Message)
	}

	return c.applyPolicy(vres, result)
}

// resolveLoader checks the input path and picks the loader matching its
// extension.
func (c *Converter) resolveLoader() (func() (*contact.Table, error), error) {
	if !utils.FileExists(c.inputPath) {
		return nil, fmt.Errorf("%w: input file %s is not a valid file path",
			contact.ErrInvalidInput, c.inputPath)
	}

	switch {
	case utils.HasExtension(c.inputPath, csvparser.Extension):
		return func() (*contact.Table, error) {
			return csvparser.Parse(c.inputPath, c.cfg.CSVSettings)
		}, nil
	case utils.HasExtension(c.inputPath, xlsxparser.Extension):
		return func() (*contact.Table, error) {
			return xlsxparser.Parse(c.inputPath)
		}, nil
	default:
		return nil, fmt.Errorf("%w: input file must end with %q or %q (got %q)",
			contact.ErrInvalidInput, csvparser.Extension, xlsxparser.Extension, c.inputPath)
	}
}

// applyPolicy applies the configured invalid-record policy to the validation
// outcome and returns the records to emit, in table order.
func (c *Converter) applyPolicy(vres *validation.Result, result *Result) ([]contact.Record, error) {
	emitted := make([]contact.Record, 0, len(vres.RecordResults))

	for _, rr := range vres.RecordResults {
		if rr.Valid {
			emitted = append(emitted, rr.Record)
			continue
		}

		switch c.cfg.OnInvalid {
		case config.OnInvalidSkip:
			c.Logger.Info("Skipping %s", rr.Record.FullName())
			result.Stats.RecordsSkipped++
		case config.OnInvalidFail:
			return nil, fmt.Errorf("%w: row %d (%s)",
				ErrRecordValidation, rr.Record.RowNumber, rr.Record.FullName())
		default:
			// include_with_warning: the warning has already been printed;
			// the record is still emitted.
			emitted = append(emitted, rr.Record)
		}
	}

	return emitted, nil
}
