// =============================================================================
// CSV to vCard Converter - Record Validation Engine
// =============================================================================
//
// This module validates contact records against the phone and email pattern
// rules. Validation never mutates a record; it produces a validity flag plus
// human-readable warnings naming the offending person and field.
//
// PATTERN RULES:
//   - Phone: North-American 10-digit numbers in common loose formats, with an
//     optional leading country code ("+1" or "1") and optional parentheses,
//     dashes, or spaces as separators.
//   - Email: a permissive local-part@domain.tld shape.
//
// MATCHING MODES:
//   Historically both patterns are applied as substring searches, so an email
//   embedded inside a longer string still passes. (The phone pattern carries
//   its own ^...$ anchors, so it is effectively exact either way.) The
//   AnchorPatterns option anchors the email pattern to the full field value.
//
// ERROR HANDLING:
//   - Warnings are collected, not thrown
//   - A failed check never aborts validation of the remaining fields
//   - The caller decides what to do with flagged records (skip, include,
//     or fail the run) based on the configured policy
//
// =============================================================================

package validation

import (
	"fmt"
	"regexp"

	"github.com/contactforge/csv-to-vcard/internal/contact"
)

// =============================================================================
// PATTERN CONSTANTS
// =============================================================================
// The patterns are owned by this package and compiled once at process start.
// There is no lifecycle beyond that; nothing mutates them.

const (
	// phonePattern accepts an optional +1/1 country code, optional
	// parentheses around the area code, and dashes or spaces as separators.
	phonePattern = `^(?:\+?1[- ]?)?\(?([0-9]{3})\)?[- ]?([0-9]{3})[- ]?([0-9]{4})$`

	// emailPattern requires a local-part@domain.tld shape with a 2+ letter
	// top-level segment.
	emailPattern = `[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`
)

var (
	phoneRegex         = regexp.MustCompile(phonePattern)
	emailRegex         = regexp.MustCompile(emailPattern)
	emailAnchoredRegex = regexp.MustCompile(`^(?:` + emailPattern + `)$`)
)

// =============================================================================
// VALIDATION WARNING TYPES
// =============================================================================

// FieldWarning represents a single failed field check.
type FieldWarning struct {
	// Field is the canonical column key of the field that failed.
	Field string

	// Value is the actual value that failed the check.
	Value string

	// Message is the human-readable warning, naming the offending person.
	Message string

	// RowNumber is the original input row number (for error reporting).
	RowNumber int
}

// String returns the warning message as printed to the console.
func (w *FieldWarning) String() string {
	return w.Message
}

// =============================================================================
// VALIDATION RESULTS
// =============================================================================

// RecordResult is the outcome of validating a single record.
type RecordResult struct {
	// Record is the record that was validated.
	Record contact.Record

	// Valid is true if both the phone and email checks passed.
	Valid bool

	// Warnings contains one entry per failed check.
	Warnings []*FieldWarning
}

// Result is the outcome of validating a whole table.
type Result struct {
	// RecordResults holds the per-record outcomes in table order.
	RecordResults []RecordResult

	// RecordsValidated is the total number of records checked.
	RecordsValidated int

	// InvalidCount is the number of records with at least one failed check.
	InvalidCount int
}

// Warnings flattens all per-record warnings in table order.
func (r *Result) Warnings() []*FieldWarning {
	var all []*FieldWarning
	for _, rr := range r.RecordResults {
		all = append(all, rr.Warnings...)
	}
	return all
}

// =============================================================================
// VALIDATOR
// =============================================================================

// Options contains options for validation.
type Options struct {
	// AnchorPatterns anchors the email pattern to the full field value
	// instead of accepting a substring match.
	// Default: false
	AnchorPatterns bool
}

// Validator performs pattern validation on contact records.
type Validator struct {
	options Options
}

// NewValidator creates a Validator with default options.
func NewValidator() *Validator {
	return &Validator{}
}

// NewValidatorWithOptions creates a Validator with custom options.
func NewValidatorWithOptions(options Options) *Validator {
	return &Validator{options: options}
}

// =============================================================================
// MAIN VALIDATION FUNCTIONS
// =============================================================================

// ValidateTable validates every record in the table, in table order.
func (v *Validator) ValidateTable(table *contact.Table) *Result {
	result := &Result{
		RecordResults:    make([]RecordResult, 0, len(table.Records)),
		RecordsValidated: len(table.Records),
	}

	for _, rec := range table.Records {
		rr := v.ValidateRecord(rec)
		if !rr.Valid {
			result.InvalidCount++
		}
		result.RecordResults = append(result.RecordResults, rr)
	}

	return result
}

// ValidateRecord checks one record's phone and email against the pattern
// rules and returns the validity flag plus any warnings. Both fields are
// always checked; a bad phone does not mask a bad email.
func (v *Validator) ValidateRecord(rec contact.Record) RecordResult {
	result := RecordResult{
		Record: rec,
		Valid:  true,
	}

	if !v.CheckPhone(rec.Phone) {
		result.Valid = false
		result.Warnings = append(result.Warnings, &FieldWarning{
			Field:     contact.ColPhone,
			Value:     rec.Phone,
			Message:   fmt.Sprintf("Bad Phone Number for %s", rec.FullName()),
			RowNumber: rec.RowNumber,
		})
	}

	if !v.CheckEmail(rec.Email) {
		result.Valid = false
		result.Warnings = append(result.Warnings, &FieldWarning{
			Field:     contact.ColEmail,
			Value:     rec.Email,
			Message:   fmt.Sprintf("Bad Email for %s", rec.FullName()),
			RowNumber: rec.RowNumber,
		})
	}

	return result
}

// =============================================================================
// FIELD CHECKS
// =============================================================================

// CheckPhone reports whether the value matches the phone pattern.
func (v *Validator) CheckPhone(value string) bool {
	return phoneRegex.MatchString(value)
}

// CheckEmail reports whether the value matches the email pattern. In the
// default substring mode any value containing a well-formed address passes.
func (v *Validator) CheckEmail(value string) bool {
	if v.options.AnchorPatterns {
		return emailAnchoredRegex.MatchString(value)
	}
	return emailRegex.MatchString(value)
}
