// =============================================================================
// CSV to vCard Converter - Shared Contact Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - csvparser
//   - xlsxparser
//   - validation
//   - vcard
//   - converter
//
// =============================================================================

package contact

import (
	"errors"
	"fmt"
	"strings"
)

// =============================================================================
// SENTINEL ERRORS
// =============================================================================
// All fatal pre-processing conditions are represented by sentinel errors so
// callers can classify failures with errors.Is. Each occurrence is wrapped
// with fmt.Errorf("...: %w", ...) to carry context.

var (
	// ErrInvalidInput indicates the input path does not reference an existing
	// file, or its extension is not a supported tabular-data extension.
	ErrInvalidInput = errors.New("invalid input file")

	// ErrMissingColumns indicates the input table lacks one or more of the
	// required columns after header normalization.
	ErrMissingColumns = errors.New("missing required columns")

	// ErrInvalidOutputPath indicates the output path does not end with the
	// vCard file extension.
	ErrInvalidOutputPath = errors.New("invalid output path")
)

// =============================================================================
// COLUMN KEYS
// =============================================================================

// Canonical column keys. Header names are lower-cased on load, so these are
// the only forms the rest of the pipeline ever sees.
const (
	ColFirstName = "first name"
	ColLastName  = "last name"
	ColEmail     = "email"
	ColPhone     = "phone"
)

// RequiredColumns is the set of canonical column keys that must be present
// in every input table. Additional columns are ignored.
var RequiredColumns = []string{ColFirstName, ColLastName, ColEmail, ColPhone}

// =============================================================================
// CONTACT RECORD
// =============================================================================

// Record represents a single contact row from the input table.
// Records are created by a table loader and read-only thereafter.
type Record struct {
	// FirstName is the contact's first name.
	FirstName string

	// LastName is the contact's last name.
	LastName string

	// Email is the contact's email address, as it appeared in the table.
	Email string

	// Phone is the contact's phone number, as it appeared in the table.
	Phone string

	// RowNumber is the row number in the original input file (1-indexed,
	// counting the header row). Useful for warnings and error reporting.
	RowNumber int
}

// FullName returns the contact's display name as emitted in the FN field.
func (r Record) FullName() string {
	return r.FirstName + " " + r.LastName
}

// =============================================================================
// CONTACT TABLE
// =============================================================================

// Table is an ordered sequence of contact records. Insertion order equals
// input row order, which determines the order of emitted cards.
type Table struct {
	// Headers contains the normalized (lower-cased) column headers.
	Headers []string

	// Records contains the data rows in input order.
	Records []Record

	// SourceFile is the path to the source table file.
	SourceFile string
}

// MissingColumns returns the required columns absent from the table headers,
// in RequiredColumns order. An empty result means the schema is valid.
// Pure check, no mutation.
func (t *Table) MissingColumns() []string {
	present := make(map[string]bool, len(t.Headers))
	for _, h := range t.Headers {
		present[h] = true
	}

	var missing []string
	for _, col := range RequiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	return missing
}

// ValidateSchema fails with ErrMissingColumns, naming the missing columns,
// if any required column is absent after normalization.
func (t *Table) ValidateSchema() error {
	missing := t.MissingColumns()
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: input table must include the following columns: [%s]",
		ErrMissingColumns, strings.Join(missing, ", "))
}

// NormalizeHeader returns the canonical (lower-cased, trimmed) form of a
// column header used for case-insensitive matching.
func NormalizeHeader(header string) string {
	return strings.ToLower(strings.TrimSpace(header))
}
