// =============================================================================
// CSV to vCard Converter - CSV Parser Module
// =============================================================================
//
// This module is responsible for loading a contact table from a CSV file.
// Column-name matching is case-insensitive: all header names are lower-cased
// before comparison and storage, so a header of "Email" and a header of
// "email" are treated identically. Columns beyond the four required ones are
// ignored.
//
// FEATURES:
//   - Flexible configuration via config.CSVSettings
//   - Case-insensitive header normalization
//   - Empty rows are skipped
//   - Robust error handling with detailed error messages
//
// =============================================================================

package csvparser

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/contactforge/csv-to-vcard/internal/config"
	"github.com/contactforge/csv-to-vcard/internal/contact"
)

// Extension is the tabular-data extension this loader accepts.
const Extension = ".csv"

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse reads a CSV file and returns the parsed contact table.
//
// PARAMETERS:
//   - filePath: The path to the CSV file.
//   - settings: The CSV parsing settings.
//
// RETURNS:
//   - A pointer to the contact.Table containing the parsed records.
//   - An error if the file cannot be read or parsed.
//
// PARSING PROCESS:
//   1. Open the file
//   2. Configure the CSV reader with the specified delimiter and quote settings
//   3. Read and normalize the header row
//   4. Convert each data row into a contact.Record, preserving input order
func Parse(filePath string, settings config.CSVSettings) (*contact.Table, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	csvReader := csv.NewReader(bufio.NewReader(file))
	configureReader(csvReader, settings)

	allRows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	if len(allRows) == 0 {
		return nil, fmt.Errorf("CSV file is empty")
	}

	headers := normalizeHeaders(allRows[0])

	table := &contact.Table{
		Headers:    headers,
		SourceFile: filePath,
	}
	table.Records = buildRecords(allRows[1:], headers)

	return table, nil
}

// configureReader configures the CSV reader based on the settings.
func configureReader(reader *csv.Reader, settings config.CSVSettings) {
	// Set the delimiter. Handle spelled-out names for common delimiters.
	switch settings.Delimiter {
	case "\\t", "tab", "TAB":
		reader.Comma = '\t'
	case "|", "pipe", "PIPE":
		reader.Comma = '|'
	case ";", "semicolon":
		reader.Comma = ';'
	default:
		if len(settings.Delimiter) > 0 {
			reader.Comma = rune(settings.Delimiter[0])
		} else {
			reader.Comma = ','
		}
	}

	// Allow variable number of fields per row.
	// This is useful for CSVs with inconsistent column counts.
	reader.FieldsPerRecord = -1

	if settings.LazyQuotes != nil {
		reader.LazyQuotes = *settings.LazyQuotes
	}
	if settings.TrimLeadingSpace != nil {
		reader.TrimLeadingSpace = *settings.TrimLeadingSpace
	}
}

// normalizeHeaders lower-cases and trims all header names.
func normalizeHeaders(raw []string) []string {
	headers := make([]string, len(raw))
	for i, h := range raw {
		headers[i] = contact.NormalizeHeader(h)
	}
	return headers
}

// buildRecords converts data rows into contact records, preserving input
// order. Rows containing only empty cells are skipped.
//
// PARAMETERS:
//   - dataRows: The raw data rows (header row excluded).
//   - headers: The normalized column headers.
//
// RETURNS:
//   - A slice of contact records in input row order.
func buildRecords(dataRows [][]string, headers []string) []contact.Record {
	records := make([]contact.Record, 0, len(dataRows))

	for i, row := range dataRows {
		if isRowEmpty(row) {
			continue
		}

		fields := make(map[string]string, len(headers))
		for colIndex, header := range headers {
			if colIndex < len(row) {
				fields[header] = row[colIndex]
			} else {
				// Column is missing in this row.
				fields[header] = ""
			}
		}

		records = append(records, contact.Record{
			FirstName: fields[contact.ColFirstName],
			LastName:  fields[contact.ColLastName],
			Email:     fields[contact.ColEmail],
			Phone:     fields[contact.ColPhone],
			RowNumber: i + 2, // 1-indexed, after the header row
		})
	}

	return records
}

// isRowEmpty checks if a row contains only empty values.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
