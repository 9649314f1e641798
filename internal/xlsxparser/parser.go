// =============================================================================
// CSV to vCard Converter - XLSX Parser Module
// =============================================================================
//
// This module loads a contact table from an XLSX workbook, for users who
// maintain their contact list in a spreadsheet rather than a CSV export.
// The first sheet of the workbook is read; its first row is treated as the
// header row. Header normalization and record construction follow the same
// contract as the CSV loader, so the rest of the pipeline does not care
// which loader produced the table.
//
// =============================================================================

package xlsxparser

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/contactforge/csv-to-vcard/internal/contact"
)

// Extension is the spreadsheet extension this loader accepts.
const Extension = ".xlsx"

// Parse reads the first sheet of an XLSX workbook and returns the parsed
// contact table.
//
// PARAMETERS:
//   - filePath: The path to the XLSX workbook.
//
// RETURNS:
//   - A pointer to the contact.Table containing the parsed records.
//   - An error if the workbook cannot be opened or read.
func Parse(filePath string) (*contact.Table, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheetName)
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = contact.NormalizeHeader(h)
	}

	table := &contact.Table{
		Headers:    headers,
		SourceFile: filePath,
	}

	for i, row := range rows[1:] {
		if isRowEmpty(row) {
			continue
		}

		fields := make(map[string]string, len(headers))
		for colIndex, header := range headers {
			if colIndex < len(row) {
				fields[header] = row[colIndex]
			} else {
				// excelize drops trailing empty cells from each row.
				fields[header] = ""
			}
		}

		table.Records = append(table.Records, contact.Record{
			FirstName: fields[contact.ColFirstName],
			LastName:  fields[contact.ColLastName],
			Email:     fields[contact.ColEmail],
			Phone:     fields[contact.ColPhone],
			RowNumber: i + 2,
		})
	}

	return table, nil
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
