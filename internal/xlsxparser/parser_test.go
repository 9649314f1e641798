package xlsxparser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "contacts.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestParseWorkbook(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"First Name", "Last Name", "Email", "Phone"},
		{"Jane", "Doe", "jane@x.com", "555-111-2222"},
		{"Bob", "Roe", "bob@y.org", "5551112222"},
	})

	table, err := Parse(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"first name", "last name", "email", "phone"}, table.Headers)
	assert.Empty(t, table.MissingColumns())
	require.Len(t, table.Records, 2)

	assert.Equal(t, "Jane", table.Records[0].FirstName)
	assert.Equal(t, "jane@x.com", table.Records[0].Email)
	assert.Equal(t, 2, table.Records[0].RowNumber)
	assert.Equal(t, "Bob", table.Records[1].FirstName)
	assert.Equal(t, "5551112222", table.Records[1].Phone)
}

func TestParseWorkbookShortRow(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"First Name", "Last Name", "Email", "Phone"},
		{"Jane", "Doe"},
	})

	table, err := Parse(path)
	require.NoError(t, err)

	require.Len(t, table.Records, 1)
	assert.Equal(t, "", table.Records[0].Email)
	assert.Equal(t, "", table.Records[0].Phone)
}

func TestParseWorkbookMissingColumns(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"First Name", "Email"},
		{"Jane", "jane@x.com"},
	})

	table, err := Parse(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"last name", "phone"}, table.MissingColumns())
}

func TestParseMissingWorkbook(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.Error(t, err)
}
