package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactforge/csv-to-vcard/internal/contact"
)

func TestCheckPhone(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{"555-123-4567", true},
		{"(555) 123-4567", true},
		{"5551234567", true},
		{"555 123 4567", true},
		{"1-555-123-4567", true},
		{"+1 555-123-4567", true},
		{"+15551234567", true},
		{"12345", false},
		{"", false},
		{"555-123-456", false},
		{"phone: 555-123-4567", false}, // the phone pattern anchors itself
		{"555-1234-567", false},
	}

	v := NewValidator()
	for _, tt := range tests {
		assert.Equal(t, tt.valid, v.CheckPhone(tt.value), "phone %q", tt.value)
	}
}

func TestCheckEmail(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{"a.b+c@example.co", true},
		{"jane@x.com", true},
		{"jane_doe%test@mail.example.org", true},
		{"not-an-email", false},
		{"", false},
		{"jane@x", false},
		{"@example.com", false},
		// Substring matching: an address embedded in garbage still passes
		// in the default mode.
		{"garbage jane@x.com garbage", true},
		{"jane@x.com,bob@y.org", true},
	}

	v := NewValidator()
	for _, tt := range tests {
		assert.Equal(t, tt.valid, v.CheckEmail(tt.value), "email %q", tt.value)
	}
}

func TestCheckEmailAnchored(t *testing.T) {
	v := NewValidatorWithOptions(Options{AnchorPatterns: true})

	assert.True(t, v.CheckEmail("a.b+c@example.co"))
	assert.False(t, v.CheckEmail("garbage jane@x.com garbage"))
	assert.False(t, v.CheckEmail("jane@x.com trailing"))
}

func TestValidateRecordValid(t *testing.T) {
	v := NewValidator()
	result := v.ValidateRecord(contact.Record{
		FirstName: "Jane", LastName: "Doe",
		Email: "jane@x.com", Phone: "555-111-2222",
	})

	assert.True(t, result.Valid)
	assert.Empty(t, result.Warnings)
}

func TestValidateRecordBadEmail(t *testing.T) {
	v := NewValidator()
	result := v.ValidateRecord(contact.Record{
		FirstName: "Bob", LastName: "Roe",
		Email: "bad-email", Phone: "5551112222",
		RowNumber: 3,
	})

	assert.False(t, result.Valid)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, contact.ColEmail, result.Warnings[0].Field)
	assert.Equal(t, "Bad Email for Bob Roe", result.Warnings[0].Message)
	assert.Equal(t, 3, result.Warnings[0].RowNumber)
}

func TestValidateRecordBothFieldsChecked(t *testing.T) {
	v := NewValidator()
	result := v.ValidateRecord(contact.Record{
		FirstName: "Ann", LastName: "Lee",
		Email: "nope", Phone: "12345",
	})

	assert.False(t, result.Valid)
	require.Len(t, result.Warnings, 2)
	assert.Equal(t, "Bad Phone Number for Ann Lee", result.Warnings[0].Message)
	assert.Equal(t, "Bad Email for Ann Lee", result.Warnings[1].Message)
}

func TestValidateTable(t *testing.T) {
	table := &contact.Table{
		Records: []contact.Record{
			{FirstName: "Jane", LastName: "Doe", Email: "jane@x.com", Phone: "555-111-2222"},
			{FirstName: "Bob", LastName: "Roe", Email: "bad-email", Phone: "5551112222"},
			{FirstName: "Ann", LastName: "Lee", Email: "ann@z.io", Phone: "12345"},
		},
	}

	result := NewValidator().ValidateTable(table)

	assert.Equal(t, 3, result.RecordsValidated)
	assert.Equal(t, 2, result.InvalidCount)
	require.Len(t, result.RecordResults, 3)
	assert.True(t, result.RecordResults[0].Valid)
	assert.False(t, result.RecordResults[1].Valid)
	assert.False(t, result.RecordResults[2].Valid)

	warnings := result.Warnings()
	require.Len(t, warnings, 2)
	assert.Equal(t, "Bad Email for Bob Roe", warnings[0].Message)
	assert.Equal(t, "Bad Phone Number for Ann Lee", warnings[1].Message)
}
