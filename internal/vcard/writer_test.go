package vcard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactforge/csv-to-vcard/internal/contact"
)

func TestRenderBlockLayout(t *testing.T) {
	rec := contact.Record{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@x.com",
		Phone:     "555-111-2222",
	}

	block := Render(rec, DefaultGenerateOptions())

	lines := strings.Split(strings.TrimSuffix(block, "\n"), "\n")
	require.Equal(t, []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"EMAIL:jane@x.com",
		"TEL;TYPE=cell,voice:555-111-2222",
		"FN:Jane Doe",
		"END:VCARD",
	}, lines)
	assert.True(t, strings.HasSuffix(block, "END:VCARD\n"))
}

func TestRenderEscapesReservedCharacters(t *testing.T) {
	rec := contact.Record{
		FirstName: "Jane",
		LastName:  "Doe; Jr,",
		Email:     "jane@x.com",
		Phone:     "555-111-2222",
	}

	block := Render(rec, DefaultGenerateOptions())
	assert.Contains(t, block, `FN:Jane Doe\; Jr\,`+"\n")
}

func TestEscape(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"plain", "plain"},
		{"a,b", `a\,b`},
		{"a;b", `a\;b`},
		{`a\b`, `a\\b`},
		{"a\nb", `a\nb`},
		{`a\,b`, `a\\\,b`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.out, Escape(tt.in), "escape %q", tt.in)
	}
}

func TestRenderWithoutEscaping(t *testing.T) {
	rec := contact.Record{
		FirstName: "Jane",
		LastName:  "Doe; Jr",
		Email:     "jane@x.com",
		Phone:     "555-111-2222",
	}

	block := Render(rec, GenerateOptions{EscapeValues: false})
	assert.Contains(t, block, "FN:Jane Doe; Jr\n")
}

func TestGenerateOneBlockPerRecordInOrder(t *testing.T) {
	records := []contact.Record{
		{FirstName: "Jane", LastName: "Doe", Email: "jane@x.com", Phone: "555-111-2222"},
		{FirstName: "Bob", LastName: "Roe", Email: "bad-email", Phone: "5551112222"},
		{FirstName: "Ann", LastName: "Lee", Email: "ann@z.io", Phone: "555-333-4444"},
	}

	document := string(Generate(records))

	assert.Equal(t, 3, strings.Count(document, "BEGIN:VCARD"))
	assert.Equal(t, 3, strings.Count(document, "END:VCARD"))

	// Cards appear in input order.
	jane := strings.Index(document, "FN:Jane Doe")
	bob := strings.Index(document, "FN:Bob Roe")
	ann := strings.Index(document, "FN:Ann Lee")
	assert.True(t, jane < bob && bob < ann)

	// Invalid-looking values are still inserted as-is.
	assert.Contains(t, document, "EMAIL:bad-email\n")
}

func TestGenerateEmpty(t *testing.T) {
	assert.Empty(t, Generate(nil))
}
