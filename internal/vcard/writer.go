// =============================================================================
// CSV to vCard Converter - vCard Writer Module
// =============================================================================
//
// This module renders contact records into vCard 3.0 card blocks and
// concatenates them into the output document. Only the minimal card fields
// are emitted, in this exact order:
//
//   BEGIN:VCARD
//   VERSION:3.0
//   EMAIL:jane@example.com
//   TEL;TYPE=cell,voice:555-111-2222
//   FN:Jane Doe
//   END:VCARD
//
// One block is rendered per record, in table order, so the number of blocks
// in the document always equals the number of records given to Generate.
//
// ESCAPING:
//   vCard reserves backslash, comma, semicolon, and newline inside property
//   values. By default field values are escaped before insertion; the
//   EscapeValues option turns this off to reproduce verbatim insertion.
//
// =============================================================================

package vcard

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/contactforge/csv-to-vcard/internal/contact"
)

// Extension is the card-file extension required of output paths.
const Extension = ".vcf"

// cardTemplate is the fixed five-field block layout. The trailing newline
// after END:VCARD separates consecutive blocks in the document.
const cardTemplate = "BEGIN:VCARD\n" +
	"VERSION:3.0\n" +
	"EMAIL:%s\n" +
	"TEL;TYPE=cell,voice:%s\n" +
	"FN:%s %s\n" +
	"END:VCARD\n"

// =============================================================================
// GENERATION OPTIONS
// =============================================================================

// GenerateOptions contains options for document generation.
type GenerateOptions struct {
	// EscapeValues escapes vCard-reserved characters in field values.
	// Default: true
	EscapeValues bool
}

// DefaultGenerateOptions returns the default generation options.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		EscapeValues: true,
	}
}

// =============================================================================
// GENERATION FUNCTIONS
// =============================================================================

// Generate renders one card block per record, in order, and returns the
// concatenated document.
func Generate(records []contact.Record) []byte {
	return GenerateWithOptions(records, DefaultGenerateOptions())
}

// GenerateWithOptions renders the document with custom options.
//
// PARAMETERS:
//   - records: The records to render, already filtered per the configured
//     invalid-record policy.
//   - options: The generation options.
//
// RETURNS:
//   - The document as a byte slice, one block per record in input order.
func GenerateWithOptions(records []contact.Record, options GenerateOptions) []byte {
	var buffer bytes.Buffer

	for _, rec := range records {
		buffer.WriteString(Render(rec, options))
	}

	return buffer.Bytes()
}

// Render renders a single card block for a record.
func Render(rec contact.Record, options GenerateOptions) string {
	email := rec.Email
	phone := rec.Phone
	first := rec.FirstName
	last := rec.LastName

	if options.EscapeValues {
		email = Escape(email)
		phone = Escape(phone)
		first = Escape(first)
		last = Escape(last)
	}

	return fmt.Sprintf(cardTemplate, email, phone, first, last)
}

// =============================================================================
// VALUE ESCAPING
// =============================================================================

// escaper rewrites the characters vCard 3.0 reserves inside property values.
// strings.Replacer never rescans replaced text, so the backslashes it emits
// are not themselves re-escaped.
var escaper = strings.NewReplacer(
	`\`, `\\`,
	"\n", `\n`,
	",", `\,`,
	";", `\;`,
)

// Escape escapes vCard-reserved characters in a property value.
func Escape(value string) string {
	return escaper.Replace(value)
}
