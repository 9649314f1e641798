package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.vcf")

	assert.False(t, FileExists(path))

	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	assert.True(t, FileExists(path))

	// Directories do not count as files.
	assert.False(t, FileExists(dir))
}

func TestHasExtension(t *testing.T) {
	assert.True(t, HasExtension("contacts.csv", ".csv"))
	assert.True(t, HasExtension("CONTACTS.CSV", ".csv"))
	assert.True(t, HasExtension("out.Vcf", ".vcf"))
	assert.False(t, HasExtension("contacts.txt", ".csv"))
	assert.False(t, HasExtension("contacts", ".csv"))
	assert.False(t, HasExtension("contacts.csv.bak", ".csv"))
}

func TestConfirmOverwrite(t *testing.T) {
	tests := []struct {
		response string
		accepted bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"  y  \n", true},
		{"n\n", false},
		{"yes\n", false},
		{"\n", false},
		{"", false},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		got := ConfirmOverwrite(strings.NewReader(tt.response), &out, "out.vcf")
		assert.Equal(t, tt.accepted, got, "response %q", tt.response)
		assert.Contains(t, out.String(), "Overwrite file out.vcf? (Y or N): ")
	}
}

func TestWriteDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.vcf")

	require.NoError(t, WriteDocument(path, []byte("BEGIN:VCARD\nEND:VCARD\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// The document is followed by a single line terminator.
	assert.Equal(t, "BEGIN:VCARD\nEND:VCARD\n\n", string(data))

	// No temporary files are left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out.vcf", entries[0].Name())
}

func TestWriteDocumentOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.vcf")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

	require.NoError(t, WriteDocument(path, []byte("new")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(data))
}

func TestWriteDocumentBadDirectory(t *testing.T) {
	err := WriteDocument(filepath.Join(t.TempDir(), "missing", "out.vcf"), []byte("x"))
	assert.Error(t, err)
}
