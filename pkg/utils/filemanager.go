// =============================================================================
// CSV to vCard Converter - File Manager Utility
// =============================================================================
//
// This module provides file management utilities for the converter, including:
//   - File existence and extension checks
//   - The interactive overwrite confirmation prompt
//   - Document writing
//
// WRITE STRATEGY:
//   The document is written to a uuid-named temporary file in the destination
//   directory and then renamed over the target. A crash mid-write therefore
//   cannot leave a truncated .vcf behind; the tool is single-shot and
//   re-runnable, so no further recovery is attempted.
//
// =============================================================================

package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// =============================================================================
// FILE CHECKS
// =============================================================================

// FileExists checks if a file exists at the given path.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// HasExtension checks whether the path ends with the given extension,
// compared case-insensitively. The extension includes the leading dot.
func HasExtension(path, extension string) bool {
	return strings.EqualFold(filepath.Ext(path), extension)
}

// =============================================================================
// OVERWRITE CONFIRMATION
// =============================================================================

// ConfirmOverwrite prompts for confirmation before overwriting an existing
// file. It prints the prompt to out and reads one line from in.
//
// PARAMETERS:
//   - in: The reader to take the response from (normally os.Stdin).
//   - out: The writer for the prompt text (normally os.Stdout).
//   - path: The destination path, named in the prompt.
//
// RETURNS:
//   - true only if the response is the affirmative token "y", compared
//     case-insensitively. Anything else, including a read error or EOF,
//     declines the overwrite.
func ConfirmOverwrite(in io.Reader, out io.Writer, path string) bool {
	fmt.Fprintf(out, "Overwrite file %s? (Y or N): ", path)

	reader := bufio.NewReader(in)
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		return false
	}

	return strings.EqualFold(strings.TrimSpace(response), "y")
}

// =============================================================================
// DOCUMENT WRITING
// =============================================================================

// WriteDocument writes the document to the destination path, followed by a
// single line terminator.
//
// PARAMETERS:
//   - path: The destination path.
//   - document: The document contents, without the final terminator.
//
// RETURNS:
//   - An error if the temporary file cannot be written or renamed.
func WriteDocument(path string, document []byte) error {
	dir := filepath.Dir(path)

	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.New().String()))

	file, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	writer := bufio.NewWriter(file)

	if _, err := writer.Write(document); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := writer.WriteByte('\n'); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write output: %w", err)
	}

	if err := writer.Flush(); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to flush output: %w", err)
	}

	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to sync output: %w", err)
	}

	if err := file.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close output: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to move output into place: %w", err)
	}

	return nil
}
