// =============================================================================
// CSV to vCard Converter - Main Entry Point
// =============================================================================
//
// This is the main entry point for the CSV to vCard Converter CLI application.
// It initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   csv-to-vcard convert --input contacts.csv   - Convert a contact table to a vCard file
//   csv-to-vcard validate --input contacts.csv  - Run pre-flight checks without writing
//   csv-to-vcard version                        - Display the application version
//
// ARCHITECTURE:
//   This application follows a modular design where:
//   - cmd/           : Contains all CLI command definitions (Cobra)
//   - internal/      : Contains core business logic (not for external import)
//   - pkg/           : Contains shared utilities
//
// =============================================================================

package main

import (
	"github.com/contactforge/csv-to-vcard/cmd"
)

// main is the entry point of the application.
// It simply calls the Execute function from the cmd package, which
// initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
