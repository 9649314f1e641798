// =============================================================================
// CSV to vCard Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands (like 'convert', 'validate') are
// attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (csv-to-vcard)
//   ├── convertCmd (csv-to-vcard convert)
//   ├── validateCmd (csv-to-vcard validate)
//   └── versionCmd (csv-to-vcard version)
//
// CONFIGURATION:
//   The root command is responsible for:
//   1. Setting up global flags (--config, --verbose)
//   2. Delegating configuration loading to the individual commands
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables verbose logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	// Use is the one-line usage message.
	Use: "csv-to-vcard",

	// Short is a short description shown in the 'help' output.
	Short: "CSV to vCard Converter - Turn a contact spreadsheet into an address-book import file",

	// Long is a longer description shown in the 'help <command>' output.
	Long: `CSV to vCard Converter is a one-shot batch CLI tool that converts a table
of contact records (first name, last name, email, phone) into a vCard 3.0
file suitable for bulk import into an address-book application.

Key Features:
  - CSV and XLSX input tables with case-insensitive column matching
  - Phone and email pattern validation with configurable handling of
    invalid records (skip, include with warning, or fail)
  - Overwrite confirmation with a --force bypass for pipelines
  - Optional YAML configuration file

Example Usage:
  csv-to-vcard convert --input contacts.csv                  # Write contact_file.vcf
  csv-to-vcard convert --input contacts.csv --output out.vcf # Custom destination
  csv-to-vcard validate --input contacts.csv                 # Check without writing`,

	// Run is the function executed when the root command is called without
	// any subcommands. In this case, we just print the help message.
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen once.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags.
func init() {
	// Persistent flags are available to this command and all subcommands.

	// --config flag: Allows the user to specify a configuration file.
	// The file is optional; when absent, built-in defaults apply.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (optional)",
	)

	// --verbose flag: Enables verbose/debug logging.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
