// Inquire is a driver for the interactive terminal prompting toolkit.
//
// It exposes each prompting primitive as a subcommand so the library can
// be exercised and demonstrated from the shell: yes/no confirmation,
// validated free-text input, a modal text editor, and a numeric range
// selector.
//
// Usage:
//
//	inquire [command] [flags]
//
// See 'inquire --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/termtoys/inquire/internal/logging"
	"github.com/termtoys/inquire/internal/version"
)

func main() {
	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "inquire",
	Short: "Interactive terminal prompting toolkit",
	Long: `A driver for the inquire prompting library.

Each subcommand exercises one primitive: confirm, input, edit, and
select. They read from the terminal when one is attached and fall back
to plain line-based input in pipes.`,
	Version: version.Version,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("inquire %s\n", version.Full())
	},
}
