package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the meetslots application
var rootCmd = &cobra.Command{
	Use:   "meetslots",
	Short: "Finds available meeting slots across Google Calendars",
	Long: `meetslots is a tool that finds and ranks available meeting slots for
one or more attendees, honoring business hours, weekends, holidays, and
existing calendar commitments.

It can run as:
  - A standalone CLI tool (default)
  - An MCP (Model Context Protocol) server for AI assistants`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "meetslots version %s\n" .Version}}`)

	// If no subcommand is provided, run the find command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "find")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newFindCmd())
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateDocsCmd())
}
