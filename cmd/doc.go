// Package cmd implements the command-line interface for meetslots.
//
// This package provides the following commands:
//   - find: Search for ranked meeting slots across Google Calendars
//   - auth: Authenticate a Google account for calendar access
//   - serve: Start the MCP server to provide tools for AI assistants
//   - version: Display version information
//   - generate-docs: Generate markdown documentation for all MCP tools
//
// The find command is the default command when no subcommand is specified.
package cmd
