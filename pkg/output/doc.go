// Package output provides reusable output formatting for CLI commands.
//
// Commands support text and JSON output without duplicating the
// formatting logic in every command.
package output
