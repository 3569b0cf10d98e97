// Package debug provides debug logging for git-smart-checkout.
//
// When enabled via configuration or the --debug flag, it logs repository
// operations, sync cycles, and failures to a file, since the TUI owns the
// terminal while running.
package debug
