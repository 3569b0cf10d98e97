// Package app provides the main Bubble Tea application model for the
// branch picker.
//
// It manages the UI state machine, handles user input, and coordinates
// between repository operations and UI rendering. The package implements
// states for the branch list, creating branches (from HEAD or from an
// existing branch), renaming, delete confirmation, filtering, and help.
//
// The main type is Model, which implements the Bubble Tea interface
// (Init, Update, View), owns the live picker model, and drives the
// background sync scheduler.
package app
