package app

import (
	"github.com/zimplexing/git-smart-checktout/internal/git"
	"github.com/zimplexing/git-smart-checktout/internal/picker"
)

// Message types for the bubbletea app.

// SyncDoneMsg is sent when a full model rebuild finishes.
type SyncDoneMsg struct {
	Model  *picker.Model
	Repo   git.Repository
	Head   string
	NoRepo bool
	Err    error
}

// SyncTickMsg is sent when the automatic rebuild timer fires. Gen ties the
// tick to the scheduler generation that armed it; stale ticks are dropped.
type SyncTickMsg struct {
	Gen int
}

// CheckoutDoneMsg is sent when a checkout completes.
type CheckoutDoneMsg struct {
	Name string
	Head string
	Err  error
}

// BranchCreatedMsg is sent when a branch creation completes.
type BranchCreatedMsg struct {
	Name     string
	CommitID string
	Preview  string
	Head     string
	Err      error
}

// BranchRenamedMsg is sent when a branch rename completes.
type BranchRenamedMsg struct {
	Section picker.Section
	OldName string
	NewName string
	Head    string
	Err     error
}

// BranchDeletedMsg is sent when a branch delete completes.
type BranchDeletedMsg struct {
	Section picker.Section
	Name    string
	Err     error
}

// FetchDoneMsg is sent when a fetch completes.
type FetchDoneMsg struct {
	Err error
}
