// Package git provides repository access for the branch picker.
package git

import "errors"

// ErrNoRepository is returned when no git repository can be found in the
// workspace. Callers treat it as a user-visible condition, not a crash.
var ErrNoRepository = errors.New("no git repository found")

// RefKind classifies a ref returned by Refs.
type RefKind int

const (
	// RefHead is a local branch (refs/heads/*).
	RefHead RefKind = iota
	// RefRemoteHead is a remote-tracking branch (refs/remotes/*).
	RefRemoteHead
)

func (k RefKind) String() string {
	switch k {
	case RefHead:
		return "head"
	case RefRemoteHead:
		return "remote-head"
	default:
		return "unknown"
	}
}

// Ref is a named pointer to a commit.
type Ref struct {
	// Name is the short ref name: "main" or "origin/main".
	Name string

	// Kind distinguishes local heads from remote-tracking heads.
	Kind RefKind

	// Remote is the remote name for RefRemoteHead refs ("origin"), empty otherwise.
	Remote string

	// CommitID is the full object id the ref points at. May be empty.
	CommitID string
}

// Repository is the picker's view of one git repository. Each operation may
// fail independently; failures are surfaced to the user and never retried.
type Repository interface {
	// Root returns the repository's top-level directory.
	Root() string

	// HeadBranch returns the currently checked out branch name, or empty
	// when HEAD is detached.
	HeadBranch() (string, error)

	// HeadCommit returns the commit id HEAD points at, or empty in an
	// unborn repository.
	HeadCommit() (string, error)

	// Refs enumerates local and remote-tracking branches, most recently
	// committed first. Symbolic HEAD pointers are excluded.
	Refs() ([]Ref, error)

	Checkout(name string) error
	CreateBranch(name string, checkout bool, from string) error
	RenameBranch(oldName, newName string) error
	DeleteBranch(name string, force bool) error
	Fetch() error

	// CommitMessage returns the subject line of the given commit.
	CommitMessage(commitID string) (string, error)
}
