package picker

// Section groups branch rows by ref origin.
type Section int

const (
	SectionLocal Section = iota
	SectionRemote
)

func (s Section) String() string {
	switch s {
	case SectionLocal:
		return "local"
	case SectionRemote:
		return "remote"
	default:
		return "unknown"
	}
}

// Action is a per-row affordance attached to branch rows.
type Action int

const (
	ActionRename Action = iota
	ActionDelete
)

func (a Action) String() string {
	switch a {
	case ActionRename:
		return "rename"
	case ActionDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// BranchItem is one selectable branch row.
type BranchItem struct {
	// Label is the branch name. Unique within its section.
	Label string

	// ShortID is the abbreviated commit id (8 chars), empty when unknown.
	ShortID string

	// Preview is the tip commit's subject line. Only populated for the
	// most recent local branches; empty everywhere else.
	Preview string

	Section Section
	Actions []Action
}

// branchActions is the affordance set attached to every branch row.
func branchActions() []Action {
	return []Action{ActionRename, ActionDelete}
}

// Command identifies one of the fixed leading rows.
type Command int

const (
	CommandRefresh Command = iota
	CommandCreate
	CommandCreateFrom
)

func (c Command) Title() string {
	switch c {
	case CommandRefresh:
		return "Refresh"
	case CommandCreate:
		return "Create new branch..."
	case CommandCreateFrom:
		return "Create new branch from..."
	default:
		return "unknown"
	}
}

// RowKind discriminates rows in the flattened model view.
type RowKind int

const (
	RowCommand RowKind = iota
	RowSeparator
	RowBranch
)

// Row is one entry of the flattened picker list.
type Row struct {
	Kind    RowKind
	Command Command    // valid when Kind == RowCommand
	Branch  BranchItem // valid when Kind == RowBranch
}

// commands are the fixed leading rows, in presentation order.
var commands = []Command{CommandRefresh, CommandCreate, CommandCreateFrom}
