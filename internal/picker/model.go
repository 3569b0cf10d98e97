package picker

// Model is the live picker model. It is owned by a single controller;
// rebuilds replace the whole instance, mutations go through Apply.
type Model struct {
	Local  []BranchItem
	Remote []BranchItem
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{}
}

// Rows flattens the model into its presentation order: command rows, a
// separator, the local section, then a separator and the remote section
// when present.
func (m *Model) Rows() []Row {
	rows := make([]Row, 0, len(commands)+2+len(m.Local)+len(m.Remote))
	for _, c := range commands {
		rows = append(rows, Row{Kind: RowCommand, Command: c})
	}
	rows = append(rows, Row{Kind: RowSeparator})
	for _, b := range m.Local {
		rows = append(rows, Row{Kind: RowBranch, Branch: b})
	}
	if len(m.Remote) > 0 {
		rows = append(rows, Row{Kind: RowSeparator})
		for _, b := range m.Remote {
			rows = append(rows, Row{Kind: RowBranch, Branch: b})
		}
	}
	return rows
}

// Find returns the branch item with the given label in a section.
func (m *Model) Find(section Section, label string) (BranchItem, bool) {
	for _, b := range *m.section(section) {
		if b.Label == label {
			return b, true
		}
	}
	return BranchItem{}, false
}

// Branches returns all branch items, local section first.
func (m *Model) Branches() []BranchItem {
	out := make([]BranchItem, 0, len(m.Local)+len(m.Remote))
	out = append(out, m.Local...)
	out = append(out, m.Remote...)
	return out
}

func (m *Model) section(s Section) *[]BranchItem {
	if s == SectionRemote {
		return &m.Remote
	}
	return &m.Local
}

// Patch is a targeted model mutation. Patches are produced after a
// repository operation succeeds and applied atomically; unrelated rows
// never move.
type Patch interface {
	apply(*Model)
}

// Apply applies patches in order.
func (m *Model) Apply(patches ...Patch) {
	for _, p := range patches {
		p.apply(m)
	}
}

// InsertLocalFront prepends a newly created branch to the local section.
// The new branch is assumed most recent, so no re-sort happens.
type InsertLocalFront struct {
	Item BranchItem
}

func (p InsertLocalFront) apply(m *Model) {
	item := p.Item
	item.Section = SectionLocal
	if item.Actions == nil {
		item.Actions = branchActions()
	}
	m.Local = append([]BranchItem{item}, m.Local...)
}

// Rename updates a row's label in place, preserving its position, short
// id, preview, and actions.
type Rename struct {
	Section  Section
	OldLabel string
	NewLabel string
}

func (p Rename) apply(m *Model) {
	sec := *m.section(p.Section)
	for i := range sec {
		if sec[i].Label == p.OldLabel {
			sec[i].Label = p.NewLabel
			return
		}
	}
}

// Remove deletes the row with the given label. A label that is already
// gone is a no-op.
type Remove struct {
	Section Section
	Label   string
}

func (p Remove) apply(m *Model) {
	sec := m.section(p.Section)
	for i := range *sec {
		if (*sec)[i].Label == p.Label {
			*sec = append((*sec)[:i], (*sec)[i+1:]...)
			return
		}
	}
}

// Created builds the insertion patch for a successful branch creation.
func Created(name, commitID, preview string) Patch {
	return InsertLocalFront{Item: BranchItem{
		Label:   name,
		ShortID: ShortID(commitID),
		Preview: preview,
		Section: SectionLocal,
		Actions: branchActions(),
	}}
}
