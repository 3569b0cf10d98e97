package ui

import (
	"strings"

	"github.com/zimplexing/git-smart-checktout/internal/picker"
)

// State constants (matching app.State)
const (
	StateList = iota
	StateCreate
	StateCreateFromSelect
	StateCreateFromName
	StateRename
	StateDelete
	StateFilter
	StateHelp
)

// HelpBinding represents a keybinding for help display.
type HelpBinding struct {
	Keys string
	Desc string
}

// HelpSection represents a section of help bindings.
type HelpSection struct {
	Title    string
	Bindings []HelpBinding
}

// RenderParams contains all parameters needed for rendering.
type RenderParams struct {
	State        int
	Rows         []picker.Row
	Cursor       int
	Width        int
	Height       int
	Loading      bool
	Busy         bool
	Err          error
	Head         string
	RepoName     string
	SpinnerFrame string
	FilterInput  string
	FilterValue  string
	CreateInput  string
	CreateSource string
	SourceList   []picker.BranchItem
	SourceCursor int
	RenameTarget string
	RenameInput  string
	DeleteTarget string
	ShowShortIDs bool
	ShowPreviews bool
}

// MinWidth is the absolute minimum terminal width we try to support.
const MinWidth = 30

// MinHeight is the absolute minimum terminal height we try to support.
const MinHeight = 8

// Render renders the full UI.
func Render(p RenderParams) string {
	// Graceful degradation for small terminals instead of jumping to
	// arbitrary values. Use the actual width but clamp to the minimum.
	if p.Width < MinWidth {
		p.Width = MinWidth
	}
	if p.Height < MinHeight {
		p.Height = MinHeight
	}

	switch p.State {
	case StateCreate:
		return renderCreate(p)
	case StateCreateFromSelect:
		return renderCreateFromSelect(p)
	case StateCreateFromName:
		return renderCreateFromName(p)
	case StateRename:
		return renderRename(p)
	case StateDelete:
		return renderDelete(p)
	case StateFilter:
		return renderFilter(p)
	case StateHelp:
		return renderHelp(p)
	default:
		return renderList(p)
	}
}

// renderList renders the main branch list.
func renderList(p RenderParams) string {
	var b strings.Builder
	contentWidth := p.Width - 4 // Account for box borders and padding

	// Header
	header := HeaderStyle.Render("BRANCHES") + "  " + PathStyle.Render(p.RepoName)
	if p.Head != "" {
		header += "  " + CurrentStyle.Render(SymbolCurrent+" "+p.Head)
	}
	if p.Loading || p.Busy {
		header += "  " + p.SpinnerFrame
	}
	b.WriteString(header + "\n")
	b.WriteString(DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n")

	// Error message if any
	if p.Err != nil {
		b.WriteString(ErrorStyle.Render("Error: "+p.Err.Error()) + "\n\n")
	}

	b.WriteString(renderRows(p, contentWidth))

	// Footer
	b.WriteString("\n" + DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n")
	helpText := compactHelp(
		"enter checkout • r rename • d delete • R refresh • f fetch • / filter • ? help • q quit",
		"enter•r•d•R•f•/•?•q",
		p.Width,
	)
	b.WriteString(HelpStyle.Render(helpText))

	return wrapInBox(b.String(), p.Width, p.Height)
}

// renderRows renders the flattened row list with the cursor.
func renderRows(p RenderParams, width int) string {
	var b strings.Builder

	for i, row := range p.Rows {
		switch row.Kind {
		case picker.RowSeparator:
			b.WriteString("  " + DividerStyle.Render(strings.Repeat(SymbolDivider, min(width-2, 24))) + "\n")
		case picker.RowCommand:
			b.WriteString(renderCommandRow(row.Command, i == p.Cursor) + "\n")
		default:
			b.WriteString(renderBranchRow(row.Branch, i == p.Cursor, p) + "\n")
		}
	}

	if len(p.Rows) <= 4 {
		// Only command rows and their separator.
		b.WriteString("\n" + PathStyle.Render("No branches found.") + "\n")
	}
	return b.String()
}

// renderCommandRow renders an action entry such as "Create new branch...".
func renderCommandRow(cmd picker.Command, selected bool) string {
	cursor := "  "
	title := CommandStyle.Render(SymbolCommand + " " + cmd.Title())
	if selected {
		cursor = SelectedStyle.Render(SymbolCursor + " ")
		title = SelectedStyle.Render(SymbolCommand + " " + cmd.Title())
	}
	return cursor + title
}

// renderBranchRow renders a single branch with optional commit id and
// preview.
func renderBranchRow(item picker.BranchItem, selected bool, p RenderParams) string {
	cursor := "  "
	if selected {
		cursor = SelectedStyle.Render(SymbolCursor + " ")
	} else if item.Section == picker.SectionLocal && item.Label == p.Head {
		cursor = CurrentStyle.Render(SymbolCurrent + " ")
	}

	label := item.Label
	switch {
	case selected:
		label = SelectedStyle.Render(label)
	case item.Section == picker.SectionRemote:
		label = RemoteStyle.Render(label)
	default:
		label = BranchStyle.Render(label)
	}

	line := cursor + label
	if p.ShowShortIDs && item.ShortID != "" {
		line += "  " + ShortIDStyle.Render(item.ShortID)
	}
	if p.ShowPreviews && item.Preview != "" {
		msg := item.Preview
		if len(msg) > 50 {
			msg = msg[:47] + "..."
		}
		line += "  " + PreviewStyle.Render(msg)
	}
	return line
}

// renderCreate renders the create branch prompt.
func renderCreate(p RenderParams) string {
	var b strings.Builder
	contentWidth := p.Width - 4

	b.WriteString(HeaderStyle.Render("NEW BRANCH") + "\n")
	b.WriteString(DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n\n")

	b.WriteString("Branch name:\n")
	b.WriteString(p.CreateInput + "\n")

	b.WriteString("\n" + DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n")
	b.WriteString(HelpStyle.Render("enter confirm • esc cancel"))

	return wrapInBox(b.String(), p.Width, p.Height)
}

// renderCreateFromSelect renders the source branch selection.
func renderCreateFromSelect(p RenderParams) string {
	var b strings.Builder
	contentWidth := p.Width - 4

	b.WriteString(HeaderStyle.Render("SELECT SOURCE BRANCH") + "\n")
	b.WriteString(DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n\n")

	if len(p.SourceList) == 0 {
		b.WriteString(PathStyle.Render("No branches found.") + "\n")
	}

	for i, item := range p.SourceList {
		cursor := "  "
		name := item.Label
		if i == p.SourceCursor {
			cursor = SelectedStyle.Render(SymbolCursor + " ")
			name = SelectedStyle.Render(name)
		} else if item.Section == picker.SectionRemote {
			name = RemoteStyle.Render(name)
		} else {
			name = NormalStyle.Render(name)
		}
		b.WriteString(cursor + name + "\n")
	}

	b.WriteString("\n" + DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n")
	b.WriteString(HelpStyle.Render("↑/↓ select • enter confirm • esc cancel"))

	return wrapInBox(b.String(), p.Width, p.Height)
}

// renderCreateFromName renders the name prompt for create-from.
func renderCreateFromName(p RenderParams) string {
	var b strings.Builder
	contentWidth := p.Width - 4

	b.WriteString(HeaderStyle.Render("NEW BRANCH FROM") + "  " + SelectedStyle.Render(p.CreateSource) + "\n")
	b.WriteString(DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n\n")

	b.WriteString("Branch name:\n")
	b.WriteString(p.CreateInput + "\n")

	b.WriteString("\n" + DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n")
	b.WriteString(HelpStyle.Render("enter confirm • esc cancel"))

	return wrapInBox(b.String(), p.Width, p.Height)
}

// renderRename renders the rename branch prompt.
func renderRename(p RenderParams) string {
	var b strings.Builder
	contentWidth := p.Width - 4

	b.WriteString(HeaderStyle.Render("RENAME BRANCH") + "\n")
	b.WriteString(DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n\n")

	b.WriteString("Current: " + PathStyle.Render(p.RenameTarget) + "\n\n")
	b.WriteString("New name:\n")
	b.WriteString(p.RenameInput + "\n")

	b.WriteString("\n" + DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n")
	b.WriteString(HelpStyle.Render("enter confirm • esc cancel"))

	return wrapInBox(b.String(), p.Width, p.Height)
}

// renderDelete renders the delete confirmation.
func renderDelete(p RenderParams) string {
	var b strings.Builder
	contentWidth := p.Width - 4

	b.WriteString(HeaderStyle.Render("DELETE BRANCH") + "\n")
	b.WriteString(DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n\n")

	b.WriteString("Branch: " + SelectedStyle.Render(p.DeleteTarget) + "\n\n")
	b.WriteString(DangerStyle.Render("The branch is deleted even if not merged.") + "\n")

	b.WriteString("\n" + DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n")
	b.WriteString(HelpStyle.Render("y confirm • n cancel"))

	return wrapInBox(b.String(), p.Width, p.Height)
}

// renderFilter renders the filter mode.
func renderFilter(p RenderParams) string {
	var b strings.Builder
	contentWidth := p.Width - 4

	b.WriteString(HeaderStyle.Render("FILTER") + "  ")
	b.WriteString(p.FilterInput + "\n")
	b.WriteString(DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n")

	b.WriteString(renderRows(p, contentWidth))

	b.WriteString("\n" + DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n")
	b.WriteString(HelpStyle.Render("enter keep filter • esc clear"))

	return wrapInBox(b.String(), p.Width, p.Height)
}

// renderHelp renders the help screen.
func renderHelp(p RenderParams) string {
	var b strings.Builder
	contentWidth := p.Width - 4

	b.WriteString(HeaderStyle.Render("HELP") + "\n")
	b.WriteString(DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n\n")

	sections := []HelpSection{
		{
			Title: "Navigation",
			Bindings: []HelpBinding{
				{Keys: "↑/k ↓/j", Desc: "move cursor"},
				{Keys: "g/G", Desc: "first/last"},
				{Keys: "/", Desc: "filter branches"},
			},
		},
		{
			Title: "Branches",
			Bindings: []HelpBinding{
				{Keys: "enter", Desc: "checkout selected branch"},
				{Keys: "r", Desc: "rename branch"},
				{Keys: "d", Desc: "delete branch"},
				{Keys: "R", Desc: "refresh branch list"},
				{Keys: "f", Desc: "fetch from remotes"},
			},
		},
		{
			Title: "General",
			Bindings: []HelpBinding{
				{Keys: "?", Desc: "toggle help"},
				{Keys: "q", Desc: "quit"},
			},
		},
	}

	for i, section := range sections {
		b.WriteString(BranchStyle.Render(section.Title) + "\n")
		b.WriteString(DividerStyle.Render(strings.Repeat(SymbolDivider, 40)) + "\n")
		for _, binding := range section.Bindings {
			// Pad keys to 10 chars for alignment
			keys := binding.Keys
			if len(keys) < 10 {
				keys = keys + strings.Repeat(" ", 10-len(keys))
			}
			b.WriteString(PathStyle.Render("  "+keys) + " " + binding.Desc + "\n")
		}
		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n" + DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n")
	b.WriteString(HelpStyle.Render("Press any key to close"))

	return wrapInBox(b.String(), p.Width, p.Height)
}

// wrapInBox wraps content in a box.
func wrapInBox(content string, width, height int) string {
	boxWidth := width - 2
	// Graceful degradation: use the actual width, just keep room for
	// the box borders.
	if boxWidth < MinWidth-2 {
		boxWidth = MinWidth - 2
	}

	// Don't force the height - let the content determine the size.
	style := BoxStyle.Width(boxWidth)

	return style.Render(content)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// compactHelp returns a shortened help string for small terminals.
func compactHelp(full, compact string, width int) string {
	if width >= 80 {
		return full
	}
	return compact
}
