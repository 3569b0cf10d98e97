package app

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/zimplexing/git-smart-checktout/internal/config"
	"github.com/zimplexing/git-smart-checktout/internal/debug"
	"github.com/zimplexing/git-smart-checktout/internal/git"
	"github.com/zimplexing/git-smart-checktout/internal/picker"
	"github.com/zimplexing/git-smart-checktout/internal/ui"
)

// State represents the current UI state.
type State int

const (
	StateList State = iota
	StateCreate
	StateCreateFromSelect
	StateCreateFromName
	StateRename
	StateDelete
	StateFilter
	StateHelp
)

// Model is the main application model. It is the sole owner of the live
// picker model; rebuilds replace it atomically and mutations patch it in
// place.
type Model struct {
	// Configuration
	config *config.Config
	ws     *git.Workspace
	cwd    string

	// Data
	repo   git.Repository
	picker *picker.Model
	head   string
	cursor int

	// State
	state State
	sched *picker.Scheduler
	busy  bool
	err   error

	// Create flow
	createInput  textinput.Model
	createSource picker.BranchItem
	sourceList   []picker.BranchItem
	sourceCursor int

	// Rename flow
	renameTarget picker.BranchItem
	renameInput  textinput.Model

	// Delete flow
	deleteTarget picker.BranchItem

	// Filter
	filterInput textinput.Model

	// UI
	width   int
	height  int
	keys    KeyMap
	spinner spinner.Model

	shouldQuit bool
}

// New creates a new Model.
func New(cfg *config.Config, ws *git.Workspace, cwd string) Model {
	createInput := textinput.New()
	createInput.Placeholder = "branch-name"
	createInput.CharLimit = 100

	renameInput := textinput.New()
	renameInput.Placeholder = "new-name"
	renameInput.CharLimit = 100

	filterInput := textinput.New()
	filterInput.Placeholder = "filter..."
	filterInput.CharLimit = 50

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		config:      cfg,
		ws:          ws,
		cwd:         cwd,
		picker:      picker.NewModel(),
		sched:       picker.NewScheduler(cfg.SyncInterval()),
		keys:        KeyMapFromConfig(&cfg.Keys),
		createInput: createInput,
		renameInput: renameInput,
		filterInput: filterInput,
		spinner:     sp,
		state:       StateList,
	}
}

// Init starts the spinner and the first rebuild.
func (m Model) Init() tea.Cmd {
	m.sched.Start()
	return tea.Batch(m.spinner.Tick, m.rebuildCmd())
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) && m.state == StateList {
			m.shouldQuit = true
			return m, tea.Quit
		}
		return m.handleKeyPress(msg)

	case SyncDoneMsg:
		return m.handleSyncDone(msg)

	case SyncTickMsg:
		if m.sched.TimerValid(msg.Gen) && m.sched.Start() {
			return m, m.rebuildCmd()
		}
		return m, nil

	case CheckoutDoneMsg:
		m.busy = false
		if msg.Err != nil {
			debug.Error("checkout "+msg.Name, msg.Err)
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.head = msg.Head
		return m, nil

	case BranchCreatedMsg:
		m.busy = false
		if msg.Err != nil {
			debug.Error("create "+msg.Name, msg.Err)
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.picker.Apply(picker.Created(msg.Name, msg.CommitID, msg.Preview))
		m.head = msg.Head
		m.clampCursor()
		return m, nil

	case BranchRenamedMsg:
		m.busy = false
		if msg.Err != nil {
			debug.Error("rename "+msg.OldName, msg.Err)
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.picker.Apply(picker.Rename{Section: msg.Section, OldLabel: msg.OldName, NewLabel: msg.NewName})
		m.head = msg.Head
		return m, nil

	case BranchDeletedMsg:
		m.busy = false
		if msg.Err != nil {
			debug.Error("delete "+msg.Name, msg.Err)
			m.err = fmt.Errorf("could not delete %s: %w", msg.Name, msg.Err)
			return m, nil
		}
		m.err = nil
		m.picker.Apply(picker.Remove{Section: msg.Section, Label: msg.Name})
		m.clampCursor()
		return m, nil

	case FetchDoneMsg:
		m.busy = false
		if msg.Err != nil {
			debug.Error("fetch", msg.Err)
			m.err = msg.Err
			return m, nil
		}
		// Fetched refs only show up after a rebuild.
		if m.sched.Start() {
			return m, m.rebuildCmd()
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleSyncDone(msg SyncDoneMsg) (tea.Model, tea.Cmd) {
	if msg.NoRepo {
		// Nothing to synchronize; the timer stays disarmed until an
		// explicit refresh.
		m.sched.Finish(false)
		m.repo = nil
		m.picker = picker.NewModel()
		m.head = ""
		m.err = msg.Err
		m.clampCursor()
		return m, nil
	}

	gen := m.sched.Finish(true)
	m.repo = msg.Repo

	if msg.Err != nil {
		// Keep the previous model; report once and stay on the cycle.
		debug.Error("rebuild", msg.Err)
		m.err = msg.Err
		return m, m.tickCmd(gen)
	}

	m.picker = msg.Model
	m.head = msg.Head
	m.err = nil
	m.clampCursor()
	return m, m.tickCmd(gen)
}

// handleKeyPress handles key presses based on current state.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateList:
		return m.handleListKeys(msg)
	case StateCreate:
		return m.handleCreateKeys(msg)
	case StateCreateFromSelect:
		return m.handleCreateFromSelectKeys(msg)
	case StateCreateFromName:
		return m.handleCreateFromNameKeys(msg)
	case StateRename:
		return m.handleRenameKeys(msg)
	case StateDelete:
		return m.handleDeleteKeys(msg)
	case StateFilter:
		return m.handleFilterKeys(msg)
	case StateHelp:
		m.state = StateList
		return m, nil
	}
	return m, nil
}

// handleListKeys handles key presses in the list view.
func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Home):
		m.cursor = 0
	case key.Matches(msg, m.keys.End):
		m.cursor = len(m.visibleRows()) - 1
		m.clampCursor()
	case key.Matches(msg, m.keys.Select):
		return m.handleSelect()
	case key.Matches(msg, m.keys.Rename):
		if b, ok := m.selectedBranch(); ok && !m.blocked() {
			m.renameTarget = b
			m.renameInput.SetValue(b.Label)
			m.renameInput.CursorEnd()
			m.renameInput.Focus()
			m.state = StateRename
			return m, textinput.Blink
		}
	case key.Matches(msg, m.keys.Delete):
		if b, ok := m.selectedBranch(); ok && !m.blocked() {
			m.deleteTarget = b
			m.state = StateDelete
		}
	case key.Matches(msg, m.keys.Refresh):
		cmd := m.startRefresh()
		return m, cmd
	case key.Matches(msg, m.keys.Fetch):
		if m.repo != nil && !m.blocked() {
			m.busy = true
			return m, m.fetchCmd()
		}
	case key.Matches(msg, m.keys.Filter):
		m.state = StateFilter
		m.filterInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Help):
		m.state = StateHelp
	}
	return m, nil
}

// handleSelect dispatches on the selected row.
func (m Model) handleSelect() (tea.Model, tea.Cmd) {
	rows := m.visibleRows()
	if m.cursor >= len(rows) || m.blocked() {
		return m, nil
	}

	row := rows[m.cursor]
	switch row.Kind {
	case picker.RowSeparator:
		return m, nil

	case picker.RowCommand:
		switch row.Command {
		case picker.CommandRefresh:
			cmd := m.startRefresh()
			return m, cmd
		case picker.CommandCreate:
			if m.repo == nil {
				return m, nil
			}
			m.createInput.Reset()
			m.createInput.Focus()
			m.state = StateCreate
			return m, textinput.Blink
		case picker.CommandCreateFrom:
			if m.repo == nil {
				return m, nil
			}
			sources := m.picker.Branches()
			if len(sources) == 0 {
				return m, nil
			}
			m.sourceList = sources
			m.sourceCursor = 0
			m.state = StateCreateFromSelect
			return m, nil
		}
		return m, nil

	default:
		if m.repo == nil {
			return m, nil
		}
		m.busy = true
		return m, m.checkoutCmd(row.Branch.Label)
	}
}

// handleCreateKeys handles the create-branch name prompt.
func (m Model) handleCreateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m.cancelPrompts(), nil
	case tea.KeyEnter:
		name := strings.TrimSpace(m.createInput.Value())
		if name == "" {
			return m.cancelPrompts(), nil
		}
		next := m.cancelPrompts()
		next.busy = true
		return next, next.createCmd(name)
	}

	var cmd tea.Cmd
	m.createInput, cmd = m.createInput.Update(msg)
	return m, cmd
}

// handleCreateFromSelectKeys handles picking the source branch.
func (m Model) handleCreateFromSelectKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.sourceCursor > 0 {
			m.sourceCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.sourceCursor < len(m.sourceList)-1 {
			m.sourceCursor++
		}
	case key.Matches(msg, m.keys.Cancel):
		return m.cancelPrompts(), nil
	case key.Matches(msg, m.keys.Select):
		if m.sourceCursor < len(m.sourceList) {
			m.createSource = m.sourceList[m.sourceCursor]
			// Pre-fill with the source name for easy editing.
			m.createInput.SetValue(m.createSource.Label)
			m.createInput.CursorEnd()
			m.createInput.Focus()
			m.state = StateCreateFromName
			return m, textinput.Blink
		}
	}
	return m, nil
}

// handleCreateFromNameKeys handles the create-from name prompt.
func (m Model) handleCreateFromNameKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m.cancelPrompts(), nil
	case tea.KeyEnter:
		name := strings.TrimSpace(m.createInput.Value())
		if name == "" {
			return m.cancelPrompts(), nil
		}
		source := m.createSource
		next := m.cancelPrompts()
		next.busy = true
		return next, next.createFromCmd(name, source)
	}

	var cmd tea.Cmd
	m.createInput, cmd = m.createInput.Update(msg)
	return m, cmd
}

// handleRenameKeys handles the rename prompt.
func (m Model) handleRenameKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m.cancelPrompts(), nil
	case tea.KeyEnter:
		newName := strings.TrimSpace(m.renameInput.Value())
		if newName == "" || newName == m.renameTarget.Label {
			return m.cancelPrompts(), nil
		}
		target := m.renameTarget
		next := m.cancelPrompts()
		next.busy = true
		return next, next.renameCmd(target, newName)
	}

	var cmd tea.Cmd
	m.renameInput, cmd = m.renameInput.Update(msg)
	return m, cmd
}

// handleDeleteKeys handles the delete confirmation.
func (m Model) handleDeleteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc || msg.String() == "n" || msg.String() == "N" {
		return m.cancelPrompts(), nil
	}
	if msg.Type == tea.KeyEnter || msg.String() == "y" || msg.String() == "Y" {
		target := m.deleteTarget
		next := m.cancelPrompts()
		next.busy = true
		return next, next.deleteCmd(target)
	}
	return m, nil
}

// handleFilterKeys handles key presses in filter mode.
func (m Model) handleFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.state = StateList
		m.filterInput.Reset()
		m.clampCursor()
		return m, nil
	case tea.KeyEnter:
		m.state = StateList
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.clampCursor()
	return m, cmd
}

// cancelPrompts aborts any prompt flow with no side effects.
func (m Model) cancelPrompts() Model {
	m.state = StateList
	m.createInput.Reset()
	m.renameInput.Reset()
	m.sourceList = nil
	m.sourceCursor = 0
	m.deleteTarget = picker.BranchItem{}
	m.renameTarget = picker.BranchItem{}
	m.createSource = picker.BranchItem{}
	return m
}

// blocked reports whether user actions must wait for an in-flight
// operation.
func (m Model) blocked() bool {
	return m.busy || m.sched.Loading()
}

// startRefresh kicks off an explicit rebuild unless one is running.
func (m *Model) startRefresh() tea.Cmd {
	if !m.sched.Start() {
		return nil
	}
	m.err = nil
	return m.rebuildCmd()
}

// branchSource implements fuzzy.Source over branch labels.
type branchSource []picker.BranchItem

func (b branchSource) String(i int) string { return b[i].Label }
func (b branchSource) Len() int            { return len(b) }

// visibleRows returns the flattened rows, restricted by the active
// filter. Command rows stay pinned while filtering.
func (m Model) visibleRows() []picker.Row {
	rows := m.picker.Rows()
	filter := m.filterInput.Value()
	if filter == "" {
		return rows
	}

	branches := m.picker.Branches()
	matches := fuzzy.FindFrom(filter, branchSource(branches))

	out := rows[:4:4] // command rows plus separator
	for _, match := range matches {
		out = append(out, picker.Row{Kind: picker.RowBranch, Branch: branches[match.Index]})
	}
	return out
}

// selectedBranch returns the branch under the cursor, if any.
func (m Model) selectedBranch() (picker.BranchItem, bool) {
	rows := m.visibleRows()
	if m.cursor < len(rows) && rows[m.cursor].Kind == picker.RowBranch {
		return rows[m.cursor].Branch, true
	}
	return picker.BranchItem{}, false
}

// moveCursor moves the cursor, skipping separators.
func (m *Model) moveCursor(delta int) {
	rows := m.visibleRows()
	if len(rows) == 0 {
		m.cursor = 0
		return
	}
	i := m.cursor + delta
	for i >= 0 && i < len(rows) && rows[i].Kind == picker.RowSeparator {
		i += delta
	}
	if i >= 0 && i < len(rows) {
		m.cursor = i
	}
}

// clampCursor keeps the cursor inside the visible rows and off
// separators.
func (m *Model) clampCursor() {
	rows := m.visibleRows()
	if m.cursor >= len(rows) {
		m.cursor = len(rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	for m.cursor > 0 && m.cursor < len(rows) && rows[m.cursor].Kind == picker.RowSeparator {
		m.cursor--
	}
}

// View renders the UI.
func (m Model) View() string {
	repoName := ""
	if m.repo != nil {
		repoName = filepath.Base(m.repo.Root())
	}
	return ui.Render(ui.RenderParams{
		State:        int(m.state),
		Rows:         m.visibleRows(),
		Cursor:       m.cursor,
		Width:        m.width,
		Height:       m.height,
		Loading:      m.sched.Loading(),
		Busy:         m.busy,
		Err:          m.err,
		Head:         m.head,
		RepoName:     repoName,
		SpinnerFrame: m.spinner.View(),
		FilterInput:  m.filterInput.View(),
		FilterValue:  m.filterInput.Value(),
		CreateInput:  m.createInput.View(),
		CreateSource: m.createSource.Label,
		SourceList:   m.sourceList,
		SourceCursor: m.sourceCursor,
		RenameTarget: m.renameTarget.Label,
		RenameInput:  m.renameInput.View(),
		DeleteTarget: m.deleteTarget.Label,
		ShowShortIDs: m.config.UI.ShowShortIDs,
		ShowPreviews: m.config.UI.ShowPreviews,
	})
}

// ShouldQuit returns true if the app should quit.
func (m Model) ShouldQuit() bool {
	return m.shouldQuit
}

// Commands

func (m Model) rebuildCmd() tea.Cmd {
	ws, cwd, limit := m.ws, m.cwd, m.config.Sync.PreviewLimit
	return func() tea.Msg {
		done := debug.Timed("rebuild")
		defer done()

		ws.Rescan()
		repo, err := ws.Current(cwd)
		if err != nil {
			return SyncDoneMsg{NoRepo: true, Err: err}
		}
		model, err := picker.Build(repo, limit)
		if err != nil {
			return SyncDoneMsg{Repo: repo, Err: err}
		}
		head, _ := repo.HeadBranch()
		return SyncDoneMsg{Model: model, Repo: repo, Head: head}
	}
}

func (m Model) tickCmd(gen int) tea.Cmd {
	if gen < 0 {
		return nil
	}
	return tea.Tick(m.sched.Interval(), func(time.Time) tea.Msg {
		return SyncTickMsg{Gen: gen}
	})
}

func (m Model) checkoutCmd(name string) tea.Cmd {
	repo := m.repo
	return func() tea.Msg {
		if err := repo.Checkout(name); err != nil {
			return CheckoutDoneMsg{Name: name, Err: err}
		}
		head, _ := repo.HeadBranch()
		return CheckoutDoneMsg{Name: name, Head: head}
	}
}

func (m Model) createCmd(name string) tea.Cmd {
	repo := m.repo
	return func() tea.Msg {
		// Capture HEAD before the new branch moves it.
		commit, _ := repo.HeadCommit()
		if err := repo.CreateBranch(name, true, ""); err != nil {
			return BranchCreatedMsg{Name: name, Err: err}
		}
		preview := ""
		if commit != "" {
			if msg, err := repo.CommitMessage(commit); err == nil {
				preview = msg
			}
		}
		head, _ := repo.HeadBranch()
		return BranchCreatedMsg{Name: name, CommitID: commit, Preview: preview, Head: head}
	}
}

func (m Model) createFromCmd(name string, source picker.BranchItem) tea.Cmd {
	repo := m.repo
	return func() tea.Msg {
		if err := repo.CreateBranch(name, true, source.Label); err != nil {
			return BranchCreatedMsg{Name: name, Err: err}
		}
		preview := source.Preview
		if preview == "" && source.ShortID != "" {
			if msg, err := repo.CommitMessage(source.ShortID); err == nil {
				preview = msg
			}
		}
		head, _ := repo.HeadBranch()
		return BranchCreatedMsg{Name: name, CommitID: source.ShortID, Preview: preview, Head: head}
	}
}

func (m Model) renameCmd(target picker.BranchItem, newName string) tea.Cmd {
	repo := m.repo
	return func() tea.Msg {
		if err := repo.RenameBranch(target.Label, newName); err != nil {
			return BranchRenamedMsg{Section: target.Section, OldName: target.Label, NewName: newName, Err: err}
		}
		head, _ := repo.HeadBranch()
		return BranchRenamedMsg{Section: target.Section, OldName: target.Label, NewName: newName, Head: head}
	}
}

func (m Model) deleteCmd(target picker.BranchItem) tea.Cmd {
	repo := m.repo
	return func() tea.Msg {
		err := repo.DeleteBranch(target.Label, true)
		return BranchDeletedMsg{Section: target.Section, Name: target.Label, Err: err}
	}
}

func (m Model) fetchCmd() tea.Cmd {
	repo := m.repo
	return func() tea.Msg {
		return FetchDoneMsg{Err: repo.Fetch()}
	}
}
