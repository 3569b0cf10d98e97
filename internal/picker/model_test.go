package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testModel() *Model {
	return &Model{
		Local: []BranchItem{
			{Label: "main", ShortID: "1111aaaa", Preview: "initial", Section: SectionLocal, Actions: branchActions()},
			{Label: "develop", ShortID: "2222bbbb", Preview: "merge", Section: SectionLocal, Actions: branchActions()},
		},
		Remote: []BranchItem{
			{Label: "origin/main", ShortID: "1111aaaa", Section: SectionRemote, Actions: branchActions()},
		},
	}
}

func TestRowsLayout(t *testing.T) {
	t.Run("command rows lead regardless of content", func(t *testing.T) {
		for _, m := range []*Model{NewModel(), testModel()} {
			rows := m.Rows()
			require.GreaterOrEqual(t, len(rows), 4)
			assert.Equal(t, RowCommand, rows[0].Kind)
			assert.Equal(t, CommandRefresh, rows[0].Command)
			assert.Equal(t, RowCommand, rows[1].Kind)
			assert.Equal(t, CommandCreate, rows[1].Command)
			assert.Equal(t, RowCommand, rows[2].Kind)
			assert.Equal(t, CommandCreateFrom, rows[2].Command)
			assert.Equal(t, RowSeparator, rows[3].Kind)
		}
	})

	t.Run("sections keep order and are divided by a separator", func(t *testing.T) {
		rows := testModel().Rows()
		require.Len(t, rows, 8)
		assert.Equal(t, "main", rows[4].Branch.Label)
		assert.Equal(t, "develop", rows[5].Branch.Label)
		assert.Equal(t, RowSeparator, rows[6].Kind)
		assert.Equal(t, "origin/main", rows[7].Branch.Label)
		assert.Equal(t, SectionRemote, rows[7].Branch.Section)
	})

	t.Run("no trailing separator without remote branches", func(t *testing.T) {
		m := testModel()
		m.Remote = nil
		rows := m.Rows()
		require.Len(t, rows, 6)
		assert.Equal(t, RowBranch, rows[5].Kind)
	})
}

func TestCreatedPatch(t *testing.T) {
	m := testModel()
	before := m.Rows()

	m.Apply(Created("feature-x", "abc12345999", "wip"))

	rows := m.Rows()
	require.Len(t, rows, len(before)+1)

	// New branch sits right after the command rows.
	got := rows[4].Branch
	assert.Equal(t, "feature-x", got.Label)
	assert.Equal(t, "abc12345", got.ShortID)
	assert.Equal(t, "wip", got.Preview)
	assert.Equal(t, SectionLocal, got.Section)
	assert.Equal(t, branchActions(), got.Actions)

	// Everything else shifted by exactly one, otherwise unchanged.
	for i := 4; i < len(before); i++ {
		assert.Equal(t, before[i], rows[i+1])
	}
}

func TestRenamePatch(t *testing.T) {
	m := testModel()
	old, ok := m.Find(SectionLocal, "develop")
	require.True(t, ok)

	m.Apply(Rename{Section: SectionLocal, OldLabel: "develop", NewLabel: "trunk"})

	_, stillThere := m.Find(SectionLocal, "develop")
	assert.False(t, stillThere)

	got, ok := m.Find(SectionLocal, "trunk")
	require.True(t, ok)
	assert.Equal(t, old.ShortID, got.ShortID)
	assert.Equal(t, old.Preview, got.Preview)
	assert.Equal(t, old.Actions, got.Actions)

	// Same index as before.
	assert.Equal(t, "trunk", m.Local[1].Label)
}

func TestRemovePatch(t *testing.T) {
	t.Run("removes exactly one matching row", func(t *testing.T) {
		m := testModel()
		keep := m.Local[0]

		m.Apply(Remove{Section: SectionLocal, Label: "develop"})

		require.Len(t, m.Local, 1)
		assert.Equal(t, keep, m.Local[0])
		require.Len(t, m.Remote, 1)
	})

	t.Run("absent label is a no-op", func(t *testing.T) {
		m := testModel()
		before := m.Rows()

		m.Apply(Remove{Section: SectionLocal, Label: "gone"})

		assert.Equal(t, before, m.Rows())
	})
}

func TestFind(t *testing.T) {
	m := testModel()

	_, ok := m.Find(SectionRemote, "main")
	assert.False(t, ok, "sections namespace labels")

	got, ok := m.Find(SectionLocal, "main")
	require.True(t, ok)
	assert.Equal(t, "1111aaaa", got.ShortID)
}
