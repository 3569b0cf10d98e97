package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zimplexing/git-smart-checktout/internal/git"
)

func TestClassify(t *testing.T) {
	refs := []git.Ref{
		{Name: "feature/auth", Kind: git.RefHead, CommitID: "aaa"},
		{Name: "origin/main", Kind: git.RefRemoteHead, Remote: "origin", CommitID: "bbb"},
		{Name: "main", Kind: git.RefHead, CommitID: "ccc"},
		{Name: "origin/feature/auth", Kind: git.RefRemoteHead, Remote: "origin", CommitID: "aaa"},
	}

	c := Classify(refs)

	require.Len(t, c.Local, 2)
	require.Len(t, c.Remote, 2)

	// Partition is stable: commit-recency order from the input survives.
	assert.Equal(t, "feature/auth", c.Local[0].Name)
	assert.Equal(t, "main", c.Local[1].Name)
	assert.Equal(t, "origin/main", c.Remote[0].Name)
	assert.Equal(t, "origin/feature/auth", c.Remote[1].Name)
}

func TestClassifyExcludesHEAD(t *testing.T) {
	refs := []git.Ref{
		{Name: "HEAD", Kind: git.RefHead},
		{Name: "origin/HEAD", Kind: git.RefRemoteHead, Remote: "origin"},
		{Name: "main", Kind: git.RefHead},
	}

	c := Classify(refs)

	require.Len(t, c.Local, 1)
	assert.Equal(t, "main", c.Local[0].Name)
	assert.Empty(t, c.Remote)
}

func TestClassifyEmpty(t *testing.T) {
	c := Classify(nil)
	assert.Empty(t, c.Local)
	assert.Empty(t, c.Remote)
}
