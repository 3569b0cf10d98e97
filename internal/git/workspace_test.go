package git

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dirRunner resolves rev-parse per directory, so Discover can be tested
// without real repositories.
type dirRunner struct {
	toplevels map[string]string // dir -> repo root, missing means not a repo
}

func (d *dirRunner) Output(dir, name string, args ...string) (string, error) {
	if top, ok := d.toplevels[dir]; ok {
		return top + "\n", nil
	}
	return "", errors.New("not a git repository")
}

func (d *dirRunner) Run(dir, name string, args ...string) error {
	_, err := d.Output(dir, name, args...)
	return err
}

func TestDiscover(t *testing.T) {
	run := &dirRunner{toplevels: map[string]string{
		"/work/app":      "/work/app",
		"/work/app/sub":  "/work/app",
		"/work/lib":      "/work/lib",
	}}

	w := Discover(run, nil, "/work/app", "/work/app/sub", "/work/other", "/work/lib")

	repos := w.Repositories()
	require.Len(t, repos, 2, "duplicate and missing roots collapse")
	assert.Equal(t, "/work/app", repos[0].Root())
	assert.Equal(t, "/work/lib", repos[1].Root())
}

func TestCurrent(t *testing.T) {
	run := &dirRunner{toplevels: map[string]string{
		"/work/app": "/work/app",
		"/work/lib": "/work/lib",
	}}
	w := Discover(run, nil, "/work/app", "/work/lib")

	t.Run("picks the repository containing the directory", func(t *testing.T) {
		repo, err := w.Current("/work/lib/internal/deep")
		require.NoError(t, err)
		assert.Equal(t, "/work/lib", repo.Root())
	})

	t.Run("falls back to the first repository", func(t *testing.T) {
		repo, err := w.Current("/elsewhere")
		require.NoError(t, err)
		assert.Equal(t, "/work/app", repo.Root())
	})
}

func TestCurrentNoRepository(t *testing.T) {
	w := Discover(&dirRunner{}, nil, "/nowhere")
	_, err := w.Current("/nowhere")
	assert.ErrorIs(t, err, ErrNoRepository)
}

func TestRescan(t *testing.T) {
	run := &dirRunner{toplevels: map[string]string{}}
	w := Discover(run, nil, "/work/app")
	require.Empty(t, w.Repositories())

	// The directory becomes a repository later; an explicit refresh finds it.
	run.toplevels["/work/app"] = "/work/app"
	w.Rescan()

	require.Len(t, w.Repositories(), 1)
	repo, err := w.Current("/work/app")
	require.NoError(t, err)
	assert.Equal(t, "/work/app", repo.Root())
}
