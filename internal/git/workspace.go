package git

import (
	"path/filepath"
	"strings"

	"github.com/zimplexing/git-smart-checktout/internal/exec"
)

// Workspace holds the set of repositories discovered from a list of root
// directories. Roots that are not inside a git repository are skipped.
type Workspace struct {
	run      exec.Runner
	messages *MessageCache
	roots    []string
	repos    []*Client
}

// Discover scans the given directories for git repositories. Each root
// contributes the repository that contains it; duplicates collapse to one
// entry.
func Discover(run exec.Runner, mc *MessageCache, roots ...string) *Workspace {
	w := &Workspace{run: run, messages: mc, roots: roots}
	w.Rescan()
	return w
}

// Rescan re-runs repository discovery over the workspace roots. Used by an
// explicit refresh after the workspace started without any repository.
func (w *Workspace) Rescan() {
	seen := make(map[string]bool)
	var repos []*Client
	for _, root := range w.roots {
		out, err := w.run.Output(root, "git", "rev-parse", "--show-toplevel")
		if err != nil {
			continue
		}
		top := strings.TrimSpace(out)
		if top == "" || seen[top] {
			continue
		}
		seen[top] = true
		c := NewClient(top, w.run)
		if w.messages != nil {
			c = c.WithMessageCache(w.messages)
		}
		repos = append(repos, c)
	}
	w.repos = repos
}

// Repositories returns the discovered repositories in root order.
func (w *Workspace) Repositories() []*Client {
	return w.repos
}

// Current returns the repository whose root contains dir, falling back to
// the first discovered repository. ErrNoRepository when the workspace is
// empty.
func (w *Workspace) Current(dir string) (*Client, error) {
	if len(w.repos) == 0 {
		return nil, ErrNoRepository
	}
	if abs, err := filepath.Abs(dir); err == nil {
		for _, r := range w.repos {
			if abs == r.root || strings.HasPrefix(abs, r.root+string(filepath.Separator)) {
				return r, nil
			}
		}
	}
	return w.repos[0], nil
}
