package git

import (
	"strings"

	"github.com/zimplexing/git-smart-checktout/internal/exec"
)

var _ Repository = (*Client)(nil)

// Client implements Repository by shelling out to git.
type Client struct {
	root     string
	run      exec.Runner
	messages *MessageCache
}

// NewClient creates a Client rooted at the given directory.
func NewClient(root string, run exec.Runner) *Client {
	return &Client{root: root, run: run}
}

// WithMessageCache attaches a commit-message cache consulted by CommitMessage.
func (c *Client) WithMessageCache(mc *MessageCache) *Client {
	c.messages = mc
	return c
}

func (c *Client) Root() string {
	return c.root
}

func (c *Client) git(args ...string) (string, error) {
	return c.run.Output(c.root, "git", args...)
}

func (c *Client) HeadBranch() (string, error) {
	out, err := c.git("rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	name := strings.TrimSpace(out)
	if name == "HEAD" {
		// Detached HEAD has no branch name.
		return "", nil
	}
	return name, nil
}

func (c *Client) HeadCommit() (string, error) {
	out, err := c.git("rev-parse", "--verify", "--quiet", "HEAD")
	if err != nil {
		// Unborn HEAD (fresh repository) has no commit yet.
		return "", nil
	}
	return strings.TrimSpace(out), nil
}

// Refs enumerates refs/heads and refs/remotes in one pass so the
// commit-date ordering is global across both namespaces.
func (c *Client) Refs() ([]Ref, error) {
	out, err := c.git("for-each-ref",
		"--sort=-committerdate",
		"--format=%(refname)%00%(objectname)",
		"refs/heads", "refs/remotes")
	if err != nil {
		return nil, err
	}
	return parseRefs(out), nil
}

// parseRefs parses for-each-ref output with NUL-separated fields.
func parseRefs(out string) []Ref {
	var refs []Ref
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, "\x00", 2)
		name := fields[0]
		commit := ""
		if len(fields) == 2 {
			commit = fields[1]
		}

		switch {
		case strings.HasPrefix(name, "refs/heads/"):
			refs = append(refs, Ref{
				Name:     strings.TrimPrefix(name, "refs/heads/"),
				Kind:     RefHead,
				CommitID: commit,
			})
		case strings.HasPrefix(name, "refs/remotes/"):
			short := strings.TrimPrefix(name, "refs/remotes/")
			// Skip symbolic pointers like origin/HEAD.
			if strings.HasSuffix(short, "/HEAD") {
				continue
			}
			remote := short
			if i := strings.Index(short, "/"); i > 0 {
				remote = short[:i]
			}
			refs = append(refs, Ref{
				Name:     short,
				Kind:     RefRemoteHead,
				Remote:   remote,
				CommitID: commit,
			})
		}
	}
	return refs
}

func (c *Client) Checkout(name string) error {
	_, err := c.git("checkout", name)
	return err
}

func (c *Client) CreateBranch(name string, checkout bool, from string) error {
	var args []string
	if checkout {
		args = []string{"checkout", "-b", name}
	} else {
		args = []string{"branch", name}
	}
	if from != "" {
		args = append(args, from)
	}
	_, err := c.git(args...)
	return err
}

func (c *Client) RenameBranch(oldName, newName string) error {
	_, err := c.git("branch", "-m", "--", oldName, newName)
	return err
}

func (c *Client) DeleteBranch(name string, force bool) error {
	flag := "-d"
	if force {
		flag = "-D"
	}
	if c.isRemoteTracking(name) {
		_, err := c.git("branch", flag, "-r", "--", name)
		return err
	}
	_, err := c.git("branch", flag, "--", name)
	return err
}

// isRemoteTracking reports whether name resolves only under refs/remotes.
// Local heads win when both exist.
func (c *Client) isRemoteTracking(name string) bool {
	if _, err := c.git("rev-parse", "--verify", "--quiet", "refs/heads/"+name); err == nil {
		return false
	}
	_, err := c.git("rev-parse", "--verify", "--quiet", "refs/remotes/"+name)
	return err == nil
}

func (c *Client) Fetch() error {
	_, err := c.git("fetch", "--prune")
	return err
}

func (c *Client) CommitMessage(commitID string) (string, error) {
	if commitID == "" {
		return "", nil
	}
	if c.messages != nil {
		if msg, ok := c.messages.Get(commitID); ok {
			return msg, nil
		}
	}
	out, err := c.git("show", "-s", "--format=%s", commitID)
	if err != nil {
		return "", err
	}
	msg := strings.TrimSpace(out)
	if c.messages != nil {
		c.messages.Put(commitID, msg)
	}
	return msg, nil
}
