package picker

import (
	"strings"

	"github.com/zimplexing/git-smart-checktout/internal/git"
)

// Classified holds refs split into local-head and remote-head buckets.
// Ordering within each bucket is inherited from the input.
type Classified struct {
	Local  []git.Ref
	Remote []git.Ref
}

// Classify partitions refs by kind. Synthetic HEAD pointers are dropped;
// anything else with an unknown kind is ignored. The partition is stable.
func Classify(refs []git.Ref) Classified {
	var c Classified
	for _, r := range refs {
		if r.Name == "HEAD" || strings.HasSuffix(r.Name, "/HEAD") {
			continue
		}
		switch r.Kind {
		case git.RefHead:
			c.Local = append(c.Local, r)
		case git.RefRemoteHead:
			c.Remote = append(c.Remote, r)
		}
	}
	return c
}
