package picker

import (
	"github.com/zimplexing/git-smart-checktout/internal/debug"
	"github.com/zimplexing/git-smart-checktout/internal/git"
)

// DefaultPreviewLimit bounds commit-message lookups to the most recently
// committed local branches, keeping rebuild cost independent of branch
// count.
const DefaultPreviewLimit = 10

// MessageLookup resolves a commit id to its subject line.
type MessageLookup interface {
	CommitMessage(commitID string) (string, error)
}

// ShortID abbreviates a commit id for display.
func ShortID(commitID string) string {
	if len(commitID) > 8 {
		return commitID[:8]
	}
	return commitID
}

// BuildSection converts classified refs into branch rows. Previews are
// fetched only for the first previewLimit local entries; a failed lookup
// degrades that one entry's preview rather than aborting the build.
func BuildSection(refs []git.Ref, section Section, previewLimit int, messages MessageLookup) []BranchItem {
	items := make([]BranchItem, 0, len(refs))
	for i, r := range refs {
		item := BranchItem{
			Label:   r.Name,
			ShortID: ShortID(r.CommitID),
			Section: section,
			Actions: branchActions(),
		}
		if section == SectionLocal && i < previewLimit && r.CommitID != "" && messages != nil {
			msg, err := messages.CommitMessage(r.CommitID)
			if err != nil {
				debug.Log("preview lookup failed for %s: %v", r.Name, err)
			} else {
				item.Preview = msg
			}
		}
		items = append(items, item)
	}
	return items
}

// Build assembles a fresh model from the repository's current refs.
func Build(repo git.Repository, previewLimit int) (*Model, error) {
	refs, err := repo.Refs()
	if err != nil {
		return nil, err
	}
	c := Classify(refs)
	return &Model{
		Local:  BuildSection(c.Local, SectionLocal, previewLimit, repo),
		Remote: BuildSection(c.Remote, SectionRemote, previewLimit, repo),
	}, nil
}
