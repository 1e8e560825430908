package comments

import (
	"sort"

	"github.com/vojtechokenka/nokturo/internal/models"
)

// Reply-tree helpers. parent_id forms the tree; thread views flatten it to
// a list ordered by creation time.

// Thread returns the root comment plus every transitive descendant, sorted
// by creation time ascending. Returns nil when the root id is unknown.
func Thread(list []models.TextComment, rootID string) []models.TextComment {
	byID := make(map[string]models.TextComment, len(list))
	children := make(map[string][]string, len(list))
	for _, c := range list {
		byID[c.CommentID] = c
		if c.ParentID != nil {
			children[*c.ParentID] = append(children[*c.ParentID], c.CommentID)
		}
	}

	root, ok := byID[rootID]
	if !ok {
		return nil
	}

	out := []models.TextComment{root}
	frontier := []string{rootID}
	for len(frontier) > 0 {
		id := frontier[0]
		frontier = frontier[1:]
		for _, childID := range children[id] {
			out = append(out, byID[childID])
			frontier = append(frontier, childID)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// CascadeIDs returns the id of the given comment plus every comment whose
// parent chain roots at it — the full set a delete must remove.
func CascadeIDs(list []models.TextComment, id string) []string {
	children := make(map[string][]string, len(list))
	for _, c := range list {
		if c.ParentID != nil {
			children[*c.ParentID] = append(children[*c.ParentID], c.CommentID)
		}
	}

	out := []string{}
	frontier := []string{id}
	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]
		out = append(out, cur)
		frontier = append(frontier, children[cur]...)
	}
	return out
}

// RootsFor returns the root comments anchored to the given block.
func RootsFor(list []models.TextComment, blockID string) []models.TextComment {
	out := []models.TextComment{}
	for _, c := range list {
		if c.ParentID == nil && c.BlockID == blockID {
			out = append(out, c)
		}
	}
	return out
}
