package comments_test

import (
	"testing"
	"time"

	"github.com/vojtechokenka/nokturo/internal/comments"
	"github.com/vojtechokenka/nokturo/internal/models"
)

func at(id string, parent *string, created time.Time) models.TextComment {
	return models.TextComment{CommentID: id, ParentID: parent, CreatedAt: created}
}

func ptr(s string) *string { return &s }

// TestThread verifies the flattened, creation-ordered thread view
func TestThread(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	list := []models.TextComment{
		at("root", nil, base),
		at("r1", ptr("root"), base.Add(2*time.Minute)),
		at("r2", ptr("root"), base.Add(1*time.Minute)),
		at("r1a", ptr("r1"), base.Add(3*time.Minute)),
		at("other", nil, base.Add(4*time.Minute)),
	}

	thread := comments.Thread(list, "root")
	if len(thread) != 4 {
		t.Fatalf("Expected 4 comments in the thread, got %d", len(thread))
	}

	order := []string{"root", "r2", "r1", "r1a"}
	for i, want := range order {
		if thread[i].CommentID != want {
			t.Errorf("Position %d: expected %s, got %s", i, want, thread[i].CommentID)
		}
	}
}

// TestThreadUnknownRoot verifies a missing root yields nil
func TestThreadUnknownRoot(t *testing.T) {
	list := []models.TextComment{at("root", nil, time.Now())}
	if got := comments.Thread(list, "missing"); got != nil {
		t.Errorf("Expected nil for an unknown root, got %v", got)
	}
}

// TestCascadeIDs verifies the transitive delete set
func TestCascadeIDs(t *testing.T) {
	list := []models.TextComment{
		at("root", nil, time.Now()),
		at("r1", ptr("root"), time.Now()),
		at("r1a", ptr("r1"), time.Now()),
		at("r2", ptr("root"), time.Now()),
		at("other", nil, time.Now()),
	}

	ids := comments.CascadeIDs(list, "root")
	if len(ids) != 4 {
		t.Fatalf("Expected 4 ids, got %v", ids)
	}
	want := map[string]bool{"root": true, "r1": true, "r1a": true, "r2": true}
	for _, id := range ids {
		if !want[id] {
			t.Errorf("Unexpected id %s in cascade", id)
		}
	}

	// A mid-tree delete takes only its own subtree.
	ids = comments.CascadeIDs(list, "r1")
	if len(ids) != 2 || ids[0] != "r1" {
		t.Errorf("Expected [r1 r1a], got %v", ids)
	}
}

// TestRootsFor verifies per-block root filtering
func TestRootsFor(t *testing.T) {
	list := []models.TextComment{
		{CommentID: "c1", BlockID: "b1"},
		{CommentID: "c2", BlockID: "b2"},
		{CommentID: "r1", BlockID: "b1", ParentID: ptr("c1")},
	}

	roots := comments.RootsFor(list, "b1")
	if len(roots) != 1 || roots[0].CommentID != "c1" {
		t.Errorf("Expected only the b1 root, got %v", roots)
	}
}
