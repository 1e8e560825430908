package blocks_test

import (
	"testing"

	"github.com/vojtechokenka/nokturo/internal/blocks"
)

func para(id, content string) blocks.Block {
	return blocks.Block{
		ID:        id,
		Kind:      blocks.KindParagraph,
		Paragraph: &blocks.Paragraph{Size: blocks.SizeNormal, Content: content},
	}
}

// TestInsertClamps verifies out-of-range indices clamp instead of panicking
func TestInsertClamps(t *testing.T) {
	doc := blocks.Document{para("a", "one"), para("b", "two")}

	out := blocks.Insert(doc, -5, para("x", "front"))
	if out[0].ID != "x" {
		t.Errorf("Expected insert at -5 to land at 0, got order %s", out[0].ID)
	}

	out = blocks.Insert(doc, 99, para("y", "back"))
	if out[len(out)-1].ID != "y" {
		t.Errorf("Expected insert at 99 to land at the end, got %s", out[len(out)-1].ID)
	}

	if len(doc) != 2 {
		t.Error("Insert must not mutate the input document")
	}
}

// TestUpdateKeepsID verifies fn cannot change the block's identity
func TestUpdateKeepsID(t *testing.T) {
	doc := blocks.Document{para("a", "one")}

	out := blocks.Update(doc, "a", func(b blocks.Block) blocks.Block {
		b.ID = "evil"
		b.Paragraph.Content = "changed"
		return b
	})

	if out[0].ID != "a" {
		t.Errorf("Expected id preserved, got %s", out[0].ID)
	}
}

// TestUpdateKindChangeDropsPayload verifies stale payloads are cleared on a
// type change
func TestUpdateKindChangeDropsPayload(t *testing.T) {
	doc := blocks.Document{para("a", "one")}

	out := blocks.Update(doc, "a", func(b blocks.Block) blocks.Block {
		b.Kind = blocks.KindQuote
		b.Quote = &blocks.Quote{Text: "now a quote"}
		return b
	})

	if out[0].Kind != blocks.KindQuote {
		t.Fatalf("Expected kind quote, got %s", out[0].Kind)
	}
	if out[0].Paragraph != nil {
		t.Error("Expected the stale paragraph payload to be dropped")
	}
}

// TestUpdateMissingID verifies updates against a removed block are a no-op
func TestUpdateMissingID(t *testing.T) {
	doc := blocks.Document{para("a", "one")}

	called := false
	out := blocks.Update(doc, "gone", func(b blocks.Block) blocks.Block {
		called = true
		return b
	})

	if called {
		t.Error("fn must not run for a missing id")
	}
	if len(out) != 1 || out[0].ID != "a" {
		t.Error("Document must be unchanged for a missing id")
	}
}

// TestRemove verifies removal and the missing-id no-op
func TestRemove(t *testing.T) {
	doc := blocks.Document{para("a", "one"), para("b", "two")}

	out := blocks.Remove(doc, "a")
	if len(out) != 1 || out[0].ID != "b" {
		t.Errorf("Expected [b], got %v", out)
	}

	out = blocks.Remove(doc, "nope")
	if len(out) != 2 {
		t.Error("Removing a missing id must be a no-op")
	}
}

// TestMove verifies reordering in both directions and range guards
func TestMove(t *testing.T) {
	doc := blocks.Document{para("a", ""), para("b", ""), para("c", "")}

	out := blocks.Move(doc, 0, 2)
	if out[0].ID != "b" || out[1].ID != "c" || out[2].ID != "a" {
		t.Errorf("Expected b,c,a after moving 0->2, got %s,%s,%s", out[0].ID, out[1].ID, out[2].ID)
	}

	out = blocks.Move(doc, 2, 0)
	if out[0].ID != "c" || out[1].ID != "a" || out[2].ID != "b" {
		t.Errorf("Expected c,a,b after moving 2->0, got %s,%s,%s", out[0].ID, out[1].ID, out[2].ID)
	}

	out = blocks.Move(doc, 1, 1)
	if out[0].ID != "a" || out[1].ID != "b" {
		t.Error("Moving a block onto itself must be a no-op")
	}

	out = blocks.Move(doc, -1, 2)
	if len(out) != 3 || out[0].ID != "a" {
		t.Error("Out-of-range source must be a no-op")
	}
	out = blocks.Move(doc, 0, 3)
	if len(out) != 3 || out[0].ID != "a" {
		t.Error("Out-of-range destination must be a no-op")
	}
}

// TestIndexOfAndGet verifies basic lookups
func TestIndexOfAndGet(t *testing.T) {
	doc := blocks.Document{para("a", "one"), para("b", "two")}

	if idx := blocks.IndexOf(doc, "b"); idx != 1 {
		t.Errorf("Expected index 1 for b, got %d", idx)
	}
	if idx := blocks.IndexOf(doc, "z"); idx != -1 {
		t.Errorf("Expected -1 for unknown id, got %d", idx)
	}

	if _, ok := blocks.Get(doc, "a"); !ok {
		t.Error("Expected Get to find a")
	}
	if _, ok := blocks.Get(doc, "z"); ok {
		t.Error("Expected Get to miss z")
	}
}
