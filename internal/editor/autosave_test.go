package editor_test

import (
	"sync"
	"testing"
	"time"

	"github.com/vojtechokenka/nokturo/internal/blocks"
	"github.com/vojtechokenka/nokturo/internal/editor"
)

// saveRecorder collects the documents handed to the save func.
type saveRecorder struct {
	mu   sync.Mutex
	docs []blocks.Document
}

func (r *saveRecorder) save(doc blocks.Document) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs = append(r.docs, doc)
}

func (r *saveRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.docs)
}

func (r *saveRecorder) last() blocks.Document {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.docs) == 0 {
		return nil
	}
	return r.docs[len(r.docs)-1]
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("Condition not met before deadline")
}

// TestAutosaveDebounce verifies a burst of edits produces one save holding
// the final state
func TestAutosaveDebounce(t *testing.T) {
	rec := &saveRecorder{}
	a := editor.NewAutosave(30*time.Millisecond, rec.save)
	defer a.Close()

	a.Notify(blocks.Document{emptyParagraph("v1")})
	a.Notify(blocks.Document{emptyParagraph("v1"), emptyParagraph("v2")})
	a.Notify(blocks.Document{emptyParagraph("v1"), emptyParagraph("v2"), emptyParagraph("v3")})

	waitFor(t, func() bool { return rec.count() >= 1 })

	if rec.count() != 1 {
		t.Errorf("Expected exactly one save for the burst, got %d", rec.count())
	}
	if len(rec.last()) != 3 {
		t.Errorf("Expected the final document saved, got %d blocks", len(rec.last()))
	}
}

// TestAutosaveSeparateBursts verifies spaced-out edits each save
func TestAutosaveSeparateBursts(t *testing.T) {
	rec := &saveRecorder{}
	a := editor.NewAutosave(20*time.Millisecond, rec.save)
	defer a.Close()

	a.Notify(blocks.Document{emptyParagraph("a")})
	waitFor(t, func() bool { return rec.count() == 1 })

	a.Notify(blocks.Document{emptyParagraph("a"), emptyParagraph("b")})
	waitFor(t, func() bool { return rec.count() == 2 })

	if len(rec.last()) != 2 {
		t.Errorf("Expected the second burst's document, got %d blocks", len(rec.last()))
	}
}

// TestAutosaveFlush verifies an immediate save of pending state
func TestAutosaveFlush(t *testing.T) {
	rec := &saveRecorder{}
	a := editor.NewAutosave(time.Hour, rec.save)
	defer a.Close()

	a.Notify(blocks.Document{emptyParagraph("a")})
	a.Flush()

	if rec.count() != 1 {
		t.Fatalf("Expected one save after Flush, got %d", rec.count())
	}

	// Nothing pending: Flush is a no-op.
	a.Flush()
	if rec.count() != 1 {
		t.Errorf("Expected no save without pending state, got %d", rec.count())
	}
}

// TestAutosaveClose verifies pending saves are dropped on Close
func TestAutosaveClose(t *testing.T) {
	rec := &saveRecorder{}
	a := editor.NewAutosave(20*time.Millisecond, rec.save)

	a.Notify(blocks.Document{emptyParagraph("a")})
	a.Close()

	time.Sleep(60 * time.Millisecond)
	if rec.count() != 0 {
		t.Errorf("Expected the pending save cancelled, got %d saves", rec.count())
	}

	// Notify after Close stays silent.
	a.Notify(blocks.Document{emptyParagraph("b")})
	time.Sleep(40 * time.Millisecond)
	if rec.count() != 0 {
		t.Errorf("Expected no saves after Close, got %d", rec.count())
	}
}

// TestSessionAutosaveWiring verifies session edits reach the saver
func TestSessionAutosaveWiring(t *testing.T) {
	rec := &saveRecorder{}
	s := editor.NewSession(blocks.Document{}, nil)
	s.SetAutosave(editor.NewAutosave(20*time.Millisecond, rec.save))

	s.Insert(0, emptyParagraph("p1"))
	waitFor(t, func() bool { return rec.count() >= 1 })

	if len(rec.last()) != 1 {
		t.Errorf("Expected the session document saved, got %d blocks", len(rec.last()))
	}

	// Close cancels anything newly scheduled.
	s.Insert(1, emptyParagraph("p2"))
	s.Close()
	saved := rec.count()
	time.Sleep(60 * time.Millisecond)
	if rec.count() != saved {
		t.Error("Expected no saves after the session closed")
	}
}
