package editor

import (
	"sync"
	"time"

	"github.com/vojtechokenka/nokturo/internal/blocks"
)

// DefaultAutosaveDelay matches the debounce window the editor UI uses
// between the last keystroke and the write.
const DefaultAutosaveDelay = 1500 * time.Millisecond

// Autosave debounces document writes. Every Notify resets the timer; only
// the document captured by the final Notify in a burst reaches the save
// func. A save already in flight is never interrupted.
type Autosave struct {
	mu     sync.Mutex
	delay  time.Duration
	timer  *time.Timer
	gen    uint64
	latest blocks.Document
	closed bool

	save func(blocks.Document)
}

// NewAutosave builds a debouncer with the given window. delay <= 0 falls
// back to DefaultAutosaveDelay.
func NewAutosave(delay time.Duration, save func(blocks.Document)) *Autosave {
	if delay <= 0 {
		delay = DefaultAutosaveDelay
	}
	return &Autosave{delay: delay, save: save}
}

// Notify records the newest document state and restarts the debounce
// window.
func (a *Autosave) Notify(doc blocks.Document) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}
	a.latest = doc
	a.gen++
	gen := a.gen
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.delay, func() { a.fire(gen) })
}

// Flush saves immediately if a write is pending, cancelling the timer.
func (a *Autosave) Flush() {
	a.mu.Lock()
	if a.closed || a.timer == nil {
		a.mu.Unlock()
		return
	}
	a.timer.Stop()
	a.timer = nil
	doc := a.latest
	save := a.save
	a.mu.Unlock()
	save(doc)
}

// Close cancels any pending save. Pending state is dropped; callers that
// need the last state written call Flush first.
func (a *Autosave) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closed = true
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}

func (a *Autosave) fire(gen uint64) {
	a.mu.Lock()
	// A newer Notify superseded this timer between Stop and AfterFunc.
	if a.closed || gen != a.gen {
		a.mu.Unlock()
		return
	}
	a.timer = nil
	doc := a.latest
	save := a.save
	a.mu.Unlock()
	save(doc)
}
