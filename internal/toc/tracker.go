package toc

import "sort"

// Anchor is the reported geometry of one outline target inside the scroll
// content, in viewport coordinates (same space as the viewport itself).
type Anchor struct {
	ID     string
	Top    float64
	Bottom float64
}

// Viewport describes the scrollable content root.
type Viewport struct {
	Top    float64
	Height float64
}

// activeFraction is the bottom-weighted observation margin: an anchor counts
// as current once it has scrolled into the upper 40% of the viewport.
const activeFraction = 0.4

// Tracker computes the currently-visible outline entry from reported anchor
// geometry. It is restartable: Reset re-observes from scratch whenever the
// entry list changes.
type Tracker struct {
	entries map[string]bool
	current string
}

// NewTracker starts tracking the given outline.
func NewTracker(entries []Entry) *Tracker {
	t := &Tracker{}
	t.Reset(entries)
	return t
}

// Reset replaces the tracked entry set and forgets the current item.
func (t *Tracker) Reset(entries []Entry) {
	t.entries = make(map[string]bool, len(entries))
	for _, e := range entries {
		t.entries[e.ID] = true
	}
	t.current = ""
}

// Observe ingests a fresh set of anchor rectangles and returns the id of
// the current entry. Among all anchors intersecting the active region the
// topmost wins; anchors not present in the tracked outline are ignored.
// When nothing intersects, the previous current item is kept.
func (t *Tracker) Observe(anchors []Anchor, vp Viewport) string {
	activeTop := vp.Top
	activeBottom := vp.Top + vp.Height*activeFraction

	visible := anchors[:0:0]
	for _, a := range anchors {
		if !t.entries[a.ID] {
			continue
		}
		if a.Bottom > activeTop && a.Top < activeBottom {
			visible = append(visible, a)
		}
	}
	if len(visible) == 0 {
		return t.current
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Top < visible[j].Top
	})
	t.current = visible[0].ID
	return t.current
}

// Current returns the last computed current entry id, "" before the first
// qualifying observation.
func (t *Tracker) Current() string {
	return t.current
}
