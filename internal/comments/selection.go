package comments

import (
	"strings"

	"github.com/vojtechokenka/nokturo/internal/models"
)

// Overlay state machine. One overlay instance serves one commentable
// surface: Idle -> Selecting -> PendingComment -> (Submitted|Cancelled) ->
// Idle, with a parallel Idle -> ThreadOpen -> Idle path for viewing an
// existing thread.

// State of the overlay.
type State int

const (
	StateIdle State = iota
	StateSelecting
	StatePendingComment
	StateThreadOpen
)

// ShortDescriptionBlockID is the pseudo-block id used when the selection
// lands in the short description field rather than a document block.
const ShortDescriptionBlockID = "short_description"

// Selection is a captured pointer-up text selection. Start/End are offsets
// into the block's current text; negative values mean the offsets are
// unknown and the first literal occurrence is used instead.
type Selection struct {
	BlockID string
	Text    string
	Start   int
	End     int
	Rect    Rect
}

// Pending is the recorded state of a selection awaiting comment submission.
type Pending struct {
	BlockID      string
	SelectedText string
	Rect         Rect
}

// Overlay tracks selection and thread state for one commentable surface.
type Overlay struct {
	state        State
	pending      *Pending
	openComment  string
	blockText    func(blockID string) string
	rootComments func(blockID string) []models.TextComment
}

// NewOverlay builds an overlay over accessors for the current block text and
// the root comments anchored to a block. Both are consulted lazily so the
// overlay always resolves against the latest rendered content.
func NewOverlay(blockText func(string) string, rootComments func(string) []models.TextComment) *Overlay {
	return &Overlay{
		state:        StateIdle,
		blockText:    blockText,
		rootComments: rootComments,
	}
}

// State returns the current overlay state.
func (o *Overlay) State() State { return o.state }

// Pending returns the recorded pending selection, nil outside
// StatePendingComment.
func (o *Overlay) Pending() *Pending { return o.pending }

// OpenThread returns the root comment id of the open thread, "" when no
// thread is open.
func (o *Overlay) OpenThread() string { return o.openComment }

// Resolve processes a captured selection. A selection fully inside an
// existing comment's highlight opens that comment's thread and clears any
// pending state — viewing an existing comment always wins over creating a
// new one. Otherwise a non-empty selection inside a single block becomes
// the pending comment selection. Empty selections reset to idle.
func (o *Overlay) Resolve(sel Selection) State {
	text := strings.TrimFunc(sel.Text, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if text == "" || sel.BlockID == "" {
		o.toIdle()
		return o.state
	}

	blockText := o.blockText(sel.BlockID)
	segments := Segments(blockText, o.rootComments(sel.BlockID))

	start, end := sel.Start, sel.End
	if start < 0 || end < 0 || end <= start {
		if idx := strings.Index(blockText, text); idx >= 0 {
			start, end = idx, idx+len(text)
		} else {
			start, end = -1, -1
		}
	}

	if start >= 0 {
		if seg, ok := SegmentAt(segments, start, end); ok {
			o.pending = nil
			o.openComment = seg.CommentID
			o.state = StateThreadOpen
			return o.state
		}
	}

	o.openComment = ""
	o.pending = &Pending{BlockID: sel.BlockID, SelectedText: text, Rect: sel.Rect}
	o.state = StatePendingComment
	return o.state
}

// OpenCommentThread opens the thread for a known comment id directly (e.g.
// a click on an existing highlight), clearing pending-selection state.
func (o *Overlay) OpenCommentThread(commentID string) {
	o.pending = nil
	o.openComment = commentID
	o.state = StateThreadOpen
}

// Cancel abandons the pending selection.
func (o *Overlay) Cancel() {
	o.toIdle()
}

// Submitted clears the pending selection after a successful persist.
func (o *Overlay) Submitted() {
	o.toIdle()
}

// CloseThread closes the open thread view.
func (o *Overlay) CloseThread() {
	if o.state == StateThreadOpen {
		o.toIdle()
	}
}

// CommentsDeleted reacts to a cascade deletion: if the open thread's root
// was among the deleted ids, the thread closes.
func (o *Overlay) CommentsDeleted(ids []string) {
	if o.state != StateThreadOpen {
		return
	}
	for _, id := range ids {
		if id == o.openComment {
			o.toIdle()
			return
		}
	}
}

func (o *Overlay) toIdle() {
	o.state = StateIdle
	o.pending = nil
	o.openComment = ""
}
