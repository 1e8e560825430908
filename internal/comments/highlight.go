package comments

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/vojtechokenka/nokturo/internal/models"
)

// Highlight wrapping. Plain-text blocks are spliced by byte offsets; HTML
// content blocks are rewritten by literal substring replacement processed in
// descending match order, so rewriting one match never invalidates the
// still-pending offsets of another.

// openMark returns the wrapper start tag for a committed comment highlight.
func openMark(commentID string) string {
	return `<mark data-comment-id="` + html.EscapeString(commentID) + `">`
}

const closeMark = "</mark>"

// pendingOpen marks a not-yet-submitted selection, visually distinct from a
// committed highlight.
const (
	pendingOpen  = `<mark data-pending="true">`
	pendingClose = "</mark>"
)

// WrapText splices highlight markers into a plain-text block (heading,
// quote) for the given resolved segments. Text outside segments is escaped;
// segment slices are escaped too, so offsets refer to the raw text.
func WrapText(text string, segments []Segment) string {
	if len(segments) == 0 {
		return html.EscapeString(text)
	}

	var sb strings.Builder
	cursor := 0
	for _, seg := range segments {
		if seg.Start < cursor || seg.End > len(text) {
			continue
		}
		sb.WriteString(html.EscapeString(text[cursor:seg.Start]))
		sb.WriteString(openMark(seg.CommentID))
		sb.WriteString(html.EscapeString(text[seg.Start:seg.End]))
		sb.WriteString(closeMark)
		cursor = seg.End
	}
	sb.WriteString(html.EscapeString(text[cursor:]))
	return sb.String()
}

// WrapHTML wraps each root comment's selected text inside an HTML content
// block. The selected text is matched literally (regex-escaped) against the
// HTML string. Matches are resolved with the same first-wins overlap rule as
// Segments and rewritten in descending position order.
func WrapHTML(content string, list []models.TextComment) string {
	type match struct {
		start, end int
		commentID  string
	}

	all := []match{}
	for _, c := range list {
		if c.ParentID != nil || c.SelectedText == "" {
			continue
		}
		re := regexp.MustCompile(regexp.QuoteMeta(c.SelectedText))
		loc := re.FindStringIndex(content)
		if loc == nil {
			continue
		}
		all = append(all, match{start: loc[0], end: loc[1], commentID: c.CommentID})
	}

	sort.SliceStable(all, func(i, j int) bool { return all[i].start < all[j].start })
	kept := all[:0]
	prevEnd := -1
	for _, m := range all {
		if m.start < prevEnd {
			continue
		}
		kept = append(kept, m)
		prevEnd = m.end
	}

	// Descending rewrite keeps earlier offsets valid.
	for i := len(kept) - 1; i >= 0; i-- {
		m := kept[i]
		content = content[:m.start] +
			openMark(m.commentID) + content[m.start:m.end] + closeMark +
			content[m.end:]
	}
	return content
}

// WrapPending marks the first literal occurrence of the pending selection
// inside the block's current content. Used while a comment is being
// composed; committed highlights are not recomputed here.
func WrapPending(content, selectedText string) string {
	if selectedText == "" {
		return content
	}
	idx := strings.Index(content, selectedText)
	if idx < 0 {
		return content
	}
	return content[:idx] + pendingOpen + selectedText + pendingClose + content[idx+len(selectedText):]
}
