// Package toc derives a navigable outline from a rendered document's
// heading set and tracks which section is currently visible.
package toc

import "github.com/vojtechokenka/nokturo/internal/blocks"

// Entry is one outline row. Extra entries supplied by the caller (section
// anchors that are not heading blocks) carry Extra=true.
type Entry struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Level int    `json:"level"`
	Extra bool   `json:"extra,omitempty"`
}

// Build filters TocItems down to the rendered outline (levels 1-2 only;
// level 3 headings are captured by the renderer but not shown) and appends
// externally supplied extra entries after the document's own headings.
func Build(items []blocks.TocItem, extras []Entry) []Entry {
	out := make([]Entry, 0, len(items)+len(extras))
	for _, item := range items {
		if item.Level > 2 {
			continue
		}
		out = append(out, Entry{ID: item.ID, Text: item.Text, Level: item.Level})
	}
	out = append(out, extras...)
	return out
}
