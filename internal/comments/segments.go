// segments.go
//
// Block document engine for the Nokturo studio application
// Copyright (c) 2026 Vojtech Okenka <vojtech@okenka.dev>
//
// This file is part of nokturo.
// nokturo is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// nokturo is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with nokturo.
// If not, see <https://www.gnu.org/licenses/>.

package comments

import (
	"sort"
	"strings"

	"github.com/vojtechokenka/nokturo/internal/models"
)

// Segment is a derived highlight range inside a block's current text. It is
// recomputed on every render and never persisted.
type Segment struct {
	Start     int
	End       int
	CommentID string
}

// Segments locates each root comment's selected text inside the block's
// current text and resolves overlaps. Only root comments (nil parent)
// anchor highlights. The result is sorted by start offset and pairwise
// non-overlapping: a comment whose range would overlap an earlier-starting
// one is silently dropped (it stays addressable by id, it just doesn't
// highlight). Comments whose selected text no longer occurs in the block
// text produce no segment — the stale-anchor case degrades silently.
func Segments(text string, list []models.TextComment) []Segment {
	found := make([]Segment, 0, len(list))
	for _, c := range list {
		if c.ParentID != nil || c.SelectedText == "" {
			continue
		}
		start := strings.Index(text, c.SelectedText)
		if start < 0 {
			continue
		}
		found = append(found, Segment{
			Start:     start,
			End:       start + len(c.SelectedText),
			CommentID: c.CommentID,
		})
	}

	// Stable sort keeps registration order for identical starts, so the
	// first-registered comment wins ties.
	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Start < found[j].Start
	})

	kept := found[:0]
	prevEnd := -1
	for _, seg := range found {
		if seg.Start < prevEnd {
			continue
		}
		kept = append(kept, seg)
		prevEnd = seg.End
	}
	return kept
}

// SegmentAt returns the segment containing [start, end), if any. Used to
// decide whether a fresh selection falls fully inside an existing highlight.
func SegmentAt(segments []Segment, start, end int) (Segment, bool) {
	for _, seg := range segments {
		if start >= seg.Start && end <= seg.End {
			return seg, true
		}
	}
	return Segment{}, false
}
