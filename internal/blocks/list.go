package blocks

import "regexp"

// List editing helpers mirroring the editor's keyboard behavior: Enter adds
// an item after the current one, Backspace on an empty item deletes it, and
// a typed marker prefix converts the line to a native list.

// ListInsertItem returns a list with an empty item inserted after index at.
func (l List) ListInsertItem(at int) List {
	if at < -1 {
		at = -1
	}
	if at >= len(l.Items) {
		at = len(l.Items) - 1
	}
	items := make([]string, 0, len(l.Items)+1)
	items = append(items, l.Items[:at+1]...)
	items = append(items, "")
	items = append(items, l.Items[at+1:]...)
	l.Items = items
	return l
}

// ListRemoveItem removes the item at index at. Removing the last remaining
// item leaves one empty item instead of an empty list.
func (l List) ListRemoveItem(at int) List {
	if at < 0 || at >= len(l.Items) {
		return l
	}
	if len(l.Items) == 1 {
		l.Items = []string{""}
		return l
	}
	items := make([]string, 0, len(l.Items)-1)
	items = append(items, l.Items[:at]...)
	items = append(items, l.Items[at+1:]...)
	l.Items = items
	return l
}

var (
	unorderedMarker = regexp.MustCompile(`^[-*\x{2022}]\s`)
	orderedMarker   = regexp.MustCompile(`^(?:\d+\.|[A-Za-z]\))\s`)
)

// DetectListMarker reports whether line starts with a list marker ("- ",
// "1. ", "a) ", ...) and which list style it converts to.
func DetectListMarker(line string) (style string, ok bool) {
	if unorderedMarker.MatchString(line) {
		return ListBullet, true
	}
	if orderedMarker.MatchString(line) {
		return ListNumbered, true
	}
	return "", false
}

// StripListMarker removes a detected marker prefix from line.
func StripListMarker(line string) string {
	if loc := unorderedMarker.FindStringIndex(line); loc != nil {
		return line[loc[1]:]
	}
	if loc := orderedMarker.FindStringIndex(line); loc != nil {
		return line[loc[1]:]
	}
	return line
}

// ConvertLineToList turns a typed line carrying a marker prefix into a
// one-item list block payload. ok is false when the line has no marker.
func ConvertLineToList(line string) (List, bool) {
	style, ok := DetectListMarker(line)
	if !ok {
		return List{}, false
	}
	return List{Style: style, Items: []string{StripListMarker(line)}}, true
}
