package comments

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vojtechokenka/nokturo/internal/models"
)

// Mention support for the comment composer: "@" followed by a short query
// opens a filtered suggestion list; committing a suggestion replaces the
// query span with the user's full name and records the tagged id.

// maxQueryLen bounds the mention query; longer queries never open the list.
const maxQueryLen = 30

// MentionQuery is a detected in-progress mention.
type MentionQuery struct {
	Query string
	// Start is the byte offset of the "@" in the composer text.
	Start int
}

// DetectMention scans back from the caret for an "@" that starts a mention:
// it must sit at the start of the text or after whitespace, and the query
// between it and the caret must be non-space-containing and at most 30
// characters. ok is false otherwise.
func DetectMention(text string, caret int) (MentionQuery, bool) {
	if caret < 0 || caret > len(text) {
		return MentionQuery{}, false
	}

	at := -1
	for i := caret - 1; i >= 0; i-- {
		c := text[i]
		if c == '@' {
			at = i
			break
		}
		if c == ' ' || c == '\t' || c == '\n' {
			return MentionQuery{}, false
		}
	}
	if at < 0 {
		return MentionQuery{}, false
	}

	if at > 0 {
		prev, _ := utf8.DecodeLastRuneInString(text[:at])
		if !unicode.IsSpace(prev) {
			return MentionQuery{}, false
		}
	}

	query := text[at+1 : caret]
	if strings.ContainsAny(query, " \t\n") {
		return MentionQuery{}, false
	}
	if utf8.RuneCountInString(query) > maxQueryLen {
		return MentionQuery{}, false
	}
	return MentionQuery{Query: query, Start: at}, true
}

// SuggestMentions filters the candidate list by a case-insensitive
// substring match on first name, last name, or the combined full name.
func SuggestMentions(candidates []models.Profile, query string) []models.Profile {
	q := strings.ToLower(query)
	out := []models.Profile{}
	for _, p := range candidates {
		first := strings.ToLower(p.FirstName)
		last := strings.ToLower(p.LastName)
		full := strings.TrimSpace(first + " " + last)
		if strings.Contains(first, q) || strings.Contains(last, q) || strings.Contains(full, q) {
			out = append(out, p)
		}
	}
	return out
}

// CommitMention replaces the "@query" span ending at caret with
// "@Full Name " and returns the rewritten text, the new caret position, and
// the tagged user id. The input text is returned unchanged when no mention
// is active at the caret.
func CommitMention(text string, caret int, user models.Profile) (string, int, string) {
	mq, ok := DetectMention(text, caret)
	if !ok {
		return text, caret, ""
	}
	insert := "@" + user.FullName() + " "
	next := text[:mq.Start] + insert + text[caret:]
	return next, mq.Start + len(insert), user.ProfileID
}

// SuggestionList drives the composer dropdown: arrow keys cycle the
// selection, Escape force-closes the list until the query text changes.
type SuggestionList struct {
	query      string
	items      []models.Profile
	selected   int
	suppressed string
}

// Update feeds the current mention query and its filtered candidates. A
// changed query clears Escape suppression and resets the selection.
func (s *SuggestionList) Update(query string, items []models.Profile) {
	if query != s.query {
		s.selected = 0
		if s.suppressed != "" && s.suppressed != query {
			s.suppressed = ""
		}
	}
	s.query = query
	s.items = items
}

// Open reports whether the dropdown is visible.
func (s *SuggestionList) Open() bool {
	return len(s.items) > 0 && s.suppressed != s.query
}

// Dismiss force-closes the list for the remainder of this query (Escape).
func (s *SuggestionList) Dismiss() {
	s.suppressed = s.query
}

// Next moves the highlighted suggestion down, wrapping.
func (s *SuggestionList) Next() {
	if len(s.items) == 0 {
		return
	}
	s.selected = (s.selected + 1) % len(s.items)
}

// Prev moves the highlighted suggestion up, wrapping.
func (s *SuggestionList) Prev() {
	if len(s.items) == 0 {
		return
	}
	s.selected = (s.selected - 1 + len(s.items)) % len(s.items)
}

// Selected returns the highlighted suggestion (Enter/Tab target).
func (s *SuggestionList) Selected() (models.Profile, bool) {
	if !s.Open() || s.selected >= len(s.items) {
		return models.Profile{}, false
	}
	return s.items[s.selected], true
}
