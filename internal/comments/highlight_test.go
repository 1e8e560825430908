package comments_test

import (
	"strings"
	"testing"

	"github.com/vojtechokenka/nokturo/internal/comments"
	"github.com/vojtechokenka/nokturo/internal/models"
)

// TestWrapText verifies marker splicing and escaping for plain-text blocks
func TestWrapText(t *testing.T) {
	text := "wool & silk blend"
	segs := comments.Segments(text, []models.TextComment{root("c1", "b", "silk")})

	got := comments.WrapText(text, segs)
	want := `wool &amp; <mark data-comment-id="c1">silk</mark> blend`
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

// TestWrapTextNoSegments verifies plain escaping without highlights
func TestWrapTextNoSegments(t *testing.T) {
	got := comments.WrapText("a < b", nil)
	if got != "a &lt; b" {
		t.Errorf("Expected escaped text, got %q", got)
	}
}

// TestWrapHTMLMultiple verifies descending-order rewriting keeps every
// highlight intact
func TestWrapHTMLMultiple(t *testing.T) {
	content := "A <b>water resistant</b> shell with a hidden hood"
	list := []models.TextComment{
		root("c1", "b", "water resistant"),
		root("c2", "b", "hidden hood"),
	}

	got := comments.WrapHTML(content, list)
	if !strings.Contains(got, `<mark data-comment-id="c1">water resistant</mark>`) {
		t.Errorf("Expected c1 wrapped, got %q", got)
	}
	if !strings.Contains(got, `<mark data-comment-id="c2">hidden hood</mark>`) {
		t.Errorf("Expected c2 wrapped, got %q", got)
	}
	if !strings.Contains(got, "<b>") {
		t.Errorf("Expected surrounding markup untouched, got %q", got)
	}
}

// TestWrapHTMLOverlap verifies the first-wins overlap rule applies to HTML
// content too
func TestWrapHTMLOverlap(t *testing.T) {
	content := "water resistant shell"
	list := []models.TextComment{
		root("first", "b", "water resistant"),
		root("second", "b", "resistant shell"),
	}

	got := comments.WrapHTML(content, list)
	if strings.Contains(got, `data-comment-id="second"`) {
		t.Errorf("Expected the overlapping comment dropped, got %q", got)
	}
	if !strings.Contains(got, `data-comment-id="first"`) {
		t.Errorf("Expected the earlier comment kept, got %q", got)
	}
}

// TestWrapPending verifies the in-composition marker
func TestWrapPending(t *testing.T) {
	got := comments.WrapPending("a hidden hood", "hidden")
	want := `a <mark data-pending="true">hidden</mark> hood`
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}

	if got := comments.WrapPending("text", "absent"); got != "text" {
		t.Errorf("Expected no-op for a missing selection, got %q", got)
	}
	if got := comments.WrapPending("text", ""); got != "text" {
		t.Errorf("Expected no-op for an empty selection, got %q", got)
	}
}
