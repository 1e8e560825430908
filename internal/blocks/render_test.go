package blocks_test

import (
	"strings"
	"testing"

	"github.com/vojtechokenka/nokturo/internal/blocks"
)

// TestRenderSkipsEmptyBlocks verifies empty blocks stay out of the view
// while remaining in the document
func TestRenderSkipsEmptyBlocks(t *testing.T) {
	doc := blocks.Document{
		{ID: "h", Kind: blocks.KindHeading, Heading: &blocks.Heading{Level: 1, Text: "Fabric"}},
		{ID: "empty", Kind: blocks.KindParagraph, Paragraph: &blocks.Paragraph{Content: "  <br> "}},
		{ID: "p", Kind: blocks.KindParagraph, Paragraph: &blocks.Paragraph{Content: "Merino blend"}},
	}

	view := blocks.Render(doc)
	if len(view.Blocks) != 2 {
		t.Fatalf("Expected 2 rendered blocks, got %d", len(view.Blocks))
	}
	if view.Blocks[0].Block.ID != "h" || view.Blocks[1].Block.ID != "p" {
		t.Error("Expected the empty paragraph skipped, order preserved")
	}
	if len(doc) != 3 {
		t.Error("Render must not mutate the document")
	}
}

// TestRenderRuleBeforeH2 verifies only level-2 headings draw a rule
func TestRenderRuleBeforeH2(t *testing.T) {
	doc := blocks.Document{
		{ID: "h1", Kind: blocks.KindHeading, Heading: &blocks.Heading{Level: 1, Text: "Top"}},
		{ID: "h2", Kind: blocks.KindHeading, Heading: &blocks.Heading{Level: 2, Text: "Care"}},
		{ID: "h3", Kind: blocks.KindHeading, Heading: &blocks.Heading{Level: 3, Text: "Washing"}},
	}

	view := blocks.Render(doc)
	if view.Blocks[0].RuleBefore {
		t.Error("Level-1 heading must not carry a rule")
	}
	if !view.Blocks[1].RuleBefore {
		t.Error("Level-2 heading must carry a rule")
	}
	if view.Blocks[2].RuleBefore {
		t.Error("Level-3 heading must not carry a rule")
	}
}

// TestRenderOutline verifies the heading outline collection
func TestRenderOutline(t *testing.T) {
	doc := blocks.Document{
		{ID: "h1", Kind: blocks.KindHeading, Heading: &blocks.Heading{Level: 1, Text: "Overview"}},
		{ID: "blank", Kind: blocks.KindHeading, Heading: &blocks.Heading{Level: 2, Text: "  "}},
		{ID: "h3", Kind: blocks.KindHeading, Heading: &blocks.Heading{Level: 3, Text: "Details"}},
		{ID: "p", Kind: blocks.KindParagraph, Paragraph: &blocks.Paragraph{Content: "Body"}},
	}

	view := blocks.Render(doc)
	if len(view.Outline) != 2 {
		t.Fatalf("Expected 2 outline items, got %d", len(view.Outline))
	}
	if view.Outline[0].ID != "h1" || view.Outline[1].ID != "h3" {
		t.Error("Expected blank headings excluded from the outline")
	}
	if view.Outline[1].Level != 3 {
		t.Errorf("Expected level 3 captured, got %d", view.Outline[1].Level)
	}
}

// TestRenderSanitizesContent verifies script injection is stripped at
// render time while the stored document keeps its raw content
func TestRenderSanitizesContent(t *testing.T) {
	raw := `Safe <b>bold</b> <script>alert(1)</script> <a href="javascript:x" >link</a>`
	doc := blocks.Document{
		{ID: "p", Kind: blocks.KindParagraph, Paragraph: &blocks.Paragraph{Content: raw}},
		{ID: "l", Kind: blocks.KindList, List: &blocks.List{Style: blocks.ListBullet, Items: []string{"<u>ok</u><img src=x>"}}},
	}

	view := blocks.Render(doc)

	p := view.Blocks[0].Block.Paragraph.Content
	if strings.Contains(p, "<script") {
		t.Errorf("Expected script tag stripped, got %q", p)
	}
	if !strings.Contains(p, "<b>bold</b>") {
		t.Errorf("Expected inline formatting kept, got %q", p)
	}
	if strings.Contains(p, "javascript:") {
		t.Errorf("Expected unsafe href dropped, got %q", p)
	}

	item := view.Blocks[1].Block.List.Items[0]
	if strings.Contains(item, "<img") || !strings.Contains(item, "<u>ok</u>") {
		t.Errorf("Expected list item sanitized, got %q", item)
	}

	if doc[0].Paragraph.Content != raw {
		t.Error("Sanitization must not rewrite the stored document")
	}
}

// TestSanitizeHTMLAnchors verifies anchor attribute filtering
func TestSanitizeHTMLAnchors(t *testing.T) {
	got := blocks.SanitizeHTML(`<a href="https://nokturo.example" onclick="steal()">shop</a>`)
	want := `<a href="https://nokturo.example">shop</a>`
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}

	got = blocks.SanitizeHTML(`<mark data-comment-id="c1" style="color:red">note</mark>`)
	want = `<mark data-comment-id="c1">note</mark>`
	if got != want {
		t.Errorf("Expected comment anchor preserved, got %q", got)
	}
}

// TestInnerText verifies markup stripping and br handling
func TestInnerText(t *testing.T) {
	if got := blocks.InnerText("plain"); got != "plain" {
		t.Errorf("Expected passthrough, got %q", got)
	}
	if got := blocks.InnerText("a<br>b"); got != "a\nb" {
		t.Errorf("Expected br as newline, got %q", got)
	}
	if got := blocks.InnerText("&amp; <b>x</b>"); got != "& x" {
		t.Errorf("Expected entities decoded and tags dropped, got %q", got)
	}
}
