package blocks

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"golang.org/x/net/html"
)

// ImportMarkdown converts a markdown document into a block document using
// the goldmark AST. Headings map to heading blocks (levels clamp to 3),
// paragraphs keep inline formatting as HTML, blockquotes flatten to plain
// text, lists keep per-item HTML, images standing alone in a paragraph
// become image blocks, and thematic breaks become dividers.
func ImportMarkdown(src []byte) Document {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(src))

	doc := Document{}
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		doc = append(doc, convertNode(n, src)...)
	}
	return doc
}

func convertNode(n ast.Node, src []byte) []Block {
	switch node := n.(type) {
	case *ast.Heading:
		level := node.Level
		if level > 3 {
			level = 3
		}
		return []Block{{
			ID:      NewID(),
			Kind:    KindHeading,
			Heading: &Heading{Level: level, Text: string(node.Text(src))},
		}}

	case *ast.Paragraph:
		// A paragraph holding a single image becomes an image block.
		if img, ok := soleImage(node); ok {
			return []Block{{
				ID:   NewID(),
				Kind: KindImage,
				Image: &Image{
					URL: string(img.Destination),
					Alt: string(img.Text(src)),
					Fit: FitFill,
				},
			}}
		}
		content := inlineHTML(node, src)
		if strings.TrimSpace(content) == "" {
			return nil
		}
		return []Block{{
			ID:        NewID(),
			Kind:      KindParagraph,
			Paragraph: &Paragraph{Size: SizeNormal, Content: content},
		}}

	case *ast.Blockquote:
		quoted := collectText(node, src)
		if strings.TrimSpace(quoted) == "" {
			return nil
		}
		return []Block{{
			ID:    NewID(),
			Kind:  KindQuote,
			Quote: &Quote{Text: quoted},
		}}

	case *ast.List:
		style := ListBullet
		if node.IsOrdered() {
			style = ListNumbered
		}
		items := []string{}
		for item := node.FirstChild(); item != nil; item = item.NextSibling() {
			items = append(items, listItemHTML(item, src))
		}
		if len(items) == 0 {
			return nil
		}
		return []Block{{
			ID:   NewID(),
			Kind: KindList,
			List: &List{Style: style, Items: items},
		}}

	case *ast.ThematicBreak:
		return []Block{{ID: NewID(), Kind: KindDivider}}
	}

	// Unhandled container blocks (code fences, tables without the extension)
	// degrade to a plain paragraph of their text.
	flat := collectText(n, src)
	if strings.TrimSpace(flat) == "" {
		return nil
	}
	return []Block{{
		ID:        NewID(),
		Kind:      KindParagraph,
		Paragraph: &Paragraph{Size: SizeNormal, Content: html.EscapeString(flat)},
	}}
}

// soleImage reports whether the paragraph contains exactly one image and no
// other visible inline content.
func soleImage(p *ast.Paragraph) (*ast.Image, bool) {
	var img *ast.Image
	for c := p.FirstChild(); c != nil; c = c.NextSibling() {
		switch child := c.(type) {
		case *ast.Image:
			if img != nil {
				return nil, false
			}
			img = child
		case *ast.Text:
			if child.Segment.Len() > 0 {
				return nil, false
			}
		default:
			return nil, false
		}
	}
	return img, img != nil
}

// inlineHTML renders the inline children of a block node to the subset of
// HTML the paragraph editor produces (b, i, a, br).
func inlineHTML(n ast.Node, src []byte) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		writeInline(&sb, c, src)
	}
	return sb.String()
}

func writeInline(sb *strings.Builder, n ast.Node, src []byte) {
	switch node := n.(type) {
	case *ast.Text:
		sb.WriteString(html.EscapeString(string(node.Segment.Value(src))))
		if node.HardLineBreak() || node.SoftLineBreak() {
			sb.WriteString("<br>")
		}
	case *ast.Emphasis:
		tag := "i"
		if node.Level >= 2 {
			tag = "b"
		}
		sb.WriteString("<" + tag + ">")
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			writeInline(sb, c, src)
		}
		sb.WriteString("</" + tag + ">")
	case *ast.Link:
		href := string(node.Destination)
		if safeHref(href) {
			sb.WriteString(`<a href="` + html.EscapeString(href) + `">`)
		} else {
			sb.WriteString("<a>")
		}
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			writeInline(sb, c, src)
		}
		sb.WriteString("</a>")
	case *ast.CodeSpan:
		sb.WriteString(html.EscapeString(string(node.Text(src))))
	case *ast.Image:
		// Inline images mixed with text keep only their alt text.
		sb.WriteString(html.EscapeString(string(node.Text(src))))
	default:
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			writeInline(sb, c, src)
		}
	}
}

// listItemHTML renders a list item's first paragraph inline content.
func listItemHTML(item ast.Node, src []byte) string {
	var sb strings.Builder
	for c := item.FirstChild(); c != nil; c = c.NextSibling() {
		switch c.(type) {
		case *ast.Paragraph, *ast.TextBlock:
			sb.WriteString(inlineHTML(c, src))
		}
	}
	return sb.String()
}

// collectText flattens a node subtree to plain text.
func collectText(n ast.Node, src []byte) string {
	var sb strings.Builder
	var walk func(ast.Node)
	walk = func(node ast.Node) {
		if t, ok := node.(*ast.Text); ok {
			sb.WriteString(string(t.Segment.Value(src)))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteString("\n")
			}
		}
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}
