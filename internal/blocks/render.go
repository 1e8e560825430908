package blocks

// Read-only projection of a document. Rendering is pure: the same document
// always yields the same view, and empty blocks produce no output even
// though they remain in the persisted array.

// TocItem is a derived outline entry, one per non-blank heading block.
type TocItem struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Level int    `json:"level"`
}

// RenderedBlock is one visible block of the read view. Paragraph and list
// content arrive sanitized.
type RenderedBlock struct {
	Block      Block `json:"block"`
	RuleBefore bool  `json:"ruleBefore,omitempty"`
}

// View is the rendered document plus its heading outline.
type View struct {
	Blocks  []RenderedBlock `json:"blocks"`
	Outline []TocItem       `json:"outline"`
}

// Render projects a document to its read-only view. Empty blocks are
// skipped; a level-2 heading renders with a preceding horizontal rule.
// Headings with non-blank text (levels 1-3) are collected into the outline
// in document order.
func Render(doc Document) View {
	view := View{Blocks: []RenderedBlock{}, Outline: []TocItem{}}

	for _, b := range doc {
		if IsEmpty(b) {
			continue
		}

		rendered := RenderedBlock{Block: sanitizeBlock(b)}

		switch b.Kind {
		case KindHeading:
			if b.Heading.Level == 2 {
				rendered.RuleBefore = true
			}
			if b.Heading.Level >= 1 && b.Heading.Level <= 3 && !blankText(b.Heading.Text) {
				view.Outline = append(view.Outline, TocItem{
					ID:    b.ID,
					Text:  b.Heading.Text,
					Level: b.Heading.Level,
				})
			}
		case KindParagraph, KindQuote, KindList, KindImage,
			KindGallery, KindImageGrid, KindGrid, KindLink, KindDivider:
		}

		view.Blocks = append(view.Blocks, rendered)
	}

	return view
}

// sanitizeBlock applies render-time HTML sanitization to the payloads that
// carry rich content.
func sanitizeBlock(b Block) Block {
	switch b.Kind {
	case KindParagraph:
		p := *b.Paragraph
		p.Content = SanitizeHTML(p.Content)
		b.Paragraph = &p
	case KindList:
		l := *b.List
		items := make([]string, len(l.Items))
		for i, item := range l.Items {
			items[i] = SanitizeHTML(item)
		}
		l.Items = items
		b.List = &l
	case KindGrid:
		g := b.Grid.Normalized()
		cells := make([]GridCell, len(g.Cells))
		for i, cell := range g.Cells {
			if cell.Type == CellText {
				cell.Content = SanitizeHTML(cell.Content)
			}
			cells[i] = cell
		}
		g.Cells = cells
		b.Grid = &g
	case KindHeading, KindQuote, KindImage, KindGallery,
		KindImageGrid, KindLink, KindDivider:
	}
	return b
}
