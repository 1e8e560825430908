// block.go
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

package blocks

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Kind discriminates the block union.
type Kind string

const (
	KindHeading   Kind = "heading"
	KindParagraph Kind = "paragraph"
	KindQuote     Kind = "quote"
	KindList      Kind = "list"
	KindImage     Kind = "image"
	KindGallery   Kind = "gallery"
	KindImageGrid Kind = "imageGrid"
	KindGrid      Kind = "grid"
	KindLink      Kind = "link"
	KindDivider   Kind = "divider"
)

// Heading is a section title, levels 1-3.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Paragraph holds inline-formatted HTML content. The HTML is sanitized at
// render time, not at rest.
type Paragraph struct {
	Size    string `json:"size,omitempty"`
	Align   string `json:"align,omitempty"`
	Content string `json:"content"`
}

// Paragraph sizes.
const (
	SizeNormal = "normal"
	SizeLarge  = "large"
	SizeSmall  = "small"
)

// Quote is plain text.
type Quote struct {
	Text string `json:"text"`
}

// List styles.
const (
	ListBullet   = "bullet"
	ListNumbered = "numbered"
)

// List holds per-item rich text.
type List struct {
	Style string   `json:"style"`
	Items []string `json:"items"`
}

// Image fit modes.
const (
	FitFill = "fill"
	FitHug  = "hug"
)

// Image is a single uploaded image.
type Image struct {
	URL     string `json:"url"`
	Alt     string `json:"alt,omitempty"`
	Fit     string `json:"fit,omitempty"`
	Caption string `json:"caption,omitempty"`
}

// GalleryImage is one entry of a gallery or image grid.
type GalleryImage struct {
	URL     string `json:"url"`
	Alt     string `json:"alt,omitempty"`
	Caption string `json:"caption,omitempty"`
}

// Gallery is a fixed-column image collection, columns 2-4.
type Gallery struct {
	Columns int            `json:"columns"`
	Images  []GalleryImage `json:"images"`
}

// ImageGrid is a variable-column image layout with pixel gaps that can be
// locked together.
type ImageGrid struct {
	Columns     int            `json:"columns"`
	GapRow      int            `json:"gapRow"`
	GapCol      int            `json:"gapCol"`
	GapLocked   bool           `json:"gapLocked,omitempty"`
	AspectRatio string         `json:"aspectRatio,omitempty"`
	Images      []GalleryImage `json:"images"`
}

// Grid cell types.
const (
	CellText  = "text"
	CellImage = "image"
)

// GridCell is one cell of a grid block.
type GridCell struct {
	Type    string `json:"type"`
	Content string `json:"content"`
	Caption string `json:"caption,omitempty"`
}

// Grid is a rows x columns table with optional single header row/column.
// Cells are stored row-major and always hold exactly Rows*Columns entries.
type Grid struct {
	Columns           int        `json:"columns"`
	Rows              int        `json:"rows"`
	HeaderRowCount    int        `json:"headerRowCount"`
	HeaderColumnCount int        `json:"headerColumnCount"`
	Cells             []GridCell `json:"cells"`
}

// Link is a standalone link block.
type Link struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// Block is a tagged union: exactly the payload matching Kind is set.
// The array order of blocks in a Document is the document's semantic order.
type Block struct {
	ID   string
	Kind Kind

	Heading   *Heading
	Paragraph *Paragraph
	Quote     *Quote
	List      *List
	Image     *Image
	Gallery   *Gallery
	ImageGrid *ImageGrid
	Grid      *Grid
	Link      *Link
}

// Document is an ordered sequence of blocks. All mutations produce a new
// slice; blocks themselves are treated as values.
type Document []Block

// NewID returns a fresh block id, unique within a document's lifetime.
func NewID() string {
	return uuid.NewString()
}

// payload returns the payload value matching b.Kind, nil for divider.
func (b Block) payload() interface{} {
	switch b.Kind {
	case KindHeading:
		return b.Heading
	case KindParagraph:
		return b.Paragraph
	case KindQuote:
		return b.Quote
	case KindList:
		return b.List
	case KindImage:
		return b.Image
	case KindGallery:
		return b.Gallery
	case KindImageGrid:
		return b.ImageGrid
	case KindGrid:
		return b.Grid
	case KindLink:
		return b.Link
	case KindDivider:
		return nil
	}
	return nil
}

// normalized clears every payload that does not match Kind, so a type change
// replaces the block wholesale instead of carrying stale fields along.
func (b Block) normalized() Block {
	out := Block{ID: b.ID, Kind: b.Kind}
	switch b.Kind {
	case KindHeading:
		out.Heading = b.Heading
	case KindParagraph:
		out.Paragraph = b.Paragraph
	case KindQuote:
		out.Quote = b.Quote
	case KindList:
		out.List = b.List
	case KindImage:
		out.Image = b.Image
	case KindGallery:
		out.Gallery = b.Gallery
	case KindImageGrid:
		out.ImageGrid = b.ImageGrid
	case KindGrid:
		out.Grid = b.Grid
	case KindLink:
		out.Link = b.Link
	case KindDivider:
	}
	return out
}

// IsEmpty reports whether the block has no user-visible content and is
// eligible for silent removal. Divider blocks are never empty.
func IsEmpty(b Block) bool {
	switch b.Kind {
	case KindHeading:
		return b.Heading == nil || blankText(b.Heading.Text)
	case KindParagraph:
		return b.Paragraph == nil || blankHTML(b.Paragraph.Content)
	case KindQuote:
		return b.Quote == nil || blankText(b.Quote.Text)
	case KindList:
		if b.List == nil || len(b.List.Items) == 0 {
			return true
		}
		for _, item := range b.List.Items {
			if !blankHTML(item) {
				return false
			}
		}
		return true
	case KindImage:
		return b.Image == nil || b.Image.URL == ""
	case KindGallery:
		if b.Gallery == nil {
			return true
		}
		return allImagesBlank(b.Gallery.Images)
	case KindImageGrid:
		if b.ImageGrid == nil {
			return true
		}
		return allImagesBlank(b.ImageGrid.Images)
	case KindGrid:
		if b.Grid == nil {
			return true
		}
		for _, cell := range b.Grid.Cells {
			if !blankHTML(cell.Content) {
				return false
			}
		}
		return true
	case KindLink:
		return b.Link == nil || b.Link.URL == ""
	case KindDivider:
		return false
	}
	return true
}

func allImagesBlank(images []GalleryImage) bool {
	for _, img := range images {
		if img.URL != "" {
			return false
		}
	}
	return true
}

func blankText(s string) bool {
	return strings.TrimFunc(s, isSpaceRune) == ""
}

// blankHTML strips markup and line breaks before testing for blankness, so a
// paragraph holding only <br> tags still counts as empty.
func blankHTML(s string) bool {
	return blankText(InnerText(s))
}

func isSpaceRune(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == ' '
}

// blockHeader is the shared wire prefix of every block.
type blockHeader struct {
	ID   string `json:"id"`
	Type Kind   `json:"type"`
}

// MarshalJSON flattens the block to {id, type, ...per-type fields}.
func (b Block) MarshalJSON() ([]byte, error) {
	fields := map[string]json.RawMessage{}

	if p := b.payload(); p != nil {
		raw, err := json.Marshal(p)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, err
		}
	}

	idRaw, err := json.Marshal(b.ID)
	if err != nil {
		return nil, err
	}
	typeRaw, err := json.Marshal(b.Kind)
	if err != nil {
		return nil, err
	}
	fields["id"] = idRaw
	fields["type"] = typeRaw

	return json.Marshal(fields)
}

// UnmarshalJSON reads the flattened wire shape back into the union.
func (b *Block) UnmarshalJSON(data []byte) error {
	var header blockHeader
	if err := json.Unmarshal(data, &header); err != nil {
		return err
	}

	out := Block{ID: header.ID, Kind: header.Type}
	switch header.Type {
	case KindHeading:
		out.Heading = &Heading{}
		if err := json.Unmarshal(data, out.Heading); err != nil {
			return err
		}
	case KindParagraph:
		out.Paragraph = &Paragraph{}
		if err := json.Unmarshal(data, out.Paragraph); err != nil {
			return err
		}
	case KindQuote:
		out.Quote = &Quote{}
		if err := json.Unmarshal(data, out.Quote); err != nil {
			return err
		}
	case KindList:
		out.List = &List{}
		if err := json.Unmarshal(data, out.List); err != nil {
			return err
		}
	case KindImage:
		out.Image = &Image{}
		if err := json.Unmarshal(data, out.Image); err != nil {
			return err
		}
	case KindGallery:
		out.Gallery = &Gallery{}
		if err := json.Unmarshal(data, out.Gallery); err != nil {
			return err
		}
	case KindImageGrid:
		out.ImageGrid = &ImageGrid{}
		if err := json.Unmarshal(data, out.ImageGrid); err != nil {
			return err
		}
	case KindGrid:
		out.Grid = &Grid{}
		if err := json.Unmarshal(data, out.Grid); err != nil {
			return err
		}
	case KindLink:
		out.Link = &Link{}
		if err := json.Unmarshal(data, out.Link); err != nil {
			return err
		}
	case KindDivider:
	default:
		return fmt.Errorf("blocks: unknown block type %q", header.Type)
	}

	*b = out
	return nil
}

// Text returns the plain text of the block as a reader would perceive it.
// This is the text comments anchor against.
func (b Block) Text() string {
	switch b.Kind {
	case KindHeading:
		if b.Heading == nil {
			return ""
		}
		return b.Heading.Text
	case KindParagraph:
		if b.Paragraph == nil {
			return ""
		}
		return InnerText(b.Paragraph.Content)
	case KindQuote:
		if b.Quote == nil {
			return ""
		}
		return b.Quote.Text
	case KindList:
		if b.List == nil {
			return ""
		}
		parts := make([]string, 0, len(b.List.Items))
		for _, item := range b.List.Items {
			parts = append(parts, InnerText(item))
		}
		return strings.Join(parts, "\n")
	case KindImage:
		if b.Image == nil {
			return ""
		}
		return b.Image.Caption
	case KindLink:
		if b.Link == nil {
			return ""
		}
		return b.Link.Text
	case KindGallery, KindImageGrid, KindGrid, KindDivider:
		return ""
	}
	return ""
}
